package handlers

import (
	"net/http"

	"asset-allocation-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for the user directory
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser handles POST /user
// @Summary Register a user
// @Description Registers a user. Without a password the user can be referenced by allocations but cannot log in.
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User data"
// @Success 201 {object} SuccessResponse{data=service.UserResponse} "User created"
// @Failure 400 {object} ErrorResponse "Invalid request or validation failed"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /user [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, user)
}

// ListUsers handles GET /user
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]service.UserResponse} "Users"
// @Security BearerAuth
// @Router /user [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, users, len(users))
}

// GetUser handles GET /user/:id
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} SuccessResponse{data=service.UserResponse} "User"
// @Failure 400 {object} ErrorResponse "Malformed user ID"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /user/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, user)
}
