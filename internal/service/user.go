package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"asset-allocation-backend/internal/auth"
	"asset-allocation-backend/internal/database/models"
	apperrors "asset-allocation-backend/internal/errors"
	"asset-allocation-backend/internal/logger"
	"asset-allocation-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for the user directory
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// Ensure UserService implements UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// CreateUserRequest represents the data needed to register a user
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=100" example:"Jane Doe"`
	Email    string `json:"email" validate:"required,email,max=255" example:"jane.doe@example.com"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin manager employee" example:"employee"`
	Password string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
}

// UserResponse represents a user of the directory
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CanLogin  bool      `json:"canLogin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateUser registers a user. Emails are stored lowercased and must be unique.
// A user without a password exists for allocation bookkeeping but cannot log in.
func (s *UserService) CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.NewConflictError("user", "email is already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	role := models.UserRoleEmployee
	if req.Role != "" {
		role = models.UserRole(req.Role)
	}

	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  role,
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.WithContext(ctx).WithField("user_id", user.ID).Info("User registered")

	return toUserResponse(user), nil
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toUserResponse(user), nil
}

// GetAllUsers lists all users by name
func (s *UserService) GetAllUsers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *toUserResponse(&users[i])
	}
	return responses, nil
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CanLogin:  user.PasswordHash != "",
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
