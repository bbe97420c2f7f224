package handlers

import (
	"errors"
	"io"
	"net/http"

	"asset-allocation-backend/internal/auth"
	"asset-allocation-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AllocationHandler handles HTTP requests for allocations
type AllocationHandler struct {
	allocationService service.AllocationServiceInterface
}

// NewAllocationHandler creates a new allocation handler
func NewAllocationHandler(allocationService service.AllocationServiceInterface) *AllocationHandler {
	return &AllocationHandler{
		allocationService: allocationService,
	}
}

// CreateAllocation handles POST /allocation
// @Summary Request an allocation
// @Description Creates a pending allocation of an asset to a user. allocatedBy defaults to the caller.
// @Description Creating an allocation never changes the asset owner.
// @Tags allocations
// @Accept json
// @Produce json
// @Param allocation body service.CreateAllocationRequest true "Allocation data"
// @Success 201 {object} SuccessResponse{data=service.AllocationResponse} "Allocation created"
// @Failure 400 {object} ErrorResponse "Invalid request or validation failed"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /allocation [post]
func (h *AllocationHandler) CreateAllocation(c *gin.Context) {
	var req service.CreateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.AllocatedBy == "" {
		if userID, ok := auth.GetActingUserID(c); ok {
			req.AllocatedBy = userID.String()
		}
	}

	allocation, err := h.allocationService.CreateAllocation(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, allocation)
}

// ListAllocations handles GET /allocation
// @Summary List allocations
// @Description Returns every allocation, newest request first
// @Tags allocations
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]service.AllocationResponse} "Allocations"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /allocation [get]
func (h *AllocationHandler) ListAllocations(c *gin.Context) {
	allocations, err := h.allocationService.GetAllAllocations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, allocations, len(allocations))
}

// GetAllocation handles GET /allocation/:id
// @Summary Get an allocation
// @Description Returns one allocation with its users and asset resolved
// @Tags allocations
// @Produce json
// @Param id path string true "Allocation ID (UUID)"
// @Success 200 {object} SuccessResponse{data=service.AllocationResponse} "Allocation"
// @Failure 400 {object} ErrorResponse "Malformed allocation ID"
// @Failure 404 {object} ErrorResponse "Allocation not found"
// @Security BearerAuth
// @Router /allocation/{id} [get]
func (h *AllocationHandler) GetAllocation(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	allocation, err := h.allocationService.GetAllocationByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, allocation)
}

// UpdateAllocation handles PUT /allocation/:id
// @Summary Edit an allocation
// @Description Edits purpose and duration. Status and asset ownership cannot be changed here;
// @Description allocatedBy, allocatedTo, asset and allocationType must match the stored values if sent.
// @Tags allocations
// @Accept json
// @Produce json
// @Param id path string true "Allocation ID (UUID)"
// @Param allocation body service.UpdateAllocationRequest true "Allocation edits"
// @Success 200 {object} SuccessResponse{data=service.AllocationResponse} "Updated allocation"
// @Failure 400 {object} ErrorResponse "Malformed ID or validation failed"
// @Failure 404 {object} ErrorResponse "Allocation not found"
// @Security BearerAuth
// @Router /allocation/{id} [put]
func (h *AllocationHandler) UpdateAllocation(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req service.UpdateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	allocation, err := h.allocationService.UpdateAllocation(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, allocation)
}

// ApproveAllocation handles PUT /allocation/:id/approve
// @Summary Approve an allocation
// @Description Approves a pending allocation. Approving an Owner allocation makes the allocatee the asset owner.
// @Description Approving an already approved allocation returns it unchanged.
// @Tags allocations
// @Produce json
// @Param id path string true "Allocation ID (UUID)"
// @Success 200 {object} SuccessResponse{data=service.AllocationResponse} "Approved allocation"
// @Failure 400 {object} ErrorResponse "Malformed allocation ID"
// @Failure 404 {object} ErrorResponse "Allocation not found"
// @Failure 409 {object} ErrorResponse "Allocation was already rejected"
// @Security BearerAuth
// @Router /allocation/{id}/approve [put]
func (h *AllocationHandler) ApproveAllocation(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	allocation, err := h.allocationService.ApproveAllocation(c.Request.Context(), id, actingUser(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, allocation)
}

// RejectAllocation handles PUT /allocation/:id/reject
// @Summary Reject an allocation
// @Description Rejects a pending allocation. The reason defaults to "Rejected". The asset owner is never changed.
// @Tags allocations
// @Accept json
// @Produce json
// @Param id path string true "Allocation ID (UUID)"
// @Param body body service.RejectAllocationRequest false "Rejection reason"
// @Success 200 {object} SuccessResponse{data=service.AllocationResponse} "Rejected allocation"
// @Failure 400 {object} ErrorResponse "Malformed allocation ID"
// @Failure 404 {object} ErrorResponse "Allocation not found"
// @Failure 409 {object} ErrorResponse "Allocation was already approved"
// @Security BearerAuth
// @Router /allocation/{id}/reject [put]
func (h *AllocationHandler) RejectAllocation(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req service.RejectAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondMessage(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	allocation, err := h.allocationService.RejectAllocation(c.Request.Context(), id, req.Reason, actingUser(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, allocation)
}

// ListAllocationsByUser handles GET /allocation/user/:id
// @Summary List a user's allocations
// @Description Returns allocations the user requested or receives
// @Tags allocations
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} SuccessResponse{data=[]service.AllocationResponse} "Allocations"
// @Failure 400 {object} ErrorResponse "Malformed user ID"
// @Security BearerAuth
// @Router /allocation/user/{id} [get]
func (h *AllocationHandler) ListAllocationsByUser(c *gin.Context) {
	userID, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	allocations, err := h.allocationService.GetAllocationsByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, allocations, len(allocations))
}

// ListAllocationsByAsset handles GET /allocation/asset/:id
// @Summary List an asset's allocations
// @Tags allocations
// @Produce json
// @Param id path string true "Asset ID (UUID)"
// @Success 200 {object} SuccessResponse{data=[]service.AllocationResponse} "Allocations"
// @Failure 400 {object} ErrorResponse "Malformed asset ID"
// @Security BearerAuth
// @Router /allocation/asset/{id} [get]
func (h *AllocationHandler) ListAllocationsByAsset(c *gin.Context) {
	assetID, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	allocations, err := h.allocationService.GetAllocationsByAsset(c.Request.Context(), assetID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, allocations, len(allocations))
}

func actingUser(c *gin.Context) *uuid.UUID {
	id, ok := auth.GetActingUserID(c)
	if !ok {
		return nil
	}
	return &id
}
