package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"asset-allocation-backend/internal/database/models"
	apperrors "asset-allocation-backend/internal/errors"
	"asset-allocation-backend/internal/logger"
	"asset-allocation-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultRejectionReason is recorded when a rejection carries no reason
const DefaultRejectionReason = "Rejected"

// AllocationServiceOptions tunes the allocation workflow
type AllocationServiceOptions struct {
	// StrictTransitions makes a repeated approve or reject a conflict instead of a no-op
	StrictTransitions bool
	// AllowRedecision lets an approved allocation be rejected and a rejected one approved.
	// Rejecting never gives ownership back.
	AllowRedecision   bool
}

// AllocationService provides the allocation approval workflow
type AllocationService struct {
	allocationRepo repository.AllocationRepositoryInterface
	assetRepo      repository.AssetRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	txManager      repository.TransactionManagerInterface
	enforcer       *OwnershipEnforcer
	resolver       *referenceResolver
	validator      *validator.Validate
	options        AllocationServiceOptions
	now            func() time.Time
}

// Ensure AllocationService implements AllocationServiceInterface
var _ AllocationServiceInterface = (*AllocationService)(nil)

// NewAllocationService creates a new AllocationService
func NewAllocationService(
	allocationRepo repository.AllocationRepositoryInterface,
	assetRepo repository.AssetRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	txManager repository.TransactionManagerInterface,
	enforcer *OwnershipEnforcer,
	validator *validator.Validate,
	options AllocationServiceOptions,
) *AllocationService {
	return &AllocationService{
		allocationRepo: allocationRepo,
		assetRepo:      assetRepo,
		userRepo:       userRepo,
		txManager:      txManager,
		enforcer:       enforcer,
		resolver:       newReferenceResolver(userRepo, assetRepo),
		validator:      validator,
		options:        options,
		now:            time.Now,
	}
}

// SetClock replaces the time source used for request and decision timestamps
func (s *AllocationService) SetClock(now func() time.Time) {
	s.now = now
}

// DurationRequest is an optional custody window
type DurationRequest struct {
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
}

// CreateAllocationRequest represents the payload for requesting an allocation
type CreateAllocationRequest struct {
	AllocatedBy    string           `json:"allocatedBy" validate:"required,uuid"`
	AllocatedTo    string           `json:"allocatedTo" validate:"required,uuid"`
	Asset          string           `json:"asset" validate:"required,uuid"`
	AllocationType string           `json:"allocationType" validate:"required,max=50"`
	Purpose        string           `json:"purpose,omitempty" validate:"max=2000"`
	Duration       *DurationRequest `json:"duration,omitempty"`
}

// UpdateAllocationRequest represents a metadata edit of an allocation.
// The identity fields may be echoed back but must match the stored values.
type UpdateAllocationRequest struct {
	AllocatedBy    *string          `json:"allocatedBy,omitempty"`
	AllocatedTo    *string          `json:"allocatedTo,omitempty"`
	Asset          *string          `json:"asset,omitempty"`
	AllocationType *string          `json:"allocationType,omitempty"`
	Purpose        *string          `json:"purpose,omitempty" validate:"omitempty,max=2000"`
	Duration       *DurationRequest `json:"duration,omitempty"`
}

// RejectAllocationRequest is the optional body of a rejection
type RejectAllocationRequest struct {
	Reason string `json:"reason" validate:"max=1000"`
}

// CreateAllocation records a new pending allocation request. Asset ownership is never touched.
func (s *AllocationService) CreateAllocation(ctx context.Context, req *CreateAllocationRequest) (*AllocationResponse, error) {
	req.AllocationType = strings.TrimSpace(req.AllocationType)
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	allocatedByID, err := parseReference("allocatedBy", req.AllocatedBy)
	if err != nil {
		return nil, err
	}
	allocatedToID, err := parseReference("allocatedTo", req.AllocatedTo)
	if err != nil {
		return nil, err
	}
	assetID, err := parseReference("asset", req.Asset)
	if err != nil {
		return nil, err
	}
	if err := validateDuration(req.Duration); err != nil {
		return nil, err
	}

	if err := s.ensureUserExists(ctx, "allocatedBy", allocatedByID); err != nil {
		return nil, err
	}
	if err := s.ensureUserExists(ctx, "allocatedTo", allocatedToID); err != nil {
		return nil, err
	}
	if _, err := s.assetRepo.GetByID(ctx, assetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidationError("asset", "referenced asset does not exist")
		}
		return nil, fmt.Errorf("failed to verify asset: %w", err)
	}

	allocation := &models.Allocation{
		AllocatedByID:        allocatedByID,
		AllocatedToID:        allocatedToID,
		AssetID:              assetID,
		AllocationType:       models.AllocationType(req.AllocationType),
		Purpose:              req.Purpose,
		Status:               models.AllocationStatusPending,
		AllocatedRequestDate: s.now(),
	}
	if req.Duration != nil {
		allocation.Duration = models.Duration{StartTime: req.Duration.StartTime, EndTime: req.Duration.EndTime}
	}

	if err := s.allocationRepo.Create(ctx, allocation); err != nil {
		return nil, fmt.Errorf("failed to create allocation: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"allocation_id":   allocation.ID,
		"asset_id":        allocation.AssetID,
		"allocation_type": allocation.AllocationType,
	}).Infof("Allocation requested")

	return s.resolver.resolveAllocation(ctx, allocation)
}

// GetAllocationByID retrieves an allocation with its references resolved
func (s *AllocationService) GetAllocationByID(ctx context.Context, id uuid.UUID) (*AllocationResponse, error) {
	allocation, err := s.allocationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateAllocationErr(err)
	}
	return s.resolver.resolveAllocation(ctx, allocation)
}

// GetAllAllocations lists every allocation, newest request first
func (s *AllocationService) GetAllAllocations(ctx context.Context) ([]AllocationResponse, error) {
	allocations, err := s.allocationRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}
	return s.resolver.resolveAllocations(ctx, allocations)
}

// GetAllocationsByUser lists allocations the user either requested or receives
func (s *AllocationService) GetAllocationsByUser(ctx context.Context, userID uuid.UUID) ([]AllocationResponse, error) {
	allocations, err := s.allocationRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations for user: %w", err)
	}
	return s.resolver.resolveAllocations(ctx, allocations)
}

// GetAllocationsByAsset lists allocations referencing the asset
func (s *AllocationService) GetAllocationsByAsset(ctx context.Context, assetID uuid.UUID) ([]AllocationResponse, error) {
	allocations, err := s.allocationRepo.GetByAsset(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations for asset: %w", err)
	}
	return s.resolver.resolveAllocations(ctx, allocations)
}

// UpdateAllocation edits purpose and duration. Status and asset ownership are never written here.
func (s *AllocationService) UpdateAllocation(ctx context.Context, id uuid.UUID, req *UpdateAllocationRequest) (*AllocationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	allocation, err := s.allocationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateAllocationErr(err)
	}

	if err := checkIdentityUnchanged(allocation, req); err != nil {
		return nil, err
	}

	if req.Purpose != nil {
		allocation.Purpose = *req.Purpose
	}
	if req.Duration != nil {
		if err := validateDuration(req.Duration); err != nil {
			return nil, err
		}
		allocation.Duration = models.Duration{StartTime: req.Duration.StartTime, EndTime: req.Duration.EndTime}
	}

	if err := s.allocationRepo.UpdateDetails(ctx, allocation); err != nil {
		return nil, translateAllocationErr(err)
	}

	return s.resolver.resolveAllocation(ctx, allocation)
}

// ApproveAllocation moves a pending allocation to approved. For Owner allocations the
// asset owner is set to the allocatee in the same transaction as the status write.
func (s *AllocationService) ApproveAllocation(ctx context.Context, id uuid.UUID, actingUserID *uuid.UUID) (*AllocationResponse, error) {
	allocation, err := s.decide(ctx, id, models.AllocationStatusApproved, func(a *models.Allocation) {
		a.ApprovedByID = actingUserID
		a.RejectedByID = nil
		a.RejectionReason = ""
	})
	if err != nil {
		return nil, err
	}
	return s.resolver.resolveAllocation(ctx, allocation)
}

// RejectAllocation moves a pending allocation to rejected. Asset ownership is never touched.
func (s *AllocationService) RejectAllocation(ctx context.Context, id uuid.UUID, reason string, actingUserID *uuid.UUID) (*AllocationResponse, error) {
	reason = strings.TrimSpace(reason)
	if err := s.validator.Struct(&RejectAllocationRequest{Reason: reason}); err != nil {
		return nil, toValidationError(err)
	}
	if reason == "" {
		reason = DefaultRejectionReason
	}
	allocation, err := s.decide(ctx, id, models.AllocationStatusRejected, func(a *models.Allocation) {
		a.RejectedByID = actingUserID
		a.ApprovedByID = nil
		a.RejectionReason = reason
	})
	if err != nil {
		return nil, err
	}
	return s.resolver.resolveAllocation(ctx, allocation)
}

// decide applies a workflow transition under a row lock on the allocation.
// A repeat of an already reached decision returns the stored allocation unchanged.
func (s *AllocationService) decide(ctx context.Context, id uuid.UUID, target models.AllocationStatus, stamp func(*models.Allocation)) (*models.Allocation, error) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"allocation_id": id,
		"target_status": target,
	})

	var result *models.Allocation
	err := s.txManager.WithinTransaction(ctx, func(stores *repository.Stores) error {
		allocation, err := stores.Allocations.GetByIDForUpdate(ctx, id)
		if err != nil {
			return translateAllocationErr(err)
		}

		apply, err := s.checkTransition(allocation.Status, target)
		if err != nil {
			return err
		}
		result = allocation
		if !apply {
			log.Debugf("Allocation already %s, nothing to do", target)
			return nil
		}

		allocation.SetStatus(target, s.now())
		stamp(allocation)
		if err := stores.Allocations.UpdateStatus(ctx, allocation); err != nil {
			return translateAllocationErr(err)
		}

		if _, err := s.enforcer.Enforce(ctx, stores.Assets, allocation); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if !apperrors.IsConflict(err) && !apperrors.IsNotFound(err) {
			log.Errorf("Allocation transition failed: %v", err)
		}
		return nil, err
	}

	log.Infof("Allocation is %s", result.Status)
	return result, nil
}

// checkTransition reports whether moving from current to target needs a write
func (s *AllocationService) checkTransition(current, target models.AllocationStatus) (bool, error) {
	if current == models.AllocationStatusPending || current == "" {
		return true, nil
	}
	if !current.IsTerminal() {
		return false, fmt.Errorf("allocation has unknown status %q", current)
	}
	if current == target {
		if s.options.StrictTransitions {
			return false, decidedConflict(current)
		}
		return false, nil
	}
	if s.options.AllowRedecision {
		return true, nil
	}
	return false, decidedConflict(current)
}

func decidedConflict(current models.AllocationStatus) error {
	if current == models.AllocationStatusApproved {
		return apperrors.ErrAllocationApproved
	}
	return apperrors.ErrAllocationRejected
}

func (s *AllocationService) ensureUserExists(ctx context.Context, field string, id uuid.UUID) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidationError(field, "referenced user does not exist")
		}
		return fmt.Errorf("failed to verify user: %w", err)
	}
	return nil
}

func checkIdentityUnchanged(allocation *models.Allocation, req *UpdateAllocationRequest) error {
	refs := []struct {
		field  string
		value  *string
		stored uuid.UUID
	}{
		{"allocatedBy", req.AllocatedBy, allocation.AllocatedByID},
		{"allocatedTo", req.AllocatedTo, allocation.AllocatedToID},
		{"asset", req.Asset, allocation.AssetID},
	}
	for _, ref := range refs {
		if ref.value == nil {
			continue
		}
		id, err := uuid.Parse(strings.TrimSpace(*ref.value))
		if err != nil || id != ref.stored {
			return apperrors.NewValidationError(ref.field, "cannot be changed after creation")
		}
	}
	if req.AllocationType != nil && models.AllocationType(strings.TrimSpace(*req.AllocationType)) != allocation.AllocationType {
		return apperrors.NewValidationError("allocationType", "cannot be changed after creation")
	}
	return nil
}

func validateDuration(d *DurationRequest) error {
	if d == nil || d.StartTime == nil || d.EndTime == nil {
		return nil
	}
	if d.EndTime.Before(*d.StartTime) {
		return apperrors.ErrInvalidTimeRange
	}
	return nil
}

func translateAllocationErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrAllocationNotFound
	}
	return fmt.Errorf("allocation store: %w", err)
}
