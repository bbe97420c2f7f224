package service

import (
	"context"
	"errors"
	"fmt"

	"asset-allocation-backend/internal/database/models"
	apperrors "asset-allocation-backend/internal/errors"
	"asset-allocation-backend/internal/logger"
	"asset-allocation-backend/internal/repository"

	"gorm.io/gorm"
)

// OwnershipEnforcer keeps an asset's recorded owner in line with its approved Owner allocations
type OwnershipEnforcer struct{}

// NewOwnershipEnforcer creates a new OwnershipEnforcer
func NewOwnershipEnforcer() *OwnershipEnforcer {
	return &OwnershipEnforcer{}
}

// Enforce moves the asset owner to the allocatee of an approved Owner allocation.
// assets must be bound to the same transaction that wrote the allocation status.
// It reports whether the owner column changed.
func (e *OwnershipEnforcer) Enforce(ctx context.Context, assets repository.AssetRepositoryInterface, allocation *models.Allocation) (bool, error) {
	if allocation == nil || !allocation.AllocationType.TransfersOwnership() {
		return false, nil
	}
	if allocation.Status != models.AllocationStatusApproved {
		return false, nil
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"allocation_id": allocation.ID,
		"asset_id":      allocation.AssetID,
		"new_owner_id":  allocation.AllocatedToID,
	})

	changed, err := assets.TransferOwnership(ctx, allocation.AssetID, allocation.AllocatedToID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warnf("Asset referenced by approved allocation does not exist")
			return false, apperrors.ErrAssetNotFound
		}
		log.Errorf("Failed to transfer asset ownership: %v", err)
		return false, fmt.Errorf("failed to transfer asset ownership: %w", err)
	}

	if changed {
		log.Infof("Asset ownership transferred")
	} else {
		log.Debugf("Asset already owned by allocatee")
	}
	return changed, nil
}
