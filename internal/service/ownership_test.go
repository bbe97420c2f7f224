package service_test

import (
	"context"
	"errors"
	"testing"

	"asset-allocation-backend/internal/database/models"
	apperrors "asset-allocation-backend/internal/errors"
	"asset-allocation-backend/internal/mocks"
	"asset-allocation-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func approvedAllocation(allocationType models.AllocationType) *models.Allocation {
	return &models.Allocation{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		AllocatedToID:  uuid.New(),
		AssetID:        uuid.New(),
		AllocationType: allocationType,
		Status:         models.AllocationStatusApproved,
	}
}

func TestOwnershipEnforcer_Enforce(t *testing.T) {
	ctx := context.Background()
	enforcer := service.NewOwnershipEnforcer()

	t.Run("transfers owner for approved Owner allocation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assets := mocks.NewMockAssetRepositoryInterface(ctrl)
		allocation := approvedAllocation(models.AllocationTypeOwner)
		assets.EXPECT().TransferOwnership(gomock.Any(), allocation.AssetID, allocation.AllocatedToID).Return(true, nil)

		changed, err := enforcer.Enforce(ctx, assets, allocation)

		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("already converged owner is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assets := mocks.NewMockAssetRepositoryInterface(ctrl)
		allocation := approvedAllocation(models.AllocationTypeOwner)
		assets.EXPECT().TransferOwnership(gomock.Any(), allocation.AssetID, allocation.AllocatedToID).Return(false, nil)

		changed, err := enforcer.Enforce(ctx, assets, allocation)

		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("non-owning allocation never writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assets := mocks.NewMockAssetRepositoryInterface(ctrl)

		changed, err := enforcer.Enforce(ctx, assets, approvedAllocation(models.AllocationTypeTemporary))

		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("pending allocation never writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assets := mocks.NewMockAssetRepositoryInterface(ctrl)
		allocation := approvedAllocation(models.AllocationTypeOwner)
		allocation.Status = models.AllocationStatusPending

		changed, err := enforcer.Enforce(ctx, assets, allocation)

		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("missing asset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assets := mocks.NewMockAssetRepositoryInterface(ctrl)
		allocation := approvedAllocation(models.AllocationTypeOwner)
		assets.EXPECT().TransferOwnership(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, gorm.ErrRecordNotFound)

		_, err := enforcer.Enforce(ctx, assets, allocation)

		assert.ErrorIs(t, err, apperrors.ErrAssetNotFound)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assets := mocks.NewMockAssetRepositoryInterface(ctrl)
		storeErr := errors.New("could not serialize access")
		assets.EXPECT().TransferOwnership(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, storeErr)

		_, err := enforcer.Enforce(ctx, assets, approvedAllocation(models.AllocationTypeOwner))

		assert.ErrorIs(t, err, storeErr)
		assert.Contains(t, err.Error(), "failed to transfer asset ownership")
	})
}
