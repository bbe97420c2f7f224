package repository

import (
	"context"

	"asset-allocation-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// AssetRepositoryInterface defines the interface for asset repository operations
type AssetRepositoryInterface interface {
	Create(ctx context.Context, asset *models.Asset) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Asset, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Asset, error)
	GetAll(ctx context.Context) ([]models.Asset, error)
	UpdateDetails(ctx context.Context, asset *models.Asset) error
	// TransferOwnership sets owner_id to newOwnerID in one conditional statement.
	// It reports false without writing when the asset is already owned by newOwnerID.
	TransferOwnership(ctx context.Context, assetID, newOwnerID uuid.UUID) (bool, error)
}

// AllocationRepositoryInterface defines the interface for allocation repository operations
type AllocationRepositoryInterface interface {
	Create(ctx context.Context, allocation *models.Allocation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Allocation, error)
	// GetByIDForUpdate row-locks the allocation until the surrounding transaction ends
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Allocation, error)
	GetAll(ctx context.Context) ([]models.Allocation, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]models.Allocation, error)
	GetByAsset(ctx context.Context, assetID uuid.UUID) ([]models.Allocation, error)
	UpdateDetails(ctx context.Context, allocation *models.Allocation) error
	UpdateStatus(ctx context.Context, allocation *models.Allocation) error
}

// TransactionManagerInterface runs a unit of work against transaction-bound stores
type TransactionManagerInterface interface {
	WithinTransaction(ctx context.Context, fn func(stores *Stores) error) error
}
