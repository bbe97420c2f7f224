package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AllocationServiceInterface defines the interface for the allocation workflow
type AllocationServiceInterface interface {
	CreateAllocation(ctx context.Context, req *CreateAllocationRequest) (*AllocationResponse, error)
	GetAllocationByID(ctx context.Context, id uuid.UUID) (*AllocationResponse, error)
	GetAllAllocations(ctx context.Context) ([]AllocationResponse, error)
	GetAllocationsByUser(ctx context.Context, userID uuid.UUID) ([]AllocationResponse, error)
	GetAllocationsByAsset(ctx context.Context, assetID uuid.UUID) ([]AllocationResponse, error)
	UpdateAllocation(ctx context.Context, id uuid.UUID, req *UpdateAllocationRequest) (*AllocationResponse, error)
	ApproveAllocation(ctx context.Context, id uuid.UUID, actingUserID *uuid.UUID) (*AllocationResponse, error)
	RejectAllocation(ctx context.Context, id uuid.UUID, reason string, actingUserID *uuid.UUID) (*AllocationResponse, error)
}

// AssetServiceInterface defines the interface for asset service
type AssetServiceInterface interface {
	CreateAsset(ctx context.Context, req *CreateAssetRequest) (*AssetResponse, error)
	GetAssetByID(ctx context.Context, id uuid.UUID) (*AssetResponse, error)
	GetAllAssets(ctx context.Context) ([]AssetResponse, error)
	UpdateAsset(ctx context.Context, id uuid.UUID, req *UpdateAssetRequest) (*AssetResponse, error)
}

// UserServiceInterface defines the interface for the user directory
type UserServiceInterface interface {
	CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*UserResponse, error)
	GetAllUsers(ctx context.Context) ([]UserResponse, error)
}
