package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"asset-allocation-backend/internal/database/models"

	"github.com/google/uuid"
)

var sequence int64

func nextSeq() int64 {
	return atomic.AddInt64(&sequence, 1)
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique email
func (f *UserFactory) Create() *models.User {
	n := nextSeq()
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      fmt.Sprintf("Test User %d", n),
		Email:     fmt.Sprintf("user%d@example.com", n),
		Role:      models.UserRoleEmployee,
	}
}

// WithRole creates a test User holding role
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithEmail creates a test User with a custom email
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// AssetFactory provides methods to create test Asset data
type AssetFactory struct{}

// NewAssetFactory creates a new AssetFactory
func NewAssetFactory() *AssetFactory {
	return &AssetFactory{}
}

// Create creates a test Asset purchased and owned by purchaserID
func (f *AssetFactory) Create(purchaserID uuid.UUID) *models.Asset {
	n := nextSeq()
	return &models.Asset{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		Name:             fmt.Sprintf("Test Laptop %d", n),
		SerialNo:         fmt.Sprintf("SN-%06d", n),
		Warranty:         time.Now().AddDate(2, 0, 0).UTC().Truncate(time.Second),
		InvoiceAvailable: true,
		PurchaserID:      purchaserID,
		OwnerID:          purchaserID,
		DeviceType:       "laptop",
	}
}

// WithOwner creates a test Asset whose owner differs from its purchaser
func (f *AssetFactory) WithOwner(purchaserID, ownerID uuid.UUID) *models.Asset {
	asset := f.Create(purchaserID)
	asset.OwnerID = ownerID
	return asset
}

// AllocationFactory provides methods to create test Allocation data
type AllocationFactory struct{}

// NewAllocationFactory creates a new AllocationFactory
func NewAllocationFactory() *AllocationFactory {
	return &AllocationFactory{}
}

// Create creates a pending Owner allocation of assetID from byID to toID
func (f *AllocationFactory) Create(byID, toID, assetID uuid.UUID) *models.Allocation {
	return &models.Allocation{
		BaseModel:            models.BaseModel{ID: uuid.New()},
		AllocatedByID:        byID,
		AllocatedToID:        toID,
		AssetID:              assetID,
		AllocationType:       models.AllocationTypeOwner,
		Purpose:              "test allocation",
		Status:               models.AllocationStatusPending,
		AllocatedRequestDate: time.Now().UTC(),
	}
}

// WithType creates a pending allocation of the given type
func (f *AllocationFactory) WithType(byID, toID, assetID uuid.UUID, allocationType models.AllocationType) *models.Allocation {
	allocation := f.Create(byID, toID, assetID)
	allocation.AllocationType = allocationType
	return allocation
}

// RequestedAt creates a pending allocation with a fixed request date
func (f *AllocationFactory) RequestedAt(byID, toID, assetID uuid.UUID, at time.Time) *models.Allocation {
	allocation := f.Create(byID, toID, assetID)
	allocation.AllocatedRequestDate = at
	return allocation
}

// FactorySet contains all factories for easy access
type FactorySet struct {
	User       *UserFactory
	Asset      *AssetFactory
	Allocation *AllocationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:       NewUserFactory(),
		Asset:      NewAssetFactory(),
		Allocation: NewAllocationFactory(),
	}
}
