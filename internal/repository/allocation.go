package repository

import (
	"context"

	"asset-allocation-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AllocationRepository handles database operations for allocations
type AllocationRepository struct {
	db *gorm.DB
}

// NewAllocationRepository creates a new allocation repository
func NewAllocationRepository(db *gorm.DB) *AllocationRepository {
	return &AllocationRepository{db: db}
}

// Create creates a new allocation
func (r *AllocationRepository) Create(ctx context.Context, allocation *models.Allocation) error {
	return r.db.WithContext(ctx).Create(allocation).Error
}

// GetByID retrieves an allocation by ID
func (r *AllocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Allocation, error) {
	var allocation models.Allocation
	err := r.db.WithContext(ctx).First(&allocation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &allocation, nil
}

// GetByIDForUpdate retrieves an allocation with SELECT ... FOR UPDATE.
// Only meaningful inside a transaction.
func (r *AllocationRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Allocation, error) {
	var allocation models.Allocation
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&allocation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &allocation, nil
}

// GetAll retrieves all allocations, newest request first
func (r *AllocationRepository) GetAll(ctx context.Context) ([]models.Allocation, error) {
	var allocations []models.Allocation
	err := r.db.WithContext(ctx).Order("allocated_request_date DESC").Find(&allocations).Error
	return allocations, err
}

// GetByUser retrieves allocations where the user is either the allocatee or the requester
func (r *AllocationRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]models.Allocation, error) {
	var allocations []models.Allocation
	err := r.db.WithContext(ctx).
		Where("allocated_to_id = ? OR allocated_by_id = ?", userID, userID).
		Order("allocated_request_date DESC").
		Find(&allocations).Error
	return allocations, err
}

// GetByAsset retrieves allocations for an asset
func (r *AllocationRepository) GetByAsset(ctx context.Context, assetID uuid.UUID) ([]models.Allocation, error) {
	var allocations []models.Allocation
	err := r.db.WithContext(ctx).
		Where("asset_id = ?", assetID).
		Order("allocated_request_date DESC").
		Find(&allocations).Error
	return allocations, err
}

// UpdateDetails writes the free-form columns of an allocation
func (r *AllocationRepository) UpdateDetails(ctx context.Context, allocation *models.Allocation) error {
	return r.updateColumns(ctx, allocation, models.DetailColumns)
}

// UpdateStatus writes the workflow columns of an allocation
func (r *AllocationRepository) UpdateStatus(ctx context.Context, allocation *models.Allocation) error {
	return r.updateColumns(ctx, allocation, models.StatusColumns)
}

func (r *AllocationRepository) updateColumns(ctx context.Context, allocation *models.Allocation, columns []string) error {
	res := r.db.WithContext(ctx).Model(allocation).Select(columns).Updates(allocation)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
