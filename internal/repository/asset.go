package repository

import (
	"context"
	"time"

	"asset-allocation-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetRepository handles database operations for assets
type AssetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// Create creates a new asset
func (r *AssetRepository) Create(ctx context.Context, asset *models.Asset) error {
	return r.db.WithContext(ctx).Create(asset).Error
}

// GetByID retrieves an asset by ID
func (r *AssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Asset, error) {
	var asset models.Asset
	err := r.db.WithContext(ctx).First(&asset, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// GetByIDs retrieves all assets whose ID is in ids. Unknown IDs are skipped.
func (r *AssetRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Asset, error) {
	var assets []models.Asset
	if len(ids) == 0 {
		return assets, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&assets).Error
	return assets, err
}

// GetBySerialNo retrieves the first asset registered under serialNo
func (r *AssetRepository) GetBySerialNo(ctx context.Context, serialNo string) (*models.Asset, error) {
	var asset models.Asset
	err := r.db.WithContext(ctx).Where("serial_no = ?", serialNo).Order("created_at ASC").First(&asset).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// GetAll retrieves all assets ordered by name
func (r *AssetRepository) GetAll(ctx context.Context) ([]models.Asset, error) {
	var assets []models.Asset
	err := r.db.WithContext(ctx).Order("name ASC").Order("created_at ASC").Find(&assets).Error
	return assets, err
}

// UpdateDetails writes the descriptive columns of an asset. Owner and purchaser are never written.
func (r *AssetRepository) UpdateDetails(ctx context.Context, asset *models.Asset) error {
	res := r.db.WithContext(ctx).Model(asset).Select(models.AssetDetailColumns).Updates(asset)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// TransferOwnership sets the asset owner with a single conditional UPDATE.
// Concurrent callers serialize on the asset row lock; the last one to commit wins.
func (r *AssetRepository) TransferOwnership(ctx context.Context, assetID, newOwnerID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Asset{}).
		Where("id = ? AND owner_id <> ?", assetID, newOwnerID).
		Updates(map[string]interface{}{
			"owner_id":   newOwnerID,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	// Nothing written: either already converged or the asset is gone
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Asset{}).Where("id = ?", assetID).Count(&count).Error; err != nil {
		return false, err
	}
	if count == 0 {
		return false, gorm.ErrRecordNotFound
	}
	return false, nil
}
