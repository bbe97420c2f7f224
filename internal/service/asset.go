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

// AssetService provides asset-related business logic.
// The owner of an asset is only ever changed by allocation approval.
type AssetService struct {
	assetRepo repository.AssetRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	resolver  *referenceResolver
	validator *validator.Validate
}

// Ensure AssetService implements AssetServiceInterface
var _ AssetServiceInterface = (*AssetService)(nil)

// NewAssetService creates a new AssetService
func NewAssetService(assetRepo repository.AssetRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *AssetService {
	return &AssetService{
		assetRepo: assetRepo,
		userRepo:  userRepo,
		resolver:  newReferenceResolver(userRepo, assetRepo),
		validator: validator,
	}
}

// CreateAssetRequest represents the payload for registering an asset
type CreateAssetRequest struct {
	Name             string     `json:"name" validate:"max=200"`
	SerialNo         string     `json:"serialNo" validate:"required,max=120"`
	Warranty         *time.Time `json:"warranty" validate:"required"`
	InvoiceAvailable *bool      `json:"invoiceAvailable" validate:"required"`
	InvoiceURL       string     `json:"invoiceUrl,omitempty" validate:"omitempty,url,max=1000"`
	PhotoURL         string     `json:"photoUrl,omitempty" validate:"omitempty,url,max=1000"`
	Purchaser        string     `json:"purchaser" validate:"required,uuid"`
	Owner            string     `json:"owner,omitempty" validate:"omitempty,uuid"`
	DeviceType       string     `json:"deviceType,omitempty" validate:"max=100"`
	Availability     string     `json:"availability,omitempty" validate:"max=100"`
	PurchasedOn      *time.Time `json:"purchasedOn,omitempty"`
}

// UpdateAssetRequest represents an edit of an asset's descriptive fields.
// Purchaser and owner may be echoed back but must match the stored values.
type UpdateAssetRequest struct {
	Name             *string    `json:"name,omitempty" validate:"omitempty,max=200"`
	SerialNo         *string    `json:"serialNo,omitempty" validate:"omitempty,min=1,max=120"`
	Warranty         *time.Time `json:"warranty,omitempty"`
	InvoiceAvailable *bool      `json:"invoiceAvailable,omitempty"`
	InvoiceURL       *string    `json:"invoiceUrl,omitempty" validate:"omitempty,max=1000"`
	PhotoURL         *string    `json:"photoUrl,omitempty" validate:"omitempty,max=1000"`
	Purchaser        *string    `json:"purchaser,omitempty"`
	Owner            *string    `json:"owner,omitempty"`
	DeviceType       *string    `json:"deviceType,omitempty" validate:"omitempty,max=100"`
	Availability     *string    `json:"availability,omitempty" validate:"omitempty,max=100"`
	PurchasedOn      *time.Time `json:"purchasedOn,omitempty"`
}

// CreateAsset registers an asset. Owner defaults to the purchaser.
func (s *AssetService) CreateAsset(ctx context.Context, req *CreateAssetRequest) (*AssetResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	purchaserID, err := parseReference("purchaser", req.Purchaser)
	if err != nil {
		return nil, err
	}
	ownerID := purchaserID
	if strings.TrimSpace(req.Owner) != "" {
		if ownerID, err = parseReference("owner", req.Owner); err != nil {
			return nil, err
		}
	}

	if err := s.ensureUserExists(ctx, "purchaser", purchaserID); err != nil {
		return nil, err
	}
	if ownerID != purchaserID {
		if err := s.ensureUserExists(ctx, "owner", ownerID); err != nil {
			return nil, err
		}
	}

	asset := &models.Asset{
		Name:             req.Name,
		SerialNo:         strings.TrimSpace(req.SerialNo),
		Warranty:         *req.Warranty,
		InvoiceAvailable: *req.InvoiceAvailable,
		InvoiceURL:       req.InvoiceURL,
		PhotoURL:         req.PhotoURL,
		PurchaserID:      purchaserID,
		OwnerID:          ownerID,
		DeviceType:       req.DeviceType,
		Availability:     req.Availability,
		PurchasedOn:      req.PurchasedOn,
	}

	if err := s.assetRepo.Create(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	logger.WithContext(ctx).WithField("asset_id", asset.ID).Infof("Asset registered")

	return s.resolver.resolveAsset(ctx, asset)
}

// GetAssetByID retrieves an asset with purchaser and owner resolved
func (s *AssetService) GetAssetByID(ctx context.Context, id uuid.UUID) (*AssetResponse, error) {
	asset, err := s.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateAssetErr(err)
	}
	return s.resolver.resolveAsset(ctx, asset)
}

// GetAllAssets lists all assets
func (s *AssetService) GetAllAssets(ctx context.Context) ([]AssetResponse, error) {
	assets, err := s.assetRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return s.resolver.resolveAssets(ctx, assets)
}

// UpdateAsset edits an asset's descriptive fields
func (s *AssetService) UpdateAsset(ctx context.Context, id uuid.UUID, req *UpdateAssetRequest) (*AssetResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	asset, err := s.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateAssetErr(err)
	}

	if req.Purchaser != nil && !sameReference(*req.Purchaser, asset.PurchaserID) {
		return nil, apperrors.NewValidationError("purchaser", "cannot be changed after creation")
	}
	if req.Owner != nil && !sameReference(*req.Owner, asset.OwnerID) {
		return nil, apperrors.NewValidationError("owner", "changes only through an approved Owner allocation")
	}

	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.SerialNo != nil {
		asset.SerialNo = strings.TrimSpace(*req.SerialNo)
	}
	if req.Warranty != nil {
		asset.Warranty = *req.Warranty
	}
	if req.InvoiceAvailable != nil {
		asset.InvoiceAvailable = *req.InvoiceAvailable
	}
	if req.InvoiceURL != nil {
		asset.InvoiceURL = *req.InvoiceURL
	}
	if req.PhotoURL != nil {
		asset.PhotoURL = *req.PhotoURL
	}
	if req.DeviceType != nil {
		asset.DeviceType = *req.DeviceType
	}
	if req.Availability != nil {
		asset.Availability = *req.Availability
	}
	if req.PurchasedOn != nil {
		asset.PurchasedOn = req.PurchasedOn
	}

	if err := s.assetRepo.UpdateDetails(ctx, asset); err != nil {
		return nil, translateAssetErr(err)
	}

	return s.resolver.resolveAsset(ctx, asset)
}

func (s *AssetService) ensureUserExists(ctx context.Context, field string, id uuid.UUID) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidationError(field, "referenced user does not exist")
		}
		return fmt.Errorf("failed to verify user: %w", err)
	}
	return nil
}

func sameReference(value string, stored uuid.UUID) bool {
	id, err := uuid.Parse(strings.TrimSpace(value))
	return err == nil && id == stored
}

func translateAssetErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrAssetNotFound
	}
	return fmt.Errorf("asset store: %w", err)
}
