package service

import (
	"context"
	"fmt"
	"time"

	"asset-allocation-backend/internal/database/models"
	"asset-allocation-backend/internal/repository"

	"github.com/google/uuid"
)

// UserSummary is the embedded view of a referenced user
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// AssetResponse represents an asset with its purchaser and owner resolved
type AssetResponse struct {
	ID               string       `json:"id"`
	Name             string       `json:"name,omitempty"`
	SerialNo         string       `json:"serialNo,omitempty"`
	Warranty         *time.Time   `json:"warranty,omitempty"`
	InvoiceAvailable bool         `json:"invoiceAvailable"`
	InvoiceURL       string       `json:"invoiceUrl,omitempty"`
	PhotoURL         string       `json:"photoUrl,omitempty"`
	Purchaser        *UserSummary `json:"purchaser,omitempty"`
	Owner            *UserSummary `json:"owner,omitempty"`
	DeviceType       string       `json:"deviceType,omitempty"`
	Availability     string       `json:"availability,omitempty"`
	PurchasedOn      *time.Time   `json:"purchasedOn,omitempty"`
	CreatedAt        *time.Time   `json:"createdAt,omitempty"`
	UpdatedAt        *time.Time   `json:"updatedAt,omitempty"`
}

// DurationResponse is the custody window of an allocation
type DurationResponse struct {
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
}

// AllocationResponse represents an allocation with its users and asset resolved
type AllocationResponse struct {
	ID                   string                  `json:"id"`
	AllocatedBy          UserSummary             `json:"allocatedBy"`
	AllocatedTo          UserSummary             `json:"allocatedTo"`
	Asset                AssetResponse           `json:"asset"`
	AllocationType       string                  `json:"allocationType"`
	Purpose              string                  `json:"purpose,omitempty"`
	Duration             *DurationResponse       `json:"duration,omitempty"`
	RequestStatus        *bool                   `json:"requestStatus"`
	Status               models.AllocationStatus `json:"status"`
	AllocationStatusDate *time.Time              `json:"allocationStatusDate,omitempty"`
	RejectionReason      string                  `json:"rejectionReason,omitempty"`
	ApprovedBy           *UserSummary            `json:"approvedBy,omitempty"`
	RejectedBy           *UserSummary            `json:"rejectedBy,omitempty"`
	AllocatedRequestDate time.Time               `json:"allocatedRequestDate"`
	CreatedAt            time.Time               `json:"createdAt"`
	UpdatedAt            time.Time               `json:"updatedAt"`
}

// referenceResolver builds response views by batch-loading the users and assets
// that a set of records point at. A reference whose target is gone is rendered
// with its id only.
type referenceResolver struct {
	users  repository.UserRepositoryInterface
	assets repository.AssetRepositoryInterface
}

func newReferenceResolver(users repository.UserRepositoryInterface, assets repository.AssetRepositoryInterface) *referenceResolver {
	return &referenceResolver{users: users, assets: assets}
}

// idSet collects ids in first-appearance order without duplicates
type idSet struct {
	seen map[uuid.UUID]struct{}
	ids  []uuid.UUID
}

func newIDSet() *idSet {
	return &idSet{seen: make(map[uuid.UUID]struct{})}
}

func (s *idSet) add(id uuid.UUID) {
	if id == uuid.Nil {
		return
	}
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
}

func (s *idSet) addPtr(id *uuid.UUID) {
	if id != nil {
		s.add(*id)
	}
}

func (r *referenceResolver) loadUsers(ctx context.Context, ids *idSet) (map[uuid.UUID]models.User, error) {
	byID := make(map[uuid.UUID]models.User, len(ids.ids))
	if len(ids.ids) == 0 {
		return byID, nil
	}
	users, err := r.users.GetByIDs(ctx, ids.ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}

func (r *referenceResolver) loadAssets(ctx context.Context, ids *idSet) (map[uuid.UUID]models.Asset, error) {
	byID := make(map[uuid.UUID]models.Asset, len(ids.ids))
	if len(ids.ids) == 0 {
		return byID, nil
	}
	assets, err := r.assets.GetByIDs(ctx, ids.ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load assets: %w", err)
	}
	for _, a := range assets {
		byID[a.ID] = a
	}
	return byID, nil
}

// resolveAllocations renders allocations in their given order
func (r *referenceResolver) resolveAllocations(ctx context.Context, allocations []models.Allocation) ([]AllocationResponse, error) {
	assetIDs := newIDSet()
	for i := range allocations {
		assetIDs.add(allocations[i].AssetID)
	}
	assets, err := r.loadAssets(ctx, assetIDs)
	if err != nil {
		return nil, err
	}

	userIDs := newIDSet()
	for i := range allocations {
		a := &allocations[i]
		userIDs.add(a.AllocatedByID)
		userIDs.add(a.AllocatedToID)
		userIDs.addPtr(a.ApprovedByID)
		userIDs.addPtr(a.RejectedByID)
		if asset, ok := assets[a.AssetID]; ok {
			userIDs.add(asset.PurchaserID)
			userIDs.add(asset.OwnerID)
		}
	}
	users, err := r.loadUsers(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]AllocationResponse, 0, len(allocations))
	for i := range allocations {
		responses = append(responses, toAllocationResponse(&allocations[i], assets, users))
	}
	return responses, nil
}

func (r *referenceResolver) resolveAllocation(ctx context.Context, allocation *models.Allocation) (*AllocationResponse, error) {
	responses, err := r.resolveAllocations(ctx, []models.Allocation{*allocation})
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

// resolveAssets renders assets in their given order
func (r *referenceResolver) resolveAssets(ctx context.Context, assets []models.Asset) ([]AssetResponse, error) {
	userIDs := newIDSet()
	for i := range assets {
		userIDs.add(assets[i].PurchaserID)
		userIDs.add(assets[i].OwnerID)
	}
	users, err := r.loadUsers(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]AssetResponse, 0, len(assets))
	for i := range assets {
		responses = append(responses, toAssetResponse(&assets[i], users))
	}
	return responses, nil
}

func (r *referenceResolver) resolveAsset(ctx context.Context, asset *models.Asset) (*AssetResponse, error) {
	responses, err := r.resolveAssets(ctx, []models.Asset{*asset})
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

func toUserSummary(id uuid.UUID, users map[uuid.UUID]models.User) UserSummary {
	u, ok := users[id]
	if !ok {
		return UserSummary{ID: id.String()}
	}
	return UserSummary{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}

func toUserSummaryPtr(id *uuid.UUID, users map[uuid.UUID]models.User) *UserSummary {
	if id == nil {
		return nil
	}
	s := toUserSummary(*id, users)
	return &s
}

func toAssetResponse(asset *models.Asset, users map[uuid.UUID]models.User) AssetResponse {
	purchaser := toUserSummary(asset.PurchaserID, users)
	owner := toUserSummary(asset.OwnerID, users)
	warranty := asset.Warranty
	createdAt := asset.CreatedAt
	updatedAt := asset.UpdatedAt
	return AssetResponse{
		ID:               asset.ID.String(),
		Name:             asset.Name,
		SerialNo:         asset.SerialNo,
		Warranty:         &warranty,
		InvoiceAvailable: asset.InvoiceAvailable,
		InvoiceURL:       asset.InvoiceURL,
		PhotoURL:         asset.PhotoURL,
		Purchaser:        &purchaser,
		Owner:            &owner,
		DeviceType:       asset.DeviceType,
		Availability:     asset.Availability,
		PurchasedOn:      asset.PurchasedOn,
		CreatedAt:        &createdAt,
		UpdatedAt:        &updatedAt,
	}
}

func toAllocationResponse(a *models.Allocation, assets map[uuid.UUID]models.Asset, users map[uuid.UUID]models.User) AllocationResponse {
	assetView := AssetResponse{ID: a.AssetID.String()}
	if asset, ok := assets[a.AssetID]; ok {
		assetView = toAssetResponse(&asset, users)
	}

	var duration *DurationResponse
	if a.Duration.StartTime != nil || a.Duration.EndTime != nil {
		duration = &DurationResponse{StartTime: a.Duration.StartTime, EndTime: a.Duration.EndTime}
	}

	return AllocationResponse{
		ID:                   a.ID.String(),
		AllocatedBy:          toUserSummary(a.AllocatedByID, users),
		AllocatedTo:          toUserSummary(a.AllocatedToID, users),
		Asset:                assetView,
		AllocationType:       string(a.AllocationType),
		Purpose:              a.Purpose,
		Duration:             duration,
		RequestStatus:        a.Status.RequestStatus(),
		Status:               a.Status,
		AllocationStatusDate: a.AllocationStatusDate,
		RejectionReason:      a.RejectionReason,
		ApprovedBy:           toUserSummaryPtr(a.ApprovedByID, users),
		RejectedBy:           toUserSummaryPtr(a.RejectedByID, users),
		AllocatedRequestDate: a.AllocatedRequestDate,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}
