package service_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"asset-allocation-backend/internal/database/models"
	"asset-allocation-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memStore is an in-memory stand-in for the Postgres stores. Transactions are
// serialized and roll back to a snapshot when the unit of work fails.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	users       map[uuid.UUID]models.User
	assets      map[uuid.UUID]models.Asset
	allocations map[uuid.UUID]models.Allocation

	transferErr error
	transfers   int
}

func newMemStore() *memStore {
	return &memStore{
		users:       make(map[uuid.UUID]models.User),
		assets:      make(map[uuid.UUID]models.Asset),
		allocations: make(map[uuid.UUID]models.Allocation),
	}
}

func (s *memStore) addUser(name string) models.User {
	u := models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Name: name, Email: name + "@example.com", Role: models.UserRoleEmployee}
	s.mu.Lock()
	s.users[u.ID] = u
	s.mu.Unlock()
	return u
}

func (s *memStore) addAsset(serial string, owner uuid.UUID) models.Asset {
	a := models.Asset{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		Name:             "Laptop " + serial,
		SerialNo:         serial,
		Warranty:         time.Date(2028, 1, 1, 0, 0, 0, 0, time.UTC),
		InvoiceAvailable: true,
		PurchaserID:      owner,
		OwnerID:          owner,
	}
	s.mu.Lock()
	s.assets[a.ID] = a
	s.mu.Unlock()
	return a
}

func (s *memStore) ownerOf(assetID uuid.UUID) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assets[assetID].OwnerID
}

func (s *memStore) allocation(id uuid.UUID) models.Allocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allocations[id]
}

func (s *memStore) userRepo() *memUserRepo             { return &memUserRepo{s} }
func (s *memStore) assetRepo() *memAssetRepo           { return &memAssetRepo{s} }
func (s *memStore) allocationRepo() *memAllocationRepo { return &memAllocationRepo{s} }
func (s *memStore) txManager() *memTxManager           { return &memTxManager{s} }

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *memUserRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.User
	for _, id := range ids {
		if u, ok := r.s.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memUserRepo) Update(ctx context.Context, user *models.User) error {
	return r.Create(ctx, user)
}

type memAssetRepo struct{ s *memStore }

func (r *memAssetRepo) Create(ctx context.Context, asset *models.Asset) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if asset.ID == uuid.Nil {
		asset.ID = uuid.New()
	}
	r.s.assets[asset.ID] = *asset
	return nil
}

func (r *memAssetRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Asset, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.assets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (r *memAssetRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Asset, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Asset
	for _, id := range ids {
		if a, ok := r.s.assets[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAssetRepo) GetAll(ctx context.Context) ([]models.Asset, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.Asset, 0, len(r.s.assets))
	for _, a := range r.s.assets {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memAssetRepo) UpdateDetails(ctx context.Context, asset *models.Asset) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.assets[asset.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	owner, purchaser := stored.OwnerID, stored.PurchaserID
	stored = *asset
	stored.OwnerID, stored.PurchaserID = owner, purchaser
	r.s.assets[asset.ID] = stored
	return nil
}

func (r *memAssetRepo) TransferOwnership(ctx context.Context, assetID, newOwnerID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.transferErr != nil {
		return false, r.s.transferErr
	}
	a, ok := r.s.assets[assetID]
	if !ok {
		return false, gorm.ErrRecordNotFound
	}
	if a.OwnerID == newOwnerID {
		return false, nil
	}
	a.OwnerID = newOwnerID
	r.s.assets[assetID] = a
	r.s.transfers++
	return true, nil
}

type memAllocationRepo struct{ s *memStore }

func (r *memAllocationRepo) Create(ctx context.Context, allocation *models.Allocation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if allocation.ID == uuid.Nil {
		allocation.ID = uuid.New()
	}
	r.s.allocations[allocation.ID] = *allocation
	return nil
}

func (r *memAllocationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Allocation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.allocations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (r *memAllocationRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Allocation, error) {
	return r.GetByID(ctx, id)
}

func (r *memAllocationRepo) filter(keep func(models.Allocation) bool) []models.Allocation {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Allocation
	for _, a := range r.s.allocations {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AllocatedRequestDate.After(out[j].AllocatedRequestDate) })
	return out
}

func (r *memAllocationRepo) GetAll(ctx context.Context) ([]models.Allocation, error) {
	return r.filter(func(models.Allocation) bool { return true }), nil
}

func (r *memAllocationRepo) GetByUser(ctx context.Context, userID uuid.UUID) ([]models.Allocation, error) {
	return r.filter(func(a models.Allocation) bool {
		return a.AllocatedToID == userID || a.AllocatedByID == userID
	}), nil
}

func (r *memAllocationRepo) GetByAsset(ctx context.Context, assetID uuid.UUID) ([]models.Allocation, error) {
	return r.filter(func(a models.Allocation) bool { return a.AssetID == assetID }), nil
}

func (r *memAllocationRepo) UpdateDetails(ctx context.Context, allocation *models.Allocation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.allocations[allocation.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Purpose = allocation.Purpose
	stored.Duration = allocation.Duration
	r.s.allocations[allocation.ID] = stored
	return nil
}

func (r *memAllocationRepo) UpdateStatus(ctx context.Context, allocation *models.Allocation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.allocations[allocation.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Status = allocation.Status
	stored.RequestStatus = allocation.Status.RequestStatus()
	stored.AllocationStatusDate = allocation.AllocationStatusDate
	stored.RejectionReason = allocation.RejectionReason
	stored.ApprovedByID = allocation.ApprovedByID
	stored.RejectedByID = allocation.RejectedByID
	r.s.allocations[allocation.ID] = stored
	return nil
}

type memTxManager struct{ s *memStore }

var errOwnerWrite = errors.New("owner write failed")

func (m *memTxManager) WithinTransaction(ctx context.Context, fn func(stores *repository.Stores) error) error {
	m.s.txMu.Lock()
	defer m.s.txMu.Unlock()

	m.s.mu.Lock()
	assets := make(map[uuid.UUID]models.Asset, len(m.s.assets))
	for k, v := range m.s.assets {
		assets[k] = v
	}
	allocations := make(map[uuid.UUID]models.Allocation, len(m.s.allocations))
	for k, v := range m.s.allocations {
		allocations[k] = v
	}
	m.s.mu.Unlock()

	err := fn(&repository.Stores{
		Allocations: m.s.allocationRepo(),
		Assets:      m.s.assetRepo(),
	})
	if err != nil {
		m.s.mu.Lock()
		m.s.assets = assets
		m.s.allocations = allocations
		m.s.mu.Unlock()
	}
	return err
}
