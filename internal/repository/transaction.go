package repository

import (
	"context"

	"gorm.io/gorm"
)

// Stores groups the stores a unit of work may touch, all bound to one transaction
type Stores struct {
	Allocations AllocationRepositoryInterface
	Assets      AssetRepositoryInterface
}

// TransactionManager runs functions inside a database transaction
type TransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// WithinTransaction commits when fn returns nil and rolls back otherwise
func (m *TransactionManager) WithinTransaction(ctx context.Context, fn func(stores *Stores) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Stores{
			Allocations: NewAllocationRepository(tx),
			Assets:      NewAssetRepository(tx),
		})
	})
}
