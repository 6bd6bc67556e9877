package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates the per-entity repositories.
type Repository struct {
	User        UserRepository
	Workstation WorkstationRepository
	Allocation  AllocationRepository
	Swap        SwapRequestRepository

	db *gorm.DB
}

// New creates the repository aggregate.
func New(db *gorm.DB) *Repository {
	return &Repository{
		User:        NewUserRepository(db),
		Workstation: NewWorkstationRepository(db),
		Allocation:  NewAllocationRepository(db),
		Swap:        NewSwapRequestRepository(db),
		db:          db,
	}
}

// TxRunner executes a function within one database transaction, handing it
// transaction-scoped repositories. The transaction commits when fn returns
// nil and rolls back otherwise.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context, tx *Repository) error) error
}

var _ TxRunner = (*Repository)(nil)

// InTx implements TxRunner on the GORM-backed aggregate.
func (r *Repository) InTx(ctx context.Context, fn func(ctx context.Context, tx *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, New(tx))
	})
}
