package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"deskswap/internal/model"
)

// AllocationRepository defines allocation persistence operations.
type AllocationRepository interface {
	Create(ctx context.Context, alloc *model.Allocation) error
	FindByID(ctx context.Context, id uint) (*model.Allocation, error)
	// FindByUserAndDateForUpdate re-resolves the allocation held by a user on
	// a date, taking a row-level lock. Used by swap acceptance.
	FindByUserAndDateForUpdate(ctx context.Context, userID uint, date model.Date) (*model.Allocation, error)
	// UpdateOwner reassigns the user reference of an allocation row.
	UpdateOwner(ctx context.Context, id uint, userID uint) error
	ListWithRelations(ctx context.Context) ([]model.Allocation, error)
}

type allocationRepository struct {
	db *gorm.DB
}

// NewAllocationRepository builds a GORM-backed repository.
func NewAllocationRepository(db *gorm.DB) AllocationRepository {
	return &allocationRepository{db: db}
}

func (r *allocationRepository) Create(ctx context.Context, alloc *model.Allocation) error {
	return r.db.WithContext(ctx).Create(alloc).Error
}

func (r *allocationRepository) FindByID(ctx context.Context, id uint) (*model.Allocation, error) {
	var alloc model.Allocation
	if err := r.db.WithContext(ctx).First(&alloc, id).Error; err != nil {
		return nil, err
	}
	return &alloc, nil
}

func (r *allocationRepository) FindByUserAndDateForUpdate(ctx context.Context, userID uint, date model.Date) (*model.Allocation, error) {
	var alloc model.Allocation
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND date = ?", userID, date).
		First(&alloc).Error; err != nil {
		return nil, err
	}
	return &alloc, nil
}

func (r *allocationRepository) UpdateOwner(ctx context.Context, id uint, userID uint) error {
	return r.db.WithContext(ctx).Model(&model.Allocation{}).
		Where("id = ?", id).
		Update("user_id", userID).Error
}

// ListWithRelations returns every allocation with its user and workstation
// preloaded, for the roster board.
func (r *allocationRepository) ListWithRelations(ctx context.Context) ([]model.Allocation, error) {
	var allocs []model.Allocation
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Workstation").
		Order("date, workstation_id").
		Find(&allocs).Error; err != nil {
		return nil, err
	}
	return allocs, nil
}
