package repository

import (
	"context"

	"gorm.io/gorm"

	"deskswap/internal/model"
)

// WorkstationRepository defines workstation persistence operations.
type WorkstationRepository interface {
	Create(ctx context.Context, ws *model.Workstation) error
	FindByID(ctx context.Context, id uint) (*model.Workstation, error)
	FindByNumber(ctx context.Context, number int) (*model.Workstation, error)
	List(ctx context.Context) ([]model.Workstation, error)
}

type workstationRepository struct {
	db *gorm.DB
}

// NewWorkstationRepository builds a GORM-backed repository.
func NewWorkstationRepository(db *gorm.DB) WorkstationRepository {
	return &workstationRepository{db: db}
}

func (r *workstationRepository) Create(ctx context.Context, ws *model.Workstation) error {
	return r.db.WithContext(ctx).Create(ws).Error
}

func (r *workstationRepository) FindByID(ctx context.Context, id uint) (*model.Workstation, error) {
	var ws model.Workstation
	if err := r.db.WithContext(ctx).First(&ws, id).Error; err != nil {
		return nil, err
	}
	return &ws, nil
}

func (r *workstationRepository) FindByNumber(ctx context.Context, number int) (*model.Workstation, error) {
	var ws model.Workstation
	if err := r.db.WithContext(ctx).Where("number = ?", number).First(&ws).Error; err != nil {
		return nil, err
	}
	return &ws, nil
}

func (r *workstationRepository) List(ctx context.Context) ([]model.Workstation, error) {
	var stations []model.Workstation
	if err := r.db.WithContext(ctx).Order("number").Find(&stations).Error; err != nil {
		return nil, err
	}
	return stations, nil
}
