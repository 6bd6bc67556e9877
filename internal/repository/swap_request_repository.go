package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"deskswap/internal/model"
)

// SwapRequestRepository defines swap-request persistence operations.
type SwapRequestRepository interface {
	Create(ctx context.Context, req *model.SwapRequest) error
	FindByID(ctx context.Context, id uint) (*model.SwapRequest, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*model.SwapRequest, error)
	// FindPendingDuplicate looks for a pending request with the identical
	// (requester, target user, requester date, target date) tuple.
	FindPendingDuplicate(ctx context.Context, requesterID, targetUserID uint, requesterDate, targetDate model.Date) (*model.SwapRequest, error)
	ListPendingForTarget(ctx context.Context, targetUserID uint) ([]model.SwapRequest, error)
	UpdateStatus(ctx context.Context, id uint, status model.RequestStatus) error
}

type swapRequestRepository struct {
	db *gorm.DB
}

// NewSwapRequestRepository builds a GORM-backed repository.
func NewSwapRequestRepository(db *gorm.DB) SwapRequestRepository {
	return &swapRequestRepository{db: db}
}

func (r *swapRequestRepository) Create(ctx context.Context, req *model.SwapRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *swapRequestRepository) FindByID(ctx context.Context, id uint) (*model.SwapRequest, error) {
	var req model.SwapRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *swapRequestRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.SwapRequest, error) {
	var req model.SwapRequest
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *swapRequestRepository) FindPendingDuplicate(ctx context.Context, requesterID, targetUserID uint, requesterDate, targetDate model.Date) (*model.SwapRequest, error) {
	var req model.SwapRequest
	err := r.db.WithContext(ctx).
		Where("requester_id = ? AND target_user_id = ? AND requester_date = ? AND target_date = ? AND status = ?",
			requesterID, targetUserID, requesterDate, targetDate, model.RequestStatusPending).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ListPendingForTarget returns pending requests addressed to a user, with the
// requester preloaded for display.
func (r *swapRequestRepository) ListPendingForTarget(ctx context.Context, targetUserID uint) ([]model.SwapRequest, error) {
	var reqs []model.SwapRequest
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		Where("target_user_id = ? AND status = ?", targetUserID, model.RequestStatusPending).
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *swapRequestRepository) UpdateStatus(ctx context.Context, id uint, status model.RequestStatus) error {
	return r.db.WithContext(ctx).Model(&model.SwapRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}
