package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"deskswap/internal/cache"
	apperrors "deskswap/internal/errors"
	"deskswap/internal/model"
	"deskswap/internal/repository"
)

// Processing actions accepted by ProcessRequest.
const (
	ActionAccept = "ACCEPT"
	ActionReject = "REJECT"
)

// PendingRequest is a pending swap request enriched for display to its
// target user.
type PendingRequest struct {
	ID            uint                `json:"id"`
	RequesterName string              `json:"requester_name"`
	RequesterDate model.Date          `json:"requester_date"`
	MyDate        model.Date          `json:"my_date"`
	Status        model.RequestStatus `json:"status"`
}

// SwapService validates, records and executes shift exchanges between users.
type SwapService interface {
	// CreateRequest validates a proposed exchange and records it as pending.
	// No allocation is touched at this stage. Returns the stored request and
	// a human-readable description of the proposed trade.
	CreateRequest(ctx context.Context, requesterID, offerAllocationID, targetAllocationID uint) (*model.SwapRequest, string, error)
	// ListPending returns the pending requests addressed to a user.
	ListPending(ctx context.Context, targetUserID uint) ([]PendingRequest, error)
	// ProcessRequest transitions a pending request out of PENDING exactly
	// once. ACCEPT exchanges the owners of the two implicated allocations
	// atomically; REJECT only flips the status.
	ProcessRequest(ctx context.Context, requestID uint, action string) (string, error)
}

type swapService struct {
	repos  *repository.Repository
	tx     repository.TxRunner
	cache  *cache.Client
	logger *zap.Logger
}

// NewSwapService creates a new swap service.
func NewSwapService(repos *repository.Repository, tx repository.TxRunner, cache *cache.Client, logger *zap.Logger) SwapService {
	return &swapService{repos: repos, tx: tx, cache: cache, logger: logger}
}

// CreateRequest runs the validation sequence and the insert inside one
// transaction so a failure at any step leaves nothing behind. The duplicate
// check runs at store-default isolation.
func (s *swapService) CreateRequest(ctx context.Context, requesterID, offerAllocationID, targetAllocationID uint) (*model.SwapRequest, string, error) {
	var (
		request *model.SwapRequest
		message string
	)

	err := s.tx.InTx(ctx, func(ctx context.Context, tx *repository.Repository) error {
		requester, err := tx.User.FindByID(ctx, requesterID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return err
		}

		offer, err := tx.Allocation.FindByID(ctx, offerAllocationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAllocationNotFound
			}
			return err
		}
		if offer.UserID != requester.ID {
			return apperrors.ErrNotOwned
		}

		target, err := tx.Allocation.FindByID(ctx, targetAllocationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAllocationNotFound
			}
			return err
		}
		if target.UserID == requester.ID {
			return apperrors.ErrSelfSwap
		}

		if requester.SwapCredits <= 0 {
			return apperrors.ErrNoCredits
		}

		_, err = tx.Swap.FindPendingDuplicate(ctx, requester.ID, target.UserID, offer.Date, target.Date)
		if err == nil {
			return apperrors.ErrDuplicateRequest
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		request = &model.SwapRequest{
			RequesterID:   requester.ID,
			TargetUserID:  target.UserID,
			RequesterDate: offer.Date,
			TargetDate:    target.Date,
			Status:        model.RequestStatusPending,
		}
		if err := tx.Swap.Create(ctx, request); err != nil {
			return fmt.Errorf("create swap request: %w", err)
		}

		targetOwner, err := tx.User.FindByID(ctx, target.UserID)
		if err != nil {
			return err
		}
		message = fmt.Sprintf("Swap proposed: your shift on %s for %s's shift on %s",
			offer.Date, targetOwner.FullName, target.Date)
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("swap request created",
		zap.Uint("request_id", request.ID),
		zap.Uint("requester_id", request.RequesterID),
		zap.Uint("target_user_id", request.TargetUserID))
	return request, message, nil
}

func (s *swapService) ListPending(ctx context.Context, targetUserID uint) ([]PendingRequest, error) {
	requests, err := s.repos.Swap.ListPendingForTarget(ctx, targetUserID)
	if err != nil {
		return nil, err
	}

	pending := make([]PendingRequest, 0, len(requests))
	for _, req := range requests {
		pending = append(pending, PendingRequest{
			ID:            req.ID,
			RequesterName: req.Requester.FullName,
			RequesterDate: req.RequesterDate,
			MyDate:        req.TargetDate,
			Status:        req.Status,
		})
	}
	return pending, nil
}

// ProcessRequest locks the request row first, then — for ACCEPT — re-resolves
// and locks both allocation rows before exchanging their owners. All writes
// of an acceptance (two owner updates, the credit decrement and the status
// change) commit as one transaction.
//
// If either allocation can no longer be resolved the request is committed to
// CANCELLED and the call fails: a request that can never succeed must not
// stay pending.
func (s *swapService) ProcessRequest(ctx context.Context, requestID uint, action string) (string, error) {
	if action != ActionAccept && action != ActionReject {
		return "", apperrors.ErrInvalidAction
	}

	var (
		message string
		stale   bool
	)

	err := s.tx.InTx(ctx, func(ctx context.Context, tx *repository.Repository) error {
		req, err := tx.Swap.FindByIDForUpdate(ctx, requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRequestNotFound
			}
			return err
		}
		if req.Status.Terminal() {
			return apperrors.ErrAlreadyProcessed
		}

		if action == ActionReject {
			if err := tx.Swap.UpdateStatus(ctx, req.ID, model.RequestStatusRejected); err != nil {
				return err
			}
			message = "Swap request rejected."
			return nil
		}

		origin, err := tx.Allocation.FindByUserAndDateForUpdate(ctx, req.RequesterID, req.RequesterDate)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		target, terr := tx.Allocation.FindByUserAndDateForUpdate(ctx, req.TargetUserID, req.TargetDate)
		if terr != nil && !errors.Is(terr, gorm.ErrRecordNotFound) {
			return terr
		}
		if origin == nil || target == nil {
			// One side was reassigned or deleted since the request was
			// created. Commit the cancellation and report failure afterwards.
			stale = true
			return tx.Swap.UpdateStatus(ctx, req.ID, model.RequestStatusCancelled)
		}

		if err := tx.Allocation.UpdateOwner(ctx, origin.ID, target.UserID); err != nil {
			return err
		}
		if err := tx.Allocation.UpdateOwner(ctx, target.ID, origin.UserID); err != nil {
			return err
		}

		requester, err := tx.User.FindByIDForUpdate(ctx, req.RequesterID)
		if err != nil {
			return err
		}
		if err := tx.User.UpdateSwapCredits(ctx, requester.ID, requester.SwapCredits-1); err != nil {
			return err
		}

		if err := tx.Swap.UpdateStatus(ctx, req.ID, model.RequestStatusAccepted); err != nil {
			return err
		}
		message = "Swap completed, the roster has been updated."
		return nil
	})
	if err != nil {
		return "", err
	}
	if stale {
		s.logger.Warn("swap request cancelled, allocations no longer resolvable",
			zap.Uint("request_id", requestID))
		return "", apperrors.ErrStaleRequest
	}

	if action == ActionAccept {
		_ = s.cache.Delete(ctx, cache.KeyBoard)
		s.logger.Info("swap request accepted", zap.Uint("request_id", requestID))
	}
	return message, nil
}
