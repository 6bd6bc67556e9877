package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"deskswap/internal/cache"
	"deskswap/internal/importer"
	"deskswap/internal/model"
	"deskswap/internal/repository"
)

// ImportSummary reports what a roster import created.
type ImportSummary struct {
	Users        int `json:"users_created"`
	Workstations int `json:"workstations_created"`
	Allocations  int `json:"allocations_created"`
}

// ImportService persists parsed roster entries, creating users and
// workstations on demand.
type ImportService interface {
	ImportRoster(ctx context.Context, entries []importer.Entry) (*ImportSummary, error)
}

type importService struct {
	repos           *repository.Repository
	tx              repository.TxRunner
	cache           *cache.Client
	logger          *zap.Logger
	initialPassword string
	initialCredits  int
}

// NewImportService creates a new import service. Loader-created users get a
// bcrypt hash of initialPassword and initialCredits swap credits.
func NewImportService(repos *repository.Repository, tx repository.TxRunner, cache *cache.Client, logger *zap.Logger, initialPassword string, initialCredits int) ImportService {
	return &importService{
		repos:           repos,
		tx:              tx,
		cache:           cache,
		logger:          logger,
		initialPassword: initialPassword,
		initialCredits:  initialCredits,
	}
}

// ImportRoster writes all entries in one transaction. Lookup caches for users
// and workstations live only for the duration of the load.
func (s *importService) ImportRoster(ctx context.Context, entries []importer.Entry) (*ImportSummary, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(s.initialPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash initial password: %w", err)
	}

	summary := &ImportSummary{}
	err = s.tx.InTx(ctx, func(ctx context.Context, tx *repository.Repository) error {
		userIDs := make(map[string]uint)
		stationIDs := make(map[int]uint)

		for _, entry := range entries {
			wsID, ok := stationIDs[entry.Workstation]
			if !ok {
				wsID, err = s.resolveWorkstation(ctx, tx, entry.Workstation, summary)
				if err != nil {
					return err
				}
				stationIDs[entry.Workstation] = wsID
			}

			userID, ok := userIDs[entry.Occupant]
			if !ok {
				userID, err = s.resolveUser(ctx, tx, entry.Occupant, string(passwordHash), summary)
				if err != nil {
					return err
				}
				userIDs[entry.Occupant] = userID
			}

			alloc := &model.Allocation{
				Date:          entry.Date,
				UserID:        userID,
				WorkstationID: wsID,
			}
			if err := tx.Allocation.Create(ctx, alloc); err != nil {
				return fmt.Errorf("create allocation for %q on %s: %w", entry.Occupant, entry.Date, err)
			}
			summary.Allocations++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.KeyBoard)
	_ = s.cache.Delete(ctx, cache.KeyUsers)
	s.logger.Info("roster imported",
		zap.Int("users_created", summary.Users),
		zap.Int("workstations_created", summary.Workstations),
		zap.Int("allocations_created", summary.Allocations))
	return summary, nil
}

func (s *importService) resolveWorkstation(ctx context.Context, tx *repository.Repository, number int, summary *ImportSummary) (uint, error) {
	ws, err := tx.Workstation.FindByNumber(ctx, number)
	if err == nil {
		return ws.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	ws = &model.Workstation{
		Number:      number,
		Description: fmt.Sprintf("Workstation %d", number),
	}
	if err := tx.Workstation.Create(ctx, ws); err != nil {
		return 0, fmt.Errorf("create workstation %d: %w", number, err)
	}
	summary.Workstations++
	return ws.ID, nil
}

func (s *importService) resolveUser(ctx context.Context, tx *repository.Repository, fullName, passwordHash string, summary *ImportSummary) (uint, error) {
	user, err := tx.User.FindByFullName(ctx, fullName)
	if err == nil {
		return user.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	user = &model.User{
		FullName:     fullName,
		Email:        emailFor(fullName),
		PasswordHash: passwordHash,
		SwapCredits:  s.initialCredits,
	}
	if err := tx.User.Create(ctx, user); err != nil {
		return 0, fmt.Errorf("create user %q: %w", fullName, err)
	}
	summary.Users++
	return user.ID, nil
}

// emailFor derives a placeholder address from a full name by lowercasing it
// and joining the words with dots.
func emailFor(fullName string) string {
	local := strings.ToLower(strings.TrimSpace(fullName))
	local = strings.Join(strings.Fields(local), ".")
	return local + "@example.com"
}
