package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"deskswap/internal/model"
)

// newMockDB opens a GORM session against a sqlmock connection so tests can
// assert the SQL the repositories generate. Expectations match by regexp, so
// a query missing an expected fragment fails the call.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	assert.NoError(t, err)
	return db, mock
}

func TestSwapRequestRepository_FindByIDForUpdate_LocksRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSwapRequestRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "requester_id", "target_user_id", "requester_date", "target_date", "status", "created_at", "updated_at"}).
		AddRow(7, 1, 2, time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), "pending", now, now)
	mock.ExpectQuery("FOR UPDATE").WillReturnRows(rows)

	req, err := repo.FindByIDForUpdate(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, uint(7), req.ID)
	assert.Equal(t, model.RequestStatusPending, req.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAllocationRepository_FindByUserAndDateForUpdate_LocksRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAllocationRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "date", "user_id", "workstation_id", "created_at", "updated_at"}).
		AddRow(10, time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), 1, 3, now, now)
	mock.ExpectQuery("FOR UPDATE").WillReturnRows(rows)

	alloc, err := repo.FindByUserAndDateForUpdate(context.Background(), 1, model.NewDate(2026, time.February, 2))

	assert.NoError(t, err)
	assert.Equal(t, uint(10), alloc.ID)
	assert.Equal(t, uint(1), alloc.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByIDForUpdate_LocksRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "full_name", "email", "password_hash", "swap_credits", "created_at", "updated_at"}).
		AddRow(1, "Ana García", "ana.garcía@example.com", "hash", 2, now, now)
	mock.ExpectQuery("FOR UPDATE").WillReturnRows(rows)

	user, err := repo.FindByIDForUpdate(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, 2, user.SwapCredits)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A request resolved out of PENDING must not block an identical new one: the
// duplicate lookup binds the pending status into its predicate.
func TestSwapRequestRepository_FindPendingDuplicate_MatchesOnlyPending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSwapRequestRepository(db)

	feb2 := model.NewDate(2026, time.February, 2)
	feb3 := model.NewDate(2026, time.February, 3)

	mock.ExpectQuery(`status = \?`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "pending", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindPendingDuplicate(context.Background(), 1, 2, feb2, feb3)

	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
