package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"deskswap/internal/importer"
	"deskswap/internal/model"
	"deskswap/internal/repository"
)

// MockWorkstationRepository is a mock implementation of WorkstationRepository.
type MockWorkstationRepository struct {
	mock.Mock
}

func (m *MockWorkstationRepository) Create(ctx context.Context, ws *model.Workstation) error {
	args := m.Called(ctx, ws)
	return args.Error(0)
}

func (m *MockWorkstationRepository) FindByID(ctx context.Context, id uint) (*model.Workstation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Workstation), args.Error(1)
}

func (m *MockWorkstationRepository) FindByNumber(ctx context.Context, number int) (*model.Workstation, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Workstation), args.Error(1)
}

func (m *MockWorkstationRepository) List(ctx context.Context) ([]model.Workstation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Workstation), args.Error(1)
}

func TestImportService_ImportRoster(t *testing.T) {
	users := new(MockUserRepository)
	stations := new(MockWorkstationRepository)
	allocs := new(MockAllocationRepository)
	repos := &repository.Repository{
		User:        users,
		Workstation: stations,
		Allocation:  allocs,
	}
	svc := NewImportService(repos, stubTx{repos: repos}, nil, zap.NewNop(), "initial-pass", 3)

	feb2 := model.NewDate(2026, time.February, 2)
	feb3 := model.NewDate(2026, time.February, 3)
	entries := []importer.Entry{
		{Date: feb2, Workstation: 24, Occupant: "Ana García"},
		{Date: feb3, Workstation: 24, Occupant: "Ana García"},
		{Date: feb2, Workstation: 25, Occupant: "Luis Pérez"},
	}

	// Workstation 24 missing, then created; 25 already exists. The second
	// entry must hit the in-memory lookup cache, not the repository.
	stations.On("FindByNumber", mock.Anything, 24).Return(nil, gorm.ErrRecordNotFound).Once()
	stations.On("Create", mock.Anything, mock.AnythingOfType("*model.Workstation")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Workstation).ID = 101
		}).Return(nil).Once()
	stations.On("FindByNumber", mock.Anything, 25).Return(&model.Workstation{ID: 102, Number: 25}, nil).Once()

	users.On("FindByFullName", mock.Anything, "Ana García").Return(nil, gorm.ErrRecordNotFound).Once()
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.FullName == "Ana García" &&
			u.Email == "ana.garcía@example.com" &&
			u.SwapCredits == 3 &&
			u.PasswordHash != "" && u.PasswordHash != "initial-pass"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.User).ID = 1
	}).Return(nil).Once()
	users.On("FindByFullName", mock.Anything, "Luis Pérez").Return(&model.User{ID: 2, FullName: "Luis Pérez"}, nil).Once()

	allocs.On("Create", mock.Anything, mock.AnythingOfType("*model.Allocation")).Return(nil).Times(3)

	summary, err := svc.ImportRoster(context.Background(), entries)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Users)
	assert.Equal(t, 1, summary.Workstations)
	assert.Equal(t, 3, summary.Allocations)

	users.AssertExpectations(t)
	stations.AssertExpectations(t)
	allocs.AssertExpectations(t)
}
