package service

import (
	"context"
	"time"

	"deskswap/internal/cache"
	"deskswap/internal/model"
	"deskswap/internal/repository"
)

const rosterCacheTTL = 5 * time.Minute

// UserView is the public projection of a user.
type UserView struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// AllocationView is one row of the roster board: who sits where on which day.
type AllocationView struct {
	ID          uint       `json:"id"`
	Date        model.Date `json:"date"`
	User        string     `json:"user"`
	Workstation int        `json:"workstation"`
}

// RosterService exposes the read-only roster views.
type RosterService interface {
	ListUsers(ctx context.Context) ([]UserView, error)
	ListAllocations(ctx context.Context) ([]AllocationView, error)
	ListWorkstations(ctx context.Context) ([]model.Workstation, error)
}

type rosterService struct {
	repos *repository.Repository
	cache *cache.Client
}

// NewRosterService builds a RosterService with repositories and cache.
func NewRosterService(repos *repository.Repository, cache *cache.Client) RosterService {
	return &rosterService{repos: repos, cache: cache}
}

func (s *rosterService) ListUsers(ctx context.Context) ([]UserView, error) {
	var cached []UserView
	if s.cache.GetJSON(ctx, cache.KeyUsers, &cached) {
		return cached, nil
	}

	users, err := s.repos.User.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, UserView{ID: u.ID, FullName: u.FullName, Email: u.Email})
	}
	s.cache.SetJSON(ctx, cache.KeyUsers, views, rosterCacheTTL)
	return views, nil
}

func (s *rosterService) ListAllocations(ctx context.Context) ([]AllocationView, error) {
	var cached []AllocationView
	if s.cache.GetJSON(ctx, cache.KeyBoard, &cached) {
		return cached, nil
	}

	allocs, err := s.repos.Allocation.ListWithRelations(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]AllocationView, 0, len(allocs))
	for _, a := range allocs {
		views = append(views, AllocationView{
			ID:          a.ID,
			Date:        a.Date,
			User:        a.User.FullName,
			Workstation: a.Workstation.Number,
		})
	}
	s.cache.SetJSON(ctx, cache.KeyBoard, views, rosterCacheTTL)
	return views, nil
}

func (s *rosterService) ListWorkstations(ctx context.Context) ([]model.Workstation, error) {
	return s.repos.Workstation.List(ctx)
}
