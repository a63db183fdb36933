// Package service contains the business logic for the Travel Companion API.
// Services enforce the rules that need the store — parent existence before a
// child insert, ownership checks before a delete — and normalize input before
// persisting. Wire-level request validation lives in the handler layer, where
// the per-endpoint check order is part of the contract.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jsandoval/travel-companion/backend/internal/domain"
	"github.com/jsandoval/travel-companion/backend/internal/repo"
)

// GroupService implements business logic for Group operations.
// It holds the member and trip repos because listing enriches each group with
// its members, and group detail resolves the optionally referenced trip.
type GroupService struct {
	groups  repo.GroupRepo
	members repo.MemberRepo
	trips   repo.TripRepo
}

// NewGroupService constructs a GroupService backed by the provided repos.
func NewGroupService(groups repo.GroupRepo, members repo.MemberRepo, trips repo.TripRepo) *GroupService {
	return &GroupService{groups: groups, members: members, trips: trips}
}

// Create persists a new group with the trimmed name and optional trip
// reference. Status and timestamps are server-generated.
func (s *GroupService) Create(ctx context.Context, name string, tripID *int64) (domain.Group, error) {
	group := domain.Group{
		Name:   strings.TrimSpace(name),
		TripID: tripID,
	}

	result, err := s.groups.Create(ctx, group)
	if err != nil {
		return domain.Group{}, fmt.Errorf("service.GroupService.Create: %w", err)
	}
	return result, nil
}

// List returns all groups, each enriched with its member list and count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *GroupService) List(ctx context.Context) ([]domain.GroupSummary, error) {
	groups, err := s.groups.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.GroupService.List: %w", err)
	}

	summaries := make([]domain.GroupSummary, 0, len(groups))
	for _, g := range groups {
		members, err := s.members.ListByGroupID(ctx, g.ID)
		if err != nil {
			return nil, fmt.Errorf("service.GroupService.List: members for group %d: %w", g.ID, err)
		}
		summaries = append(summaries, domain.GroupSummary{
			Group:       g,
			MemberCount: len(members),
			Members:     members,
		})
	}

	return summaries, nil
}

// Get returns a single group with its members, member count, and — when the
// group references a trip that still exists — the trip record. A dangling
// trip reference leaves Trip nil rather than failing the whole lookup.
// Returns domain.ErrNotFound if the group does not exist.
func (s *GroupService) Get(ctx context.Context, id int64) (domain.GroupDetail, error) {
	group, err := s.groups.GetByID(ctx, id)
	if err != nil {
		return domain.GroupDetail{}, fmt.Errorf("service.GroupService.Get: %w", err)
	}

	members, err := s.members.ListByGroupID(ctx, id)
	if err != nil {
		return domain.GroupDetail{}, fmt.Errorf("service.GroupService.Get: members: %w", err)
	}

	detail := domain.GroupDetail{
		Group:       group,
		Members:     members,
		MemberCount: len(members),
	}

	if group.TripID != nil {
		trip, err := s.trips.GetByID(ctx, *group.TripID)
		switch {
		case err == nil:
			detail.Trip = &trip
		case errors.Is(err, domain.ErrNotFound):
			// referenced trip is gone; the group is still valid
		default:
			return domain.GroupDetail{}, fmt.Errorf("service.GroupService.Get: trip: %w", err)
		}
	}

	return detail, nil
}
