package service

import (
	"context"
	"fmt"

	"github.com/jsandoval/travel-companion/backend/internal/domain"
	"github.com/jsandoval/travel-companion/backend/internal/repo"
)

// TripService implements business logic for Trip operations. Trips carry
// externally supplied route blobs; this service stores and returns them
// without interpretation.
type TripService struct {
	trips repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(trips repo.TripRepo) *TripService {
	return &TripService{trips: trips}
}

// Create persists a new trip. A zero MatchRadius falls back to the default
// of 10 (kilometers) before insert.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if trip.MatchRadius == 0 {
		trip.MatchRadius = 10
	}

	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// List returns all trips, most recent first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	return trips, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// Delete removes a trip by ID and returns the deleted record. Dependent
// matches and contacts cascade at the schema level; group references are
// nullified, so groups outlive the trips they pointed at.
func (s *TripService) Delete(ctx context.Context, id int64) (domain.Trip, error) {
	result, err := s.trips.Delete(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return result, nil
}
