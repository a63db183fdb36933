package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jsandoval/travel-companion/backend/internal/domain"
)

// TripRepo defines the persistence operations for Trips.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Trip, error)

	// List returns all trips ordered by created_at descending.
	List(ctx context.Context) ([]domain.Trip, error)

	// Delete removes a trip by ID and returns the deleted record.
	// Returns domain.ErrNotFound if no row was deleted.
	Delete(ctx context.Context, id int64) (domain.Trip, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, source, destination, source_coordinates, destination_coordinates,
		travel_date, travel_time, transport_mode, optimization_mode, status,
		route_data, route_geometry, match_radius, created_at, updated_at`

// Create inserts a new trip row and returns the full persisted record.
// Status, match_radius, and both timestamps fall back to the table defaults
// when unset.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (source, destination, source_coordinates, destination_coordinates,
			travel_date, travel_time, transport_mode, optimization_mode,
			route_data, route_geometry, match_radius)
		VALUES (@source, @destination, @source_coordinates, @destination_coordinates,
			@travel_date, @travel_time, @transport_mode, @optimization_mode,
			@route_data, @route_geometry, @match_radius)
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"source":                  trip.Source,
		"destination":             trip.Destination,
		"source_coordinates":      trip.SourceCoordinates,
		"destination_coordinates": trip.DestinationCoordinates,
		"travel_date":             trip.TravelDate,
		"travel_time":             trip.TravelTime,
		"transport_mode":          trip.TransportMode,
		"optimization_mode":       trip.OptimizationMode,
		"route_data":              []byte(trip.RouteData), // nil becomes NULL
		"route_geometry":          []byte(trip.RouteGeometry),
		"match_radius":            trip.MatchRadius,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all trips ordered by created_at descending (most recent first).
func (r *pgTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}

	return trips, nil
}

// Delete removes a trip by primary key and returns the deleted row.
// Dependent trip_matches and emergency_contacts rows cascade; group and
// emergency_alert references are nullified by the schema, not by code here.
func (r *pgTripRepo) Delete(ctx context.Context, id int64) (domain.Trip, error) {
	const q = `
		DELETE FROM trips
		WHERE id = @id
		RETURNING ` + tripColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	return result, nil
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the nullable coordinate and JSON column conversions.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t         domain.Trip
		srcCoords pgtype.Text
		dstCoords pgtype.Text
		routeData []byte
		routeGeom []byte
	)

	err := s.Scan(&t.ID, &t.Source, &t.Destination, &srcCoords, &dstCoords,
		&t.TravelDate, &t.TravelTime, &t.TransportMode, &t.OptimizationMode, &t.Status,
		&routeData, &routeGeom, &t.MatchRadius, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	if srcCoords.Valid {
		v := srcCoords.String
		t.SourceCoordinates = &v
	}
	if dstCoords.Valid {
		v := dstCoords.String
		t.DestinationCoordinates = &v
	}
	t.RouteData = routeData
	t.RouteGeometry = routeGeom

	return t, nil
}
