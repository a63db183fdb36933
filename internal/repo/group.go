// Package repo contains all database access logic for the Travel Companion API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jsandoval/travel-companion/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// GroupRepo defines the persistence operations for Groups.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the services to be unit-tested with a mock.
type GroupRepo interface {
	// Create inserts a new group and returns the persisted record (with
	// DB-generated id, status, created_at, and updated_at populated).
	Create(ctx context.Context, group domain.Group) (domain.Group, error)

	// GetByID retrieves a single group by its primary key.
	// Returns domain.ErrNotFound if no group with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Group, error)

	// List returns all groups in storage order.
	List(ctx context.Context) ([]domain.Group, error)
}

// pgGroupRepo is the Postgres implementation of GroupRepo.
type pgGroupRepo struct {
	db db
}

// NewGroupRepo constructs a GroupRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewGroupRepo(db db) GroupRepo {
	return &pgGroupRepo{db: db}
}

// Create inserts a new group row and returns the full persisted record.
// Status and both timestamps come from the table defaults.
func (r *pgGroupRepo) Create(ctx context.Context, group domain.Group) (domain.Group, error) {
	const q = `
		INSERT INTO groups (name, trip_id)
		VALUES (@name, @trip_id)
		RETURNING id, name, trip_id, status, created_at, updated_at`

	args := pgx.NamedArgs{
		"name":    group.Name,
		"trip_id": group.TripID, // nil becomes NULL
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanGroup(row)
	if err != nil {
		return domain.Group{}, fmt.Errorf("repo.GroupRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a group by primary key.
func (r *pgGroupRepo) GetByID(ctx context.Context, id int64) (domain.Group, error) {
	const q = `
		SELECT id, name, trip_id, status, created_at, updated_at
		FROM groups
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanGroup(row)
	if err != nil {
		return domain.Group{}, fmt.Errorf("repo.GroupRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all groups ordered by primary key (storage insertion order).
func (r *pgGroupRepo) List(ctx context.Context) ([]domain.Group, error) {
	const q = `
		SELECT id, name, trip_id, status, created_at, updated_at
		FROM groups
		ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.GroupRepo.List: %w", err)
	}
	defer rows.Close()

	var groups []domain.Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.GroupRepo.List: scan: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.GroupRepo.List: rows: %w", err)
	}

	return groups, nil
}

// scanGroup maps a single database row into a domain.Group.
// It handles the nullable trip_id conversion.
func scanGroup(s scanner) (domain.Group, error) {
	var (
		g      domain.Group
		tripID pgtype.Int8
	)

	err := s.Scan(&g.ID, &g.Name, &tripID, &g.Status, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Group{}, domain.ErrNotFound
		}
		return domain.Group{}, err
	}

	if tripID.Valid {
		id := tripID.Int64
		g.TripID = &id
	}

	return g, nil
}
