package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jsandoval/travel-companion/backend/internal/domain"
)

// ContactRepo defines the persistence operations for EmergencyContacts.
type ContactRepo interface {
	// Create inserts a new contact and returns the persisted record.
	Create(ctx context.Context, contact domain.EmergencyContact) (domain.EmergencyContact, error)

	// GetByID retrieves a single contact by its primary key.
	// Returns domain.ErrNotFound if no contact with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.EmergencyContact, error)

	// ListByTripID returns all contacts of a trip in storage order.
	ListByTripID(ctx context.Context, tripID int64) ([]domain.EmergencyContact, error)

	// Delete removes a contact by ID and returns the deleted record.
	// Returns domain.ErrNotFound if no row was deleted.
	Delete(ctx context.Context, id int64) (domain.EmergencyContact, error)
}

// AlertRepo defines the persistence operations for EmergencyAlerts.
// Alerts are append-only; there is no update or delete path.
type AlertRepo interface {
	// Create inserts a new alert and returns the persisted record.
	Create(ctx context.Context, alert domain.EmergencyAlert) (domain.EmergencyAlert, error)

	// ListByTripID returns a trip's alerts ordered by created_at descending.
	ListByTripID(ctx context.Context, tripID int64) ([]domain.EmergencyAlert, error)
}

// pgContactRepo is the Postgres implementation of ContactRepo.
type pgContactRepo struct {
	db db
}

// NewContactRepo constructs a ContactRepo backed by the provided db connection.
func NewContactRepo(db db) ContactRepo {
	return &pgContactRepo{db: db}
}

func (r *pgContactRepo) Create(ctx context.Context, contact domain.EmergencyContact) (domain.EmergencyContact, error) {
	const q = `
		INSERT INTO emergency_contacts (trip_id, name, phone, email, relationship)
		VALUES (@trip_id, @name, @phone, @email, @relationship)
		RETURNING id, trip_id, name, phone, email, relationship, created_at`

	args := pgx.NamedArgs{
		"trip_id":      contact.TripID,
		"name":         contact.Name,
		"phone":        contact.Phone,
		"email":        contact.Email,
		"relationship": contact.Relationship, // nil becomes NULL
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanContact(row)
	if err != nil {
		return domain.EmergencyContact{}, fmt.Errorf("repo.ContactRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgContactRepo) GetByID(ctx context.Context, id int64) (domain.EmergencyContact, error) {
	const q = `
		SELECT id, trip_id, name, phone, email, relationship, created_at
		FROM emergency_contacts
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanContact(row)
	if err != nil {
		return domain.EmergencyContact{}, fmt.Errorf("repo.ContactRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgContactRepo) ListByTripID(ctx context.Context, tripID int64) ([]domain.EmergencyContact, error) {
	const q = `
		SELECT id, trip_id, name, phone, email, relationship, created_at
		FROM emergency_contacts
		WHERE trip_id = @trip_id
		ORDER BY id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ContactRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	contacts := []domain.EmergencyContact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ContactRepo.ListByTripID: scan: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ContactRepo.ListByTripID: rows: %w", err)
	}

	return contacts, nil
}

func (r *pgContactRepo) Delete(ctx context.Context, id int64) (domain.EmergencyContact, error) {
	const q = `
		DELETE FROM emergency_contacts
		WHERE id = @id
		RETURNING id, trip_id, name, phone, email, relationship, created_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanContact(row)
	if err != nil {
		return domain.EmergencyContact{}, fmt.Errorf("repo.ContactRepo.Delete: %w", err)
	}
	return result, nil
}

// pgAlertRepo is the Postgres implementation of AlertRepo.
type pgAlertRepo struct {
	db db
}

// NewAlertRepo constructs an AlertRepo backed by the provided db connection.
func NewAlertRepo(db db) AlertRepo {
	return &pgAlertRepo{db: db}
}

func (r *pgAlertRepo) Create(ctx context.Context, alert domain.EmergencyAlert) (domain.EmergencyAlert, error) {
	const q = `
		INSERT INTO emergency_alerts (trip_id, alert_type, location_lat, location_lng,
			location_name, message, sent_to)
		VALUES (@trip_id, @alert_type, @location_lat, @location_lng,
			@location_name, @message, @sent_to)
		RETURNING id, trip_id, alert_type, location_lat, location_lng,
			location_name, message, sent_to, created_at`

	args := pgx.NamedArgs{
		"trip_id":       alert.TripID,
		"alert_type":    alert.AlertType,
		"location_lat":  alert.LocationLat,
		"location_lng":  alert.LocationLng,
		"location_name": alert.LocationName,
		"message":       alert.Message,
		"sent_to":       []byte(alert.SentTo),
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanAlert(row)
	if err != nil {
		return domain.EmergencyAlert{}, fmt.Errorf("repo.AlertRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgAlertRepo) ListByTripID(ctx context.Context, tripID int64) ([]domain.EmergencyAlert, error) {
	const q = `
		SELECT id, trip_id, alert_type, location_lat, location_lng,
			location_name, message, sent_to, created_at
		FROM emergency_alerts
		WHERE trip_id = @trip_id
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.AlertRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	alerts := []domain.EmergencyAlert{}
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.AlertRepo.ListByTripID: scan: %w", err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.AlertRepo.ListByTripID: rows: %w", err)
	}

	return alerts, nil
}

// scanContact maps a single database row into a domain.EmergencyContact.
func scanContact(s scanner) (domain.EmergencyContact, error) {
	var (
		c            domain.EmergencyContact
		relationship pgtype.Text
	)

	err := s.Scan(&c.ID, &c.TripID, &c.Name, &c.Phone, &c.Email, &relationship, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.EmergencyContact{}, domain.ErrNotFound
		}
		return domain.EmergencyContact{}, err
	}

	if relationship.Valid {
		v := relationship.String
		c.Relationship = &v
	}

	return c, nil
}

// scanAlert maps a single database row into a domain.EmergencyAlert.
func scanAlert(s scanner) (domain.EmergencyAlert, error) {
	var (
		a            domain.EmergencyAlert
		tripID       pgtype.Int8
		lat, lng     pgtype.Float8
		locationName pgtype.Text
		sentTo       []byte
	)

	err := s.Scan(&a.ID, &tripID, &a.AlertType, &lat, &lng,
		&locationName, &a.Message, &sentTo, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.EmergencyAlert{}, domain.ErrNotFound
		}
		return domain.EmergencyAlert{}, err
	}

	if tripID.Valid {
		id := tripID.Int64
		a.TripID = &id
	}
	if lat.Valid {
		v := lat.Float64
		a.LocationLat = &v
	}
	if lng.Valid {
		v := lng.Float64
		a.LocationLng = &v
	}
	if locationName.Valid {
		v := locationName.String
		a.LocationName = &v
	}
	a.SentTo = sentTo

	return a, nil
}
