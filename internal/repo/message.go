package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jsandoval/travel-companion/backend/internal/domain"
)

// MessageRepo defines the persistence operations for Messages.
type MessageRepo interface {
	// Create inserts a new message and returns the persisted record.
	Create(ctx context.Context, message domain.Message) (domain.Message, error)

	// GetByID retrieves a single message by its primary key.
	// Returns domain.ErrNotFound if no message with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Message, error)

	// ListByGroupID returns all messages of a group in chronological order.
	// Equal timestamps are tie-broken by id, so the order is stable.
	ListByGroupID(ctx context.Context, groupID int64) ([]domain.Message, error)

	// Delete removes a message by ID and returns the deleted record.
	// Returns domain.ErrNotFound if no row was deleted.
	Delete(ctx context.Context, id int64) (domain.Message, error)
}

// pgMessageRepo is the Postgres implementation of MessageRepo.
type pgMessageRepo struct {
	db db
}

// NewMessageRepo constructs a MessageRepo backed by the provided db connection.
func NewMessageRepo(db db) MessageRepo {
	return &pgMessageRepo{db: db}
}

// Create inserts a message row. created_at comes from the table default.
func (r *pgMessageRepo) Create(ctx context.Context, message domain.Message) (domain.Message, error) {
	const q = `
		INSERT INTO messages (group_id, sender_name, message)
		VALUES (@group_id, @sender_name, @message)
		RETURNING id, group_id, sender_name, message, created_at`

	args := pgx.NamedArgs{
		"group_id":    message.GroupID,
		"sender_name": message.SenderName,
		"message":     message.Body,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanMessage(row)
	if err != nil {
		return domain.Message{}, fmt.Errorf("repo.MessageRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a message by primary key.
func (r *pgMessageRepo) GetByID(ctx context.Context, id int64) (domain.Message, error) {
	const q = `
		SELECT id, group_id, sender_name, message, created_at
		FROM messages
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanMessage(row)
	if err != nil {
		return domain.Message{}, fmt.Errorf("repo.MessageRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByGroupID returns a group's messages ordered by created_at ascending,
// with id as the tie-break for equal timestamps.
func (r *pgMessageRepo) ListByGroupID(ctx context.Context, groupID int64) ([]domain.Message, error) {
	const q = `
		SELECT id, group_id, sender_name, message, created_at
		FROM messages
		WHERE group_id = @group_id
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"group_id": groupID})
	if err != nil {
		return nil, fmt.Errorf("repo.MessageRepo.ListByGroupID: %w", err)
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.MessageRepo.ListByGroupID: scan: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.MessageRepo.ListByGroupID: rows: %w", err)
	}

	return messages, nil
}

// Delete removes a message by primary key and returns the deleted row.
func (r *pgMessageRepo) Delete(ctx context.Context, id int64) (domain.Message, error) {
	const q = `
		DELETE FROM messages
		WHERE id = @id
		RETURNING id, group_id, sender_name, message, created_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanMessage(row)
	if err != nil {
		return domain.Message{}, fmt.Errorf("repo.MessageRepo.Delete: %w", err)
	}
	return result, nil
}

// scanMessage maps a single database row into a domain.Message.
func scanMessage(s scanner) (domain.Message, error) {
	var m domain.Message

	err := s.Scan(&m.ID, &m.GroupID, &m.SenderName, &m.Body, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Message{}, domain.ErrNotFound
		}
		return domain.Message{}, err
	}

	return m, nil
}
