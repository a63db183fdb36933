package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jsandoval/travel-companion/backend/internal/domain"
)

// MemberRepo defines the persistence operations for GroupMembers.
// Members are insert-only; rows disappear when their owning group is deleted
// (ON DELETE CASCADE), never through an API call.
type MemberRepo interface {
	// Create inserts a new membership row and returns the persisted record.
	// The caller is responsible for verifying the group exists first — a
	// violated foreign key surfaces as a plain error, not ErrNotFound.
	Create(ctx context.Context, member domain.GroupMember) (domain.GroupMember, error)

	// ListByGroupID returns all members of a group in storage order.
	ListByGroupID(ctx context.Context, groupID int64) ([]domain.GroupMember, error)
}

// pgMemberRepo is the Postgres implementation of MemberRepo.
type pgMemberRepo struct {
	db db
}

// NewMemberRepo constructs a MemberRepo backed by the provided db connection.
func NewMemberRepo(db db) MemberRepo {
	return &pgMemberRepo{db: db}
}

// Create inserts a membership row. Role and joined_at come from the table
// defaults unless set by the caller; the service always passes role through.
func (r *pgMemberRepo) Create(ctx context.Context, member domain.GroupMember) (domain.GroupMember, error) {
	const q = `
		INSERT INTO group_members (group_id, member_name, member_email, role)
		VALUES (@group_id, @member_name, @member_email, @role)
		RETURNING id, group_id, member_name, member_email, role, joined_at`

	args := pgx.NamedArgs{
		"group_id":     member.GroupID,
		"member_name":  member.MemberName,
		"member_email": member.MemberEmail, // nil becomes NULL
		"role":         member.Role,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanMember(row)
	if err != nil {
		return domain.GroupMember{}, fmt.Errorf("repo.MemberRepo.Create: %w", err)
	}
	return result, nil
}

// ListByGroupID returns all members of a group ordered by primary key.
func (r *pgMemberRepo) ListByGroupID(ctx context.Context, groupID int64) ([]domain.GroupMember, error) {
	const q = `
		SELECT id, group_id, member_name, member_email, role, joined_at
		FROM group_members
		WHERE group_id = @group_id
		ORDER BY id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"group_id": groupID})
	if err != nil {
		return nil, fmt.Errorf("repo.MemberRepo.ListByGroupID: %w", err)
	}
	defer rows.Close()

	members := []domain.GroupMember{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.MemberRepo.ListByGroupID: scan: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.MemberRepo.ListByGroupID: rows: %w", err)
	}

	return members, nil
}

// scanMember maps a single database row into a domain.GroupMember.
func scanMember(s scanner) (domain.GroupMember, error) {
	var (
		m     domain.GroupMember
		email pgtype.Text
	)

	err := s.Scan(&m.ID, &m.GroupID, &m.MemberName, &email, &m.Role, &m.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.GroupMember{}, domain.ErrNotFound
		}
		return domain.GroupMember{}, err
	}

	if email.Valid {
		e := email.String
		m.MemberEmail = &e
	}

	return m, nil
}
