package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jsandoval/travel-companion/backend/internal/domain"
	"github.com/jsandoval/travel-companion/backend/internal/repo"
)

// MembershipService implements the single membership-addition operation shared
// by the invite and join endpoints. There is no pending/approved state and no
// role elevation: every addition produces an active row with role "member",
// whether it was admin-initiated or self-initiated.
type MembershipService struct {
	groups  repo.GroupRepo
	members repo.MemberRepo
}

// NewMembershipService constructs a MembershipService backed by the provided repos.
func NewMembershipService(groups repo.GroupRepo, members repo.MemberRepo) *MembershipService {
	return &MembershipService{groups: groups, members: members}
}

// AddMember verifies the group exists, then inserts a membership row with the
// trimmed name and normalized email (blank-after-trim becomes nil).
// Returns domain.ErrNotFound — and persists nothing — when the group is absent.
//
// Two concurrent additions for the same group both succeed and produce two
// rows; multiple members joining at once is a normal case, not a conflict.
func (s *MembershipService) AddMember(ctx context.Context, groupID int64, name string, email *string) (domain.GroupMember, error) {
	if _, err := s.groups.GetByID(ctx, groupID); err != nil {
		return domain.GroupMember{}, fmt.Errorf("service.MembershipService.AddMember: %w", err)
	}

	member := domain.GroupMember{
		GroupID:     groupID,
		MemberName:  strings.TrimSpace(name),
		MemberEmail: normalizeEmail(email),
		Role:        "member",
	}

	result, err := s.members.Create(ctx, member)
	if err != nil {
		return domain.GroupMember{}, fmt.Errorf("service.MembershipService.AddMember: %w", err)
	}
	return result, nil
}

// normalizeEmail trims the supplied email and collapses blank values to nil.
func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*email)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
