package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsandoval/travel-companion/backend/internal/domain"
	"github.com/jsandoval/travel-companion/backend/internal/repo"
	"github.com/jsandoval/travel-companion/backend/internal/service"
)

// mockMemberRepo is a hand-written test double for repo.MemberRepo.
type mockMemberRepo struct {
	create        func(ctx context.Context, member domain.GroupMember) (domain.GroupMember, error)
	listByGroupID func(ctx context.Context, groupID int64) ([]domain.GroupMember, error)
}

func (m *mockMemberRepo) Create(ctx context.Context, member domain.GroupMember) (domain.GroupMember, error) {
	return m.create(ctx, member)
}
func (m *mockMemberRepo) ListByGroupID(ctx context.Context, groupID int64) ([]domain.GroupMember, error) {
	return m.listByGroupID(ctx, groupID)
}

var _ repo.MemberRepo = (*mockMemberRepo)(nil)

// existingGroupRepo returns a mockGroupRepo whose GetByID always succeeds.
func existingGroupRepo() *mockGroupRepo {
	return &mockGroupRepo{
		getByID: func(_ context.Context, id int64) (domain.Group, error) {
			return storedGroup(id, "A"), nil
		},
	}
}

func TestMembershipService_AddMember_NormalizesInput(t *testing.T) {
	email := "  ana@example.com  "
	var inserted domain.GroupMember

	svc := service.NewMembershipService(existingGroupRepo(), &mockMemberRepo{
		create: func(_ context.Context, m domain.GroupMember) (domain.GroupMember, error) {
			inserted = m
			m.ID = 10
			return m, nil
		},
	})

	got, err := svc.AddMember(context.Background(), 1, "  Ana  ", &email)

	require.NoError(t, err)
	assert.Equal(t, "Ana", inserted.MemberName)
	require.NotNil(t, inserted.MemberEmail)
	assert.Equal(t, "ana@example.com", *inserted.MemberEmail)
	assert.Equal(t, "member", inserted.Role)
	assert.Equal(t, int64(10), got.ID)
}

func TestMembershipService_AddMember_BlankEmailBecomesNil(t *testing.T) {
	email := "   "
	var inserted domain.GroupMember

	svc := service.NewMembershipService(existingGroupRepo(), &mockMemberRepo{
		create: func(_ context.Context, m domain.GroupMember) (domain.GroupMember, error) {
			inserted = m
			return m, nil
		},
	})

	_, err := svc.AddMember(context.Background(), 1, "Ana", &email)

	require.NoError(t, err)
	assert.Nil(t, inserted.MemberEmail)
}

func TestMembershipService_AddMember_GroupNotFound(t *testing.T) {
	svc := service.NewMembershipService(
		&mockGroupRepo{
			getByID: func(_ context.Context, _ int64) (domain.Group, error) {
				return domain.Group{}, domain.ErrNotFound
			},
		},
		&mockMemberRepo{
			create: func(_ context.Context, _ domain.GroupMember) (domain.GroupMember, error) {
				t.Fatal("no membership row may be written for a missing group")
				return domain.GroupMember{}, nil
			},
		},
	)

	_, err := svc.AddMember(context.Background(), 999, "Ana", nil)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
