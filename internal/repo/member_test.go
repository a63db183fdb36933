package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsandoval/travel-companion/backend/internal/domain"
	"github.com/jsandoval/travel-companion/backend/internal/repo"
)

func TestMemberRepo_Create(t *testing.T) {
	tx := newTestTx(t)
	groupRepo := repo.NewGroupRepo(tx)
	memberRepo := repo.NewMemberRepo(tx)

	group := mustCreateGroup(t, groupRepo, "A")
	email := "ana@example.com"

	got, err := memberRepo.Create(context.Background(), domain.GroupMember{
		GroupID:     group.ID,
		MemberName:  "Ana",
		MemberEmail: &email,
		Role:        "member",
	})

	require.NoError(t, err)
	assert.NotZero(t, got.ID)
	assert.Equal(t, group.ID, got.GroupID)
	assert.Equal(t, "Ana", got.MemberName)
	require.NotNil(t, got.MemberEmail)
	assert.Equal(t, email, *got.MemberEmail)
	assert.Equal(t, "member", got.Role)
	assert.False(t, got.JoinedAt.IsZero(), "JoinedAt should be set by DB")
}

func TestMemberRepo_Create_NilEmail(t *testing.T) {
	tx := newTestTx(t)
	groupRepo := repo.NewGroupRepo(tx)
	memberRepo := repo.NewMemberRepo(tx)

	group := mustCreateGroup(t, groupRepo, "A")

	got, err := memberRepo.Create(context.Background(), domain.GroupMember{
		GroupID:    group.ID,
		MemberName: "Ben",
		Role:       "member",
	})

	require.NoError(t, err)
	assert.Nil(t, got.MemberEmail)
}

func TestMemberRepo_ListByGroupID(t *testing.T) {
	tx := newTestTx(t)
	groupRepo := repo.NewGroupRepo(tx)
	memberRepo := repo.NewMemberRepo(tx)

	group := mustCreateGroup(t, groupRepo, "A")
	other := mustCreateGroup(t, groupRepo, "B")

	for _, name := range []string{"Ana", "Ben"} {
		_, err := memberRepo.Create(context.Background(), domain.GroupMember{
			GroupID: group.ID, MemberName: name, Role: "member",
		})
		require.NoError(t, err)
	}
	_, err := memberRepo.Create(context.Background(), domain.GroupMember{
		GroupID: other.ID, MemberName: "Cris", Role: "member",
	})
	require.NoError(t, err)

	got, err := memberRepo.ListByGroupID(context.Background(), group.ID)

	require.NoError(t, err)
	require.Len(t, got, 2, "members of the other group must not leak in")
	assert.Equal(t, "Ana", got[0].MemberName)
	assert.Equal(t, "Ben", got[1].MemberName)
}

func TestMemberRepo_ListByGroupID_EmptyIsNotNil(t *testing.T) {
	tx := newTestTx(t)
	groupRepo := repo.NewGroupRepo(tx)
	memberRepo := repo.NewMemberRepo(tx)

	group := mustCreateGroup(t, groupRepo, "A")

	got, err := memberRepo.ListByGroupID(context.Background(), group.ID)

	require.NoError(t, err)
	require.NotNil(t, got, "empty member list must serialize as [], not null")
	assert.Empty(t, got)
}
