package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/social-stream/internal/repository"
	"github.com/d60-Lab/social-stream/pkg/errs"
)

func TestFollowCaseInsensitiveTarget(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRelationshipService(repository.NewRelationshipRepository(db), repository.NewUserRepository(db))
	ctx := context.Background()

	seedUser(t, db, "a", "alice")
	seedUser(t, db, "b", "Bob")

	// 存储为 Bob，按 bob 解析也要命中
	target, err := svc.Follow(ctx, "a", "bob")
	require.NoError(t, err)
	assert.Equal(t, "Bob", target.Username)

	following, err := svc.Following(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "Bob", following[0].Username)
}

func TestFollowUnknownTarget(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRelationshipService(repository.NewRelationshipRepository(db), repository.NewUserRepository(db))
	ctx := context.Background()

	seedUser(t, db, "a", "alice")

	_, err := svc.Follow(ctx, "a", "ghost")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestFollowSelfRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRelationshipService(repository.NewRelationshipRepository(db), repository.NewUserRepository(db))
	ctx := context.Background()

	seedUser(t, db, "a", "alice")

	_, err := svc.Follow(ctx, "a", "Alice")
	assert.ErrorIs(t, err, ErrFollowSelf)
}

func TestFollowTwiceSingleEdge(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRelationshipService(repository.NewRelationshipRepository(db), repository.NewUserRepository(db))
	ctx := context.Background()

	seedUser(t, db, "a", "alice")
	seedUser(t, db, "b", "bob")

	_, err := svc.Follow(ctx, "a", "bob")
	require.NoError(t, err)
	_, err = svc.Follow(ctx, "a", "bob")
	require.NoError(t, err)

	following, err := svc.Following(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, following, 1)
}

func TestUnfollowMissingEdgeNoError(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRelationshipService(repository.NewRelationshipRepository(db), repository.NewUserRepository(db))
	ctx := context.Background()

	seedUser(t, db, "a", "alice")
	seedUser(t, db, "b", "bob")

	_, err := svc.Unfollow(ctx, "a", "bob")
	require.NoError(t, err)
}

func TestFollowersReflectsFollow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRelationshipService(repository.NewRelationshipRepository(db), repository.NewUserRepository(db))
	ctx := context.Background()

	seedUser(t, db, "a", "alice")
	seedUser(t, db, "b", "bob")

	_, err := svc.Follow(ctx, "a", "bob")
	require.NoError(t, err)

	followers, err := svc.Followers(ctx, "BOB")
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, "alice", followers[0].Username)

	_, err = svc.Unfollow(ctx, "a", "bob")
	require.NoError(t, err)

	followers, err = svc.Followers(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, followers)
}
