package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/social-stream/internal/model"
)

func TestRelationshipCreateIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRelationshipRepository(db)
	ctx := context.Background()

	seedUser(t, db, "a", "alice")
	seedUser(t, db, "b", "bob")

	require.NoError(t, repo.Create(ctx, "a", "b"))
	// 重复关注：成功且不产生第二条边
	require.NoError(t, repo.Create(ctx, "a", "b"))

	var cnt int64
	require.NoError(t, db.Model(&model.Relationship{}).
		Where("from_user_id = ? AND to_user_id = ?", "a", "b").
		Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt)

	following, err := repo.ListFollowing(ctx, "a")
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "bob", following[0].Username)
}

func TestRelationshipDeleteIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRelationshipRepository(db)
	ctx := context.Background()

	seedUser(t, db, "a", "alice")
	seedUser(t, db, "b", "bob")

	// 不存在的边删除也成功
	require.NoError(t, repo.Delete(ctx, "a", "b"))

	require.NoError(t, repo.Create(ctx, "a", "b"))
	require.NoError(t, repo.Delete(ctx, "a", "b"))

	ok, err := repo.Exists(ctx, "a", "b")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRelationshipDirected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRelationshipRepository(db)
	ctx := context.Background()

	seedUser(t, db, "a", "alice")
	seedUser(t, db, "b", "bob")

	// 单向边：a→b 不意味着 b→a
	require.NoError(t, repo.Create(ctx, "a", "b"))

	ok, err := repo.Exists(ctx, "b", "a")
	require.NoError(t, err)
	assert.False(t, ok)

	followers, err := repo.ListFollowers(ctx, "b")
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, "alice", followers[0].Username)

	followers, err = repo.ListFollowers(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, followers)
}

func TestRelationshipListBothDirections(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRelationshipRepository(db)
	ctx := context.Background()

	seedUser(t, db, "a", "alice")
	seedUser(t, db, "b", "bob")
	seedUser(t, db, "c", "carol")

	require.NoError(t, repo.Create(ctx, "a", "b"))
	require.NoError(t, repo.Create(ctx, "a", "c"))
	require.NoError(t, repo.Create(ctx, "c", "a"))

	following, err := repo.ListFollowing(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, following, 2)

	followers, err := repo.ListFollowers(ctx, "a")
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, "carol", followers[0].Username)
}
