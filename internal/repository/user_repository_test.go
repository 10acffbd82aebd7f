package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/social-stream/internal/model"
	"github.com/d60-Lab/social-stream/pkg/errs"
)

func TestUserRepositoryCreate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &model.User{Username: "alice", Email: "alice@example.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestUserRepositoryCreateDuplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.User{Username: "alice", Email: "alice@example.com", Password: "h"}))

	// 用户名冲突
	err := repo.Create(ctx, &model.User{Username: "alice", Email: "other@example.com", Password: "h"})
	assert.ErrorIs(t, err, errs.ErrAlreadyExists)

	// 邮箱冲突
	err = repo.Create(ctx, &model.User{Username: "bob", Email: "alice@example.com", Password: "h"})
	assert.ErrorIs(t, err, errs.ErrAlreadyExists)
}

func TestUserRepositoryGetByUsernameCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "u1", "Bob")

	for _, name := range []string{"Bob", "bob", "BOB"} {
		u, err := repo.GetByUsername(ctx, name)
		require.NoError(t, err, name)
		assert.Equal(t, "Bob", u.Username)
	}

	_, err := repo.GetByUsername(ctx, "charlie")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestUserRepositoryGetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "u1", "alice")

	u, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestUserRepositoryGetByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "u1", "alice")

	u, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
