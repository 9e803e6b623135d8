package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/fantasy_league/internal/database/testdb"
	"github.com/festy23/fantasy_league/internal/user/model"
)

func newUser(email string) *model.User {
	return &model.User{
		Email:        email,
		Username:     email,
		PasswordHash: "hash",
		FirstName:    "Robin",
		LastName:     "Hood",
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	db := testdb.New(t)
	repo := New(db, zap.NewNop().Sugar())
	ctx := context.Background()

	user := newUser("robin@example.com")
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "robin@example.com", got.Email)
	assert.Equal(t, "Robin", got.FirstName)
	assert.False(t, got.IsStaff)
}

func TestRepository_CreateDuplicateEmail(t *testing.T) {
	db := testdb.New(t)
	repo := New(db, zap.NewNop().Sugar())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("robin@example.com")))
	err := repo.Create(ctx, newUser("robin@example.com"))
	assert.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo := New(testdb.New(t), zap.NewNop().Sugar())

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestRepository_Verification(t *testing.T) {
	db := testdb.New(t)
	repo := New(db, zap.NewNop().Sugar())
	ctx := context.Background()

	user := newUser("robin@example.com")
	require.NoError(t, repo.Create(ctx, user))
	require.NoError(t, repo.CreateVerification(ctx, &model.EmailVerification{UserID: user.ID, Code: "abc"}))

	v, err := repo.GetVerification(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "abc", v.Code)
	assert.False(t, v.IsVerified)

	require.NoError(t, repo.SetVerified(ctx, user.ID, true))
	v, err = repo.GetVerification(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, v.IsVerified)

	t.Run("missing record", func(t *testing.T) {
		_, err := repo.GetVerification(ctx, 404)
		assert.ErrorIs(t, err, model.ErrUserNotFound)
		assert.ErrorIs(t, repo.SetVerified(ctx, 404, true), model.ErrUserNotFound)
	})
}
