package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/user-account-service/internal/models"
)

func TestStorage_CreateUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	user := models.User{
		Username:     "testuser",
		Email:        "test@example.com",
		FullName:     "Test User",
		PasswordHash: "hashedpassword",
		AvatarURL:    "http://media.local/bucket/avatar",
	}

	uid, err := storage.CreateUser(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, uid)
	_, err = uuid.Parse(uid)
	assert.NoError(t, err, "uid should be a valid uuid")

	t.Run("duplicate username", func(t *testing.T) {
		dup := user
		dup.Email = "other@example.com"
		_, err := storage.CreateUser(ctx, dup)
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup := user
		dup.Username = "otheruser"
		_, err := storage.CreateUser(ctx, dup)
		assert.ErrorIs(t, err, ErrUserExists)
	})
}

func TestStorage_GetUserByLogin(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	uid := factory.CreateUser(t, "testuser", "test@example.com", "hashedpassword")

	tests := []struct {
		name    string
		login   string
		wantErr error
	}{
		{name: "by username", login: "testuser"},
		{name: "by email", login: "test@example.com"},
		{name: "unknown login", login: "nobody", wantErr: ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := storage.GetUserByLogin(ctx, tt.login)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uid, got.UID)
			assert.Equal(t, "testuser", got.Username)
			assert.Equal(t, "test@example.com", got.Email)
			assert.Empty(t, got.RefreshToken)
		})
	}
}

func TestStorage_GetUserByUID(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	uid := factory.CreateUser(t, "testuser", "test@example.com", "hashedpassword")

	got, err := storage.GetUserByUID(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "testuser", got.Username)
	assert.False(t, got.CreatedAt.IsZero())

	_, err = storage.GetUserByUID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestStorage_UpdateRefreshToken(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	uid := factory.CreateUser(t, "testuser", "test@example.com", "hashedpassword")

	require.NoError(t, storage.UpdateRefreshToken(ctx, uid, "fresh-token"))

	got, err := storage.GetUserByUID(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", got.RefreshToken)

	// Пустая строка сбрасывает токен
	require.NoError(t, storage.UpdateRefreshToken(ctx, uid, ""))
	got, err = storage.GetUserByUID(ctx, uid)
	require.NoError(t, err)
	assert.Empty(t, got.RefreshToken)

	// Неизвестный пользователь
	err = storage.UpdateRefreshToken(ctx, uuid.New().String(), "token")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestStorage_UpdateUsername(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	uid := factory.CreateUser(t, "testuser", "test@example.com", "hashedpassword")

	updated, err := storage.UpdateUsername(ctx, uid, "freshname")
	require.NoError(t, err)
	assert.Equal(t, "freshname", updated.Username)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))

	t.Run("taken username", func(t *testing.T) {
		otherUID := factory.CreateUser(t, "occupied", "occupied@example.com", "hashedpassword")
		_, err := storage.UpdateUsername(ctx, otherUID, "freshname")
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := storage.UpdateUsername(ctx, uuid.New().String(), "whatever")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestStorage_UpdateProfileFields(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	uid := factory.CreateUser(t, "testuser", "test@example.com", "hashedpassword")

	updated, err := storage.UpdateFullname(ctx, uid, "Fresh Name")
	require.NoError(t, err)
	assert.Equal(t, "Fresh Name", updated.FullName)

	updated, err = storage.UpdateAvatarURL(ctx, uid, "http://media.local/bucket/new-avatar")
	require.NoError(t, err)
	assert.Equal(t, "http://media.local/bucket/new-avatar", updated.AvatarURL)

	updated, err = storage.UpdateCoverImageURL(ctx, uid, "http://media.local/bucket/new-cover")
	require.NoError(t, err)
	assert.Equal(t, "http://media.local/bucket/new-cover", updated.CoverImageURL)
}

func TestStorage_UpdatePasswordHash(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	uid := factory.CreateUser(t, "testuser", "test@example.com", "oldhash")

	require.NoError(t, storage.UpdatePasswordHash(ctx, uid, "newhash"))

	got, err := storage.GetUserByUID(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "newhash", got.PasswordHash)

	err = storage.UpdatePasswordHash(ctx, uuid.New().String(), "hash")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestStorage_ContextCancelled(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.GetUserByLogin(ctx, "testuser")
	assert.ErrorIs(t, err, context.Canceled)
}
