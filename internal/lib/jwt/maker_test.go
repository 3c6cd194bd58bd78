package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/user-account-service/internal/models"
)

func testUser() *models.User {
	return &models.User{
		UID:      "6f1a2f5e-1111-2222-3333-444455556666",
		Email:    "ann@x.com",
		Username: "annlee",
		FullName: "Ann Lee",
	}
}

func TestMaker_GenerateAndParseAccessToken(t *testing.T) {
	maker := NewMaker("access_secret_1234567890", "refresh_secret_1234567890", 15*time.Minute, 240*time.Hour)

	tests := []struct {
		name string
		user *models.User
	}{
		{
			name: "regular user",
			user: testUser(),
		},
		{
			name: "user with unicode full name",
			user: &models.User{UID: "uid-2", Email: "ivan@x.com", Username: "ivan", FullName: "Иван Иванов"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateAccessToken(tt.user)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseAccessToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.user.UID, claims.UserUID)
			assert.Equal(t, tt.user.Email, claims.Email)
			assert.Equal(t, tt.user.Username, claims.Username)
			assert.Equal(t, tt.user.FullName, claims.FullName)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestMaker_GenerateAndParseRefreshToken(t *testing.T) {
	maker := NewMaker("access_secret_1234567890", "refresh_secret_1234567890", 15*time.Minute, 240*time.Hour)
	user := testUser()

	token, err := maker.GenerateRefreshToken(user)
	require.NoError(t, err)

	claims, err := maker.ParseRefreshToken(token)
	require.NoError(t, err)

	assert.Equal(t, user.UID, claims.UserUID)
	assert.WithinDuration(t, time.Now().Add(240*time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestMaker_TokensAreNotInterchangeable(t *testing.T) {
	maker := NewMaker("access_secret_1234567890", "refresh_secret_1234567890", 15*time.Minute, 240*time.Hour)
	user := testUser()

	accessToken, err := maker.GenerateAccessToken(user)
	require.NoError(t, err)
	refreshToken, err := maker.GenerateRefreshToken(user)
	require.NoError(t, err)

	_, err = maker.ParseRefreshToken(accessToken)
	assert.Error(t, err, "access token must not validate against refresh secret")

	_, err = maker.ParseAccessToken(refreshToken)
	assert.Error(t, err, "refresh token must not validate against access secret")
}

func TestMaker_ParseToken_InvalidTokens(t *testing.T) {
	maker := NewMaker("access_secret_1234567890", "refresh_secret_1234567890", 15*time.Minute, 240*time.Hour)

	otherMaker := NewMaker("another_secret_0987654321", "another_refresh_0987654321", 15*time.Minute, 240*time.Hour)
	foreignToken, err := otherMaker.GenerateAccessToken(testUser())
	require.NoError(t, err)

	expiredMaker := NewMaker("access_secret_1234567890", "refresh_secret_1234567890", -time.Minute, -time.Minute)
	expiredToken, err := expiredMaker.GenerateAccessToken(testUser())
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "malformed token",
			token: "invalid.token.here",
		},
		{
			name:  "token signed with another secret",
			token: foreignToken,
		},
		{
			name:  "expired token",
			token: expiredToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseAccessToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
