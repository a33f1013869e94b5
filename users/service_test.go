package users

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/accounts-go/apperror"
	"github.com/user/accounts-go/auth"
	"github.com/user/accounts-go/config"
)

func TestGetProfile(t *testing.T) {
	store := newFakeStore()
	service := NewUserService(store)
	seeded := store.seed("Jane Doe", "jane@example.com", "$2a$10$hash")

	profile, err := service.GetProfile(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, profile.ID)
	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, "jane@example.com", profile.Email)
}

// Registration and profile retrieval share one store; a freshly registered
// account must be readable with matching fields and without any hash.
func TestRegisterThenGetProfileRoundTrip(t *testing.T) {
	store := newFakeStore()
	authService := auth.NewAuthService(store, config.AuthConfig{
		JWTSecret:     "test-secret",
		Environment:   "development",
		TokenDuration: 168 * time.Hour,
	})
	userService := NewUserService(store)

	account, err := authService.Register(context.Background(), auth.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "strongpassword123",
	})
	require.NoError(t, err)

	profile, err := userService.GetProfile(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, "jane@example.com", profile.Email)

	body, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "password")
	assert.NotContains(t, string(body), profile.HashedPassword)
}

func TestGetProfileMalformedIDDistinctFromAbsent(t *testing.T) {
	store := newFakeStore()
	service := NewUserService(store)

	// Malformed identifier: a format error, not an absence.
	_, err := service.GetProfile(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.True(t, apperror.IsBadRequest(err))
	assert.False(t, apperror.IsNotFound(err))

	// Well-formed but absent identifier.
	_, err = service.GetProfile(context.Background(), "7f8a6a6e-8d0b-4f6a-9f2e-1c9a4f2b3c4d")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.False(t, apperror.IsBadRequest(err))
}

func TestUpdateProfileReturnsPostUpdateValues(t *testing.T) {
	store := newFakeStore()
	service := NewUserService(store)
	seeded := store.seed("Jane Doe", "jane@example.com", "$2a$10$hash")

	updated, err := service.UpdateProfile(context.Background(), seeded.ID, &UpdateProfileRequest{
		Name:  "Jane Smith",
		Email: "jane.smith@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", updated.Name)
	assert.Equal(t, "jane.smith@example.com", updated.Email)

	// A subsequent read reflects the new values.
	profile, err := service.GetProfile(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", profile.Name)
	assert.Equal(t, "jane.smith@example.com", profile.Email)
	// The identifier never changes.
	assert.Equal(t, seeded.ID, profile.ID)
}

func TestUpdateProfileAbsentAccount(t *testing.T) {
	service := NewUserService(newFakeStore())

	_, err := service.UpdateProfile(context.Background(), "7f8a6a6e-8d0b-4f6a-9f2e-1c9a4f2b3c4d", &UpdateProfileRequest{
		Name:  "Jane Smith",
		Email: "jane.smith@example.com",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateProfileEmailCollision(t *testing.T) {
	store := newFakeStore()
	service := NewUserService(store)
	store.seed("Jane Doe", "jane@example.com", "$2a$10$hash")
	other := store.seed("John Doe", "john@example.com", "$2a$10$hash")

	_, err := service.UpdateProfile(context.Background(), other.ID, &UpdateProfileRequest{
		Name:  "John Doe",
		Email: "jane@example.com",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsConflictError(err))
}
