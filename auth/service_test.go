package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/accounts-go/apperror"
	"github.com/user/accounts-go/config"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:     "test-secret",
		Environment:   "development",
		TokenDuration: 168 * time.Hour,
	}
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	store := newFakeStore()
	service := NewAuthService(store, testAuthConfig())

	account, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Jane Doe",
		Email:    "Jane@Example.com",
		Password: "strongpassword123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, account.ID)
	assert.Equal(t, "Jane Doe", account.Name)
	// Emails are stored lowercase.
	assert.Equal(t, "jane@example.com", account.Email)

	// The stored value is a bcrypt hash of the password, not the password.
	assert.NotEqual(t, "strongpassword123", account.HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.HashedPassword), []byte("strongpassword123")))
}

func TestRegisterDuplicateEmailConcurrent(t *testing.T) {
	store := newFakeStore()
	service := NewAuthService(store, testAuthConfig())

	const attempts = 4
	results := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = service.Register(context.Background(), RegisterRequest{
				Name:     "Jane Doe",
				Email:    "jane@example.com",
				Password: "strongpassword123",
			})
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		assert.True(t, apperror.IsConflictError(err), "every failure must be a conflict, got: %v", err)
	}
	assert.Equal(t, 1, successes, "exactly one registration may succeed")
}

func TestLoginIssuesSevenDayToken(t *testing.T) {
	store := newFakeStore()
	cfg := testAuthConfig()
	service := NewAuthService(store, cfg)

	_, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "strongpassword123",
	})
	require.NoError(t, err)

	resp, err := service.Login(context.Background(), LoginRequest{
		Email:    "jane@example.com",
		Password: "strongpassword123",
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Message, "jane@example.com")

	claims, err := ValidateToken(resp.Token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.AccountID)

	wantExpiry := time.Now().Add(cfg.TokenDuration)
	assert.WithinDuration(t, wantExpiry, claims.ExpiresAt.Time, 10*time.Second)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	store := newFakeStore()
	service := NewAuthService(store, testAuthConfig())

	_, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "strongpassword123",
	})
	require.NoError(t, err)

	_, wrongPassword := service.Login(context.Background(), LoginRequest{
		Email:    "jane@example.com",
		Password: "not-the-password",
	})
	_, unknownEmail := service.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "strongpassword123",
	})

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.True(t, apperror.IsAuthError(wrongPassword))
	assert.True(t, apperror.IsAuthError(unknownEmail))
	// No distinguishing signal between the two failure modes.
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	service := NewAuthService(newFakeStore(), testAuthConfig())

	token, _, err := service.GenerateToken("7f8a6a6e-8d0b-4f6a-9f2e-1c9a4f2b3c4d")
	require.NoError(t, err)

	_, err = ValidateToken(token, "a-different-secret")
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	cfg := testAuthConfig()
	cfg.TokenDuration = -time.Hour
	service := NewAuthService(newFakeStore(), cfg)

	token, _, err := service.GenerateToken("7f8a6a6e-8d0b-4f6a-9f2e-1c9a4f2b3c4d")
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.JWTSecret)
	assert.Error(t, err)
}
