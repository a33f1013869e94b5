package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/accounts-go/accounts"
	"github.com/user/accounts-go/config"
)

// AuthService provides registration and login on top of the account store.
// Persistence failures arrive already classified by the store adapter, so
// this layer only adds hashing and token issuance.
type AuthService struct {
	store      accounts.Store
	authConfig config.AuthConfig
}

// NewAuthService creates a new AuthService.
func NewAuthService(store accounts.Store, authConfig config.AuthConfig) *AuthService {
	return &AuthService{
		store:      store,
		authConfig: authConfig,
	}
}

// Claims defines the payload of issued session tokens. It embeds the
// standard registered claims (exp, iat, nbf) and binds the account id.
type Claims struct {
	AccountID string `json:"account_id"`
	jwt.RegisteredClaims
}

// Register creates a new account. The password is hashed before anything is
// persisted; the plaintext never leaves this function.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*accounts.Account, error) {
	// bcrypt.DefaultCost is 10, suitable for interactive authentication.
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account, err := s.store.Create(ctx, req.Name, req.Email, string(hashedPassword))
	if err != nil {
		return nil, err
	}
	return account, nil
}

// Login verifies credentials and issues a signed session token. The store
// reports unknown email and wrong password identically, and that error is
// forwarded untouched.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	account, err := s.store.FindByCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, _, err := s.GenerateToken(account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &LoginResponse{
		Token:   token,
		Message: fmt.Sprintf("successful login for %s", account.Email),
	}, nil
}

// TokenDuration returns the configured session token lifetime. Handlers use
// it to align the cookie max-age with the token expiry.
func (s *AuthService) TokenDuration() time.Duration {
	return s.authConfig.TokenDuration
}

// GenerateToken creates a signed session token bound to the account id,
// expiring after the configured duration.
func (s *AuthService) GenerateToken(accountID string) (string, time.Time, error) {
	now := time.Now()
	expirationTime := now.Add(s.authConfig.TokenDuration)
	claims := &Claims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "accounts-api",
			Subject:   accountID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.authConfig.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, expirationTime, nil
}

// ValidateToken parses and validates a session token string, checking the
// signature, expiry and that an account id is present.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}
	if claims.AccountID == "" {
		return nil, errors.New("token is missing the account_id claim")
	}
	return claims, nil
}
