// Authentication middleware for protected routes. Verification is the only
// session check that exists: there is no server-side session record, so a
// request is authenticated purely by the token's signature and expiry.
package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/user/accounts-go/apperror"
	"github.com/user/accounts-go/config"
)

// Middleware creates the session-token authentication middleware.
// The token is read from the session cookie first (the form this API issues)
// with an Authorization: Bearer fallback for non-browser clients. On success
// the account id is placed in the request context.
func Middleware(cfg *config.AuthConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := tokenFromRequest(r)
			if err != nil {
				WriteError(w, r, apperror.NewAuthError(err.Error(), nil))
				return
			}

			claims, err := ValidateToken(tokenString, cfg.JWTSecret)
			if err != nil {
				WriteError(w, r, apperror.NewAuthError("invalid session token", err))
				return
			}

			ctx := NewContextWithAccountID(r.Context(), claims.AccountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// tokenFromRequest extracts the raw token from the cookie or the
// Authorization header.
func tokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("authorization required")
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", fmt.Errorf("authorization header format must be Bearer {token}")
	}
	return parts[1], nil
}
