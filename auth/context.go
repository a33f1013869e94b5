// Context utilities for carrying the authenticated account id through a
// request's lifetime.
package auth

import "context"

// contextKey is a custom type for context keys to avoid collisions with
// values stored by other packages.
type contextKey string

const accountIDContextKey contextKey = "account_id"

// NewContextWithAccountID returns a child context carrying the account id.
func NewContextWithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, accountIDContextKey, accountID)
}

// AccountIDFromContext extracts the account id set by the middleware.
// The second return value reports whether an id was present.
func AccountIDFromContext(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(accountIDContextKey).(string)
	return accountID, ok && accountID != ""
}
