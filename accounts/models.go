// Package accounts defines the account entity and the persistence boundary
// for it. The Store interface is the only way the rest of the application
// touches account records; its Postgres implementation translates every
// driver error into an apperror kind at this boundary, so service and
// handler code never inspects pgx internals.
package accounts

import "time"

// Account represents a registered user.
// The json:"-" tag on HashedPassword keeps the hash out of every API
// response; the field exists only for credential verification.
type Account struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}
