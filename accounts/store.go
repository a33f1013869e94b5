package accounts

import "context"

// Store is the persistence contract for accounts.
//
// Implementations classify every failure into an apperror kind:
//   - Create: ConflictError on an email uniqueness violation,
//     ValidationError on a field-level rejection.
//   - FindByID: BadRequestError when id is not a well-formed identifier
//     (distinct from absence), NotFoundError when no account exists.
//   - UpdateProfile: NotFoundError when the account is absent,
//     ConflictError when the new email collides with another account.
//     The returned account reflects the post-update row.
//   - FindByCredentials: AuthError when the email is unknown OR the
//     password does not match; the two cases are indistinguishable to
//     the caller so account existence cannot be probed.
//
// Anything unrecognized surfaces as a DatabaseError.
type Store interface {
	Create(ctx context.Context, name, email, hashedPassword string) (*Account, error)
	FindByID(ctx context.Context, id string) (*Account, error)
	UpdateProfile(ctx context.Context, id, name, email string) (*Account, error)
	FindByCredentials(ctx context.Context, email, password string) (*Account, error)
}
