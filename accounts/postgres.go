package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/accounts-go/apperror"
)

// PostgreSQL error codes relevant to account persistence.
const (
	pgUniqueViolation  = "23505"
	pgNotNullViolation = "23502"
	pgCheckViolation   = "23514"
)

// PostgresStore is the pgx-backed Store implementation.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a PostgresStore on top of an existing pool.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// compile-time check that PostgresStore satisfies Store
var _ Store = (*PostgresStore)(nil)

// Create inserts a new account. The identifier is assigned here and is never
// updated afterwards.
func (s *PostgresStore) Create(ctx context.Context, name, email, hashedPassword string) (*Account, error) {
	account := &Account{
		ID:             uuid.NewString(),
		Name:           name,
		Email:          strings.ToLower(email),
		HashedPassword: hashedPassword,
	}

	query := `INSERT INTO accounts (id, name, email, password)
	          VALUES ($1, $2, $3, $4)
	          RETURNING created_at`
	err := s.db.QueryRow(ctx, query, account.ID, account.Name, account.Email, account.HashedPassword).Scan(&account.CreatedAt)
	if err != nil {
		return nil, classifyPgError(err, "failed to create account")
	}
	return account, nil
}

// FindByID looks up an account by identifier. A malformed identifier is a
// distinct failure from a well-formed but absent one.
func (s *PostgresStore) FindByID(ctx context.Context, id string) (*Account, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperror.NewBadRequestError("malformed account id", err)
	}

	var account Account
	query := `SELECT id, name, email, password, created_at FROM accounts WHERE id = $1`
	err := s.db.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.HashedPassword,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("account not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get account", err)
	}
	return &account, nil
}

// UpdateProfile replaces name and email on the identified account and returns
// the post-update row.
func (s *PostgresStore) UpdateProfile(ctx context.Context, id, name, email string) (*Account, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperror.NewBadRequestError("malformed account id", err)
	}

	var account Account
	query := `UPDATE accounts
	          SET name = $1, email = $2
	          WHERE id = $3
	          RETURNING id, name, email, password, created_at`
	err := s.db.QueryRow(ctx, query, name, strings.ToLower(email), id).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.HashedPassword,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("account not found", nil)
		}
		return nil, classifyPgError(err, "failed to update account")
	}
	return &account, nil
}

// FindByCredentials looks up an account by email and verifies the password
// against the stored hash. Unknown email and wrong password fail with the
// same error so callers cannot enumerate accounts.
func (s *PostgresStore) FindByCredentials(ctx context.Context, email, password string) (*Account, error) {
	var account Account
	query := `SELECT id, name, email, password, created_at FROM accounts WHERE email = $1`
	err := s.db.QueryRow(ctx, query, strings.ToLower(email)).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.HashedPassword,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewAuthError("invalid email or password", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get account", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.HashedPassword), []byte(password)); err != nil {
		return nil, apperror.NewAuthError("invalid email or password", nil)
	}
	return &account, nil
}

// classifyPgError maps write-path PostgreSQL errors onto the application
// error taxonomy. Unique violations on email become conflicts, constraint
// rejections become validation errors, everything else stays a database
// error carrying the fallback message.
func classifyPgError(err error, fallback string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if strings.Contains(pgErr.ConstraintName, "email") {
				return apperror.NewConflictError("email already exists", nil)
			}
			return apperror.NewConflictError("account already exists", nil)
		case pgNotNullViolation, pgCheckViolation:
			return apperror.NewValidationError(fmt.Sprintf("invalid account data: %s", pgErr.Message), nil)
		}
	}
	return apperror.NewDatabaseError(fallback, err)
}
