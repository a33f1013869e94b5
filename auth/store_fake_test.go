package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/accounts-go/accounts"
	"github.com/user/accounts-go/apperror"
)

// fakeStore is an in-memory accounts.Store honoring the same error contract
// as the Postgres adapter. The mutex makes email uniqueness atomic, which is
// what the database constraint guarantees in production.
type fakeStore struct {
	mu    sync.Mutex
	byID  map[string]*accounts.Account
	calls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{byID: make(map[string]*accounts.Account)}
}

func (f *fakeStore) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func clone(a *accounts.Account) *accounts.Account {
	c := *a
	return &c
}

func (f *fakeStore) Create(ctx context.Context, name, email, hashedPassword string) (*accounts.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	email = strings.ToLower(email)
	for _, existing := range f.byID {
		if existing.Email == email {
			return nil, apperror.NewConflictError("email already exists", nil)
		}
	}
	account := &accounts.Account{
		ID:             uuid.NewString(),
		Name:           name,
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now(),
	}
	f.byID[account.ID] = account
	return clone(account), nil
}

func (f *fakeStore) FindByID(ctx context.Context, id string) (*accounts.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	if _, err := uuid.Parse(id); err != nil {
		return nil, apperror.NewBadRequestError("malformed account id", err)
	}
	account, ok := f.byID[id]
	if !ok {
		return nil, apperror.NewNotFoundError("account not found", nil)
	}
	return clone(account), nil
}

func (f *fakeStore) UpdateProfile(ctx context.Context, id, name, email string) (*accounts.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	if _, err := uuid.Parse(id); err != nil {
		return nil, apperror.NewBadRequestError("malformed account id", err)
	}
	account, ok := f.byID[id]
	if !ok {
		return nil, apperror.NewNotFoundError("account not found", nil)
	}
	email = strings.ToLower(email)
	for otherID, other := range f.byID {
		if otherID != id && other.Email == email {
			return nil, apperror.NewConflictError("email already exists", nil)
		}
	}
	account.Name = name
	account.Email = email
	return clone(account), nil
}

func (f *fakeStore) FindByCredentials(ctx context.Context, email, password string) (*accounts.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	email = strings.ToLower(email)
	for _, account := range f.byID {
		if account.Email == email {
			if err := bcrypt.CompareHashAndPassword([]byte(account.HashedPassword), []byte(password)); err != nil {
				return nil, apperror.NewAuthError("invalid email or password", nil)
			}
			return clone(account), nil
		}
	}
	return nil, apperror.NewAuthError("invalid email or password", nil)
}

var _ accounts.Store = (*fakeStore)(nil)
