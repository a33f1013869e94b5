package users

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/user/accounts-go/accounts"
	"github.com/user/accounts-go/apperror"
)

// fakeStore is an in-memory accounts.Store honoring the same error contract
// as the Postgres adapter.
type fakeStore struct {
	mu   sync.Mutex
	byID map[string]*accounts.Account
}

func newFakeStore() *fakeStore {
	return &fakeStore{byID: make(map[string]*accounts.Account)}
}

// seed inserts an account directly, bypassing registration.
func (f *fakeStore) seed(name, email, hashedPassword string) *accounts.Account {
	f.mu.Lock()
	defer f.mu.Unlock()
	account := &accounts.Account{
		ID:             uuid.NewString(),
		Name:           name,
		Email:          strings.ToLower(email),
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now(),
	}
	f.byID[account.ID] = account
	return clone(account)
}

func clone(a *accounts.Account) *accounts.Account {
	c := *a
	return &c
}

func (f *fakeStore) Create(ctx context.Context, name, email, hashedPassword string) (*accounts.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
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
	return nil, apperror.NewAuthError("invalid email or password", nil)
}

var _ accounts.Store = (*fakeStore)(nil)
