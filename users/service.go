// Business logic for profile management. The service is a thin layer over
// the account store: classification of persistence failures already
// happened at the store boundary.
package users

import (
	"context"

	"github.com/user/accounts-go/accounts"
)

// UserService provides methods for profile management.
type UserService struct {
	store accounts.Store
}

// NewUserService creates a new UserService.
func NewUserService(store accounts.Store) *UserService {
	return &UserService{store: store}
}

// GetProfile retrieves an account by its identifier. The store distinguishes
// a malformed identifier (bad request) from an absent one (not found).
func (s *UserService) GetProfile(ctx context.Context, accountID string) (*accounts.Account, error) {
	return s.store.FindByID(ctx, accountID)
}

// UpdateProfile replaces the account's name and email and returns the
// post-update values, not a pre-update copy.
func (s *UserService) UpdateProfile(ctx context.Context, accountID string, req *UpdateProfileRequest) (*UpdateProfileResponse, error) {
	account, err := s.store.UpdateProfile(ctx, accountID, req.Name, req.Email)
	if err != nil {
		return nil, err
	}
	return &UpdateProfileResponse{
		Name:  account.Name,
		Email: account.Email,
	}, nil
}
