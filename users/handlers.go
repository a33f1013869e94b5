// HTTP handlers for profile management. Both routes operate on the
// currently authenticated account, whose id is supplied by the auth
// middleware through the request context.
package users

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/user/accounts-go/apperror"
	"github.com/user/accounts-go/auth"
)

// UserHandlers provides HTTP handlers for profile management.
type UserHandlers struct {
	service  *UserService
	validate *validator.Validate
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(service *UserService) *UserHandlers {
	return &UserHandlers{
		service:  service,
		validate: validator.New(),
	}
}

// HandleGetProfile godoc
// @Summary Get the current account's profile
// @Description Retrieves the profile of the currently authenticated account.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} accounts.Account "Profile retrieved"
// @Failure 400 {object} apperror.ErrorResponse "Malformed account id"
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} apperror.ErrorResponse "Account not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /users/me [get]
func (h *UserHandlers) HandleGetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := auth.AccountIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("no authenticated account in request context", nil))
			return
		}

		profile, err := h.service.GetProfile(r.Context(), accountID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}

// HandleUpdateProfile godoc
// @Summary Update the current account's profile
// @Description Replaces the name and email of the currently authenticated
// @Description account and returns the updated values.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profileBody body users.UpdateProfileRequest true "Replacement profile fields"
// @Success 200 {object} users.UpdateProfileResponse "Profile updated"
// @Failure 400 {object} apperror.ErrorResponse "Invalid input"
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} apperror.ErrorResponse "Account not found"
// @Failure 409 {object} apperror.ErrorResponse "Email already in use"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /users/me [put]
func (h *UserHandlers) HandleUpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := auth.AccountIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("no authenticated account in request context", nil))
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if err := h.validate.Struct(req); err != nil {
			auth.WriteError(w, r, apperror.NewValidationError("name and a valid email are required", err))
			return
		}

		updated, err := h.service.UpdateProfile(r.Context(), accountID, &req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(updated)
	}
}
