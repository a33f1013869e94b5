// HTTP handlers for the auth package: registration, login and logout.
// Handlers decode and validate request DTOs, call the service layer, and
// translate every failure through the shared apperror presentation path.
package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/user/accounts-go/apperror"
	"github.com/user/accounts-go/config"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "jwt"

// Handlers wraps the AuthService to provide HTTP handlers.
type Handlers struct {
	service  *AuthService
	validate *validator.Validate
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{
		service:  service,
		validate: validator.New(),
	}
}

// HandleRegister godoc
// @Summary Register a new account
// @Description Creates an account with the given name, email and password.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "Registration details"
// @Success 201 {object} auth.RegisterResponse "Account created"
// @Failure 400 {object} apperror.ErrorResponse "Invalid input"
// @Failure 409 {object} apperror.ErrorResponse "Email already registered"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if err := h.validate.Struct(req); err != nil {
			WriteError(w, r, apperror.NewValidationError(validationMessage(err), err))
			return
		}

		account, err := h.service.Register(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		// The response carries identifier, email and name only; the stored
		// hash is never serialized.
		writeJSON(w, http.StatusCreated, RegisterResponse{
			ID:    account.ID,
			Email: account.Email,
			Name:  account.Name,
		})
	}
}

// HandleLogin godoc
// @Summary Log in
// @Description Verifies credentials, issues a session token valid for 7 days
// @Description and sets it as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "Login credentials"
// @Success 200 {object} auth.LoginResponse "Login successful"
// @Failure 400 {object} apperror.ErrorResponse "Invalid input"
// @Failure 401 {object} apperror.ErrorResponse "Invalid credentials"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if err := h.validate.Struct(req); err != nil {
			WriteError(w, r, apperror.NewValidationError(validationMessage(err), err))
			return
		}

		resp, err := h.service.Login(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		h.setSessionCookie(w, resp.Token)
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleLogout godoc
// @Summary End the session
// @Description Clears the session cookie. Stateless: no account context is
// @Description required and no store interaction happens.
// @Tags auth
// @Produce json
// @Success 200 {object} auth.MessageResponse "Session ended"
// @Router /auth/logout [post]
func (h *Handlers) HandleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clearSessionCookie(w)
		writeJSON(w, http.StatusOK, MessageResponse{Message: "session ended"})
	}
}

// setSessionCookie aligns the cookie lifetime with the token expiry.
func (h *Handlers) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.service.TokenDuration().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   h.service.authConfig.Environment == config.EnvProduction,
	})
}

// clearSessionCookie instructs the caller's agent to discard the token.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// validationMessage flattens validator errors into a single user-facing
// message.
func validationMessage(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "invalid request payload"
	}
	parts := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", strings.ToLower(fieldErr.Field())))
		case "email":
			parts = append(parts, fmt.Sprintf("%s must be a valid email address", strings.ToLower(fieldErr.Field())))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", strings.ToLower(fieldErr.Field())))
		}
	}
	return strings.Join(parts, "; ")
}

// writeJSON serializes data to JSON and writes it with the given status.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// WriteError converts any error into the standardized error response.
// Errors that are not AppErrors pass through the generic 500 path unchanged.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred", err)
	}
	writeJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
