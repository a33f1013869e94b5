// Package auth provides authentication functionality: registration, login
// with session-token issuance, logout, and the middleware that guards
// protected routes.
// This file defines the data transfer objects for those operations.
package auth

// RegisterRequest represents the registration request payload.
// The validate tags describe field-level requirements checked before the
// request reaches the service layer.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required" example:"Jane Doe"`
	Email    string `json:"email" validate:"required,email" example:"jane@example.com"`
	Password string `json:"password" validate:"required" example:"strongpassword123"`
}

// RegisterResponse is returned on successful registration. It carries the
// identifier, email and name; no password material.
type RegisterResponse struct {
	ID    string `json:"id" example:"7f8a6a6e-8d0b-4f6a-9f2e-1c9a4f2b3c4d"`
	Email string `json:"email" example:"jane@example.com"`
	Name  string `json:"name" example:"Jane Doe"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"jane@example.com"`
	Password string `json:"password" validate:"required" example:"strongpassword123"`
}

// LoginResponse is returned on successful login. The same token is also set
// as the session cookie.
type LoginResponse struct {
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Message string `json:"message" example:"successful login for jane@example.com"`
}

// MessageResponse is a generic confirmation payload.
type MessageResponse struct {
	Message string `json:"message" example:"session ended"`
}
