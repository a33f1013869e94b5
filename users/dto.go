// Package users encapsulates profile management for the authenticated
// account: retrieval and update of name and email.
// This file defines the request/response shapes for those operations.
package users

// UpdateProfileRequest carries the replacement profile fields. Both fields
// are required: an update replaces name and email together. The password is
// not updatable through this interface.
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required" example:"Jane Doe"`
	Email string `json:"email" validate:"required,email" example:"jane@example.com"`
}

// UpdateProfileResponse returns the post-update field values.
type UpdateProfileResponse struct {
	Name  string `json:"name" example:"Jane Doe"`
	Email string `json:"email" example:"jane@example.com"`
}
