// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the payload submitted by the registration form.
type RegisterRequest struct {
	Name                 string `json:"name" validate:"required,max=50"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,min=6,max_bytes=72,eqfield=PasswordConfirmation"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// UpdateUserRequest is the payload submitted by the profile edit form.
// Name and password are always replaced together.
type UpdateUserRequest struct {
	Name                 string `json:"name" validate:"required,max=50"`
	Password             string `json:"password" validate:"required,min=6,max_bytes=72,eqfield=PasswordConfirmation"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// LoginRequest carries the credentials submitted by the login form.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

// CreateStatusRequest is the payload used to publish a new status.
type CreateStatusRequest struct {
	Content string `json:"content" validate:"required,max=140"`
}
