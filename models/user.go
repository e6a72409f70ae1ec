// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// ActivationTokenLength is the number of characters in a freshly generated
// email activation token.
const ActivationTokenLength = 30

// PasswordMaxBytes is the longest password bcrypt accepts.
const PasswordMaxBytes = 72

// User represents a registered account.
// Credential and activation state never leave the server via JSON.
type User struct {
	// ID is the database-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Name is the display name of the user (at most 50 characters).
	Name string `json:"name"`

	// Email is the globally unique address the account was registered with.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// The plaintext password is never stored.
	PasswordHash string `json:"-"`

	// Activated reports whether the email address has been confirmed.
	Activated bool `json:"activated"`

	// ActivationToken holds the one-time confirmation token while the
	// account is not activated. It is nil once the email is confirmed.
	ActivationToken *string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Gravatar returns the gravatar image URL for the user's email address
// rendered at the given size in pixels.
func (u User) Gravatar(size int) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(u.Email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=%d", hex.EncodeToString(sum[:]), size)
}

// Token returns the activation token or an empty string when the account
// has already been confirmed.
func (u User) Token() string {
	if u.ActivationToken == nil {
		return ""
	}
	return *u.ActivationToken
}
