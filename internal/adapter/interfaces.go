// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a Go client for the microblog JSON API.
//
// [MicroblogClient] wraps the HTTP routes: it keeps the session token that
// email confirmation and login hand out, attaches it to every later request
// and maps error responses to the sentinel values in errors.go, so callers
// can use [errors.Is] and [errors.As].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-microblog/models"
)

// MicroblogClient talks to a running microblog server.
type MicroblogClient interface {
	// SetToken stores the session token attached to subsequent requests.
	SetToken(token string)

	// Token returns the stored session token, or "" when signed out.
	Token() string

	// Register creates an account. No session is started: the account has to
	// be confirmed with the token mailed to the user first.
	Register(ctx context.Context, req models.RegisterRequest) error

	// ConfirmEmail activates the account holding token, stores the session
	// the server starts and returns the user id.
	ConfirmEmail(ctx context.Context, token string) (int64, error)

	// Login signs in, stores the session and returns the user id.
	Login(ctx context.Context, req models.LoginRequest) (int64, error)

	// Logout ends the session on the server and forgets the token.
	Logout(ctx context.Context) error

	ListUsers(ctx context.Context, page int) (models.Paginated[models.UserView], error)
	ShowUser(ctx context.Context, id int64, page int) (models.UserProfile, error)
	UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) error

	// DeleteUser deletes the account. When it is the signed-in account the
	// stored token is dropped too.
	DeleteUser(ctx context.Context, id int64) error

	PostStatus(ctx context.Context, content string) error
	DeleteStatus(ctx context.Context, id int64) error
}
