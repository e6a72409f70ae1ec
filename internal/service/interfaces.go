// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-microblog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService orchestrates the user account lifecycle: listing, profile
// pages, registration with email confirmation, editing and deletion.
//
// Operations that mutate an account take the acting [models.Identity]
// explicitly and check it against the ownership policy.
type UserService interface {
	// List returns one page of users in a stable order.
	List(ctx context.Context, page models.Page) (models.Paginated[models.UserView], error)
	// Show returns the user and one page of its feed. Returns ErrNotFound.
	Show(ctx context.Context, id int64, page models.Page) (models.UserProfile, error)
	// Register creates an unactivated account and sends the confirmation
	// email. Returns *ValidationError or ErrMailTransport.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// Edit returns the user for the edit form. Returns ErrNotFound or
	// ErrForbidden.
	Edit(ctx context.Context, actor models.Identity, id int64) (models.User, error)
	// Update replaces the name and password. Returns ErrNotFound,
	// ErrForbidden or *ValidationError.
	Update(ctx context.Context, actor models.Identity, id int64, req models.UpdateUserRequest) (models.User, error)
	// Destroy deletes the user and its statuses. Returns ErrNotFound or
	// ErrForbidden.
	Destroy(ctx context.Context, actor models.Identity, id int64) error
	// ConfirmEmail activates the account holding token. The token can be
	// used once; afterwards ErrNotFound is returned.
	ConfirmEmail(ctx context.Context, token string) (models.User, error)
}

// StatusService publishes and deletes statuses.
type StatusService interface {
	Create(ctx context.Context, actor models.Identity, req models.CreateStatusRequest) (models.Status, error)
	// Destroy deletes the status. Returns ErrNotFound or ErrForbidden.
	Destroy(ctx context.Context, actor models.Identity, id int64) error
}

// AuthService checks credentials and manages session tokens.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build information about the running application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}
