// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-microblog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts in the "users" table.
type UserRepository interface {
	// CreateUser inserts user and runs afterCreate with the stored record
	// inside the same transaction. An error from afterCreate rolls the
	// insert back and is returned unchanged.
	CreateUser(ctx context.Context, user models.User, afterCreate func(ctx context.Context, created models.User) error) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// ListUsers returns one page of users ordered by id.
	ListUsers(ctx context.Context, page models.Page) ([]models.User, error)
	CountUsers(ctx context.Context) (int64, error)
	// UpdateUser stores the name and password hash of user.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	// ActivateUser marks the user holding token as activated and clears the
	// token in a single statement, so a token can be consumed only once.
	ActivateUser(ctx context.Context, token string) (models.User, error)
	// DeleteUser removes the user together with every status it owns.
	DeleteUser(ctx context.Context, id int64) error
}

// StatusRepository persists statuses in the "statuses" table.
type StatusRepository interface {
	CreateStatus(ctx context.Context, status models.Status) (models.Status, error)
	FindStatusByID(ctx context.Context, id int64) (models.Status, error)
	// ListStatusesByUser returns one page of the user's statuses, newest first.
	ListStatusesByUser(ctx context.Context, userID int64, page models.Page) ([]models.Status, error)
	CountStatusesByUser(ctx context.Context, userID int64) (int64, error)
	DeleteStatus(ctx context.Context, id int64) error
}
