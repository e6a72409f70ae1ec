// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the server packages: request
// context keys, password hashing, activation token generation, JSON
// responses, the resty client and session JWTs.
package utils

import (
	"context"

	"github.com/MKhiriev/go-microblog/models"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the int64 id of the signed-in user in a request
// context. The auth middleware sets it after validating the session.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the signed-in user id and whether one of the
// right type was present.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// IdentityFromContext returns the identity the request acts on behalf of.
// Requests without a positive user id are [models.Guest].
func IdentityFromContext(ctx context.Context) models.Identity {
	userID, ok := GetUserIDFromContext(ctx)
	if !ok || userID <= 0 {
		return models.Guest()
	}
	return models.Authenticated(userID)
}
