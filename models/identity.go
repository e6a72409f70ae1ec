// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is the authenticated identity a request acts on behalf of.
// The zero value is an anonymous guest.
type Identity struct {
	UserID int64
}

// Guest returns the anonymous identity.
func Guest() Identity {
	return Identity{}
}

// Authenticated returns the identity of the user with the given ID.
func Authenticated(userID int64) Identity {
	return Identity{UserID: userID}
}

// IsGuest reports whether no user is authenticated.
func (i Identity) IsGuest() bool {
	return i.UserID == 0
}
