// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// Token is a session JWT. Its subject is the id of the signed-in user.
//
// When the token was issued by this process SignedString holds the compact
// form sent to the browser; when it was parsed from a request UserID holds
// the subject as an int64.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	SignedString string `json:"-"`
	UserID       int64  `json:"-"`
}

// String returns the compact serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
