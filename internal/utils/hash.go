// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// tokenAlphabet is the character set activation tokens are drawn from.
const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var (
	// ErrEmptyPassword is returned by HashPassword when asked to hash an
	// empty string.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrPasswordMismatch is returned by ComparePassword when the plaintext
	// does not match the stored hash.
	ErrPasswordMismatch = errors.New("password does not match")
)

// HashPassword returns the bcrypt hash of password computed with the given
// cost. A cost outside bcrypt's accepted range falls back to
// [bcrypt.DefaultCost].
//
// Example usage:
//
//	hash, err := utils.HashPassword("secret1", bcrypt.DefaultCost)
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword checks password against a bcrypt hash produced by
// HashPassword.
//
// Returns ErrPasswordMismatch when the password is wrong, or a wrapped
// bcrypt error when the hash itself is malformed.
func ComparePassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}

	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}

	return fmt.Errorf("error comparing password: %w", err)
}

// RandomString returns a cryptographically random alphanumeric string of
// length n.
//
// Bytes that would bias the distribution are rejected and redrawn, so every
// character of [tokenAlphabet] is equally likely.
func RandomString(n int) (string, error) {
	const maxByte = 256 - (256 % len(tokenAlphabet))

	out := make([]byte, 0, n)
	buf := make([]byte, n)

	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("error reading random bytes: %w", err)
		}

		for _, b := range buf {
			if int(b) >= maxByte {
				continue
			}
			out = append(out, tokenAlphabet[int(b)%len(tokenAlphabet)])
			if len(out) == n {
				break
			}
		}
	}

	return string(out), nil
}
