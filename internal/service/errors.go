// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"sort"
	"strings"

	"github.com/MKhiriev/go-microblog/internal/mailer"
	"github.com/MKhiriev/go-microblog/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong email or password")
	ErrAccountNotActivated = errors.New("account is not activated")

	ErrNotFound        = errors.New("resource not found")
	ErrForbidden       = errors.New("action is not authorized")
	ErrUnauthenticated = errors.New("authentication required")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrMailTransport is returned when the confirmation email could not be
	// handed to the mail transport. The registration is rolled back.
	ErrMailTransport = mailer.ErrMailTransport
)

// ValidationError reports every field of a request that failed validation,
// mapped to human-readable messages. It unwraps to [ErrInvalidDataProvided].
type ValidationError struct {
	Fields map[string][]string `json:"errors"`
}

// newValidationError builds a ValidationError with a single message.
func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {msg}}}
}

// asValidationError converts the result of a validator into a
// *ValidationError. Errors that are not field errors are returned unchanged.
func asValidationError(err error) error {
	var fieldErrors validators.FieldErrors
	if errors.As(err, &fieldErrors) {
		return &ValidationError{Fields: fieldErrors}
	}
	return err
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	return ErrInvalidDataProvided.Error() + ": " + strings.Join(fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidDataProvided
}
