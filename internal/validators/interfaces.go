// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads against the rules declared in
// their `validate` struct tags and reports failures per JSON field.
package validators

import "context"

// Validator validates input. When fields are given only those struct fields
// are checked.
type Validator interface {
	Validate(ctx context.Context, input any, fields ...string) error
}
