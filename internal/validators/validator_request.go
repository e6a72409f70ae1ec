// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator validates request payloads against their `validate`
// struct tags and reports failures as [FieldErrors] keyed by JSON field name.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator builds a RequestValidator.
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("max_bytes", maxBytes)

	return &RequestValidator{validate: v}
}

// Validate checks input, which must be a struct or a pointer to one. When
// fields are given, only those struct fields (Go names) are checked.
//
// Returns nil, a [FieldErrors] describing every violation, or an error
// wrapping [ErrUnsupportedType] / [ErrUnknownField].
func (v *RequestValidator) Validate(ctx context.Context, input any, fields ...string) error {
	if !isStruct(input) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, input)
	}

	var err error
	if len(fields) > 0 {
		for _, f := range fields {
			if !hasField(input, f) {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
		}
		err = v.validate.StructPartialCtx(ctx, input, fields...)
	} else {
		err = v.validate.StructCtx(ctx, input)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fieldErrors := make(FieldErrors, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors.Add(fe.Field(), message(fe))
	}

	return fieldErrors
}

// message renders a human-readable message for a single violation.
func message(fe validator.FieldError) string {
	field := humanize(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", field, fe.Param())
	case "max_bytes":
		return fmt.Sprintf("The %s may not be greater than %s bytes.", field, fe.Param())
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters.", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("The %s confirmation does not match.", field)
	default:
		return fmt.Sprintf("The %s is invalid.", field)
	}
}

// maxBytes limits the encoded length of a string field, unlike max which
// counts runes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

func humanize(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

// jsonFieldName reports a struct field by its JSON name.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}

func isStruct(input any) bool {
	t := reflect.TypeOf(input)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

func hasField(input any, name string) bool {
	t := reflect.TypeOf(input)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	_, ok := t.FieldByName(name)
	return ok
}
