// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// the application constraints before it is used at startup.
//
// Each violated rule is reported as the sentinel of its configuration group
// (e.g. [ErrInvalidAppConfigs]) wrapped with the offending field and rule.
// All violations are joined into a single error.
func (cfg *StructuredConfig) validate() error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("error validating configs: %w", err)
	}

	errs := make([]error, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		errs = append(errs, fmt.Errorf("%w: %s failed on %q", groupError(fe.StructNamespace()), fe.StructNamespace(), fe.Tag()))
	}

	return errors.Join(errs...)
}

// groupError maps a validator namespace such as "StructuredConfig.App.TokenSignKey"
// to the sentinel error of its configuration group.
func groupError(namespace string) error {
	parts := strings.Split(namespace, ".")
	if len(parts) < 2 {
		return ErrInvalidConfig
	}

	switch parts[1] {
	case "App":
		return ErrInvalidAppConfigs
	case "Storage":
		return ErrInvalidStorageConfigs
	case "Server":
		return ErrInvalidServerConfigs
	case "Mail":
		return ErrInvalidMailConfigs
	case "Workers":
		return ErrInvalidWorkerConfigs
	default:
		return ErrInvalidConfig
	}
}
