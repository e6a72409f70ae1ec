// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/internal/policy"
	"github.com/MKhiriev/go-microblog/internal/store"
	"github.com/MKhiriev/go-microblog/internal/validators"
	"github.com/MKhiriev/go-microblog/models"
)

// statusService is the concrete implementation of [StatusService].
type statusService struct {
	statusRepository store.StatusRepository
	validator        validators.Validator
	logger           *logger.Logger
}

func NewStatusService(statusRepository store.StatusRepository, validator validators.Validator, logger *logger.Logger) StatusService {
	return &statusService{
		statusRepository: statusRepository,
		validator:        validator,
		logger:           logger,
	}
}

// Create publishes a status owned by actor.
func (s *statusService) Create(ctx context.Context, actor models.Identity, req models.CreateStatusRequest) (models.Status, error) {
	log := logger.FromContext(ctx)

	if actor.IsGuest() {
		return models.Status{}, ErrUnauthenticated
	}

	req.Content = strings.TrimSpace(req.Content)
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Status{}, asValidationError(err)
	}

	status, err := s.statusRepository.CreateStatus(ctx, models.Status{
		UserID:  actor.UserID,
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// the session outlived its account
			return models.Status{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
		}
		log.Err(err).Str("func", "*statusService.Create").Int64("user_id", actor.UserID).Msg("error creating status")
		return models.Status{}, fmt.Errorf("error creating status: %w", err)
	}

	return status, nil
}

// Destroy deletes the status when actor owns it.
func (s *statusService) Destroy(ctx context.Context, actor models.Identity, id int64) error {
	log := logger.FromContext(ctx)

	if actor.IsGuest() {
		return ErrUnauthenticated
	}

	status, err := s.statusRepository.FindStatusByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNoStatusWasFound) {
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		log.Err(err).Str("func", "*statusService.Destroy").Int64("status_id", id).Msg("error finding status")
		return fmt.Errorf("error finding status: %w", err)
	}

	if !policy.CanDeleteStatus(actor.UserID, status.UserID) {
		log.Warn().
			Str("func", "*statusService.Destroy").
			Int64("actor_id", actor.UserID).
			Int64("status_id", id).
			Msg("forbidden status deletion attempt")
		return ErrForbidden
	}

	if err := s.statusRepository.DeleteStatus(ctx, id); err != nil {
		if errors.Is(err, store.ErrNoStatusWasFound) {
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		log.Err(err).Str("func", "*statusService.Destroy").Int64("status_id", id).Msg("error deleting status")
		return fmt.Errorf("error deleting status: %w", err)
	}

	return nil
}
