// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-microblog/internal/config"
	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/internal/mailer"
	"github.com/MKhiriev/go-microblog/internal/policy"
	"github.com/MKhiriev/go-microblog/internal/store"
	"github.com/MKhiriev/go-microblog/internal/utils"
	"github.com/MKhiriev/go-microblog/internal/validators"
	"github.com/MKhiriev/go-microblog/models"
)

// Gravatar sizes used by the user list and the profile page.
const (
	listAvatarSize    = 50
	profileAvatarSize = 80
)

// userService is the concrete implementation of [UserService].
type userService struct {
	userRepository   store.UserRepository
	statusRepository store.StatusRepository
	notifier         mailer.ConfirmationSender
	validator        validators.Validator

	// bcryptCost is the work factor passwords are hashed with.
	bcryptCost int

	logger *logger.Logger
}

// NewUserService constructs a [UserService]. notifier is called inside the
// registration transaction, so a failed delivery leaves no account behind.
func NewUserService(
	userRepository store.UserRepository,
	statusRepository store.StatusRepository,
	notifier mailer.ConfirmationSender,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) UserService {
	return &userService{
		userRepository:   userRepository,
		statusRepository: statusRepository,
		notifier:         notifier,
		validator:        validator,
		bcryptCost:       cfg.BcryptCost,
		logger:           logger,
	}
}

func (s *userService) List(ctx context.Context, page models.Page) (models.Paginated[models.UserView], error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.ListUsers(ctx, page)
	if err != nil {
		log.Err(err).Str("func", "*userService.List").Int("page", page.Number).Msg("error listing users")
		return models.Paginated[models.UserView]{}, fmt.Errorf("error listing users: %w", err)
	}

	total, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userService.List").Msg("error counting users")
		return models.Paginated[models.UserView]{}, fmt.Errorf("error counting users: %w", err)
	}

	views := make([]models.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, models.NewUserView(u, listAvatarSize))
	}

	return models.NewPaginated(views, page, total), nil
}

func (s *userService) Show(ctx context.Context, id int64, page models.Page) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	user, err := s.findUser(ctx, id)
	if err != nil {
		return models.UserProfile{}, err
	}

	statuses, err := s.statusRepository.ListStatusesByUser(ctx, id, page)
	if err != nil {
		log.Err(err).Str("func", "*userService.Show").Int64("user_id", id).Msg("error listing statuses")
		return models.UserProfile{}, fmt.Errorf("error listing statuses: %w", err)
	}

	total, err := s.statusRepository.CountStatusesByUser(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*userService.Show").Int64("user_id", id).Msg("error counting statuses")
		return models.UserProfile{}, fmt.Errorf("error counting statuses: %w", err)
	}

	return models.UserProfile{
		User: models.NewUserView(user, profileAvatarSize),
		Feed: models.NewPaginated(statuses, page, total),
	}, nil
}

// Register validates req, hashes the password, generates the activation
// token and stores the account. The confirmation email is sent before the
// insert commits.
func (s *userService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*userService.Register").Msg("invalid registration data")
		return models.User{}, asValidationError(err)
	}

	passwordHash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*userService.Register").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	token, err := utils.RandomString(models.ActivationTokenLength)
	if err != nil {
		log.Err(err).Str("func", "*userService.Register").Msg("error generating activation token")
		return models.User{}, fmt.Errorf("error generating activation token: %w", err)
	}

	user := models.User{
		Name:            req.Name,
		Email:           req.Email,
		PasswordHash:    passwordHash,
		Activated:       false,
		ActivationToken: &token,
	}

	created, err := s.userRepository.CreateUser(ctx, user, s.notifier.SendConfirmation)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyTaken) {
			return models.User{}, newValidationError("email", "The email has already been taken.")
		}
		log.Err(err).Str("func", "*userService.Register").Msg("user registration ended with error")
		return models.User{}, fmt.Errorf("user registration ended with error: %w", err)
	}

	log.Info().Str("func", "*userService.Register").Int64("user_id", created.ID).Msg("user registered, confirmation sent")
	return created, nil
}

func (s *userService) Edit(ctx context.Context, actor models.Identity, id int64) (models.User, error) {
	return s.authorizedUser(ctx, actor, id)
}

// Update checks existence, then ownership, then the input.
func (s *userService) Update(ctx context.Context, actor models.Identity, id int64, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.authorizedUser(ctx, actor, id)
	if err != nil {
		return models.User{}, err
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*userService.Update").Msg("invalid profile data")
		return models.User{}, asValidationError(err)
	}

	passwordHash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*userService.Update").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user.Name = req.Name
	user.PasswordHash = passwordHash

	updated, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		log.Err(err).Str("func", "*userService.Update").Int64("user_id", id).Msg("error updating user")
		return models.User{}, fmt.Errorf("error updating user: %w", err)
	}

	return updated, nil
}

func (s *userService) Destroy(ctx context.Context, actor models.Identity, id int64) error {
	log := logger.FromContext(ctx)

	if _, err := s.authorizedUser(ctx, actor, id); err != nil {
		return err
	}

	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		log.Err(err).Str("func", "*userService.Destroy").Int64("user_id", id).Msg("error deleting user")
		return fmt.Errorf("error deleting user: %w", err)
	}

	log.Info().Str("func", "*userService.Destroy").Int64("user_id", id).Msg("user deleted")
	return nil
}

func (s *userService) ConfirmEmail(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.User{}, ErrNotFound
	}

	user, err := s.userRepository.ActivateUser(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		log.Err(err).Str("func", "*userService.ConfirmEmail").Msg("error activating user")
		return models.User{}, fmt.Errorf("error activating user: %w", err)
	}

	log.Info().Str("func", "*userService.ConfirmEmail").Int64("user_id", user.ID).Msg("email confirmed")
	return user, nil
}

// authorizedUser loads the user and checks that actor may modify it.
func (s *userService) authorizedUser(ctx context.Context, actor models.Identity, id int64) (models.User, error) {
	if actor.IsGuest() {
		return models.User{}, ErrUnauthenticated
	}

	user, err := s.findUser(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if !policy.CanModifyUser(actor.UserID, user.ID) {
		logger.FromContext(ctx).Warn().
			Str("func", "*userService.authorizedUser").
			Int64("actor_id", actor.UserID).
			Int64("user_id", id).
			Msg("forbidden user modification attempt")
		return models.User{}, ErrForbidden
	}

	return user, nil
}

func (s *userService) findUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		logger.FromContext(ctx).Err(err).Str("func", "*userService.findUser").Int64("user_id", id).Msg("error finding user")
		return models.User{}, fmt.Errorf("error finding user: %w", err)
	}

	return user, nil
}
