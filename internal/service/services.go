// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-microblog/internal/config"
	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/internal/mailer"
	"github.com/MKhiriev/go-microblog/internal/store"
	"github.com/MKhiriev/go-microblog/internal/validators"
)

type Services struct {
	UserService    UserService
	StatusService  StatusService
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, notifier mailer.ConfirmationSender, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		UserService:    NewUserService(storages.UserRepository, storages.StatusRepository, notifier, validator, cfg.App, logger),
		StatusService:  NewStatusService(storages.StatusRepository, validator, logger),
		AuthService:    NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}
