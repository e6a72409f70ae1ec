// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-microblog/internal/config"
	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/internal/service"
)

// Handler serves the microblog HTTP routes on top of the service layer.
type Handler struct {
	services *service.Services

	// sessionTTL is the lifetime of the session cookie. It matches the
	// lifetime of the JWT stored in it.
	sessionTTL time.Duration

	// secureCookies marks session and flash cookies Secure when the public
	// base URL is served over https.
	secureCookies bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		sessionTTL:    cfg.TokenDuration,
		secureCookies: strings.HasPrefix(cfg.BaseURL, "https://"),
		logger:        logger,
	}
}
