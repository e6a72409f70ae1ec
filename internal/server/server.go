// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-microblog/internal/config"
	"github.com/MKhiriev/go-microblog/internal/handler"
	"github.com/MKhiriev/go-microblog/internal/logger"
)

// defaultShutdownTimeout bounds the graceful shutdown when no request
// timeout is configured.
const defaultShutdownTimeout = 10 * time.Second

type server struct {
	transports      []transport
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewServer binds every transport that has a handler. Listeners that were
// already opened are closed again when a later one fails.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		shutdownTimeout: cfg.RequestTimeout,
		logger:          logger,
	}
	if servers.shutdownTimeout <= 0 {
		servers.shutdownTimeout = defaultShutdownTimeout
	}

	if handlers.HTTP != nil {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.transports = append(servers.transports, httpSrv)
	}

	if handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			servers.shutdown()
			return nil, err
		}
		servers.transports = append(servers.transports, grpcSrv)
	}

	if len(servers.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer serves until ctx is done and returns nil, or until a transport
// fails and returns its error. Every transport is shut down either way.
func (s *server) RunServer(ctx context.Context) error {
	errCh := make(chan error, len(s.transports))

	for _, t := range s.transports {
		s.logger.Info().Str("transport", t.name()).Msg("launching server")
		go func() {
			if err := t.serve(); err != nil {
				errCh <- fmt.Errorf("%s server: %w", t.name(), err)
			}
		}()
	}

	var err error
	select {
	case <-ctx.Done():
	case err = <-errCh:
		s.logger.Err(err).Msg("server stopped unexpectedly")
	}

	s.shutdown()
	s.logger.Info().Msg("server shutdown gracefully")

	return err
}

func (s *server) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	for _, t := range s.transports {
		t.shutdown(ctx)
	}
}
