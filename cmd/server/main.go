// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-microblog/internal/config"
	"github.com/MKhiriev/go-microblog/internal/handler"
	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/internal/mailer"
	"github.com/MKhiriev/go-microblog/internal/server"
	"github.com/MKhiriev/go-microblog/internal/service"
	"github.com/MKhiriev/go-microblog/internal/store"
	"github.com/MKhiriev/go-microblog/internal/workers"
	"github.com/MKhiriev/go-microblog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := newBuildInfo()
	printBuildInfo(buildInfo)

	log := logger.NewLogger("microblog-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	cfg.App.Version = appVersion(cfg.App.Version, buildInfo)
	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	notifier := mailer.NewMailer(cfg.Mail, cfg.App.Name, cfg.ConfirmationBaseURL(), log)

	services, err := service.NewServices(storages, notifier, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var reporter workers.HealthReporter
	if handlers.GRPC != nil {
		reporter = handlers.GRPC
	}
	workers.NewWorkers(
		workers.NewHealthWorker(storages, reporter, cfg.Workers.HealthCheckInterval, log.GetChildLogger()),
	).Run(ctx)

	if err := srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		stop()
		storages.Close()
		os.Exit(1)
	}
}

func newBuildInfo() models.AppBuildInfo {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}
	return models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
}

// appVersion prefers the configured version and falls back to the one
// stamped into the binary.
func appVersion(configured string, info models.AppBuildInfo) string {
	if configured != "" {
		return configured
	}
	return info.BuildVersion()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
