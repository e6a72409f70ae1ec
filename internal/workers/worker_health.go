// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-microblog/internal/logger"
)

// healthWorker pings the database every interval and publishes the result.
type healthWorker struct {
	pinger   Pinger
	reporter HealthReporter
	interval time.Duration

	// serving is the last published status; only the worker goroutine
	// touches it after the first check.
	serving *bool

	logger *logger.Logger
}

// NewHealthWorker builds the database health worker. reporter may be nil, in
// which case status changes are only logged.
func NewHealthWorker(pinger Pinger, reporter HealthReporter, interval time.Duration, logger *logger.Logger) Worker {
	return &healthWorker{
		pinger:   pinger,
		reporter: reporter,
		interval: interval,
		logger:   logger,
	}
}

// Run performs the first check synchronously, then keeps checking in the
// background until ctx is done.
func (w *healthWorker) Run(ctx context.Context) {
	w.check(ctx)

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				w.logger.Info().Str("func", "*healthWorker.Run").Msg("health worker stopped")
				return
			case <-ticker.C:
				w.check(ctx)
			}
		}
	}()
}

func (w *healthWorker) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	err := w.pinger.Ping(pingCtx)
	serving := err == nil

	if w.serving == nil || *w.serving != serving {
		if serving {
			w.logger.Info().Str("func", "*healthWorker.check").Msg("database is reachable")
		} else {
			w.logger.Err(err).Str("func", "*healthWorker.check").Msg("database is unreachable")
		}
	}
	w.serving = &serving

	if w.reporter != nil {
		w.reporter.SetServing(serving)
	}
}
