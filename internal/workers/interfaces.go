// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background processes of the microblog server.
// A [Workers] aggregate starts every registered [Worker] with one call.
package workers

import "context"

// Worker is a background process. Run must not block: long-running workers
// start their own goroutine and stop once ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthReporter publishes the health status computed by the health worker.
type HealthReporter interface {
	SetServing(serving bool)
}
