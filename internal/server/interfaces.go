// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server runs every enabled transport until ctx is done or one of them
// fails, then shuts all of them down.
type Server interface {
	RunServer(ctx context.Context) error
}

// transport is a single listener-backed server.
type transport interface {
	// serve blocks until the transport stops. A graceful stop returns nil.
	serve() error
	shutdown(ctx context.Context)
	name() string
}
