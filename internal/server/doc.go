// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's transport servers.
//
// It owns the HTTP and gRPC listeners, starts serving on both and shuts
// them down gracefully once the run context is cancelled, typically by a
// termination signal.
package server
