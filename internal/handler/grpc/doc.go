// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc serves the gRPC health checking protocol for the microblog.
// The status follows the reachability of the database, which is probed by
// the health worker in package workers.
package grpc
