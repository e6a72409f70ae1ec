// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-microblog/internal/logger"
)

// ServiceName is the name the microblog reports its health under, next to
// the overall "" service.
const ServiceName = "microblog"

// Handler exposes the standard gRPC health checking protocol. The reported
// status is driven from outside through [Handler.SetServing]; until the first
// call every service is NOT_SERVING.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler].
func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.SetServing(false)

	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing updates the status of the overall server and of [ServiceName].
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

// Shutdown switches every service to NOT_SERVING and ignores further
// updates. Watchers are notified, so load balancers drain before the
// listener goes away.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
