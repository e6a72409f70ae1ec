// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-microblog/internal/utils"
)

// UnaryLogging attaches a request-scoped logger carrying a trace id to every
// unary call and logs the call once it completes.
func (h *Handler) UnaryLogging() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		log := h.logger.With().
			Str("trace_id", utils.NewTraceID()).
			Str("method", info.FullMethod).
			Logger()

		start := time.Now()
		resp, err := handler(log.WithContext(ctx), req)

		st, _ := status.FromError(err)
		event := log.Debug()
		if err != nil {
			event = log.Warn()
		}
		event.
			Str("code", st.Code().String()).
			Dur("duration", time.Since(start)).
			Msg("gRPC request")

		return resp, err
	}
}
