// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"context"

	"github.com/MKhiriev/go-microblog/internal/logger"
)

// logTransport writes messages to the log instead of delivering them.
// It is used when no SMTP host is configured.
type logTransport struct{}

// NewLogTransport returns a [Transport] that logs every message at info level.
func NewLogTransport() Transport {
	return &logTransport{}
}

func (t *logTransport) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}

	logger.FromContext(ctx).Info().
		Str("func", "*logTransport.Send").
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("body", msg.TextBody).
		Msg("mail delivery disabled, message logged")

	return nil
}
