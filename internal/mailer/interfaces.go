// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"context"

	"github.com/MKhiriev/go-microblog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

// Message is a rendered email ready for delivery.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// Transport delivers a single message synchronously.
type Transport interface {
	Send(ctx context.Context, msg Message) error
}

// ConfirmationSender sends the email-confirmation message to a newly
// registered user.
type ConfirmationSender interface {
	SendConfirmation(ctx context.Context, user models.User) error
}
