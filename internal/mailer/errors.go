// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import "errors"

var (
	// ErrMailTransport wraps every failure to hand a message to the outbound
	// transport.
	ErrMailTransport = errors.New("mail transport error")

	// ErrRenderingTemplate is returned when an email template cannot be
	// executed for the given data.
	ErrRenderingTemplate = errors.New("error rendering mail template")

	// ErrNoRecipient is returned when a message has no address to send to.
	ErrNoRecipient = errors.New("mail has no recipient")
)
