// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mailer renders and delivers the emails sent by the service.
//
// A [Transport] moves a rendered [Message] to its recipient. Two transports
// are provided: SMTP delivery through go-mail, and a log transport that
// writes the message to the structured log when no SMTP host is configured.
// [Mailer] renders the confirmation email for a user and hands it to the
// transport; every transport failure is reported as [ErrMailTransport].
package mailer
