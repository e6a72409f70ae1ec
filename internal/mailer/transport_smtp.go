// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/MKhiriev/go-microblog/internal/config"
	"github.com/MKhiriev/go-microblog/internal/logger"
)

// smtpTransport delivers messages over SMTP. A new connection is dialed for
// every message.
type smtpTransport struct {
	cfg    config.Mail
	logger *logger.Logger
}

// NewSMTPTransport returns a [Transport] sending through the SMTP server
// described by cfg.
func NewSMTPTransport(cfg config.Mail, log *logger.Logger) Transport {
	log.Debug().Str("host", cfg.Host).Int("port", cfg.Port).Msg("creating smtp mail transport")
	return &smtpTransport{
		cfg:    cfg,
		logger: log,
	}
}

func (t *smtpTransport) Send(ctx context.Context, msg Message) error {
	log := logger.FromContext(ctx)

	m, err := t.buildMessage(msg)
	if err != nil {
		log.Err(err).Str("func", "*smtpTransport.Send").Msg("error building mail message")
		return fmt.Errorf("%w: %w", ErrMailTransport, err)
	}

	client, err := mail.NewClient(t.cfg.Host, t.clientOptions()...)
	if err != nil {
		log.Err(err).Str("func", "*smtpTransport.Send").Msg("error creating smtp client")
		return fmt.Errorf("%w: %w", ErrMailTransport, err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		log.Err(err).
			Str("func", "*smtpTransport.Send").
			Str("host", t.cfg.Host).
			Msg("error sending mail")
		return fmt.Errorf("%w: %w", ErrMailTransport, err)
	}

	log.Info().Str("func", "*smtpTransport.Send").Str("subject", msg.Subject).Msg("mail sent")
	return nil
}

func (t *smtpTransport) buildMessage(msg Message) (*mail.Msg, error) {
	if msg.To == "" {
		return nil, ErrNoRecipient
	}

	m := mail.NewMsg()
	if err := m.From(t.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", t.cfg.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)

	if msg.TextBody != "" {
		m.SetBodyString(mail.TypeTextPlain, msg.TextBody)
		if msg.HTMLBody != "" {
			m.AddAlternativeString(mail.TypeTextHTML, msg.HTMLBody)
		}
		return m, nil
	}
	m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)

	return m, nil
}

func (t *smtpTransport) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(t.cfg.Port),
		mail.WithTLSPolicy(tlsPolicy(t.cfg.TLSPolicy)),
	}
	if t.cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(t.cfg.Timeout))
	}

	if t.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(t.cfg.Username),
			mail.WithPassword(t.cfg.Password),
		)
	}

	return opts
}

func tlsPolicy(policy string) mail.TLSPolicy {
	switch policy {
	case "mandatory":
		return mail.TLSMandatory
	case "none":
		return mail.NoTLS
	default:
		return mail.TLSOpportunistic
	}
}
