// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"net/url"
	"strings"
	texttemplate "text/template"

	"github.com/MKhiriev/go-microblog/internal/config"
	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/models"
)

//go:embed templates/*
var templatesFS embed.FS

var (
	confirmationHTML = htmltemplate.Must(htmltemplate.ParseFS(templatesFS, "templates/confirmation.html"))
	confirmationText = texttemplate.Must(texttemplate.ParseFS(templatesFS, "templates/confirmation.txt"))
)

// confirmationData is the data the confirmation templates are executed with.
type confirmationData struct {
	AppName string
	Name    string
	Link    string
}

// Mailer renders the service's emails and hands them to a [Transport].
type Mailer struct {
	transport Transport
	appName   string
	subject   string
	baseURL   string
	logger    *logger.Logger
}

// NewMailer builds a Mailer. When cfg.Host is empty messages are only
// logged. Confirmation links are built on baseURL.
func NewMailer(cfg config.Mail, appName, baseURL string, log *logger.Logger) *Mailer {
	var transport Transport
	if cfg.Host == "" {
		log.Warn().Msg("no smtp host configured, confirmation emails will be logged")
		transport = NewLogTransport()
	} else {
		transport = NewSMTPTransport(cfg, log)
	}

	return NewMailerWithTransport(transport, appName, cfg.Subject, baseURL, log)
}

// NewMailerWithTransport builds a Mailer on an explicit transport.
func NewMailerWithTransport(transport Transport, appName, subject, baseURL string, log *logger.Logger) *Mailer {
	return &Mailer{
		transport: transport,
		appName:   appName,
		subject:   subject,
		baseURL:   strings.TrimRight(baseURL, "/"),
		logger:    log,
	}
}

// SendConfirmation renders the confirmation email for user and delivers it
// to user.Email. Transport failures are wrapped in [ErrMailTransport].
func (m *Mailer) SendConfirmation(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	data := confirmationData{
		AppName: m.appName,
		Name:    user.Name,
		Link:    m.ConfirmationLink(user.Token()),
	}

	var html, text bytes.Buffer
	if err := confirmationHTML.Execute(&html, data); err != nil {
		log.Err(err).Str("func", "*Mailer.SendConfirmation").Msg("error rendering html template")
		return fmt.Errorf("%w: %w", ErrRenderingTemplate, err)
	}
	if err := confirmationText.Execute(&text, data); err != nil {
		log.Err(err).Str("func", "*Mailer.SendConfirmation").Msg("error rendering text template")
		return fmt.Errorf("%w: %w", ErrRenderingTemplate, err)
	}

	err := m.transport.Send(ctx, Message{
		To:       user.Email,
		Subject:  m.subject,
		HTMLBody: html.String(),
		TextBody: text.String(),
	})
	if err != nil {
		log.Err(err).
			Str("func", "*Mailer.SendConfirmation").
			Int64("user_id", user.ID).
			Msg("error sending confirmation email")
		if errors.Is(err, ErrMailTransport) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrMailTransport, err)
	}

	return nil
}

// ConfirmationLink returns the absolute URL that confirms token.
func (m *Mailer) ConfirmationLink(token string) string {
	return m.baseURL + "/signup/confirm/" + url.PathEscape(token)
}
