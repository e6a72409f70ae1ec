// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/models"
)

const (
	sessionCookieName = "session"
	flashCookieName   = "flash"
)

// startSession hands the signed token to the client both as an
// "Authorization" header and as an HttpOnly session cookie.
func (h *Handler) startSession(w http.ResponseWriter, token models.Token) {
	w.Header().Set("Authorization", "Bearer "+token.String())
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.String(),
		Path:     "/",
		Expires:  time.Now().Add(h.sessionTTL),
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) endSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// setFlash stores a one-shot message shown by the next rendered view.
func (h *Handler) setFlash(w http.ResponseWriter, flash models.Flash) {
	raw, err := json.Marshal(flash)
	if err != nil {
		h.logger.Err(err).Msg("error encoding flash message")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash returns the pending flash message, if any, and clears it.
func (h *Handler) popFlash(w http.ResponseWriter, r *http.Request) *models.Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("malformed flash cookie")
		return nil
	}

	var flash models.Flash
	if err := json.Unmarshal(raw, &flash); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("malformed flash cookie")
		return nil
	}

	return &flash
}

func success(message string) *models.Flash {
	return &models.Flash{Kind: "success", Message: message}
}

func info(message string) *models.Flash {
	return &models.Flash{Kind: "info", Message: message}
}
