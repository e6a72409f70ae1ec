// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/internal/service"
	"github.com/MKhiriev/go-microblog/internal/utils"
	"github.com/MKhiriev/go-microblog/models"
)

// errorResponse is the body of every non-validation error response.
type errorResponse struct {
	Error string `json:"error"`
}

// render writes data wrapped into a [models.View] together with the pending
// flash message, which is consumed.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, data any) {
	view := models.View{
		Flash: h.popFlash(w, r),
		Data:  data,
	}

	if _, err := utils.WriteJSON(w, view, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error rendering view")
	}
}

// redirect answers 303 See Other to location and, when flash is not nil,
// stores it for the next rendered view.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, location string, flash *models.Flash) {
	if flash != nil {
		h.setFlash(w, *flash)
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// back returns the page the request came from, or fallback when the client
// did not send a Referer.
func back(r *http.Request, fallback string) string {
	if referer := r.Referer(); referer != "" {
		return referer
	}
	return fallback
}

// writeError maps err to a status code. Validation errors are rendered with
// their per-field messages.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		log.Debug().Err(err).Msg("validation failed")
		utils.WriteJSON(w, validationErr, http.StatusUnprocessableEntity)
		return
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, errorResponse{Error: http.StatusText(status)}, status)
}

// decodeJSON decodes the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Join(ErrInvalidJSON, err)
	}
	return nil
}

// idParam parses the {id} URL parameter. Malformed ids resolve to nothing,
// so they are reported as [service.ErrNotFound].
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, service.ErrNotFound
	}
	return id, nil
}

// pageParam reads the 1-based ?page= query parameter.
func pageParam(r *http.Request) models.Page {
	number, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		number = 1
	}
	return models.NewPage(number)
}

func userPath(id int64) string {
	return "/users/" + strconv.FormatInt(id, 10)
}
