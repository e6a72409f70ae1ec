// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-microblog/internal/utils"
	"github.com/MKhiriev/go-microblog/models"
)

func (h *Handler) createStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := utils.IdentityFromContext(ctx)

	var req models.CreateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := h.services.StatusService.Create(ctx, actor, req); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.redirect(w, r, back(r, userPath(actor.UserID)), success("Status published."))
}

func (h *Handler) destroyStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := utils.IdentityFromContext(ctx)

	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.StatusService.Destroy(ctx, actor, id); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.redirect(w, r, back(r, userPath(actor.UserID)), success("Status deleted."))
}
