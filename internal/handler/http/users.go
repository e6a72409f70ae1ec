// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/internal/utils"
	"github.com/MKhiriev/go-microblog/models"
)

// editAvatarSize matches the avatar size of the profile page.
const editAvatarSize = 80

// editView is rendered by GET /users/{id}/edit.
type editView struct {
	User models.UserView `json:"user"`
	Form models.Form     `json:"form"`
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.List(r.Context(), pageParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.render(w, r, users)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, registrationForm())
}

func (h *Handler) showUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	profile, err := h.services.UserService.Show(r.Context(), id, pageParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.render(w, r, profile)
}

// register creates an unactivated account. The user has to confirm the
// email address before logging in, so no session is started here.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Register(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", user.ID).Msg("user registered")
	h.redirect(w, r, "/", info("Please check your email to activate your account."))
}

func (h *Handler) editUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Edit(r.Context(), utils.IdentityFromContext(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.render(w, r, editView{
		User: models.NewUserView(user, editAvatarSize),
		Form: editForm(user),
	})
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Update(ctx, utils.IdentityFromContext(ctx), id, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.redirect(w, r, userPath(user.ID), success("Profile updated."))
}

func (h *Handler) destroyUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.UserService.Destroy(ctx, utils.IdentityFromContext(ctx), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	// only the account owner gets here, so the session is gone with the user
	h.endSession(w)
	h.redirect(w, r, back(r, "/users"), success("User deleted."))
}

// confirmEmail activates the account and logs the user in.
func (h *Handler) confirmEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := h.services.UserService.ConfirmEmail(ctx, chi.URLParam(r, "token"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("creation of token failed")
		h.writeError(w, r, err)
		return
	}

	h.startSession(w, token)
	h.redirect(w, r, userPath(user.ID), success("Your account has been activated."))
}
