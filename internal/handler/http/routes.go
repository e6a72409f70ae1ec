// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.identify)

	// routes open to everyone
	router.Group(func(r chi.Router) {
		r.Get("/", h.home)
		r.Get("/version", h.getServerVersion)

		r.Get("/users", h.listUsers)
		r.Post("/users", h.register)
		r.Get("/users/{id}", h.showUser)
		r.Get("/signup/confirm/{token}", h.confirmEmail)

		r.Post("/login", h.login)
	})

	// forms for guests only
	router.Group(func(r chi.Router) {
		r.Use(h.guest)

		r.Get("/signup", h.createUser)
		r.Get("/users/create", h.createUser)
		r.Get("/login", h.showLogin)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/{id}/edit", h.editUser)
		r.Put("/users/{id}", h.updateUser)
		r.Patch("/users/{id}", h.updateUser)
		r.Delete("/users/{id}", h.destroyUser)

		r.Delete("/logout", h.logout)

		r.Post("/statuses", h.createStatus)
		r.Delete("/statuses/{id}", h.destroyStatus)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
