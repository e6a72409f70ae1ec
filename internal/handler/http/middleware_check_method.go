// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-microblog/internal/utils"
)

// CheckHTTPMethod returns the handler registered as the router's
// MethodNotAllowed handler.
//
// A request whose path is known but whose method is not routed is answered
// with 404 Not Found instead of chi's default 405, so that callers cannot
// probe which methods a resource supports. The lookup goes through
// [chi.Mux.Match], so parameterised patterns such as /users/{id} are
// honoured.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		utils.WriteJSON(w, errorResponse{Error: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
	}
}
