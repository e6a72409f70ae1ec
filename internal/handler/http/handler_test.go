// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-microblog/internal/config"
	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/internal/service"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.App{TokenDuration: 2 * time.Hour, BaseURL: "https://blog.example.com"}, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, 2*time.Hour, h.sessionTTL)
	assert.True(t, h.secureCookies)
}

func TestNewHandler_PlainHTTPBaseURL(t *testing.T) {
	h := NewHandler(&service.Services{}, config.App{BaseURL: "http://localhost:8080"}, logger.Nop())

	assert.False(t, h.secureCookies)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_RegistersAllRoutes(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodGet, "/version"},
		{http.MethodGet, "/signup"},
		{http.MethodGet, "/signup/confirm/{token}"},
		{http.MethodGet, "/users"},
		{http.MethodGet, "/users/create"},
		{http.MethodPost, "/users"},
		{http.MethodGet, "/users/{id}"},
		{http.MethodGet, "/users/{id}/edit"},
		{http.MethodPut, "/users/{id}"},
		{http.MethodPatch, "/users/{id}"},
		{http.MethodDelete, "/users/{id}"},
		{http.MethodGet, "/login"},
		{http.MethodPost, "/login"},
		{http.MethodDelete, "/logout"},
		{http.MethodPost, "/statuses"},
		{http.MethodDelete, "/statuses/{id}"},
	}

	registered := map[string]bool{}
	for _, route := range router.Routes() {
		for method := range route.Handlers {
			registered[method+" "+route.Pattern] = true
		}
	}

	for _, route := range routes {
		assert.True(t, registered[route.method+" "+route.path], "route not registered: %s %s", route.method, route.path)
	}
}

func TestInit_ProtectedRoutesRequireSession(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users/1/edit"},
		{http.MethodPut, "/users/1"},
		{http.MethodPatch, "/users/1"},
		{http.MethodDelete, "/users/1"},
		{http.MethodDelete, "/logout"},
		{http.MethodPost, "/statuses"},
		{http.MethodDelete, "/statuses/1"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec := serve(h, route.method, route.path, nil, false)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_GuestOnlyRoutesRedirectAuthenticatedUsers(t *testing.T) {
	for _, path := range []string{"/signup", "/users/create", "/login"} {
		t.Run(path, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.loggedInAs(1)

			rec := serve(h, http.MethodGet, path, nil, true)

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/", rec.Header().Get("Location"))
		})
	}
}

func TestInit_GuestOnlyRoutesRenderForms(t *testing.T) {
	tests := []struct {
		path       string
		wantAction string
	}{
		{"/signup", "/users"},
		{"/users/create", "/users"},
		{"/login", "/login"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec := serve(h, http.MethodGet, tt.path, nil, false)
			require.Equal(t, http.StatusOK, rec.Code)

			var form struct {
				Method string `json:"method"`
				Action string `json:"action"`
			}
			decodeView(t, rec, &form)
			assert.Equal(t, "POST", form.Method)
			assert.Equal(t, tt.wantAction, form.Action)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/nonexistent", nil, false)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodPost, "/version", nil, false)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}
