// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-microblog/internal/config"
	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/internal/mock"
	"github.com/MKhiriev/go-microblog/internal/service"
	"github.com/MKhiriev/go-microblog/internal/utils"
	"github.com/MKhiriev/go-microblog/models"
)

// ---- Helpers ----

const validSession = "valid-session-token"

type testMocks struct {
	users    *mock.MockUserService
	statuses *mock.MockStatusService
	auth     *mock.MockAuthService
	appInfo  *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		users:    mock.NewMockUserService(ctrl),
		statuses: mock.NewMockStatusService(ctrl),
		auth:     mock.NewMockAuthService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		UserService:    m.users,
		StatusService:  m.statuses,
		AuthService:    m.auth,
		AppInfoService: m.appInfo,
	}, config.App{TokenDuration: time.Hour}, logger.Nop())

	return h, m
}

// loggedInAs makes validSession resolve to userID.
func (m testMocks) loggedInAs(userID int64) {
	m.auth.EXPECT().
		ParseToken(gomock.Any(), validSession).
		Return(models.Token{UserID: userID}, nil).
		AnyTimes()
}

// serve runs a request through the full router. When authenticated is
// true the request carries validSession as a bearer token.
func serve(h *Handler, method, path string, body any, authenticated bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+validSession)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder, data any) *models.Flash {
	t.Helper()

	view := struct {
		Flash *models.Flash   `json:"flash"`
		Data  json.RawMessage `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))

	if data != nil {
		require.NoError(t, json.Unmarshal(view.Data, data))
	}
	return view.Flash
}

// flashFrom decodes the flash cookie set on rec, if any.
func flashFrom(t *testing.T, h *Handler, rec *httptest.ResponseRecorder) *models.Flash {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == flashCookieName && c.Value != "" {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(c)
			return h.popFlash(httptest.NewRecorder(), req)
		}
	}
	return nil
}

func cookieFrom(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func contextWithUser(r *http.Request, userID int64) context.Context {
	return context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
}
