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

	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/models"
)

func TestStartSession(t *testing.T) {
	h := &Handler{logger: logger.Nop(), sessionTTL: time.Hour, secureCookies: true}
	rec := httptest.NewRecorder()

	h.startSession(rec, models.Token{SignedString: "signed"})

	assert.Equal(t, "Bearer signed", rec.Header().Get("Authorization"))

	cookie := cookieFrom(rec, sessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.Equal(t, "/", cookie.Path)
}

func TestEndSession(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	rec := httptest.NewRecorder()

	h.endSession(rec)

	cookie := cookieFrom(rec, sessionCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestFlash_RoundTrip(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	rec := httptest.NewRecorder()
	h.setFlash(rec, models.Flash{Kind: "success", Message: "Profile updated."})

	cookie := cookieFrom(rec, flashCookieName)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	next := httptest.NewRecorder()

	flash := h.popFlash(next, req)
	require.NotNil(t, flash)
	assert.Equal(t, "success", flash.Kind)
	assert.Equal(t, "Profile updated.", flash.Message)

	// consumed
	cleared := cookieFrom(next, flashCookieName)
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)
}

func TestPopFlash_NoCookie(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	rec := httptest.NewRecorder()

	assert.Nil(t, h.popFlash(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Nil(t, cookieFrom(rec, flashCookieName))
}

func TestPopFlash_Malformed(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: flashCookieName, Value: "%%%"})

	assert.Nil(t, h.popFlash(httptest.NewRecorder(), req))
}

func TestRender_IncludesAndConsumesFlash(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	setter := httptest.NewRecorder()
	h.setFlash(setter, models.Flash{Kind: "info", Message: "hello"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookieFrom(setter, flashCookieName))
	rec := httptest.NewRecorder()

	h.render(rec, req, models.AppInfo{Name: "go-microblog"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var info models.AppInfo
	flash := decodeView(t, rec, &info)
	require.NotNil(t, flash)
	assert.Equal(t, "hello", flash.Message)
	assert.Equal(t, "go-microblog", info.Name)
}
