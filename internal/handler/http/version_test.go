// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-microblog/models"
)

func TestHome(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppInfo(gomock.Any()).Return(models.AppInfo{Name: "go-microblog", Version: "1.2.3"})

	rec := serve(h, http.MethodGet, "/", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)

	var info models.AppInfo
	flash := decodeView(t, rec, &info)
	assert.Nil(t, flash)
	assert.Equal(t, "go-microblog", info.Name)
	assert.Equal(t, "1.2.3", info.Version)
}

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "semver", version: "1.2.3"},
		{name: "pre-release with build metadata", version: "v2.0.0-beta+build.42"},
		{name: "empty", version: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(tt.version)

			rec := serve(h, http.MethodGet, "/version", nil, false)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.version, rec.Body.String())
			assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
		})
	}
}
