// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-microblog/internal/service"
	"github.com/MKhiriev/go-microblog/models"
)

func TestCreateStatus(t *testing.T) {
	h, m := newTestHandler(t)
	m.loggedInAs(3)
	req := models.CreateStatusRequest{Content: "hello world"}

	m.statuses.EXPECT().Create(gomock.Any(), models.Authenticated(3), req).
		Return(models.Status{ID: 1, UserID: 3, Content: req.Content}, nil)

	rec := serve(h, http.MethodPost, "/statuses", req, true)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/users/3", rec.Header().Get("Location"))
	require.NotNil(t, flashFrom(t, h, rec))
}

func TestCreateStatus_ValidationError(t *testing.T) {
	h, m := newTestHandler(t)
	m.loggedInAs(3)

	m.statuses.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Status{}, &service.ValidationError{Fields: map[string][]string{"content": {"The content is required."}}})

	rec := serve(h, http.MethodPost, "/statuses", models.CreateStatusRequest{}, true)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDestroyStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "owner", wantStatus: http.StatusSeeOther},
		{name: "not the owner", err: service.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "missing", err: service.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.loggedInAs(3)

			m.statuses.EXPECT().Destroy(gomock.Any(), models.Authenticated(3), int64(8)).Return(tt.err)

			rec := serve(h, http.MethodDelete, "/statuses/8", nil, true)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
