// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/internal/mock"
	"github.com/MKhiriev/go-microblog/internal/store"
	"github.com/MKhiriev/go-microblog/internal/validators"
	"github.com/MKhiriev/go-microblog/models"
)

func newTestStatusSvc(t *testing.T) (StatusService, *mock.MockStatusRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	statuses := mock.NewMockStatusRepository(ctrl)
	return NewStatusService(statuses, validators.NewRequestValidator(), logger.Nop()), statuses
}

func TestStatusService_Create(t *testing.T) {
	t.Run("stores status owned by actor", func(t *testing.T) {
		svc, statuses := newTestStatusSvc(t)

		statuses.EXPECT().
			CreateStatus(gomock.Any(), models.Status{UserID: 7, Content: "hello"}).
			Return(models.Status{ID: 1, UserID: 7, Content: "hello"}, nil)

		status, err := svc.Create(context.Background(), models.Authenticated(7), models.CreateStatusRequest{Content: "  hello "})
		require.NoError(t, err)
		assert.Equal(t, int64(1), status.ID)
		assert.Equal(t, int64(7), status.UserID)
	})

	t.Run("guest", func(t *testing.T) {
		svc, _ := newTestStatusSvc(t)

		_, err := svc.Create(context.Background(), models.Guest(), models.CreateStatusRequest{Content: "hello"})
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("too long", func(t *testing.T) {
		svc, _ := newTestStatusSvc(t)

		_, err := svc.Create(context.Background(), models.Authenticated(7), models.CreateStatusRequest{
			Content: strings.Repeat("x", models.StatusMaxLength+1),
		})

		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Contains(t, ve.Fields, "content")
	})

	t.Run("empty", func(t *testing.T) {
		svc, _ := newTestStatusSvc(t)

		_, err := svc.Create(context.Background(), models.Authenticated(7), models.CreateStatusRequest{Content: "   "})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("author deleted after the session was issued", func(t *testing.T) {
		svc, statuses := newTestStatusSvc(t)

		statuses.EXPECT().CreateStatus(gomock.Any(), gomock.Any()).Return(models.Status{}, store.ErrNoUserWasFound)

		_, err := svc.Create(context.Background(), models.Authenticated(7), models.CreateStatusRequest{Content: "hello"})
		assert.ErrorIs(t, err, ErrUnauthenticated)
		assert.NotErrorIs(t, err, store.ErrNoUserWasFound)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, statuses := newTestStatusSvc(t)

		statuses.EXPECT().CreateStatus(gomock.Any(), gomock.Any()).Return(models.Status{}, store.ErrExecutingStatement)

		_, err := svc.Create(context.Background(), models.Authenticated(7), models.CreateStatusRequest{Content: "hello"})
		assert.ErrorIs(t, err, store.ErrExecutingStatement)
	})
}

func TestStatusService_Destroy(t *testing.T) {
	tests := []struct {
		name    string
		actor   models.Identity
		setup   func(statuses *mock.MockStatusRepository)
		wantErr error
	}{
		{
			name:  "owner",
			actor: models.Authenticated(7),
			setup: func(statuses *mock.MockStatusRepository) {
				statuses.EXPECT().FindStatusByID(gomock.Any(), int64(3)).Return(models.Status{ID: 3, UserID: 7}, nil)
				statuses.EXPECT().DeleteStatus(gomock.Any(), int64(3)).Return(nil)
			},
		},
		{
			name:  "not the owner",
			actor: models.Authenticated(8),
			setup: func(statuses *mock.MockStatusRepository) {
				statuses.EXPECT().FindStatusByID(gomock.Any(), int64(3)).Return(models.Status{ID: 3, UserID: 7}, nil)
			},
			wantErr: ErrForbidden,
		},
		{
			name:    "guest",
			actor:   models.Guest(),
			setup:   func(statuses *mock.MockStatusRepository) {},
			wantErr: ErrUnauthenticated,
		},
		{
			name:  "missing status",
			actor: models.Authenticated(7),
			setup: func(statuses *mock.MockStatusRepository) {
				statuses.EXPECT().FindStatusByID(gomock.Any(), int64(3)).Return(models.Status{}, store.ErrNoStatusWasFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name:  "deleted concurrently",
			actor: models.Authenticated(7),
			setup: func(statuses *mock.MockStatusRepository) {
				statuses.EXPECT().FindStatusByID(gomock.Any(), int64(3)).Return(models.Status{ID: 3, UserID: 7}, nil)
				statuses.EXPECT().DeleteStatus(gomock.Any(), int64(3)).Return(store.ErrNoStatusWasFound)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, statuses := newTestStatusSvc(t)
			tt.setup(statuses)

			err := svc.Destroy(context.Background(), tt.actor, 3)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
