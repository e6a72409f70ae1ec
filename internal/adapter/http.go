// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/internal/utils"
	"github.com/MKhiriev/go-microblog/models"
)

type httpAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAdapter constructs a [MicroblogClient] for the server at address,
// with or without a scheme ("localhost:8080" means "http://localhost:8080").
// A timeout of zero leaves requests unbounded.
func NewHTTPAdapter(address string, timeout time.Duration, logger *logger.Logger) (MicroblogClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &httpAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := h.request(ctx).SetBody(req).Post("/users")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpAdapter) ConfirmEmail(ctx context.Context, token string) (int64, error) {
	resp, err := h.request(ctx).
		SetPathParam("token", token).
		Get("/signup/confirm/{token}")
	if err != nil {
		return 0, fmt.Errorf("confirm email request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return h.startSession(resp)
}

func (h *httpAdapter) Login(ctx context.Context, req models.LoginRequest) (int64, error) {
	resp, err := h.request(ctx).SetBody(req).Post("/login")
	if err != nil {
		return 0, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return h.startSession(resp)
}

func (h *httpAdapter) Logout(ctx context.Context) error {
	resp, err := h.request(ctx).Delete("/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpAdapter) ListUsers(ctx context.Context, page int) (models.Paginated[models.UserView], error) {
	var users models.Paginated[models.UserView]

	resp, err := h.request(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		Get("/users")
	if err != nil {
		return users, fmt.Errorf("list users request: %w", err)
	}
	if err = decodeView(resp, &users); err != nil {
		return users, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (h *httpAdapter) ShowUser(ctx context.Context, id int64, page int) (models.UserProfile, error) {
	var profile models.UserProfile

	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetQueryParam("page", strconv.Itoa(page)).
		Get("/users/{id}")
	if err != nil {
		return profile, fmt.Errorf("show user request: %w", err)
	}
	if err = decodeView(resp, &profile); err != nil {
		return profile, fmt.Errorf("show user: %w", err)
	}

	return profile, nil
}

func (h *httpAdapter) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) error {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(req).
		Patch("/users/{id}")
	if err != nil {
		return fmt.Errorf("update user request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpAdapter) DeleteUser(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/users/{id}")
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if sessionUser, err := subject(h.Token()); err == nil && sessionUser == id {
		h.SetToken("")
	}
	return nil
}

func (h *httpAdapter) PostStatus(ctx context.Context, content string) error {
	resp, err := h.request(ctx).
		SetBody(models.CreateStatusRequest{Content: content}).
		Post("/statuses")
	if err != nil {
		return fmt.Errorf("post status request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpAdapter) DeleteStatus(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/statuses/{id}")
	if err != nil {
		return fmt.Errorf("delete status request: %w", err)
	}
	return mapHTTPError(resp)
}

// request starts a request carrying the session token, if any.
func (h *httpAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// startSession stores the token from the Authorization header of resp and
// returns the user it was issued for.
func (h *httpAdapter) startSession(resp *resty.Response) (int64, error) {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	userID, err := subject(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	h.SetToken(token)
	h.logger.Debug().Int64("user_id", userID).Msg("session started")
	return userID, nil
}

// subject reads the user id from a session token. The signature is not
// checked: only the server can do that.
func subject(tokenString string) (int64, error) {
	if tokenString == "" {
		return 0, errors.New("empty token")
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &jwt.RegisteredClaims{})
	if err != nil {
		return 0, err
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(sub, 10, 64)
}

func decodeView(resp *resty.Response, data any) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	view := struct {
		Data any `json:"data"`
	}{Data: data}
	if err := json.Unmarshal(resp.Body(), &view); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
