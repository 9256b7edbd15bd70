// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package portalapi talks to the job portal REST backend. A Client holds the
// credentialed session as a "token" cookie in its jar.
package portalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/careerdesk/careerdesk/internal/config"
	"github.com/careerdesk/careerdesk/internal/logger"
	"github.com/careerdesk/careerdesk/internal/models"
)

const maxBodyBytes = 4 << 20

type requestIDKey struct{}

// WithRequestID attaches the id sent as X-Request-ID on requests made with ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the id stored by WithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Client is a portal API client
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a client for the configured portal. A zero timeout leaves the
// http.Client default in place.
func NewClient(cfg config.PortalConfig) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid portal base url: %w", err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Jar: jar, Timeout: cfg.Timeout},
		userAgent:  cfg.UserAgent,
	}, nil
}

// SetToken installs a stored credential. An empty token clears it.
func (c *Client) SetToken(token string) {
	cookie := &http.Cookie{Name: TokenCookie, Value: token, Path: "/"}
	if token == "" {
		cookie.MaxAge = -1
	}
	c.httpClient.Jar.SetCookies(c.baseURL, []*http.Cookie{cookie})
}

// Token returns the current credential, or "" when there is none.
func (c *Client) Token() string {
	for _, cookie := range c.httpClient.Jar.Cookies(c.baseURL) {
		if cookie.Name == TokenCookie {
			return cookie.Value
		}
	}
	return ""
}

// Login signs in and keeps the issued token for later requests.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid login request: %w", err)
	}

	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, LoginPath, req, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, errors.New("login response carried no user")
	}
	// Some deployments only return the token in the body.
	if resp.Token != "" && c.Token() == "" {
		c.SetToken(resp.Token)
	}
	if resp.Token == "" {
		resp.Token = c.Token()
	}
	return &resp, nil
}

// GetUser returns the user the current credential belongs to.
func (c *Client) GetUser(ctx context.Context) (*models.User, error) {
	var resp UserResponse
	if err := c.do(ctx, http.MethodGet, GetUserPath, nil, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, errors.New("user response carried no user")
	}
	return resp.User, nil
}

// Logout ends the portal session. The local credential is dropped even when the call fails.
func (c *Client) Logout(ctx context.Context) (string, error) {
	defer c.SetToken("")

	var resp MessageResponse
	if err := c.do(ctx, http.MethodGet, LogoutPath, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ListApplications fetches the applications visible in view, in server order.
func (c *Client) ListApplications(ctx context.Context, view models.ViewKind) ([]models.Application, error) {
	var resp ApplicationsResponse
	if err := c.do(ctx, http.MethodGet, ApplicationsPath(view), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Applications == nil {
		return []models.Application{}, nil
	}
	return resp.Applications, nil
}

// DeleteApplication deletes one application and returns the portal's confirmation.
func (c *Client) DeleteApplication(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", errors.New("application id is required")
	}

	var resp MessageResponse
	if err := c.do(ctx, http.MethodDelete, DeleteApplicationPath+url.PathEscape(id), nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	log := logger.WithRequestID(logger.GetAPILogger(), RequestIDFromContext(ctx))

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if id := RequestIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("Portal request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Portal request completed")

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, RequestID: resp.Header.Get("X-Request-ID")}
		var msg MessageResponse
		if json.Unmarshal(data, &msg) == nil {
			apiErr.Message = msg.Message
		}
		log.Warn().Int("status", resp.StatusCode).Str("path", path).Str("message", apiErr.Message).Msg("Portal answered with an error")
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}
