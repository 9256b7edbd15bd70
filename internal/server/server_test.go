// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/careerdesk/careerdesk/internal/config"
	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.ServerConfig {
	return &config.ServerConfig{
		Host:      "127.0.0.1",
		Port:      4000,
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewRouter(testConfig(), NewStore(DefaultSeed()))
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, h http.Handler, email string, role models.Role) string {
	t.Helper()
	rec := doRequest(t, h, http.MethodPost, "/api/v1/user/login", map[string]any{
		"email": email, "password": "password", "role": role,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	for _, c := range rec.Result().Cookies() {
		if c.Name == TokenCookie {
			return c.Value
		}
	}
	t.Fatal("login did not set the token cookie")
	return ""
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestLogin(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name    string
		body    map[string]any
		status  int
		message string
	}{
		{"valid_seeker", map[string]any{"email": "ada@example.com", "password": "password", "role": "Job Seeker"}, http.StatusOK, "User Logged In!"},
		{"wrong_password", map[string]any{"email": "ada@example.com", "password": "nope", "role": "Job Seeker"}, http.StatusBadRequest, "Invalid Email, Password Or Role."},
		{"wrong_role", map[string]any{"email": "ada@example.com", "password": "password", "role": "Employer"}, http.StatusBadRequest, "Invalid Email, Password Or Role."},
		{"missing_role", map[string]any{"email": "ada@example.com", "password": "password"}, http.StatusBadRequest, "Please provide email, password and role."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, http.MethodPost, "/api/v1/user/login", tt.body, "")
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, decode(t, rec)["message"])
		})
	}
}

func TestGetUser(t *testing.T) {
	h := newTestRouter(t)
	token := login(t, h, "grace@example.com", models.RoleEmployer)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/user/getuser", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		User models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "u-employer", body.User.ID)
	assert.Equal(t, models.RoleEmployer, body.User.Role)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	h := newTestRouter(t)

	for _, path := range []string{
		"/api/v1/user/getuser",
		"/api/v1/application/employer/getall",
		"/api/v1/application/jobseeker/getall",
	} {
		rec := doRequest(t, h, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)

		rec = doRequest(t, h, http.MethodGet, path, nil, "garbage")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestExpiredToken_Rejected(t *testing.T) {
	cfg := testConfig()
	store := NewStore(DefaultSeed())
	h := NewRouter(cfg, store)

	tokens := NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	tokens.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := tokens.Generate("u-seeker")
	require.NoError(t, err)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/user/getuser", nil, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListApplications_ScopedByRole(t *testing.T) {
	h := newTestRouter(t)
	seeker := login(t, h, "ada@example.com", models.RoleJobSeeker)
	employer := login(t, h, "grace@example.com", models.RoleEmployer)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/application/jobseeker/getall", nil, seeker)
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Applications []models.Application `json:"applications"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Applications, 2)
	assert.Equal(t, "app-1", body.Applications[0].ID)
	assert.Equal(t, "app-2", body.Applications[1].ID)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/application/employer/getall", nil, employer)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/application/employer/getall", nil, seeker)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Job Seeker not allowed to access this resource.", decode(t, rec)["message"])

	rec = doRequest(t, h, http.MethodGet, "/api/v1/application/jobseeker/getall", nil, employer)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteApplication(t *testing.T) {
	h := newTestRouter(t)
	seeker := login(t, h, "ada@example.com", models.RoleJobSeeker)
	employer := login(t, h, "grace@example.com", models.RoleEmployer)

	rec := doRequest(t, h, http.MethodDelete, "/api/v1/application/delete/app-1", nil, employer)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodDelete, "/api/v1/application/delete/app-1", nil, seeker)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Application Deleted!", decode(t, rec)["message"])

	rec = doRequest(t, h, http.MethodDelete, "/api/v1/application/delete/app-1", nil, seeker)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Application not found!", decode(t, rec)["message"])

	rec = doRequest(t, h, http.MethodGet, "/api/v1/application/jobseeker/getall", nil, seeker)
	var body struct {
		Applications []models.Application `json:"applications"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Applications, 1)
	assert.Equal(t, "app-2", body.Applications[0].ID)
}

func TestLogout_ClearsCookie(t *testing.T) {
	h := newTestRouter(t)
	token := login(t, h, "ada@example.com", models.RoleJobSeeker)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/user/logout", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logged Out Successfully.", decode(t, rec)["message"])

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, TokenCookie, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestRequestID_EchoedOrGenerated(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/getuser", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/user/getuser", nil)
	req.Header.Set("X-Request-ID", "bad id\nwith newline")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEqual(t, "bad id\nwith newline", rec.Header().Get("X-Request-ID"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCORS(t *testing.T) {
	cfg := testConfig()
	cfg.AllowedOrigins = []string{"http://localhost:5173"}
	h := NewRouter(cfg, NewStore(DefaultSeed()))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/user/login", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/user/login", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecovery(t *testing.T) {
	h := Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", decode(t, rec)["message"])
}
