// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:4000", cfg.Portal.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.UI.SuccessToast)
	assert.Equal(t, 4*time.Second, cfg.UI.ErrorToast)
	assert.Equal(t, "127.0.0.1:4000", cfg.Server.Addr())
	assert.Equal(t, 24*time.Hour, cfg.Server.TokenTTL)
	assert.NotContains(t, cfg.Portal.SessionFile, "~")
	assert.Equal(t, "session.json", filepath.Base(cfg.Portal.SessionFile))
}

func TestNewConfig_FileOverrides(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
portal:
  base_url: https://portal.example.com
  timeout: 15s
ui:
  success_toast: 1s
  error_toast: 3s
server:
  port: 4100
  allowed_origins: ["http://localhost:5173"]
`)

	cfg, err := NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "https://portal.example.com", cfg.Portal.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Portal.Timeout)
	assert.Equal(t, time.Second, cfg.UI.SuccessToast)
	assert.Equal(t, 3*time.Second, cfg.UI.ErrorToast)
	assert.Equal(t, 4100, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.AllowedOrigins)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CAREERDESK_PORTAL_BASE_URL", "http://10.0.0.5:4000")
	t.Setenv("CAREERDESK_UI_ERROR_TOAST", "5s")

	cfg, err := NewConfig(writeConfig(t, "log:\n  level: info\n"))
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.0.5:4000", cfg.Portal.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.UI.ErrorToast)
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		errorMsg string
	}{
		{"bad_log_level", "log:\n  level: loud\n", "invalid log level"},
		{"relative_base_url", "portal:\n  base_url: /api\n", "invalid portal.base_url"},
		{"ftp_base_url", "portal:\n  base_url: ftp://portal\n", "must be http or https"},
		{"zero_toast", "ui:\n  success_toast: 0s\n", "toast durations"},
		{"bad_port", "server:\n  port: 70000\n", "invalid server port"},
		{"empty_secret", "server:\n  jwt_secret: \"\"\n", "jwt_secret is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("CAREERDESK_TEST_DIR", "/var/tmp/cd")

	assert.Equal(t, "", expandPath(""))
	assert.Equal(t, filepath.Join(home, ".careerdesk", "session.json"), expandPath("~/.careerdesk/session.json"))
	assert.Equal(t, "/var/tmp/cd/seed.yaml", expandPath("$CAREERDESK_TEST_DIR/seed.yaml"))
	assert.Equal(t, "/abs/file", expandPath("/abs/file"))
}
