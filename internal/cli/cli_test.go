// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/careerdesk/careerdesk/internal/config"
	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/orchestrator"
	"github.com/careerdesk/careerdesk/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliFixture struct {
	configPath  string
	sessionPath string
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()
	return newCLIFixtureWith(t, func(h http.Handler) http.Handler { return h })
}

// newCLIFixtureWith runs the portal stub behind wrap.
func newCLIFixtureWith(t *testing.T, wrap func(http.Handler) http.Handler) *cliFixture {
	t.Helper()
	srv := httptest.NewServer(wrap(server.NewRouter(&config.ServerConfig{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}, server.NewStore(server.DefaultSeed()))))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	f := &cliFixture{
		configPath:  filepath.Join(dir, "config.yaml"),
		sessionPath: filepath.Join(dir, "session.json"),
	}
	yaml := fmt.Sprintf("portal:\n  base_url: %s\n  session_file: %s\n", srv.URL, f.sessionPath)
	require.NoError(t, os.WriteFile(f.configPath, []byte(yaml), 0o600))
	return f
}

func (f *cliFixture) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCommand(false)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", f.configPath}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func (f *cliFixture) login(t *testing.T, email, role string) {
	t.Helper()
	_, _, err := f.run(t, "login", "--email", email, "--password", "password", "--role", role)
	require.NoError(t, err)
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	root := newRootCommand(false)
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "careerdesk version "+appVersion+"\n", out.String())
}

func TestLoginWhoamiLogout(t *testing.T) {
	f := newCLIFixture(t)

	out, _, err := f.run(t, "login", "--email", "ada@example.com", "--password", "password", "--role", "seeker")
	require.NoError(t, err)
	assert.Contains(t, out, "User Logged In!")
	assert.FileExists(t, f.sessionPath)

	out, _, err = f.run(t, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "ada@example.com")
	assert.Contains(t, out, "Job Seeker")

	out, _, err = f.run(t, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged Out Successfully.")
	assert.NoFileExists(t, f.sessionPath)

	_, _, err = f.run(t, "whoami")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestLoginRejected(t *testing.T) {
	f := newCLIFixture(t)

	_, _, err := f.run(t, "login", "--email", "ada@example.com", "--password", "wrong", "--role", "seeker")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid Email, Password Or Role.")
	assert.NoFileExists(t, f.sessionPath)
}

func TestLoginUnknownRole(t *testing.T) {
	f := newCLIFixture(t)

	_, _, err := f.run(t, "login", "--email", "ada@example.com", "--password", "password", "--role", "admin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role")
}

func TestApplicationsList(t *testing.T) {
	t.Run("employer", func(t *testing.T) {
		f := newCLIFixture(t)
		f.login(t, "grace@example.com", "employer")

		out, _, err := f.run(t, "applications", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "Applications From Job Seekers")
		assert.Contains(t, out, "app-1")
		assert.Contains(t, out, "(document)")
	})

	t.Run("seeker as json", func(t *testing.T) {
		f := newCLIFixture(t)
		f.login(t, "ada@example.com", "seeker")

		out, _, err := f.run(t, "apps", "list", "--json")
		require.NoError(t, err)

		var apps []models.Application
		require.NoError(t, json.Unmarshal([]byte(out), &apps))
		assert.Len(t, apps, 2)
	})

	t.Run("requires login", func(t *testing.T) {
		f := newCLIFixture(t)

		_, _, err := f.run(t, "applications", "list")
		assert.ErrorIs(t, err, ErrNotLoggedIn)
	})
}

func TestApplicationsDelete(t *testing.T) {
	f := newCLIFixture(t)
	f.login(t, "ada@example.com", "seeker")

	out, stderr, err := f.run(t, "applications", "delete", "app-1", "missing")
	require.Error(t, err)
	assert.Contains(t, out, "app-1: Application Deleted!")
	assert.Contains(t, stderr, "missing: Application not found!")

	out, _, err = f.run(t, "applications", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "app-1")
	assert.Contains(t, out, "app-2")
}

func TestApplicationsDelete_EmptyMessageFallsBack(t *testing.T) {
	// The portal confirms the delete but sends no message
	f := newCLIFixtureWith(t, func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete {
				h.ServeHTTP(w, r)
				return
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, r)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(rec.Code)
			_, _ = w.Write([]byte(`{}`))
		})
	})
	f.login(t, "ada@example.com", "seeker")

	out, _, err := f.run(t, "applications", "delete", "app-1")
	require.NoError(t, err)
	assert.Contains(t, out, "app-1: "+orchestrator.DeletedMessage+"\n")
}

func TestApplicationsDelete_EmployerRefused(t *testing.T) {
	f := newCLIFixture(t)
	f.login(t, "grace@example.com", "employer")

	_, stderr, err := f.run(t, "applications", "delete", "app-1")
	require.Error(t, err)
	assert.Contains(t, stderr, "Employer not allowed to access this resource.")
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    models.Role
		wantErr bool
	}{
		{in: "seeker", want: models.RoleJobSeeker},
		{in: "Job Seeker", want: models.RoleJobSeeker},
		{in: "EMPLOYER", want: models.RoleEmployer},
		{in: "admin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseRole(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
