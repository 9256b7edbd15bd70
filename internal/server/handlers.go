// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// TokenCookie carries the session token.
const TokenCookie = "token"

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	store    *Store
	tokens   *TokenService
	validate *validator.Validate
}

// NewHandlers creates the handler set.
func NewHandlers(store *Store, tokens *TokenService) *Handlers {
	return &Handlers{store: store, tokens: tokens, validate: validator.New()}
}

type loginBody struct {
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Role     models.Role `json:"role" validate:"required"`
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		getLog().Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"success": status < 400, "message": message})
}

// --- user ---

// Login handles POST /api/v1/user/login
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var body loginBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Please provide email, password and role.")
		return
	}

	user, ok := h.store.Authenticate(body.Email, body.Password, body.Role)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid Email, Password Or Role.")
		return
	}

	token, expiresAt, err := h.tokens.Generate(user.ID)
	if err != nil {
		getLog().Error().Err(err).Msg("Failed to issue token")
		writeMessage(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    user,
		"message": "User Logged In!",
		"token":   token,
	})
}

// GetUser handles GET /api/v1/user/getuser
func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": CurrentUser(r.Context())})
}

// Logout handles GET /api/v1/user/logout
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeMessage(w, http.StatusOK, "Logged Out Successfully.")
}

// --- applications ---

// EmployerApplications handles GET /api/v1/application/employer/getall
func (h *Handlers) EmployerApplications(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	if user.Role == models.RoleJobSeeker {
		writeMessage(w, http.StatusBadRequest, "Job Seeker not allowed to access this resource.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "applications": h.store.ApplicationsFor(user)})
}

// JobSeekerApplications handles GET /api/v1/application/jobseeker/getall
func (h *Handlers) JobSeekerApplications(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	if user.Role == models.RoleEmployer {
		writeMessage(w, http.StatusBadRequest, "Employer not allowed to access this resource.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "applications": h.store.ApplicationsFor(user)})
}

// DeleteApplication handles DELETE /api/v1/application/delete/{id}
func (h *Handlers) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	if user.Role == models.RoleEmployer {
		writeMessage(w, http.StatusBadRequest, "Employer not allowed to access this resource.")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.store.DeleteApplication(user.ID, id); err != nil {
		if errors.Is(err, ErrApplicationNotFound) {
			writeMessage(w, http.StatusNotFound, "Application not found!")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to delete application")
		return
	}

	getLog().Info().Str("request_id", GetRequestID(r.Context())).Str("application_id", id).Msg("Application deleted")
	writeMessage(w, http.StatusOK, "Application Deleted!")
}
