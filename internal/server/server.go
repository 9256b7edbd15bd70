// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package server is a development stand-in for the job portal backend. It serves
// the user and application endpoints the client uses, from an in-memory store
// seeded from YAML, with sessions carried in a signed "token" cookie.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/careerdesk/careerdesk/internal/config"
	"github.com/careerdesk/careerdesk/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

var (
	log     *zerolog.Logger
	logOnce sync.Once
)

func getLog() *zerolog.Logger {
	logOnce.Do(func() {
		l := logger.GetServerLogger()
		log = &l
	})
	return log
}

// Server is the portal stub HTTP server.
type Server struct {
	httpServer *http.Server
}

// New creates and wires up the stub. It does NOT start listening;
// call Run() for that.
func New(cfg *config.ServerConfig, store *Store) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           NewRouter(cfg, store),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// NewRouter builds the routed handler. Tests mount it on an httptest server.
func NewRouter(cfg *config.ServerConfig, store *Store) http.Handler {
	tokens := NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	handlers := NewHandlers(store, tokens)

	r := chi.NewRouter()

	r.Use(Recovery)
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(CORS(cfg.AllowedOrigins))
	r.Use(MaxBodySize(1 << 20))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/user/login", handlers.Login)

		r.Group(func(r chi.Router) {
			r.Use(Authenticated(tokens, store))

			r.Get("/user/getuser", handlers.GetUser)
			r.Get("/user/logout", handlers.Logout)

			r.Route("/application", func(r chi.Router) {
				r.Get("/employer/getall", handlers.EmployerApplications)
				r.Get("/jobseeker/getall", handlers.JobSeekerApplications)
				r.Delete("/delete/{id}", handlers.DeleteApplication)
			})
		})
	})

	return r
}

// Run starts the HTTP server and blocks until it stops or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		getLog().Info().Str("addr", s.httpServer.Addr).Msg("Portal stub listening")
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	}
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
