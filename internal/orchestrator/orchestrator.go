// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/careerdesk/careerdesk/internal/logger"
	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/portalapi"
	"github.com/careerdesk/careerdesk/internal/protocol"
	"github.com/careerdesk/careerdesk/internal/session"

	"github.com/rs/zerolog"
)

// Messages shown when the portal gives no message of its own.
const (
	FetchFailedMessage   = "Failed to fetch applications"
	DeleteFailedMessage  = "Failed to delete application"
	DeletedMessage       = "Application deleted"
	LoginFailedMessage   = "Failed to log in"
	SessionFailedMessage = "Failed to load session"

	SessionStoreFailedMessage = "Cannot read the stored session"
)

var (
	log     *zerolog.Logger
	logOnce sync.Once
)

func getLog() *zerolog.Logger {
	logOnce.Do(func() {
		l := logger.GetOrchestratorLogger()
		log = &l
	})
	return log
}

// PortalAPI is the subset of the portal client the orchestrator uses.
type PortalAPI interface {
	SetToken(token string)
	Token() string
	Login(ctx context.Context, req portalapi.LoginRequest) (*portalapi.LoginResponse, error)
	GetUser(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) (string, error)
	ListApplications(ctx context.Context, view models.ViewKind) ([]models.Application, error)
	DeleteApplication(ctx context.Context, id string) (string, error)
}

// CredentialStore persists the portal token between runs.
type CredentialStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Orchestrator turns UI commands into portal calls and answers with events
type Orchestrator struct {
	cmdChan   <-chan protocol.Command
	eventChan chan<- protocol.Event
	api       PortalAPI
	store     CredentialStore
	inflight  sync.WaitGroup
}

// New creates a new orchestrator instance
func New(cmdChan <-chan protocol.Command, eventChan chan<- protocol.Event, api PortalAPI, store CredentialStore) *Orchestrator {
	return &Orchestrator{
		cmdChan:   cmdChan,
		eventChan: eventChan,
		api:       api,
		store:     store,
	}
}

// Run starts the orchestrator's main loop. It returns once ctx is done or the
// command channel is closed, after in-flight deletes have finished.
func (o *Orchestrator) Run(ctx context.Context) {
	getLog().Info().Msg("Orchestrator started")
	defer o.inflight.Wait()

	for {
		select {
		case <-ctx.Done():
			getLog().Info().Err(ctx.Err()).Msg("Orchestrator shutting down")
			return
		case cmd, ok := <-o.cmdChan:
			if !ok {
				getLog().Info().Msg("Command channel closed")
				return
			}
			getLog().Debug().
				Str("command_type", fmt.Sprintf("%T", cmd)).
				Str("request_id", cmd.GetBaseMessage().RequestID).
				Msg("Processing command")
			o.handleCommand(ctx, cmd)
		}
	}
}

// handleCommand dispatches a command. Reads and session changes run inline in
// command order; each delete runs on its own goroutine and is never cancelled
// or merged with another.
func (o *Orchestrator) handleCommand(ctx context.Context, cmd protocol.Command) {
	switch c := cmd.(type) {
	case protocol.LoadSessionCommand:
		o.handleLoadSession(ctx, c.Metadata)
	case protocol.LoginCommand:
		o.handleLogin(ctx, c)
	case protocol.LogoutCommand:
		o.handleLogout(ctx, c.Metadata)
	case protocol.LoadApplicationsCommand:
		o.handleLoadApplications(ctx, c.Metadata, c.View)
	case protocol.DeleteApplicationCommand:
		o.inflight.Add(1)
		go func() {
			defer o.inflight.Done()
			o.handleDeleteApplication(ctx, c.Metadata, c.ApplicationID)
		}()
	default:
		getLog().Warn().Str("command_type", fmt.Sprintf("%T", cmd)).Msg("Unknown command type")
	}
}

func (o *Orchestrator) emit(ctx context.Context, event protocol.Event) {
	select {
	case o.eventChan <- event:
	case <-ctx.Done():
		getLog().Debug().Str("event_type", fmt.Sprintf("%T", event)).Msg("Dropping event after shutdown")
	}
}

func requestContext(ctx context.Context, metadata protocol.Metadata) context.Context {
	return portalapi.WithRequestID(ctx, metadata.RequestID)
}

// --- Session handlers ---

func (o *Orchestrator) handleLoadSession(ctx context.Context, metadata protocol.Metadata) {
	token, err := o.store.Load()
	switch {
	case errors.Is(err, session.ErrNoSession), errors.Is(err, session.ErrSessionExpired):
		o.emit(ctx, protocol.SessionLoadedEvent{Metadata: metadata, Authorized: false})
		return
	case err != nil:
		// Logging in would only fail again on save, so stop here.
		getLog().Error().Err(err).Msg("Failed to read stored session")
		o.emit(ctx, protocol.CriticalErrorEvent{
			Metadata: metadata,
			Message:  SessionStoreFailedMessage,
			Context:  err.Error(),
		})
		return
	}

	o.api.SetToken(token)
	user, err := o.api.GetUser(requestContext(ctx, metadata))
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		if portalapi.IsUnauthorized(err) {
			getLog().Info().Msg("Stored session rejected by portal")
			o.forget()
		} else {
			o.emit(ctx, protocol.ErrorEvent{
				Metadata: metadata,
				Op:       protocol.OpLoadSession,
				Message:  portalapi.MessageOr(err, SessionFailedMessage),
				Context:  err.Error(),
			})
		}
		o.emit(ctx, protocol.SessionLoadedEvent{Metadata: metadata, Authorized: false})
		return
	}

	o.emit(ctx, protocol.SessionLoadedEvent{Metadata: metadata, Authorized: true, User: user})
}

func (o *Orchestrator) handleLogin(ctx context.Context, cmd protocol.LoginCommand) {
	resp, err := o.api.Login(requestContext(ctx, cmd.Metadata), portalapi.LoginRequest{
		Email:    cmd.Email,
		Password: cmd.Password,
		Role:     cmd.Role,
	})
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		o.emit(ctx, protocol.ErrorEvent{
			Metadata: cmd.Metadata,
			Op:       protocol.OpLogin,
			Message:  portalapi.MessageOr(err, LoginFailedMessage),
			Context:  err.Error(),
		})
		return
	}

	if err := o.store.Save(resp.Token); err != nil {
		// The session still works for this run.
		getLog().Warn().Err(err).Msg("Failed to persist session")
	}
	getLog().Info().Str("user_id", resp.User.ID).Str("role", string(resp.User.Role)).Msg("Logged in")
	o.emit(ctx, protocol.SessionLoadedEvent{Metadata: cmd.Metadata, Authorized: true, User: resp.User})
}

func (o *Orchestrator) handleLogout(ctx context.Context, metadata protocol.Metadata) {
	if _, err := o.api.Logout(requestContext(ctx, metadata)); err != nil {
		getLog().Warn().Err(err).Msg("Portal logout failed; dropping local session anyway")
	}
	o.forget()
	o.emit(ctx, protocol.SessionLoadedEvent{Metadata: metadata, Authorized: false})
}

func (o *Orchestrator) forget() {
	o.api.SetToken("")
	if err := o.store.Clear(); err != nil {
		getLog().Warn().Err(err).Msg("Failed to clear stored session")
	}
}

// --- Application handlers ---

func (o *Orchestrator) handleLoadApplications(ctx context.Context, metadata protocol.Metadata, view models.ViewKind) {
	apps, err := o.api.ListApplications(requestContext(ctx, metadata), view)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		o.emit(ctx, protocol.ErrorEvent{
			Metadata: metadata,
			Op:       protocol.OpLoadApplications,
			Message:  portalapi.MessageOr(err, FetchFailedMessage),
			Context:  err.Error(),
		})
		return
	}

	getLog().Debug().Str("view", view.String()).Int("count", len(apps)).Msg("Applications loaded")
	o.emit(ctx, protocol.ApplicationsLoadedEvent{Metadata: metadata, View: view, Applications: apps})
}

func (o *Orchestrator) handleDeleteApplication(ctx context.Context, metadata protocol.Metadata, id string) {
	message, err := o.api.DeleteApplication(requestContext(ctx, metadata), id)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		o.emit(ctx, protocol.ErrorEvent{
			Metadata:      metadata,
			Op:            protocol.OpDeleteApplication,
			Message:       portalapi.MessageOr(err, DeleteFailedMessage),
			Context:       err.Error(),
			ApplicationID: id,
		})
		return
	}

	if message == "" {
		message = DeletedMessage
	}
	getLog().Info().Str("application_id", id).Msg("Application deleted")
	o.emit(ctx, protocol.ApplicationDeletedEvent{Metadata: metadata, ApplicationID: id, Message: message})
}
