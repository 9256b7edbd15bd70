// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/portalapi"
	"github.com/careerdesk/careerdesk/internal/protocol"
	"github.com/careerdesk/careerdesk/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	seeker   = &models.User{ID: "u1", Name: "Ada", Role: models.RoleJobSeeker}
	employer = &models.User{ID: "u2", Name: "Grace", Role: models.RoleEmployer}
)

func withRequestID(id string) interface{} {
	return mock.MatchedBy(func(ctx context.Context) bool {
		return portalapi.RequestIDFromContext(ctx) == id
	})
}

func TestLoadSession_NoStoredToken(t *testing.T) {
	for _, storeErr := range []error{session.ErrNoSession, session.ErrSessionExpired} {
		api := &MockPortalAPI{}
		store := &MockCredentialStore{}
		store.On("Load").Return("", storeErr)

		f := WithRunningOrchestrator(t, api, store)
		md := protocol.NewMetadata()
		f.CmdChan <- protocol.LoadSessionCommand{Metadata: md}

		ev := f.NextEvent(t)
		loaded, ok := ev.(protocol.SessionLoadedEvent)
		require.True(t, ok, "got %T", ev)
		assert.False(t, loaded.Authorized)
		assert.Nil(t, loaded.User)
		assert.Equal(t, md.RequestID, loaded.RequestID)
		api.AssertNotCalled(t, "GetUser", mock.Anything)
	}
}

func TestLoadSession_UnreadableStoreIsCritical(t *testing.T) {
	api := &MockPortalAPI{}
	store := &MockCredentialStore{}
	store.On("Load").Return("", fmt.Errorf("failed to read session file: %w", os.ErrPermission))

	f := WithRunningOrchestrator(t, api, store)
	md := protocol.NewMetadata()
	f.CmdChan <- protocol.LoadSessionCommand{Metadata: md}

	ev := f.NextEvent(t)
	critical, ok := ev.(protocol.CriticalErrorEvent)
	require.True(t, ok, "got %T", ev)
	assert.Equal(t, SessionStoreFailedMessage, critical.Message)
	assert.Contains(t, critical.Context, "permission denied")
	assert.Equal(t, md.RequestID, critical.RequestID)
	api.AssertNotCalled(t, "SetToken", mock.Anything)
	api.AssertNotCalled(t, "GetUser", mock.Anything)
}

func TestLoadSession_ValidToken(t *testing.T) {
	api := &MockPortalAPI{}
	store := &MockCredentialStore{}
	store.On("Load").Return("tok", nil)
	api.On("SetToken", "tok").Return()
	md := protocol.NewMetadata()
	api.On("GetUser", withRequestID(md.RequestID)).Return(employer, nil)

	f := WithRunningOrchestrator(t, api, store)
	f.CmdChan <- protocol.LoadSessionCommand{Metadata: md}

	loaded := f.NextEvent(t).(protocol.SessionLoadedEvent)
	assert.True(t, loaded.Authorized)
	assert.Equal(t, employer, loaded.User)
	api.AssertExpectations(t)
}

func TestLoadSession_RejectedTokenIsCleared(t *testing.T) {
	api := &MockPortalAPI{}
	store := &MockCredentialStore{}
	store.On("Load").Return("stale", nil)
	store.On("Clear").Return(nil)
	api.On("SetToken", "stale").Return()
	api.On("SetToken", "").Return()
	api.On("GetUser", mock.Anything).Return(nil, &portalapi.APIError{StatusCode: http.StatusUnauthorized, Message: "User Not Authorized"})

	f := WithRunningOrchestrator(t, api, store)
	f.CmdChan <- protocol.LoadSessionCommand{Metadata: protocol.NewMetadata()}

	loaded := f.NextEvent(t).(protocol.SessionLoadedEvent)
	assert.False(t, loaded.Authorized)
	store.AssertCalled(t, "Clear")
	api.AssertCalled(t, "SetToken", "")
}

func TestLoadSession_PortalUnreachable(t *testing.T) {
	api := &MockPortalAPI{}
	store := &MockCredentialStore{}
	store.On("Load").Return("tok", nil)
	api.On("SetToken", "tok").Return()
	api.On("GetUser", mock.Anything).Return(nil, errors.New("connection refused"))

	f := WithRunningOrchestrator(t, api, store)
	f.CmdChan <- protocol.LoadSessionCommand{Metadata: protocol.NewMetadata()}

	errEv := f.NextEvent(t).(protocol.ErrorEvent)
	assert.Equal(t, protocol.OpLoadSession, errEv.Op)
	assert.Equal(t, SessionFailedMessage, errEv.Message)
	assert.Contains(t, errEv.Context, "connection refused")

	loaded := f.NextEvent(t).(protocol.SessionLoadedEvent)
	assert.False(t, loaded.Authorized)
	store.AssertNotCalled(t, "Clear")
}

func TestLogin(t *testing.T) {
	api := &MockPortalAPI{}
	store := &MockCredentialStore{}
	req := portalapi.LoginRequest{Email: "ada@example.com", Password: "pw", Role: models.RoleJobSeeker}
	api.On("Login", mock.Anything, req).Return(&portalapi.LoginResponse{User: seeker, Token: "tok", Message: "User Logged In!"}, nil)
	store.On("Save", "tok").Return(errors.New("read-only filesystem"))

	f := WithRunningOrchestrator(t, api, store)
	f.CmdChan <- protocol.LoginCommand{Metadata: protocol.NewMetadata(), Email: req.Email, Password: req.Password, Role: req.Role}

	loaded := f.NextEvent(t).(protocol.SessionLoadedEvent)
	assert.True(t, loaded.Authorized)
	assert.Equal(t, seeker, loaded.User)
	store.AssertExpectations(t)
}

func TestLogin_Failure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"portal_message", &portalapi.APIError{StatusCode: 400, Message: "Invalid Email, Password Or Role."}, "Invalid Email, Password Or Role."},
		{"no_message", errors.New("dial tcp: refused"), LoginFailedMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &MockPortalAPI{}
			store := &MockCredentialStore{}
			api.On("Login", mock.Anything, mock.Anything).Return(nil, tt.err)

			f := WithRunningOrchestrator(t, api, store)
			f.CmdChan <- protocol.LoginCommand{Metadata: protocol.NewMetadata(), Email: "a@b.co", Password: "x", Role: models.RoleEmployer}

			errEv := f.NextEvent(t).(protocol.ErrorEvent)
			assert.Equal(t, protocol.OpLogin, errEv.Op)
			assert.Equal(t, tt.want, errEv.Message)
			store.AssertNotCalled(t, "Save", mock.Anything)
		})
	}
}

func TestLogout_AlwaysDropsSession(t *testing.T) {
	for _, logoutErr := range []error{nil, errors.New("timeout")} {
		api := &MockPortalAPI{}
		store := &MockCredentialStore{}
		api.On("Logout", mock.Anything).Return("Logged Out Successfully.", logoutErr)
		api.On("SetToken", "").Return()
		store.On("Clear").Return(nil)

		f := WithRunningOrchestrator(t, api, store)
		f.CmdChan <- protocol.LogoutCommand{Metadata: protocol.NewMetadata()}

		loaded := f.NextEvent(t).(protocol.SessionLoadedEvent)
		assert.False(t, loaded.Authorized)
		store.AssertCalled(t, "Clear")
	}
}

func TestLoadApplications_RoleSelectsView(t *testing.T) {
	apps := []models.Application{{ID: "a1"}, {ID: "a2"}}

	for _, view := range []models.ViewKind{models.JobSeekerView, models.EmployerView} {
		api := &MockPortalAPI{}
		md := protocol.NewMetadata()
		api.On("ListApplications", withRequestID(md.RequestID), view).Return(apps, nil).Once()

		f := WithRunningOrchestrator(t, api, &MockCredentialStore{})
		f.CmdChan <- protocol.LoadApplicationsCommand{Metadata: md, View: view}

		loaded := f.NextEvent(t).(protocol.ApplicationsLoadedEvent)
		assert.Equal(t, view, loaded.View)
		assert.Equal(t, apps, loaded.Applications)
		api.AssertExpectations(t)
	}
}

func TestLoadApplications_Failure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"portal_message", &portalapi.APIError{StatusCode: 400, Message: "Employer not allowed to access this resource."}, "Employer not allowed to access this resource."},
		{"empty_message", &portalapi.APIError{StatusCode: 500}, FetchFailedMessage},
		{"transport", errors.New("EOF"), FetchFailedMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &MockPortalAPI{}
			api.On("ListApplications", mock.Anything, models.EmployerView).Return(nil, tt.err)

			f := WithRunningOrchestrator(t, api, &MockCredentialStore{})
			f.CmdChan <- protocol.LoadApplicationsCommand{Metadata: protocol.NewMetadata(), View: models.EmployerView}

			errEv := f.NextEvent(t).(protocol.ErrorEvent)
			assert.Equal(t, protocol.OpLoadApplications, errEv.Op)
			assert.Equal(t, tt.want, errEv.Message)
		})
	}
}

func TestDeleteApplication(t *testing.T) {
	api := &MockPortalAPI{}
	api.On("DeleteApplication", mock.Anything, "a1").Return("Application Deleted!", nil)
	api.On("DeleteApplication", mock.Anything, "a2").Return("", nil)
	api.On("DeleteApplication", mock.Anything, "a3").Return("", &portalapi.APIError{StatusCode: 404, Message: "Application not found!"})
	api.On("DeleteApplication", mock.Anything, "a4").Return("", errors.New("reset by peer"))

	f := WithRunningOrchestrator(t, api, &MockCredentialStore{})
	for _, id := range []string{"a1", "a2", "a3", "a4"} {
		f.CmdChan <- protocol.DeleteApplicationCommand{Metadata: protocol.NewMetadata(), ApplicationID: id}
	}

	deleted := map[string]string{}
	failed := map[string]string{}
	for i := 0; i < 4; i++ {
		switch ev := f.NextEvent(t).(type) {
		case protocol.ApplicationDeletedEvent:
			deleted[ev.ApplicationID] = ev.Message
		case protocol.ErrorEvent:
			assert.Equal(t, protocol.OpDeleteApplication, ev.Op)
			failed[ev.ApplicationID] = ev.Message
		default:
			t.Fatalf("unexpected event %T", ev)
		}
	}

	assert.Equal(t, map[string]string{"a1": "Application Deleted!", "a2": DeletedMessage}, deleted)
	assert.Equal(t, map[string]string{"a3": "Application not found!", "a4": DeleteFailedMessage}, failed)
}

func TestDeleteApplication_RunsConcurrently(t *testing.T) {
	api := &MockPortalAPI{}
	release := make(chan struct{})
	var started sync.WaitGroup
	started.Add(2)
	api.On("DeleteApplication", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			started.Done()
			<-release
		}).
		Return("ok", nil)

	f := WithRunningOrchestrator(t, api, &MockCredentialStore{})
	f.CmdChan <- protocol.DeleteApplicationCommand{Metadata: protocol.NewMetadata(), ApplicationID: "a1"}
	f.CmdChan <- protocol.DeleteApplicationCommand{Metadata: protocol.NewMetadata(), ApplicationID: "a2"}

	waited := make(chan struct{})
	go func() {
		started.Wait()
		close(waited)
	}()
	select {
	case <-waited:
	case <-time.After(2 * time.Second):
		t.Fatal("deletes did not run in parallel")
	}
	close(release)

	ids := []string{
		f.NextEvent(t).(protocol.ApplicationDeletedEvent).ApplicationID,
		f.NextEvent(t).(protocol.ApplicationDeletedEvent).ApplicationID,
	}
	assert.ElementsMatch(t, []string{"a1", "a2"}, ids)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	cmdChan := make(chan protocol.Command)
	eventChan := make(chan protocol.Event)
	orch := New(cmdChan, eventChan, &MockPortalAPI{}, &MockCredentialStore{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		orch.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("orchestrator did not stop")
	}
}

type unknownCommand struct{ protocol.Metadata }

func (c unknownCommand) GetBaseMessage() protocol.Metadata { return c.Metadata }

func TestHandleCommand_UnknownIsIgnored(t *testing.T) {
	eventChan := make(chan protocol.Event, 1)
	orch := New(nil, eventChan, &MockPortalAPI{}, &MockCredentialStore{})

	orch.handleCommand(context.Background(), unknownCommand{})
	assert.Empty(t, eventChan)
}
