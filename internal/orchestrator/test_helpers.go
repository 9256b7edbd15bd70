// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package orchestrator

import (
	"context"
	"testing"
	"time"

	"github.com/careerdesk/careerdesk/internal/protocol"
)

// OrchestratorFixture represents a running orchestrator with its channels
type OrchestratorFixture struct {
	Orchestrator *Orchestrator
	CmdChan      chan protocol.Command
	EventChan    chan protocol.Event
	Cleanup      func()
}

// WithRunningOrchestrator starts an orchestrator over api and store. Cleanup stops
// the loop and waits for it, including in-flight deletes.
func WithRunningOrchestrator(t *testing.T, api PortalAPI, store CredentialStore) *OrchestratorFixture {
	t.Helper()

	cmdChan := make(chan protocol.Command, 10)
	eventChan := make(chan protocol.Event, 10)
	orch := New(cmdChan, eventChan, api, store)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		orch.Run(ctx)
		close(done)
	}()

	fixture := &OrchestratorFixture{
		Orchestrator: orch,
		CmdChan:      cmdChan,
		EventChan:    eventChan,
		Cleanup: func() {
			close(cmdChan)
			select {
			case <-done:
			case <-time.After(2 * time.Second):
				cancel()
				<-done
			}
			cancel()
		},
	}
	t.Cleanup(fixture.Cleanup)
	return fixture
}

// NextEvent waits for the next event or fails the test.
func (f *OrchestratorFixture) NextEvent(t *testing.T) protocol.Event {
	t.Helper()
	select {
	case ev := <-f.EventChan:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}
