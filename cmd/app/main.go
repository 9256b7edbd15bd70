// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/careerdesk/careerdesk/internal/config"
	"github.com/careerdesk/careerdesk/internal/logger"
	"github.com/careerdesk/careerdesk/internal/orchestrator"
	"github.com/careerdesk/careerdesk/internal/portalapi"
	"github.com/careerdesk/careerdesk/internal/protocol"
	"github.com/careerdesk/careerdesk/internal/session"
	"github.com/careerdesk/careerdesk/internal/tui"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		// Only log to stderr on critical startup errors before logger is initialized
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(&cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.CloseGlobal()

	mainLog := logger.GetLogger("main")
	mainLog.Info().Str("portal", cfg.Portal.BaseURL).Msg("Starting careerdesk")

	client, err := portalapi.NewClient(cfg.Portal)
	if err != nil {
		mainLog.Error().Err(err).Msg("Error creating portal client")
		fmt.Fprintf(os.Stderr, "Error creating portal client: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Channels between the TUI and the orchestrator
	cmdChan := make(chan protocol.Command, 100)
	eventChan := make(chan protocol.Event, 100)

	orch := orchestrator.New(cmdChan, eventChan, client, session.NewFileStore(cfg.Portal.SessionFile))

	g, gCtx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(gCtx)
	defer cancel()

	g.Go(func() error {
		mainLog.Info().Msg("Starting orchestrator...")
		orch.Run(runCtx)
		mainLog.Info().Msg("Orchestrator stopped")
		return nil
	})

	g.Go(func() error {
		// The TUI ending (quit or error) stops the orchestrator
		defer cancel()
		mainLog.Info().Msg("Starting TUI")
		if err := tui.StartTUI(runCtx, cmdChan, eventChan, cfg.UI); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		mainLog.Error().Err(err).Msg("Error running TUI")
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	mainLog.Info().Msg("Application shutting down")
}
