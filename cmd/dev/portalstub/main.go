// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

// portalstub serves the job portal API from an in-memory seed so the TUI and CLI
// can be run without the real backend.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/careerdesk/careerdesk/internal/config"
	"github.com/careerdesk/careerdesk/internal/logger"
	"github.com/careerdesk/careerdesk/internal/server"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	seedPath := flag.String("seed", "", "YAML seed file (overrides server.seed_file)")
	flag.Parse()

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The stub runs in the foreground, so it also logs to the console
	for i := range cfg.Log.Output {
		if cfg.Log.Output[i].Type == "console" {
			cfg.Log.Output[i].Enabled = true
		}
	}
	if err := logger.Initialize(&cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.CloseGlobal()

	mainLog := logger.GetLogger("main")

	if *seedPath != "" {
		cfg.Server.SeedFile = *seedPath
	}
	seed := server.DefaultSeed()
	if cfg.Server.SeedFile != "" {
		seed, err = server.LoadSeed(cfg.Server.SeedFile)
		if err != nil {
			mainLog.Error().Err(err).Msg("Error loading seed")
			fmt.Fprintf(os.Stderr, "Error loading seed: %v\n", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(&cfg.Server, server.NewStore(seed))
	mainLog.Info().
		Str("addr", cfg.Server.Addr()).
		Int("users", len(seed.Users)).
		Int("applications", len(seed.Applications)).
		Msg("Starting portal stub")

	if err := srv.Run(ctx); err != nil {
		mainLog.Error().Err(err).Msg("Portal stub failed")
		fmt.Fprintf(os.Stderr, "Portal stub failed: %v\n", err)
		os.Exit(1)
	}
	mainLog.Info().Msg("Portal stub stopped")
}
