// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli is the non-interactive careerdesk command line. It talks to the
// portal directly and shares the stored session with the TUI.
package cli

import (
	"errors"
	"fmt"
	"sync"

	"github.com/careerdesk/careerdesk/internal/config"
	"github.com/careerdesk/careerdesk/internal/logger"
	"github.com/careerdesk/careerdesk/internal/portalapi"
	"github.com/careerdesk/careerdesk/internal/session"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	appName    = "careerdesk"
	appVersion = "0.1.0"
)

// ErrNotLoggedIn is returned by commands that need a stored session when there is none.
var ErrNotLoggedIn = errors.New("not logged in: run `careerdesk login` first")

var (
	log     *zerolog.Logger
	logOnce sync.Once
)

func getLog() *zerolog.Logger {
	logOnce.Do(func() {
		l := logger.GetCLILogger()
		log = &l
	})
	return log
}

// app holds what every subcommand needs once configuration is loaded
type app struct {
	cfg    *config.AppConfig
	client *portalapi.Client
	store  *session.FileStore
}

// restore loads the stored token into the client
func (a *app) restore() error {
	token, err := a.store.Load()
	if err != nil {
		if errors.Is(err, session.ErrNoSession) || errors.Is(err, session.ErrSessionExpired) {
			return ErrNotLoggedIn
		}
		return fmt.Errorf("failed to read session: %w", err)
	}
	a.client.SetToken(token)
	return nil
}

// forgetOnUnauthorized drops a stored session the portal no longer accepts
func (a *app) forgetOnUnauthorized(err error) error {
	if !portalapi.IsUnauthorized(err) {
		return err
	}
	if clearErr := a.store.Clear(); clearErr != nil {
		getLog().Warn().Err(clearErr).Msg("Failed to clear rejected session")
	}
	return ErrNotLoggedIn
}

// Execute runs the CLI application
func Execute() error {
	return newRootCommand(true).Execute()
}

// newRootCommand builds the command tree. initLogging is false in tests so they
// never write to the user's log directory.
func newRootCommand(initLogging bool) *cobra.Command {
	var configPath string
	a := &app{}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Job portal applications from the terminal",
		Long:          "careerdesk lists and manages job applications on a job portal. The interactive view is the separate app binary.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if initLogging {
				if err := logger.Initialize(&cfg.Log); err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
			}

			client, err := portalapi.NewClient(cfg.Portal)
			if err != nil {
				return fmt.Errorf("failed to create portal client: %w", err)
			}

			a.cfg = cfg
			a.client = client
			a.store = session.NewFileStore(cfg.Portal.SessionFile)
			getLog().Debug().Str("command", cmd.CommandPath()).Str("base_url", cfg.Portal.BaseURL).Msg("Running command")
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ./config.yaml or ~/.careerdesk/config.yaml)")

	root.AddCommand(
		newLoginCommand(a),
		newLogoutCommand(a),
		newWhoamiCommand(a),
		newApplicationsCommand(a),
		newVersionCommand(),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// Version needs no config
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, appVersion)
			return nil
		},
	}
}
