// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/portalapi"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// parseRole accepts the portal's role names and the short forms "seeker" and "employer"
func parseRole(s string) (models.Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "seeker", "jobseeker", "job seeker":
		return models.RoleJobSeeker, nil
	case "employer":
		return models.RoleEmployer, nil
	}
	return "", fmt.Errorf("unknown role %q (use \"seeker\" or \"employer\")", s)
}

// requestContext tags ctx with a fresh request id so CLI calls show up in portal logs
func requestContext(ctx context.Context) context.Context {
	return portalapi.WithRequestID(ctx, uuid.NewString())
}

func newLoginCommand(a *app) *cobra.Command {
	var email, password, role string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		Example: `  careerdesk login --email ada@example.com --role seeker
  CAREERDESK_PASSWORD=secret careerdesk login --email grace@example.com --role employer`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := parseRole(role)
			if err != nil {
				return err
			}
			if password == "" {
				password = os.Getenv("CAREERDESK_PASSWORD")
			}

			resp, err := a.client.Login(requestContext(cmd.Context()), portalapi.LoginRequest{
				Email:    email,
				Password: password,
				Role:     r,
			})
			if err != nil {
				return fmt.Errorf("login failed: %s", portalapi.MessageOr(err, err.Error()))
			}
			if err := a.store.Save(a.client.Token()); err != nil {
				return fmt.Errorf("failed to store session: %w", err)
			}

			getLog().Info().Str("user_id", resp.User.ID).Msg("Logged in")
			fmt.Fprintf(cmd.OutOrStdout(), "%s\nSigned in as %s (%s)\n", resp.Message, resp.User.Name, resp.User.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (default: $CAREERDESK_PASSWORD)")
	cmd.Flags().StringVar(&role, "role", "seeker", "Role to log in as: seeker or employer")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and forget the stored token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.restore(); err != nil {
				if errors.Is(err, ErrNotLoggedIn) {
					fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
					return nil
				}
				return err
			}

			message, err := a.client.Logout(requestContext(cmd.Context()))
			if clearErr := a.store.Clear(); clearErr != nil {
				return fmt.Errorf("failed to remove stored session: %w", clearErr)
			}
			if err != nil && !portalapi.IsUnauthorized(err) {
				// The local session is gone either way
				getLog().Warn().Err(err).Msg("Portal logout failed")
				message = "Logged out locally."
			}
			if message == "" {
				message = "Logged out."
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}
}

func newWhoamiCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.restore(); err != nil {
				return err
			}
			user, err := a.client.GetUser(requestContext(cmd.Context()))
			if err != nil {
				return a.forgetOnUnauthorized(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\nRole: %s\n", user.Name, user.Email, user.Role)
			return nil
		},
	}
}
