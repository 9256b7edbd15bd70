// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/orchestrator"
	"github.com/careerdesk/careerdesk/internal/portalapi"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newApplicationsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "applications",
		Aliases: []string{"apps"},
		Short:   "List or delete applications",
	}
	cmd.AddCommand(newListCommand(a), newDeleteCommand(a))
	return cmd
}

func newListCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the applications visible to the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.restore(); err != nil {
				return err
			}
			ctx := requestContext(cmd.Context())

			user, err := a.client.GetUser(ctx)
			if err != nil {
				return a.forgetOnUnauthorized(err)
			}
			view := models.ViewFor(user)

			apps, err := a.client.ListApplications(ctx, view)
			if err != nil {
				if portalapi.IsUnauthorized(err) {
					return a.forgetOnUnauthorized(err)
				}
				return errors.New(portalapi.MessageOr(err, orchestrator.FetchFailedMessage))
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(apps)
			}
			printApplications(cmd.OutOrStdout(), view, apps)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the applications as JSON")
	return cmd
}

func printApplications(w io.Writer, view models.ViewKind, apps []models.Application) {
	fmt.Fprintln(w, view.Heading())
	if len(apps) == 0 {
		fmt.Fprintln(w, "No Applications Found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE\tRESUME")
	for _, app := range apps {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s (%s)\n",
			app.ID, app.Name, app.Email, app.Phone,
			app.Resume.URL, models.AffordanceFor(view, app.Resume.URL))
	}
	_ = tw.Flush()
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete one or more of your applications (job seekers only)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.restore(); err != nil {
				return err
			}

			var failed []string
			for _, id := range lo.Uniq(args) {
				message, err := a.client.DeleteApplication(requestContext(cmd.Context()), id)
				if err != nil {
					if portalapi.IsUnauthorized(err) {
						return a.forgetOnUnauthorized(err)
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", id, portalapi.MessageOr(err, orchestrator.DeleteFailedMessage))
					failed = append(failed, id)
					continue
				}
				if message == "" {
					message = orchestrator.DeletedMessage
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", id, message)
			}

			if len(failed) > 0 {
				return fmt.Errorf("failed to delete %d of %d applications", len(failed), len(lo.Uniq(args)))
			}
			return nil
		},
	}
}
