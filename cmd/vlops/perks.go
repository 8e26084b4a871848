package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/venturelabs/vlops/internal/cli"
	"github.com/venturelabs/vlops/internal/common"
	"github.com/venturelabs/vlops/internal/listing"
	"github.com/venturelabs/vlops/internal/model"
)

func perksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perks",
		Short: "Manage the perks catalog",
		Long:  `List, inspect, and edit perks, and ask the backend to re-scrape them.`,
	}

	// Subcommands
	cmd.AddCommand(perksListCmd(a))
	cmd.AddCommand(perksShowCmd(a))
	cmd.AddCommand(perksAddCmd(a))
	cmd.AddCommand(perksUpdateCmd(a))
	cmd.AddCommand(perksDeleteCmd(a))
	cmd.AddCommand(perksScrapeCmd(a))
	cmd.AddCommand(perksScraperStatusCmd(a))

	return cmd
}

func perkStatuses() []string {
	statuses := make([]string, len(model.PerkStatuses))
	for i, s := range model.PerkStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

func perksListCmd(a *app) *cobra.Command {
	filter := listing.DefaultFilter()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List perks",
		Long: `List perks matching the filters. Headline counts and active rates cover
the whole catalog, not only the rows shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.provider()
			if err != nil {
				return err
			}

			perks, err := p.ListPerks(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list perks: %w", err)
			}

			records := listing.Perks(perks)
			result := listing.Query(records, filter, string(model.PerkActive))
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, cli.FormatTitle("Perks"))
			fmt.Fprintln(out, cli.SummaryLine(result.Summary, withUnknown(perkStatuses(), listing.DistinctStatuses(records))))
			fmt.Fprintln(out)

			if len(result.Visible) == 0 {
				fmt.Fprintln(out, cli.InfoStyle.Render("No perks match the current filters."))
				return nil
			}

			visible := make([]model.Perk, len(result.Visible))
			for i, r := range result.Visible {
				visible[i] = r.Perk
			}
			fmt.Fprintln(out, cli.PerkTable(visible, a.now()))
			fmt.Fprintln(out, cli.SubtitleStyle.Render("Active rate by category"))
			fmt.Fprint(out, cli.RateLines(result.Summary))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.SearchTerm, "search", "", "Case-insensitive match on name or category")
	cmd.Flags().StringVar(&filter.Status, "status", listing.All, "Status to show (active, error, pending, expired, all)")
	cmd.Flags().StringVar(&filter.Category, "category", listing.All, "Category to show, or all")

	return cmd
}

func perksShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a perk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			p, err := a.provider()
			if err != nil {
				return err
			}

			perk, err := p.GetPerk(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get perk %d: %w", id, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderPerk(*perk, a))
			return nil
		},
	}
}

func renderPerk(p model.Perk, a *app) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Category:     %s\n", orDash(p.Category))
	fmt.Fprintf(&b, "Status:       %s\n", cli.StatusBadge(string(p.Status)))
	fmt.Fprintf(&b, "Value:        %s\n", orDash(p.Value))
	fmt.Fprintf(&b, "Requirements: %s\n", orDash(p.Requirements))
	fmt.Fprintf(&b, "Window:       %s\n", orDash(p.ApplicationWindow))
	fmt.Fprintf(&b, "Availability: %s\n", orDash(p.Availability))
	fmt.Fprintf(&b, "URL:          %s\n", orDash(p.URL))
	updated := listing.FormatTimestamp(p.LastUpdated)
	if !p.LastUpdated.IsZero() {
		updated += " (" + listing.FormatRelative(p.LastUpdated, a.now()) + ")"
	}
	fmt.Fprintf(&b, "Updated:      %s", updated)
	if p.Description != "" {
		fmt.Fprintf(&b, "\n\n%s", p.Description)
	}
	return cli.RenderBox(fmt.Sprintf("%s (#%d)", p.Name, p.ID), b.String())
}

func perksAddCmd(a *app) *cobra.Command {
	var input model.PerkInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a perk to the catalog",
		Long:  `Register a perk page with the backend. Its details are filled in by the next scrape.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.provider()
			if err != nil {
				return err
			}

			perk, err := p.CreatePerk(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("failed to create perk: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Created perk %q (ID: %d)", perk.Name, perk.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "Perk name (required)")
	cmd.Flags().StringVar(&input.URL, "url", "", "Page to scrape (required)")
	cmd.Flags().StringVar(&input.Category, "category", "", "Perk category")
	cmd.Flags().StringVar(&input.Description, "description", "", "Short description")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func perksUpdateCmd(a *app) *cobra.Command {
	var input model.PerkInput

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a perk",
		Long:  `Change the name, URL, category, or description of a perk. Unset flags are left unchanged.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if input == (model.PerkInput{}) {
				return fmt.Errorf("%w: nothing to update, set at least one flag", common.ErrInvalidInput)
			}

			p, err := a.provider()
			if err != nil {
				return err
			}

			if _, err := p.UpdatePerk(cmd.Context(), id, input); err != nil {
				return fmt.Errorf("failed to update perk %d: %w", id, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Updated perk %d", id)))
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "New perk name")
	cmd.Flags().StringVar(&input.URL, "url", "", "New page URL")
	cmd.Flags().StringVar(&input.Category, "category", "", "New category")
	cmd.Flags().StringVar(&input.Description, "description", "", "New description")

	return cmd
}

func perksDeleteCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a perk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !force {
				reader := cli.NewNonBlockingReader(a.stdin)
				ok, err := cli.Confirm(cmd.Context(), reader, out, fmt.Sprintf("Delete perk %d?", id))
				if err != nil {
					if errors.Is(err, cli.ErrInputCancelled) {
						return nil
					}
					return err
				}
				if !ok {
					fmt.Fprintln(out, "Deletion cancelled.")
					return nil
				}
			}

			p, err := a.provider()
			if err != nil {
				return err
			}

			if err := p.DeletePerk(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete perk %d: %w", id, err)
			}

			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Deleted perk %d", id)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}

func perksScrapeCmd(a *app) *cobra.Command {
	var each bool

	cmd := &cobra.Command{
		Use:   "scrape [id]",
		Short: "Request a re-scrape",
		Long: `Ask the backend to re-scrape one perk, or every perk when no id is given.
With --each, every perk is requested individually with a progress bar.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.provider()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				res, err := p.ScrapePerk(ctx, id)
				if err != nil {
					return fmt.Errorf("failed to scrape perk %d: %w", id, err)
				}
				fmt.Fprintln(out, cli.FormatSuccess(actionMessage(res, fmt.Sprintf("Scrape requested for perk %d", id))))
				return nil
			}

			if !each {
				res, err := p.ScrapeAll(ctx)
				if err != nil {
					return fmt.Errorf("failed to scrape perks: %w", err)
				}
				fmt.Fprintln(out, cli.FormatSuccess(actionMessage(res, "Scrape requested for all perks")))
				return nil
			}

			perks, err := p.ListPerks(ctx)
			if err != nil {
				return fmt.Errorf("failed to list perks: %w", err)
			}
			ids := make([]int64, len(perks))
			for i, perk := range perks {
				ids[i] = perk.ID
			}

			return runEach(ctx, cmd, "Scraping perks", "perks", ids, func(ctx context.Context, id int64) error {
				_, err := p.ScrapePerk(ctx, id)
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&each, "each", false, "Request each perk individually")

	return cmd
}

func perksScraperStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scraper-status",
		Short: "Show the state of the perks scraper",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.provider()
			if err != nil {
				return err
			}

			status, err := p.ScraperStatus(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get scraper status: %w", err)
			}

			state := cli.StatusBadge("idle")
			if status.Running {
				state = cli.WarningStyle.Render("running")
			}
			lastRun := "never"
			if status.LastRun != nil {
				lastRun = listing.FormatRelative(*status.LastRun, a.now())
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "State:     %s\n", state)
			fmt.Fprintf(out, "Last run:  %s\n", lastRun)
			fmt.Fprintf(out, "Processed: %d\n", status.Processed)
			fmt.Fprintf(out, "Failed:    %d\n", status.Failed)
			if status.Message != "" {
				fmt.Fprintf(out, "Message:   %s\n", status.Message)
			}
			return nil
		},
	}
}

// actionMessage prefers the backend's acknowledgement over fallback.
func actionMessage(res *model.ActionResult, fallback string) string {
	if res != nil && res.Message != "" {
		return res.Message
	}
	return fallback
}

// runEach runs action for every id with a progress bar and an interrupt
// handler, then prints a summary. It fails when any item failed.
func runEach(ctx context.Context, cmd *cobra.Command, description, noun string, ids []int64, action func(context.Context, int64) error) error {
	out := cmd.OutOrStdout()
	if len(ids) == 0 {
		fmt.Fprintln(out, cli.InfoStyle.Render(fmt.Sprintf("No %s to process.", noun)))
		return nil
	}

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), description)
	result := cli.RunBatch(handler.HandleInterrupts(ctx), cmd.ErrOrStderr(), description, ids, action)
	handler.Stop()

	fmt.Fprintln(out, result.Summary(noun))
	for _, f := range result.Failed {
		fmt.Fprintf(out, "  %s %d: %s\n", cli.ErrorIcon, f.ID, errorMessage(f.Err))
	}

	switch {
	case handler.WasInterrupted():
		return fmt.Errorf("%s interrupted: %w", strings.ToLower(description), context.Canceled)
	case len(result.Failed) > 0:
		return fmt.Errorf("%d of %d %s failed", len(result.Failed), len(ids), noun)
	}
	return nil
}
