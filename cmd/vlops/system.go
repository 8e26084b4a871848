package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/venturelabs/vlops/internal/cli"
	"github.com/venturelabs/vlops/internal/common"
	"github.com/venturelabs/vlops/internal/listing"
)

const defaultLogLimit = 100

func statusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show backend component health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.provider()
			if err != nil {
				return err
			}

			status, err := p.SystemStatus(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get system status: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(status) == 0 {
				fmt.Fprintln(out, cli.InfoStyle.Render("No components reported."))
				return nil
			}
			fmt.Fprintln(out, cli.SystemStatusTable(status))
			return nil
		},
	}
}

func statsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.provider()
			if err != nil {
				return err
			}

			stats, err := p.DashboardStats(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get dashboard stats: %w", err)
			}

			lastUpdated := "never"
			if !stats.Perks.LastUpdated.IsZero() {
				lastUpdated = listing.FormatRelative(stats.Perks.LastUpdated, a.now())
			}

			rows := [][]string{
				{"Total perks", fmt.Sprintf("%d", stats.Perks.Total), "last updated " + lastUpdated},
				{"Successful updates", fmt.Sprintf("%d", stats.Perks.SuccessfulUpdates), fmt.Sprintf("%.1f%% success rate", stats.Perks.SuccessRate())},
				{"Failed updates", fmt.Sprintf("%d", stats.Perks.FailedUpdates), ""},
				{"Pitch decks", fmt.Sprintf("%d", stats.PitchDecks.Total), fmt.Sprintf("%d pending analysis", stats.PitchDecks.Pending)},
				{"Analyzed", fmt.Sprintf("%d", stats.PitchDecks.Analyzed), ""},
				{"Approved", fmt.Sprintf("%d", stats.PitchDecks.Approved), ""},
				{"Rejected", fmt.Sprintf("%d", stats.PitchDecks.Rejected), ""},
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatTitle("Dashboard"))
			fmt.Fprintln(out, cli.RenderTable([]string{"METRIC", "VALUE", ""}, rows))
			return nil
		},
	}
}

func activityCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "activity",
		Short: "Show recent activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.provider()
			if err != nil {
				return err
			}

			activity, err := p.RecentActivity(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get recent activity: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(activity) == 0 {
				fmt.Fprintln(out, cli.InfoStyle.Render("No recent activity."))
				return nil
			}

			now := a.now()
			rows := make([][]string, 0, len(activity))
			for _, act := range activity {
				rows = append(rows, []string{
					listing.FormatRelative(act.Timestamp, now),
					act.Type,
					act.Title,
					cli.StatusBadge(act.Status),
				})
			}
			fmt.Fprintln(out, cli.RenderTable([]string{"WHEN", "TYPE", "TITLE", "STATUS"}, rows))
			return nil
		},
	}
}

func logsCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "logs <service>",
		Short: "Show recent log lines of a backend service",
		Long:  `Show recent log lines of a backend service such as scraper or analyzer.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("%w: --limit must not be negative", common.ErrInvalidInput)
			}

			p, err := a.provider()
			if err != nil {
				return err
			}

			entries, err := p.Logs(cmd.Context(), args[0], limit)
			if err != nil {
				return fmt.Errorf("failed to get logs: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, cli.InfoStyle.Render(fmt.Sprintf("No log lines for %s.", args[0])))
				return nil
			}

			for _, e := range entries {
				fmt.Fprintf(out, "%s %s %s\n",
					cli.SubtleStyle.Render(listing.FormatTimestamp(e.Timestamp)),
					levelBadge(e.Level),
					e.Message,
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultLogLimit, "Maximum number of lines, 0 for the backend default")

	return cmd
}

func levelBadge(level string) string {
	label := fmt.Sprintf("%-5s", level)
	switch level {
	case "error", "ERROR":
		return cli.ErrorStyle.Render(label)
	case "warn", "warning", "WARN", "WARNING":
		return cli.WarningStyle.Render(label)
	default:
		return cli.InfoStyle.Render(label)
	}
}
