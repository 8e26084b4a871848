package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/venturelabs/vlops/internal/common"
	"github.com/venturelabs/vlops/internal/tui"
	"github.com/venturelabs/vlops/internal/tui/themes"
)

func dashboardCmd(a *app) *cobra.Command {
	var theme string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Open the terminal dashboard with the overview, perks and applications
screens. Logs go to logging.file while the dashboard owns the terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.provider()
			if err != nil {
				return err
			}

			logFile, err := common.OpenLogFile(a.cfg.Logging.File)
			if err != nil {
				return err
			}
			defer logFile.Close()

			if err := setupLogging(logFile, a.cfg.Logging); err != nil {
				return fmt.Errorf("failed to setup logging: %w", err)
			}
			slog.Info("Dashboard started", "api", a.cfg.API.URL, "demo", a.cfg.Demo)

			return tui.Run(cmd.Context(),
				tui.WithProvider(p),
				tui.WithTheme(themes.GetTheme(theme)),
				tui.WithTimeout(a.cfg.API.Timeout),
				tui.WithClock(a.now),
			)
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "default", "Color theme ("+strings.Join(themes.Names(), ", ")+")")

	return cmd
}
