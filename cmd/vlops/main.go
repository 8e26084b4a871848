package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/venturelabs/vlops/internal/api"
	"github.com/venturelabs/vlops/internal/cli"
	"github.com/venturelabs/vlops/internal/common"
	"github.com/venturelabs/vlops/internal/config"
)

var version = "dev"

// app carries the state shared by every command of one invocation.
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	now     func() time.Time
	stdin   io.Reader
	cfgFile string
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(&app{
		v:     viper.New(),
		now:   time.Now,
		stdin: os.Stdin,
	})
}

func buildRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vlops",
		Short: "🚀 Venture Labs operations console",
		Long: `vlops watches the perks catalog and the pitch-deck pipeline of the
Venture Labs accelerator. It lists and filters records fetched from the
operations API and sends manual actions (scrapes, analyses, reviews and
comments) back to it.`,
		PersistentPreRunE: a.initConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/vlops/config.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.String("api-url", "", "operations API base URL (default: http://localhost:8000)")
	flags.Bool("demo", false, "use built-in demo data instead of the API")
	flags.String("fixtures", "", "YAML fixtures file to serve instead of the API")

	// Bind flags to viper
	_ = a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))
	_ = a.v.BindPFlag(config.KeyAPIURL, flags.Lookup("api-url"))
	_ = a.v.BindPFlag(config.KeyDemo, flags.Lookup("demo"))
	_ = a.v.BindPFlag(config.KeyFixturesPath, flags.Lookup("fixtures"))

	// Add commands
	rootCmd.AddCommand(perksCmd(a))
	rootCmd.AddCommand(appsCmd(a))
	rootCmd.AddCommand(statusCmd(a))
	rootCmd.AddCommand(statsCmd(a))
	rootCmd.AddCommand(activityCmd(a))
	rootCmd.AddCommand(logsCmd(a))
	rootCmd.AddCommand(dashboardCmd(a))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(errorMessage(err)))
		os.Exit(1)
	}
}

// errorMessage is the text printed for a failed command. API failures are
// reported by category; everything else as is.
func errorMessage(err error) string {
	var statusErr *api.StatusError
	var transportErr *api.TransportError
	if errors.As(err, &statusErr) || errors.As(err, &transportErr) {
		return api.UserMessage(err)
	}
	return err.Error()
}

func (a *app) initConfig(_ *cobra.Command, _ []string) error {
	// Set up config file
	if a.cfgFile != "" {
		a.v.SetConfigFile(config.ExpandPath(a.cfgFile))
	} else {
		for _, dir := range config.ConfigDirs() {
			a.v.AddConfigPath(dir)
		}
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	config.SetDefaults(a.v)

	// Environment variables: VLOPS_API_URL overrides api.url.
	a.v.SetEnvPrefix("VLOPS")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	// Read config file
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	// Set up logging
	if err := setupLogging(os.Stderr, cfg.Logging); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func setupLogging(w io.Writer, cfg config.LoggingConfig) error {
	level, err := common.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	return common.SetupLogger(w, level, cfg.Format)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vlops %s\n", version)
			slog.Debug("vlops version", "version", version)
		},
	}
}
