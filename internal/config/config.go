package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"

	"github.com/venturelabs/vlops/internal/common"
	"github.com/venturelabs/vlops/internal/service"
)

// Configuration keys.
const (
	KeyAPIURL        = "api.url"
	KeyAPITimeout    = "api.timeout"
	KeyAPIRetries    = "api.retries"
	KeyLogLevel      = "logging.level"
	KeyLogFormat     = "logging.format"
	KeyLogFile       = "logging.file"
	KeyFixturesPath  = "fixtures.path"
	KeyDemo          = "demo"
	maxRetries       = 10
	defaultTimeout   = 30 * time.Second
	defaultAPIURL    = "http://localhost:8000"
	defaultLogFormat = "console"
)

// Config is the validated runtime configuration.
type Config struct {
	Logging      LoggingConfig
	API          APIConfig
	FixturesPath string
	Demo         bool
}

// APIConfig configures the backend client.
type APIConfig struct {
	URL     string
	Timeout time.Duration
	// Retries is the number of extra attempts made for failed reads.
	Retries int
}

// LoggingConfig configures slog.
type LoggingConfig struct {
	Level  string
	Format string
	// File receives log output while the dashboard owns the terminal.
	File string
}

// RetryOptions converts the retry setting into client retry options.
func (c APIConfig) RetryOptions() service.RetryOptions {
	return service.RetryOptions{
		MaxAttempts:  c.Retries + 1,
		InitialDelay: 250 * time.Millisecond,
		MaxDelay:     5 * time.Second,
		Multiplier:   2.0,
	}
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAPIURL, defaultAPIURL)
	v.SetDefault(KeyAPITimeout, defaultTimeout)
	v.SetDefault(KeyAPIRetries, 1)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, defaultLogFormat)
	v.SetDefault(KeyLogFile, DefaultLogFile())
	v.SetDefault(KeyFixturesPath, "")
	v.SetDefault(KeyDemo, false)
}

// Load reads the configuration from v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		API: APIConfig{
			URL:     v.GetString(KeyAPIURL),
			Timeout: v.GetDuration(KeyAPITimeout),
			Retries: v.GetInt(KeyAPIRetries),
		},
		Logging: LoggingConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
			File:   ExpandPath(v.GetString(KeyLogFile)),
		},
		FixturesPath: ExpandPath(v.GetString(KeyFixturesPath)),
		Demo:         v.GetBool(KeyDemo),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and reports the first problem found.
func (c *Config) Validate() error {
	if c.API.URL == "" {
		return fmt.Errorf("%w: %s", common.ErrMissingConfig, KeyAPIURL)
	}
	u, err := url.Parse(c.API.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s must be an http(s) URL, got %q", common.ErrInvalidConfig, KeyAPIURL, c.API.URL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("%w: %s must be positive", common.ErrInvalidConfig, KeyAPITimeout)
	}
	if c.API.Retries < 0 || c.API.Retries > maxRetries {
		return fmt.Errorf("%w: %s must be between 0 and %d", common.ErrInvalidConfig, KeyAPIRetries, maxRetries)
	}
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: %s must be console or json, got %q", common.ErrInvalidConfig, KeyLogFormat, c.Logging.Format)
	}
	return nil
}
