package tui

import (
	"time"

	"github.com/venturelabs/vlops/internal/service"
	"github.com/venturelabs/vlops/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme    themes.Theme
	Provider service.Provider
	Now      func() time.Time
	// Timeout bounds every fetch and action the dashboard sends.
	Timeout time.Duration
	// StatusTTL is how long a status line message stays visible.
	StatusTTL time.Duration
	Width     int
	Height    int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:     themes.Default,
		Now:       time.Now,
		Timeout:   30 * time.Second,
		StatusTTL: 5 * time.Second,
		Width:     100,
		Height:    30,
	}
}

// WithProvider sets the data source.
func WithProvider(p service.Provider) Option {
	return func(c *Config) {
		c.Provider = p
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithClock sets the clock used for relative times.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		c.Now = now
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.Timeout = d
		}
	}
}
