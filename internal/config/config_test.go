package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturelabs/vlops/internal/common"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.API.URL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 1, cfg.API.Retries)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.NotEmpty(t, cfg.Logging.File)
	assert.False(t, cfg.Demo)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  url: https://ops.venturelabs.example
  timeout: 5s
  retries: 3
logging:
  level: debug
  format: json
fixtures:
  path: $VLOPS_TEST_DIR/demo.yaml
`), 0o600))
	t.Setenv("VLOPS_TEST_DIR", dir)

	v := newViper()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "https://ops.venturelabs.example", cfg.API.URL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 3, cfg.API.Retries)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, filepath.Join(dir, "demo.yaml"), cfg.FixturesPath)
	assert.Equal(t, 4, cfg.API.RetryOptions().MaxAttempts)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		want error
		set  map[string]any
		name string
	}{
		{name: "empty url", set: map[string]any{KeyAPIURL: ""}, want: common.ErrMissingConfig},
		{name: "bad scheme", set: map[string]any{KeyAPIURL: "ftp://host"}, want: common.ErrInvalidConfig},
		{name: "zero timeout", set: map[string]any{KeyAPITimeout: "0s"}, want: common.ErrInvalidConfig},
		{name: "negative retries", set: map[string]any{KeyAPIRetries: -1}, want: common.ErrInvalidConfig},
		{name: "too many retries", set: map[string]any{KeyAPIRetries: 11}, want: common.ErrInvalidConfig},
		{name: "bad level", set: map[string]any{KeyLogLevel: "loud"}, want: common.ErrInvalidConfig},
		{name: "bad format", set: map[string]any{KeyLogFormat: "xml"}, want: common.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			for k, val := range tt.set {
				v.Set(k, val)
			}
			_, err := Load(v)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDefaultLogFile_StateHome(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/var/state")
	assert.Equal(t, filepath.Join("/var/state", "vlops", "vlops.log"), DefaultLogFile())
}

func TestConfigDirs(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/etc/xdg")
	assert.Equal(t, []string{filepath.Join("/etc/xdg", "vlops"), "."}, ConfigDirs())

	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(home, ".config", "vlops"), "."}, ConfigDirs())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("VLOPS_DIR", "/opt/vlops")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/fixtures.yaml", filepath.Join(home, "fixtures.yaml")},
		{"$VLOPS_DIR/demo.yaml", "/opt/vlops/demo.yaml"},
		{"/abs/path/", "/abs/path"},
		{"~user/file", "~user/file"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandPath(tt.in), tt.in)
	}
}
