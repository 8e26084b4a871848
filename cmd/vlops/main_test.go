package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturelabs/vlops/internal/api"
	"github.com/venturelabs/vlops/internal/common"
)

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

// execute runs the CLI with args and returns what it wrote to stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := buildRootCmd(&app{
		v:     viper.New(),
		now:   func() time.Time { return testNow },
		stdin: strings.NewReader(stdin),
	})

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "vlops dev\n", out)
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "api url scheme", args: []string{"--api-url", "ftp://example.com", "status"}},
		{name: "log level", args: []string{"--log-level", "loud", "status"}},
		{name: "log format", args: []string{"--log-format", "xml", "status"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	srv := newBackend(t)
	t.Setenv("VLOPS_API_URL", srv.URL)

	out, err := execute(t, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "scraper")
}

func TestConfigFile(t *testing.T) {
	srv := newBackend(t)
	path := writeFile(t, "config.yaml", "api:\n  url: "+srv.URL+"\n  retries: 0\n")

	out, err := execute(t, "", "--config", path, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "scraper")
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want string
	}{
		{
			name: "server error",
			err:  &api.StatusError{StatusCode: 503, Status: "503 Service Unavailable"},
			want: "Server error. Please try again later.",
		},
		{
			name: "connectivity",
			err:  &api.TransportError{Method: "GET", Path: "/api/perks", Err: errors.New("refused")},
			want: "Unable to connect to server. Please check your connection.",
		},
		{
			name: "wrapped status",
			err:  errors.Join(errors.New("failed to get perk 9"), &api.StatusError{StatusCode: 404, Status: "404 Not Found"}),
			want: "Resource not found.",
		},
		{
			name: "plain error",
			err:  errors.New("give application ids or --pending"),
			want: "give application ids or --pending",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage(tt.err))
		})
	}
}

func TestWithUnknown(t *testing.T) {
	known := []string{"active", "error"}

	assert.Equal(t, []string{"active", "error"}, withUnknown(known, []string{"active"}))
	assert.Equal(t, []string{"active", "error", "archived"}, withUnknown(known, []string{"active", "archived"}))
	assert.Equal(t, []string{"active", "error"}, known)
}
