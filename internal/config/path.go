// Package config loads and validates vlops settings.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

const appDir = "vlops"

// ExpandPath resolves a leading ~ to the home directory and expands $VAR
// references. An empty path stays empty.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + path[1:]
		}
	}
	return filepath.Clean(os.ExpandEnv(path))
}

// ConfigDirs returns the directories searched for config.yaml, in order:
// $XDG_CONFIG_HOME/vlops (or ~/.config/vlops) and the working directory.
func ConfigDirs() []string {
	dirs := make([]string, 0, 2)
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		dirs = append(dirs, filepath.Join(base, appDir))
	} else if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", appDir))
	}
	return append(dirs, ".")
}

// DefaultLogFile returns the dashboard log path under the user's state
// directory.
func DefaultLogFile() string {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, appDir, "vlops.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "vlops.log")
	}
	return filepath.Join(home, ".local", "state", appDir, "vlops.log")
}
