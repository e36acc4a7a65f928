// Package config resolves filesystem paths for configuration and data.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ and environment variables in a path.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}

// DefaultDBPath returns the default database location under the user's
// data directory.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "rappen.db"
	}
	return filepath.Join(home, ".local", "share", "rappen", "rappen.db")
}

// DefaultConfigDir returns the directory searched for config.yaml.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "rappen")
}
