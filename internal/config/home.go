package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv names the environment variable that overrides the home directory.
const HomeEnv = "FILECHECKER_HOME"

// GetHome returns the filechecker home directory
// Priority order:
//  1. FILECHECKER_HOME environment variable (if set)
//  2. $HOME/.filechecker
//
// The directory is created if it doesn't exist
func GetHome() (string, error) {
	userHome, err := os.UserHomeDir()
	if err != nil && os.Getenv(HomeEnv) == "" {
		return "", fmt.Errorf("get user home directory: %w", err)
	}
	return GetHomeWithBase(userHome)
}

// GetHomeWithBase resolves the home directory against base instead of the
// user's home directory. Useful for tests.
func GetHomeWithBase(base string) (string, error) {
	home := os.Getenv(HomeEnv)
	if home == "" {
		if base == "" {
			return "", fmt.Errorf("cannot resolve filechecker home: %s not set and no base directory", HomeEnv)
		}
		home = filepath.Join(base, ".filechecker")
	}

	if err := os.MkdirAll(home, 0755); err != nil {
		return "", fmt.Errorf("create filechecker home directory: %w", err)
	}
	return home, nil
}
