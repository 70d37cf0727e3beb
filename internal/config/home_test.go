package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestGetHomeWithEnvVar tests FILECHECKER_HOME env var takes precedence
func TestGetHomeWithEnvVar(t *testing.T) {
	customHome := filepath.Join(t.TempDir(), "custom")
	t.Setenv(HomeEnv, customHome)

	home, err := GetHomeWithBase(t.TempDir())
	if err != nil {
		t.Fatalf("GetHomeWithBase() error = %v", err)
	}
	if home != customHome {
		t.Errorf("GetHomeWithBase() = %q, want %q", home, customHome)
	}
	if _, err := os.Stat(home); err != nil {
		t.Errorf("home directory not created: %v", err)
	}
}

// TestGetHomeWithBase tests the default location under the base directory
func TestGetHomeWithBase(t *testing.T) {
	t.Setenv(HomeEnv, "")
	base := t.TempDir()

	home, err := GetHomeWithBase(base)
	if err != nil {
		t.Fatalf("GetHomeWithBase() error = %v", err)
	}
	if want := filepath.Join(base, ".filechecker"); home != want {
		t.Errorf("GetHomeWithBase() = %q, want %q", home, want)
	}
	if info, err := os.Stat(home); err != nil || !info.IsDir() {
		t.Errorf("home directory not created: %v", err)
	}
}

func TestGetHomeWithBaseEmpty(t *testing.T) {
	t.Setenv(HomeEnv, "")

	if _, err := GetHomeWithBase(""); err == nil {
		t.Error("GetHomeWithBase(\"\") expected error")
	}
}

func TestGetHomeUsesEnv(t *testing.T) {
	customHome := t.TempDir()
	t.Setenv(HomeEnv, customHome)

	home, err := GetHome()
	if err != nil {
		t.Fatalf("GetHome() error = %v", err)
	}
	if home != customHome {
		t.Errorf("GetHome() = %q, want %q", home, customHome)
	}
}
