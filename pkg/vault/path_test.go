package vault

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apsislabs/iron-vault/internal/constants"
)

func TestDetermineVaultPathExplicit(t *testing.T) {
	t.Setenv(constants.EnvVaultPath, "/from/env")

	got, err := DetermineVaultPath("/explicit/path")
	if err != nil {
		t.Fatalf("DetermineVaultPath: %v", err)
	}
	if got != "/explicit/path" {
		t.Errorf("got %q, want explicit path to win over env var", got)
	}
}

func TestDetermineVaultPathEnv(t *testing.T) {
	t.Setenv(constants.EnvVaultPath, "/from/env")

	got, err := DetermineVaultPath("")
	if err != nil {
		t.Fatalf("DetermineVaultPath: %v", err)
	}
	if got != "/from/env" {
		t.Errorf("got %q, want %q", got, "/from/env")
	}
}

func TestDetermineVaultPathDefault(t *testing.T) {
	os.Unsetenv(constants.EnvVaultPath)

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory available: %v", err)
	}

	got, err := DetermineVaultPath("")
	if err != nil {
		t.Fatalf("DetermineVaultPath: %v", err)
	}
	want := filepath.Join(home, constants.DefaultVaultDirName)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDetermineVaultPathEmptyEnvIgnored(t *testing.T) {
	t.Setenv(constants.EnvVaultPath, "")

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory available: %v", err)
	}

	got, err := DetermineVaultPath("")
	if err != nil {
		t.Fatalf("DetermineVaultPath: %v", err)
	}
	want := filepath.Join(home, constants.DefaultVaultDirName)
	if got != want {
		t.Errorf("got %q, want %q (empty env var should be ignored)", got, want)
	}
}
