package vault

import (
	"os"
	"path/filepath"

	"github.com/apsislabs/iron-vault/internal/constants"
)

// DetermineVaultPath resolves the vault directory with three-tier
// precedence: an explicit path argument, then the IRONVAULT_DATABASE
// environment variable, then <home>/.ironvault. It is pure: environment
// state is read once per call, never cached.
func DetermineVaultPath(explicitPath string) (string, error) {
	if explicitPath != "" {
		return explicitPath, nil
	}

	if envPath := os.Getenv(constants.EnvVaultPath); envPath != "" {
		return envPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, constants.DefaultVaultDirName), nil
}
