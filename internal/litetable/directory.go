package litetable

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	litetableDir = ".litetable"
)

// GetLitetableDir returns the path to the LiteTable directory in the user's home directory. The
// rowstream config, certificates and seed files live there by default.
func GetLitetableDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, litetableDir), nil
}

// ResolvePath joins relative paths onto the LiteTable directory and leaves absolute paths alone.
func ResolvePath(path string) (string, error) {
	if path == "" || filepath.IsAbs(path) {
		return path, nil
	}
	dir, err := GetLitetableDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, path), nil
}
