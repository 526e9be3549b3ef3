package config

import (
	"os"
	"path/filepath"
)

// DataDir returns the directory used to store renamr data.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	// Use a dot-directory in the user's home on all platforms
	return filepath.Join(home, ".renamr"), nil
}

// EnsureDataDir returns the data directory, creating it when missing.
func EnsureDataDir() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(d, 0o755); err != nil {
		return "", err
	}
	return d, nil
}

// DBPath returns the full path to the SQLite journal database file.
func DBPath() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "renamr.db"), nil
}
