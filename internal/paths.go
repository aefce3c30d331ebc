package internal

import (
	"fmt"
	"os"
	"path/filepath"
)

// Default file names under the data directory.
const (
	configFileName = "config.yaml"
	dbFileName     = "chats.db"
)

// DataDir resolves the balancechat data directory: $BALANCECHAT_HOME when
// set, otherwise ~/.balancechat. The directory is created if missing.
func DataDir() (string, error) {
	dir := os.Getenv("BALANCECHAT_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".balancechat")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return dir, nil
}

// ConfigPath returns the config file path inside the data directory.
func ConfigPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// DatabasePath returns the chat database path. A non-empty override (from
// the --storage flag) wins over the default location.
func DatabasePath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dbFileName), nil
}
