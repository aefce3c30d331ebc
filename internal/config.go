package internal

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds client settings loaded from ~/.balancechat/config.yaml.
// Missing file or fields fall back to defaults; environment variables
// override the file.
type Config struct {
	// ServerURL is the base URL of the backend.
	ServerURL string `yaml:"server_url"`
	// DefaultModel is the model identifier sent with completions.
	DefaultModel string `yaml:"default_model"`
	// StoragePath overrides the chat database location.
	StoragePath string `yaml:"storage_path,omitempty"`
	// RequestTimeoutSecs bounds each backend call.
	RequestTimeoutSecs int `yaml:"request_timeout_secs"`
}

// DefaultConfig returns the built-in defaults. The default model matches
// the backend's always-available offline model.
func DefaultConfig() Config {
	return Config{
		ServerURL:          "http://localhost:8000",
		DefaultModel:       "fallback-enhanced",
		RequestTimeoutSecs: 60,
	}
}

// LoadConfig reads the config file at path, applies defaults for unset
// fields, then applies environment overrides. A missing file is not an
// error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, &ConfigError{Path: path, Err: err}
		}
	} else if !os.IsNotExist(err) {
		return Config{}, &ConfigError{Path: path, Err: err}
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultConfig().ServerURL
	}
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = DefaultConfig().DefaultModel
	}
	if cfg.RequestTimeoutSecs <= 0 {
		cfg.RequestTimeoutSecs = DefaultConfig().RequestTimeoutSecs
	}

	if v := os.Getenv("BALANCECHAT_SERVER"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("BALANCECHAT_MODEL"); v != "" {
		cfg.DefaultModel = v
	}

	return cfg, nil
}

// SaveConfig writes the config back to path in YAML.
func SaveConfig(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	return nil
}

// RequestTimeout returns the configured timeout as a duration.
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSecs) * time.Second
}
