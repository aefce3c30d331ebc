package cmd

import (
	"bytes"
	"testing"
)

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name:    "version flag",
			args:    []string{"--version"},
			wantErr: false,
		},
		{
			name:    "help flag",
			args:    []string{"--help"},
			wantErr: false,
		},
		{
			name:    "unknown command",
			args:    []string{"frobnicate"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			var stdout, stderr bytes.Buffer
			rootCmd.SetOut(&stdout)
			rootCmd.SetErr(&stderr)

			err := rootCmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("rootCmd.Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BALANCECHAT_HOME", dir)

	serverURL = "http://flag-server:8000"
	modelFlag = "ollama-local"
	storagePath = "/tmp/flag.db"
	defer func() {
		serverURL = ""
		modelFlag = ""
		storagePath = ""
	}()

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.ServerURL != "http://flag-server:8000" {
		t.Errorf("ServerURL = %q, want flag value", cfg.ServerURL)
	}
	if cfg.DefaultModel != "ollama-local" {
		t.Errorf("DefaultModel = %q, want flag value", cfg.DefaultModel)
	}
	if cfg.StoragePath != "/tmp/flag.db" {
		t.Errorf("StoragePath = %q, want flag value", cfg.StoragePath)
	}
}
