package shared

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Server.BaseURL != "http://localhost:5000" {
			t.Errorf("expected base URL http://localhost:5000, got %s", config.Server.BaseURL)
		}

		if config.Sync.PollInterval() != 1500*time.Millisecond {
			t.Errorf("expected 1.5s poll interval, got %s", config.Sync.PollInterval())
		}

		if config.Sync.Cooldown() != 2*time.Second {
			t.Errorf("expected 2s cooldown, got %s", config.Sync.Cooldown())
		}

		if config.History.PerPage != 20 {
			t.Errorf("expected history per_page 20, got %d", config.History.PerPage)
		}

		if config.Server.Timeout() != 30*time.Second {
			t.Errorf("expected 30s timeout, got %s", config.Server.Timeout())
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Server.BaseURL != defaultConfig.Server.BaseURL {
			t.Errorf("created config base URL doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[server]
base_url = "http://records.local:9000"
timeout_seconds = 5
rate_per_second = 2.0

[sync]
poll_interval_ms = 100
cooldown_ms = 50

[history]
per_page = 5

[log]
path = "/tmp/test.log"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Server.BaseURL != "http://records.local:9000" {
			t.Errorf("expected custom base URL, got %s", config.Server.BaseURL)
		}

		if config.Sync.PollInterval() != 100*time.Millisecond {
			t.Errorf("expected 100ms poll interval, got %s", config.Sync.PollInterval())
		}

		if config.History.PerPage != 5 {
			t.Errorf("expected per_page 5, got %d", config.History.PerPage)
		}
	})

	t.Run("LoadConfigMissingFile", func(t *testing.T) {
		if _, err := LoadConfig("/nonexistent/config.toml"); err == nil {
			t.Error("loading a missing config file should fail")
		}
	})
}
