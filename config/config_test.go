package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Codility: CodilityConfig{
			APIKey:  "valid-api-key",
			BaseURL: "https://codility.com/api",
			Timeout: 30 * time.Second,
		},
		Export: ExportConfig{
			OutputDir:   ".",
			Concurrency: 4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(cfg *Config) {},
			wantErr: false,
		},
		{
			name:    "missing API key",
			mutate:  func(cfg *Config) { cfg.Codility.APIKey = "" },
			wantErr: true,
		},
		{
			name:    "placeholder API key",
			mutate:  func(cfg *Config) { cfg.Codility.APIKey = "your-api-key-here" },
			wantErr: true,
		},
		{
			name:    "missing base URL",
			mutate:  func(cfg *Config) { cfg.Codility.BaseURL = "" },
			wantErr: true,
		},
		{
			name:    "zero concurrency",
			mutate:  func(cfg *Config) { cfg.Export.Concurrency = 0 },
			wantErr: true,
		},
		{
			name:    "invalid logging level",
			mutate:  func(cfg *Config) { cfg.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid logging format",
			mutate:  func(cfg *Config) { cfg.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	writeConfig := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("defaults applied", func(t *testing.T) {
		path := writeConfig(t, "codility:\n  api_key: valid-api-key\n")

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.Codility.BaseURL != "https://codility.com/api" {
			t.Errorf("base URL = %q, want production default", cfg.Codility.BaseURL)
		}
		if cfg.Codility.Timeout != 30*time.Second {
			t.Errorf("timeout = %v, want 30s", cfg.Codility.Timeout)
		}
		if cfg.Export.Concurrency != 4 {
			t.Errorf("concurrency = %d, want 4", cfg.Export.Concurrency)
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("logging level = %q, want info", cfg.Logging.Level)
		}
	})

	t.Run("environment overrides api key", func(t *testing.T) {
		t.Setenv("CODILITY_API_KEY", "from-env")
		path := writeConfig(t, "logging:\n  level: debug\n")

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Codility.APIKey != "from-env" {
			t.Errorf("api key = %q, want value from environment", cfg.Codility.APIKey)
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("logging level = %q, want debug", cfg.Logging.Level)
		}
	})

	t.Run("presets parsed", func(t *testing.T) {
		path := writeConfig(t, `codility:
  api_key: valid-api-key
filter:
  default: completed
  presets:
    passed: completed and result >= 50
`)

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Filter.Default != "completed" {
			t.Errorf("default filter = %q", cfg.Filter.Default)
		}
		if cfg.Filter.Presets["passed"] != "completed and result >= 50" {
			t.Errorf("preset = %q", cfg.Filter.Presets["passed"])
		}
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		path := writeConfig(t, "codility:\n  api_key: your-api-key-here\n")

		if _, err := Load(path); err == nil {
			t.Error("Load() expected error for placeholder API key")
		}
	})
}
