package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
// This test ensures that defaults are documented through tests and that changes
// to defaults are intentional (tests will fail if defaults change unexpectedly).
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default DuplicatePolicy is first", func(t *testing.T) {
		t.Parallel()
		if cfg.DuplicatePolicy != "first" {
			t.Errorf("expected DuplicatePolicy to be 'first', got '%s'", cfg.DuplicatePolicy)
		}
	})

	t.Run("default report format is simple", func(t *testing.T) {
		t.Parallel()
		if cfg.JSONReport || cfg.MarkdownReport {
			t.Error("expected no structured report format by default")
		}
	})

	t.Run("default Verbose is false", func(t *testing.T) {
		t.Parallel()
		if cfg.Verbose {
			t.Error("expected Verbose to be false")
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:    "valid default config",
			modify:  func(*Config) {},
			wantErr: nil,
		},
		{
			name:    "json format alone is valid",
			modify:  func(c *Config) { c.JSONReport = true },
			wantErr: nil,
		},
		{
			name: "conflicting report formats",
			modify: func(c *Config) {
				c.JSONReport = true
				c.MarkdownReport = true
			},
			wantErr: ErrConflictingReportFormats,
		},
		{
			name:    "unknown duplicate policy",
			modify:  func(c *Config) { c.DuplicatePolicy = "newest" },
			wantErr: ErrInvalidDuplicatePolicy,
		},
		{
			name:    "reject duplicate policy is valid",
			modify:  func(c *Config) { c.DuplicatePolicy = "reject" },
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestApplyFileDefaults tests merging of config file defaults with CLI flags.
func TestApplyFileDefaults(t *testing.T) {
	t.Parallel()

	t.Run("file defaults fill unset options", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.FileDefaults = &File{
			Defaults: Defaults{
				Format:          "markdown",
				DuplicatePolicy: "last",
				Verbose:         true,
				Output:          "report.md",
			},
		}
		cfg.ApplyFileDefaults()

		if !cfg.MarkdownReport {
			t.Error("expected markdown format from config file")
		}
		if cfg.DuplicatePolicy != "last" {
			t.Errorf("expected DuplicatePolicy 'last', got '%s'", cfg.DuplicatePolicy)
		}
		if !cfg.Verbose {
			t.Error("expected Verbose from config file")
		}
		if cfg.ReportFile != "report.md" {
			t.Errorf("expected ReportFile 'report.md', got '%s'", cfg.ReportFile)
		}
	})

	t.Run("CLI flags take precedence", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.JSONReport = true
		cfg.ReportFile = "out.json"
		cfg.FileDefaults = &File{
			Defaults: Defaults{Format: "markdown", Output: "report.md"},
		}
		cfg.ApplyFileDefaults()

		if cfg.MarkdownReport {
			t.Error("config file format should not override CLI flag")
		}
		if cfg.ReportFile != "out.json" {
			t.Errorf("expected ReportFile 'out.json', got '%s'", cfg.ReportFile)
		}
	})

	t.Run("nil file defaults is a no-op", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.ApplyFileDefaults()
		if cfg.DuplicatePolicy != "first" {
			t.Error("expected defaults untouched")
		}
	})
}

// TestLoadConfigFile tests loading the YAML configuration file.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads valid config file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".satlens")
		content := `defaults:
  format: json
  duplicatePolicy: reject
  verbose: true
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.Defaults.Format != "json" {
			t.Errorf("expected format 'json', got '%s'", cf.Defaults.Format)
		}
		if cf.Defaults.DuplicatePolicy != "reject" {
			t.Errorf("expected duplicatePolicy 'reject', got '%s'", cf.Defaults.DuplicatePolicy)
		}
		if !cf.Defaults.Verbose {
			t.Error("expected verbose true")
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid YAML returns error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".satlens")
		if err := os.WriteFile(path, []byte("defaults: [broken"), 0600); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestFindConfigFile tests the configuration file search order.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit path wins when it exists", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("defaults: {}"), 0600); err != nil {
			t.Fatal(err)
		}

		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %s, got %s", path, got)
		}
	})

	t.Run("missing explicit path returns empty", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "nope")); got != "" {
			t.Errorf("expected empty string, got %s", got)
		}
	})
}

// TestXDGDirs verifies the XDG directory helpers end with the app name.
func TestXDGDirs(t *testing.T) {
	t.Parallel()

	if filepath.Base(XDGDataDir()) != AppName {
		t.Errorf("expected data dir to end with %s, got %s", AppName, XDGDataDir())
	}
	if filepath.Base(XDGConfigDir()) != AppName {
		t.Errorf("expected config dir to end with %s, got %s", AppName, XDGConfigDir())
	}
}
