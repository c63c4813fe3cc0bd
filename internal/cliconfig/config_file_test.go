package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	falseVal := false

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				LogLevel:  "debug",
				LogFormat: "json",
				Output:    "yaml",
				Workers:   3,
				Strict:    &falseVal,
				Debounce:  "200ms",
				FromEnd:   &trueVal,
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: Config{
				LogLevel:  "debug",
				LogFormat: "json",
				Output:    "yaml",
				Workers:   3,
				Strict:    false,
				Debounce:  200 * time.Millisecond,
				FromEnd:   true,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				Output:  "json",
				Workers: 9,
			},
			changed: map[string]bool{"output": true},
			initial: Config{Output: "text", Workers: 1},
			expected: Config{
				Output:  "text", // unchanged because flag was set
				Workers: 9,
			},
		},
		{
			name:       "zero values leave defaults alone",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    Config{LogLevel: "warn", Workers: 2, Strict: true},
			expected:   Config{LogLevel: "warn", Workers: 2, Strict: true},
		},
		{
			name:       "invalid duration",
			fileConfig: FileConfig{Debounce: "soon"},
			changed:    map[string]bool{},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyFileConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyFileConfig() unexpected error: %v", err)
			}
			if cfg.LogLevel != tt.expected.LogLevel {
				t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, tt.expected.LogLevel)
			}
			if cfg.LogFormat != tt.expected.LogFormat {
				t.Errorf("LogFormat = %v, want %v", cfg.LogFormat, tt.expected.LogFormat)
			}
			if cfg.Output != tt.expected.Output {
				t.Errorf("Output = %v, want %v", cfg.Output, tt.expected.Output)
			}
			if cfg.Workers != tt.expected.Workers {
				t.Errorf("Workers = %v, want %v", cfg.Workers, tt.expected.Workers)
			}
			if cfg.Strict != tt.expected.Strict {
				t.Errorf("Strict = %v, want %v", cfg.Strict, tt.expected.Strict)
			}
			if cfg.Debounce != tt.expected.Debounce {
				t.Errorf("Debounce = %v, want %v", cfg.Debounce, tt.expected.Debounce)
			}
			if cfg.FromEnd != tt.expected.FromEnd {
				t.Errorf("FromEnd = %v, want %v", cfg.FromEnd, tt.expected.FromEnd)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
log_level = "debug"
output = "json"
workers = 4
strict = false
debounce = "1s"
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug", fc.LogLevel)
	}
	if fc.Output != "json" {
		t.Errorf("Output = %v, want json", fc.Output)
	}
	if fc.Workers != 4 {
		t.Errorf("Workers = %v, want 4", fc.Workers)
	}
	if fc.Strict == nil || *fc.Strict {
		t.Errorf("Strict = %v, want false", fc.Strict)
	}
	if fc.FromEnd != nil {
		t.Errorf("FromEnd = %v, want nil", *fc.FromEnd)
	}
	if fc.Debounce != "1s" {
		t.Errorf("Debounce = %v, want 1s", fc.Debounce)
	}
}

func TestLoadFileConfig_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := LoadFileConfig(filepath.Join(tmpDir, "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(tmpDir, "bad.toml")
	if err := os.WriteFile(bad, []byte("workers = \"many"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFileConfig(bad); err == nil {
		t.Error("expected parse error")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	p := DefaultConfigPath()
	if p == "" {
		t.Skip("no home directory")
	}
	if !strings.HasSuffix(p, filepath.Join(".beltsort", "config.toml")) {
		t.Errorf("DefaultConfigPath() = %v", p)
	}
}
