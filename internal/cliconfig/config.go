package cliconfig

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/beltsort/internal/adapters/output"
	"github.com/bft-labs/beltsort/pkg/log"
)

// EnvPrefix prefixes every environment variable read by the CLI.
const EnvPrefix = "BELTSORT_"

// Config holds CLI configuration for beltsort.
type Config struct {
	LogLevel  string
	LogFormat string

	Output  string
	Workers int
	Strict  bool

	Debounce time.Duration
	FromEnd  bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: log.FormatConsole,
		Output:    output.FormatText,
		Workers:   runtime.NumCPU(),
		Strict:    true,
		Debounce:  50 * time.Millisecond,
	}
}

// Validate checks the configuration for errors and normalizes case.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		return fmt.Errorf("log-level %q is not one of trace, debug, info, warn, error", c.LogLevel)
	}

	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat != log.FormatConsole && c.LogFormat != log.FormatJSON {
		return fmt.Errorf("log-format %q must be %s or %s", c.LogFormat, log.FormatConsole, log.FormatJSON)
	}

	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	known := false
	for _, f := range output.Formats {
		if c.Output == f {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("output %q must be one of %s", c.Output, strings.Join(output.Formats, ", "))
	}

	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive")
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
