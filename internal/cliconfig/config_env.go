package cliconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set. Missing
// files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnvConfig applies BELTSORT_* environment variables. They override file
// config but are overridden by flags (checked via changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("log-level", os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-format", os.Getenv(EnvPrefix+"LOG_FORMAT"), &cfg.LogFormat)
	s.setString("output", os.Getenv(EnvPrefix+"OUTPUT"), &cfg.Output)

	if err := s.setIntFromString("workers", os.Getenv(EnvPrefix+"WORKERS"), &cfg.Workers); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv(EnvPrefix+"DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setBoolFromString("strict", os.Getenv(EnvPrefix+"STRICT"), &cfg.Strict)
	s.setBoolFromString("from-end", os.Getenv(EnvPrefix+"FROM_END"), &cfg.FromEnd)
	return nil
}
