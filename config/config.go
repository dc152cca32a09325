// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config holds charfind's application configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/poiesic/charfind/core"
)

// ErrInvalidConfig indicates a configuration that failed to load or validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds configuration for a charfind Finder.
type Config struct {
	// DataDir is the directory of the settings database.
	// Empty keeps settings in memory for the life of the process.
	DataDir string `toml:"data_dir"`

	// MatchMode decides what an unadorned search term means: "all" makes
	// it required, "any" makes it optional.
	// Default: "all"
	MatchMode string `toml:"match_mode"`

	// SearchesSize is the capacity of the recent searches list.
	// Default: 26
	SearchesSize int `toml:"searches_size"`

	// HistorySize is the capacity of the recent characters list.
	// Default: 26
	HistorySize int `toml:"history_size"`

	// LogLevel is one of debug, info, warn or error.
	// Default: "warn"
	LogLevel string `toml:"log_level"`
}

// Option is a functional option for configuring a Config.
type Option func(*Config)

// WithDataDir sets the settings database directory.
func WithDataDir(dir string) Option {
	return func(c *Config) {
		c.DataDir = dir
	}
}

// WithMatchMode sets the default match mode.
func WithMatchMode(mode core.MatchMode) Option {
	return func(c *Config) {
		c.MatchMode = mode.String()
	}
}

// WithSearchesSize sets the capacity of the recent searches list.
func WithSearchesSize(n int) Option {
	return func(c *Config) {
		c.SearchesSize = n
	}
}

// WithHistorySize sets the capacity of the recent characters list.
func WithHistorySize(n int) Option {
	return func(c *Config) {
		c.HistorySize = n
	}
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// DefaultConfig returns a Config with in-memory settings and default
// list capacities.
func DefaultConfig() *Config {
	return &Config{
		MatchMode:    core.MatchAll.String(),
		SearchesSize: core.DefaultCapacity,
		HistorySize:  core.DefaultCapacity,
		LogLevel:     "warn",
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
func NewConfig(opts ...Option) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Load reads a TOML configuration file over the defaults and then applies
// opts, so options override the file. A missing file is not an error.
// Unknown keys are.
func Load(path string, opts ...Option) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			dec := toml.NewDecoder(bytes.NewReader(data))
			dec.DisallowUnknownFields()
			if err := dec.Decode(cfg); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
			}
		}
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Normalize trims and lower cases the enumerated settings.
func (c *Config) Normalize() {
	c.DataDir = strings.TrimSpace(c.DataDir)
	c.MatchMode = strings.ToLower(strings.TrimSpace(c.MatchMode))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.MatchMode == "" {
		c.MatchMode = core.MatchAll.String()
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if _, err := core.ParseMatchMode(c.MatchMode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := core.ValidateCapacity(c.SearchesSize); err != nil {
		return fmt.Errorf("%w: searches_size: %w", ErrInvalidConfig, err)
	}
	if err := core.ValidateCapacity(c.HistorySize); err != nil {
		return fmt.Errorf("%w: history_size: %w", ErrInvalidConfig, err)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Mode returns the configured match mode.
func (c *Config) Mode() core.MatchMode {
	mode, err := core.ParseMatchMode(c.MatchMode)
	if err != nil {
		return core.MatchAll
	}
	return mode
}

// Level returns the configured log level.
func (c *Config) Level() slog.Level {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

// ParseLogLevel converts debug, info, warn or error to a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, s)
	}
}
