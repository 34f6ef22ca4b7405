// SPDX-License-Identifier: MIT

// Package config loads flowsearch settings from an optional YAML file and
// FLOWSEARCH_* environment variables.
//
// Precedence, lowest first: built-in defaults, the YAML file, the
// environment. Command-line flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FLOWSEARCH_"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all solver settings.
type Config struct {
	Start       string        `yaml:"start"`
	Budget      int           `yaml:"budget"`
	Agents      int           `yaml:"agents"`
	AgentBudget int           `yaml:"agent_budget"`
	Workers     int           `yaml:"workers"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxSources  int           `yaml:"max_sources"`
	LogLevel    string        `yaml:"log_level"`
	LogFormat   string        `yaml:"log_format"`
}

// Default returns the settings of the classic puzzle: one agent at AA with
// 30 minutes. AgentBudget (26) applies once Agents is raised above one.
func Default() *Config {
	return &Config{
		Start:       "AA",
		Budget:      30,
		Agents:      1,
		AgentBudget: 26,
		Workers:     0,
		Timeout:     0,
		MaxSources:  20,
		LogLevel:    "warn",
		LogFormat:   "text",
	}
}

// Load reads path (skipped when empty), applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Start = envOrDefault("START", c.Start)
	c.LogLevel = envOrDefault("LOG_LEVEL", c.LogLevel)
	c.LogFormat = envOrDefault("LOG_FORMAT", c.LogFormat)

	ints := []struct {
		key string
		dst *int
	}{
		{"BUDGET", &c.Budget},
		{"AGENTS", &c.Agents},
		{"AGENT_BUDGET", &c.AgentBudget},
		{"WORKERS", &c.Workers},
		{"MAX_SOURCES", &c.MaxSources},
	}
	for _, f := range ints {
		raw, ok := os.LookupEnv(EnvPrefix + f.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s%s must be an integer: %w", EnvPrefix, f.key, ErrInvalid)
		}
		*f.dst = n
	}

	if raw, ok := os.LookupEnv(EnvPrefix + "TIMEOUT"); ok {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("%sTIMEOUT must be a duration: %w", EnvPrefix, ErrInvalid)
		}
		c.Timeout = d
	}

	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		return v
	}

	return fallback
}
