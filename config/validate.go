// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// MaxSourcesLimit mirrors the widest source set a search accepts.
const MaxSourcesLimit = 32

// Validate checks every field.
func (c *Config) Validate() error {
	if err := c.validateSearch(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateSearch() error {
	if c.Start == "" {
		return fmt.Errorf("start must not be empty: %w", ErrInvalid)
	}
	if c.Budget < 0 {
		return fmt.Errorf("budget must be >= 0, got %d: %w", c.Budget, ErrInvalid)
	}
	if c.Agents < 1 {
		return fmt.Errorf("agents must be >= 1, got %d: %w", c.Agents, ErrInvalid)
	}
	if c.AgentBudget < 0 {
		return fmt.Errorf("agent_budget must be >= 0, got %d: %w", c.AgentBudget, ErrInvalid)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d: %w", c.Workers, ErrInvalid)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %s: %w", c.Timeout, ErrInvalid)
	}
	if c.MaxSources < 1 || c.MaxSources > MaxSourcesLimit {
		return fmt.Errorf("max_sources must be between 1 and %d, got %d: %w", MaxSourcesLimit, c.MaxSources, ErrInvalid)
	}

	return nil
}

func (c *Config) validateLogging() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalid)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q: %w", c.LogFormat, ErrInvalid)
	}

	return nil
}
