// Package config handles loading and resolution of the git-tasks
// configuration document.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// ErrUnresolved is returned by Resolve when a task identifier matches no
// configured system. Callers treat it as "no task metadata available",
// not as a fatal condition.
var ErrUnresolved = errors.New("task matches no configured system")

// SystemType selects the adapter behavior family for a system.
type SystemType string

// Supported system types.
const (
	SystemTypeGeneric SystemType = "generic"
)

// IsValid checks if the system type is supported.
func (st SystemType) IsValid() bool {
	switch st {
	case SystemTypeGeneric:
		return true
	default:
		return false
	}
}

// Known message format names.
const (
	MessageFormatGeneric = "generic"
)

// System describes one external task-tracking integration: how to
// recognize its task identifiers and how to query it.
type System struct {
	Name          string     `yaml:"name"`
	Type          SystemType `yaml:"type"`
	Command       string     `yaml:"command"`
	Patterns      []string   `yaml:"patterns"`
	MessageFormat string     `yaml:"message-format"`
}

// Matches reports whether the task identifier matches any of the system's
// patterns. Patterns are treated as full-match regular expressions.
// Invalid patterns never match; validation rejects them at load time.
func (s *System) Matches(taskID string) bool {
	for _, p := range s.Patterns {
		re, err := regexp.Compile("^(?:" + p + ")$")
		if err != nil {
			continue
		}
		if re.MatchString(taskID) {
			return true
		}
	}
	return false
}

// defaultProtected excludes the conventional long-lived branches and any
// remote-tracking style names from task enumeration.
var defaultProtected = []string{"master", "main", "origin/**"}

// Config is the ordered list of systems plus branch-enumeration settings.
type Config struct {
	Systems   []System `yaml:"systems"`
	Protected []string `yaml:"protected"`
	Upstream  string   `yaml:"upstream"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Protected: defaultProtected,
	}
}

// Load reads the configuration document from the given path.
// A missing file is not an error: commands run fine without any systems
// configured. A malformed file is fatal.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			return &cfg, nil
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}

		if len(cfg.Protected) == 0 {
			cfg.Protected = defaultProtected
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Resolve selects the first system in document order with any pattern
// matching the task identifier. Returns ErrUnresolved when none match.
func (c *Config) Resolve(taskID string) (*System, error) {
	for i := range c.Systems {
		if c.Systems[i].Matches(taskID) {
			return &c.Systems[i], nil
		}
	}
	return nil, fmt.Errorf("resolve %q: %w", taskID, ErrUnresolved)
}

// IsProtected reports whether the branch name matches any protected glob.
func (c *Config) IsProtected(branch string) bool {
	for _, pattern := range c.Protected {
		if ok, err := doublestar.Match(pattern, branch); err == nil && ok {
			return true
		}
	}
	return false
}
