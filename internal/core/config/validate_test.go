package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSystem() System {
	return System{
		Name:     "Generic",
		Type:     SystemTypeGeneric,
		Command:  "fake-task-manager",
		Patterns: []string{"generic-[0-9]+"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "no systems is valid",
			mutate: func(c *Config) { c.Systems = nil },
		},
		{
			name:    "missing name",
			mutate:  func(c *Config) { c.Systems[0].Name = "" },
			wantErr: "name is required",
		},
		{
			name:    "unknown type",
			mutate:  func(c *Config) { c.Systems[0].Type = "jira-classic" },
			wantErr: "unknown system type",
		},
		{
			name:    "missing command",
			mutate:  func(c *Config) { c.Systems[0].Command = "" },
			wantErr: "command is required",
		},
		{
			name:    "no patterns",
			mutate:  func(c *Config) { c.Systems[0].Patterns = nil },
			wantErr: "at least one pattern",
		},
		{
			name:    "invalid regex",
			mutate:  func(c *Config) { c.Systems[0].Patterns = []string{"generic-[0-9"} },
			wantErr: "invalid regex",
		},
		{
			name:    "unknown message format",
			mutate:  func(c *Config) { c.Systems[0].MessageFormat = "fancy" },
			wantErr: "unknown message format",
		},
		{
			name:    "invalid protected glob",
			mutate:  func(c *Config) { c.Protected = []string{"origin/[invalid"} },
			wantErr: "invalid glob",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Systems = []System{validSystem()}
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
