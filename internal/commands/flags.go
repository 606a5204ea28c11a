package commands

import (
	"os"
	"path/filepath"

	"github.com/gustra/git-tasks/internal/core/config"
	"github.com/gustra/git-tasks/internal/tasks"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigFile string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Service is the task branch service for orchestrating operations
	Service *tasks.Service
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "git-tasks", "config.yaml")
}
