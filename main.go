package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/gustra/git-tasks/internal/commands"
	"github.com/gustra/git-tasks/internal/core/config"
	"github.com/gustra/git-tasks/internal/core/git"
	"github.com/gustra/git-tasks/internal/core/task"
	"github.com/gustra/git-tasks/internal/tasks"
	"github.com/gustra/git-tasks/pkg/executil"
	"github.com/gustra/git-tasks/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
)

func build() string {
	v, c := version, commit

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" {
					c = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s)", v, short)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "git-tasks",
		Usage:     "Manage one branch per task",
		UsageText: "git-tasks [global options] command [command options]",
		Description: `git-tasks maps each unit of work to a git branch named after its task
identifier. Configured task-tracking systems supply titles and statuses
for status output, and an installed prepare-commit-msg hook annotates
commit messages with task metadata.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config-file",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("GIT_TASKS_CONFIG_FILE"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigFile,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("GIT_TASKS_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("GIT_TASKS_LOG_FILE"),
				Destination: &flags.LogFile,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigFile)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			var (
				exec    = &executil.RealExecutor{}
				gitExec = git.NewExecutor("git", exec)
				adapter = task.NewCommandAdapter(exec)
			)

			flags.Service = tasks.NewService(cfg, gitExec, adapter, logger, os.Stdout)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = commands.NewStartCmd(flags).Register(app)
	app = commands.NewListCmd(flags).Register(app)
	app = commands.NewStatusCmd(flags).Register(app)
	app = commands.NewCleanCmd(flags).Register(app)
	app = commands.NewHookCmd(flags).Register(app)

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
