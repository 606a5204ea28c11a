package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

type StartCmd struct {
	flags *Flags
}

// NewStartCmd creates a new start command
func NewStartCmd(flags *Flags) *StartCmd {
	return &StartCmd{flags: flags}
}

// Register adds the start command to the application
func (cmd *StartCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "start",
		Usage:     "Start working on a task",
		UsageText: "git-tasks start <task-id>",
		Description: `Switches to the branch named after the task, creating it at the current
HEAD if it does not exist yet.

When the task id matches a configured system, starting a new task also
installs the prepare-commit-msg hook so commits get annotated with task
metadata.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *StartCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one task id, got %d arguments", c.Args().Len())
	}

	return cmd.flags.Service.Start(ctx, c.Args().First())
}
