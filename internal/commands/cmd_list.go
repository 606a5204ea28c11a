package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/gustra/git-tasks/pkg/iojson"
)

type ListCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewListCmd creates a new list command
func NewListCmd(flags *Flags) *ListCmd {
	return &ListCmd{flags: flags}
}

// Register adds the list command to the application
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "list",
		Usage:     "List task branches",
		UsageText: "git-tasks list [--json]",
		Description: `Prints all task branches, lexicographically sorted, one per line.

A branch counts as a task branch when its name matches a configured
system's patterns. With no systems configured, every branch except the
protected ones is treated as a task.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// branchInfo is the JSON output format for git-tasks list --json.
type branchInfo struct {
	Branch string `json:"branch"`
	System string `json:"system,omitempty"`
}

func (cmd *ListCmd) run(ctx context.Context, c *cli.Command) error {
	if !cmd.jsonOutput {
		return cmd.flags.Service.List(ctx)
	}

	branches, err := cmd.flags.Service.TaskBranches(ctx)
	if err != nil {
		return err
	}

	out := c.Root().Writer
	for _, b := range branches {
		info := branchInfo{Branch: b}
		if sys, err := cmd.flags.Config.Resolve(b); err == nil {
			info.System = sys.Name
		}
		if err := iojson.WriteLine(out, info); err != nil {
			return err
		}
	}
	return nil
}
