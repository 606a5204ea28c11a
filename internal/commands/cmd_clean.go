package commands

import (
	"context"

	"github.com/urfave/cli/v3"
)

type CleanCmd struct {
	flags *Flags

	// flags
	dryRun bool
}

// NewCleanCmd creates a new clean command
func NewCleanCmd(flags *Flags) *CleanCmd {
	return &CleanCmd{flags: flags}
}

// Register adds the clean command to the application
func (cmd *CleanCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "clean",
		Usage:     "Delete task branches merged into the upstream branch",
		UsageText: "git-tasks clean [--dry-run]",
		Description: `Deletes every task branch whose commits are all reachable from the
upstream ref, printing each deleted name. The currently checked-out
branch is never deleted.

Deletions are independent: a failure on one branch does not stop the
others, but any failure results in a nonzero exit.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "print the branches that would be deleted without deleting them",
				Destination: &cmd.dryRun,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *CleanCmd) run(ctx context.Context, c *cli.Command) error {
	return cmd.flags.Service.Clean(ctx, cmd.dryRun)
}
