package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/gustra/git-tasks/pkg/iojson"
)

type StatusCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewStatusCmd creates a new status command
func NewStatusCmd(flags *Flags) *StatusCmd {
	return &StatusCmd{flags: flags}
}

// Register adds the status command to the application
func (cmd *StatusCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "status",
		Usage:     "Show task metadata for every task branch",
		UsageText: "git-tasks status [--json]",
		Description: `Prints one line per task branch in the form "<id> (<status>): <title>",
fetching title and status from the system's external adapter.

A failing adapter only blanks the fields for its own branches; the rest
of the listing is unaffected.`,
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

// statusInfo is the JSON output format for git-tasks status --json.
type statusInfo struct {
	Branch   string `json:"branch"`
	RemoteID string `json:"remote_id,omitempty"`
	Title    string `json:"title,omitempty"`
	Status   string `json:"status,omitempty"`
	System   string `json:"system,omitempty"`
}

func (cmd *StatusCmd) run(ctx context.Context, c *cli.Command) error {
	if !cmd.jsonOutput {
		return cmd.flags.Service.Status(ctx)
	}

	statuses, err := cmd.flags.Service.Statuses(ctx)
	if err != nil {
		return err
	}

	out := c.Root().Writer
	for _, t := range statuses {
		info := statusInfo{
			Branch:   t.ID,
			RemoteID: t.RemoteID,
			Title:    t.Title,
			Status:   t.Status,
		}
		if t.System != nil {
			info.System = t.System.Name
		}
		if err := iojson.WriteLine(out, info); err != nil {
			return err
		}
	}
	return nil
}
