package commands

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

type HookCmd struct {
	flags *Flags
}

// NewHookCmd creates a new hook command
func NewHookCmd(flags *Flags) *HookCmd {
	return &HookCmd{flags: flags}
}

// Register adds the hook command to the application
func (cmd *HookCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:   "hook",
		Usage:  "Git hook entry points (invoked by the installed hook files)",
		Hidden: true,
		Commands: []*cli.Command{
			{
				Name:      "prepare-commit-msg",
				Usage:     "Annotate a commit message with task metadata",
				UsageText: "git-tasks hook prepare-commit-msg <msg-file> [source]",
				Action:    cmd.runPrepareCommitMsg,
			},
		},
	})

	return app
}

// runPrepareCommitMsg never returns an error: a hook failure must not
// block the commit. Problems are logged and the message is left as-is.
func (cmd *HookCmd) runPrepareCommitMsg(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() < 1 {
		log.Error().Msg("prepare-commit-msg: missing message file argument")
		return nil
	}

	// The optional second argument is the commit source (message, merge,
	// squash, commit). All sources are annotated uniformly.
	msgPath := c.Args().First()

	if err := cmd.flags.Service.AnnotateCommitMsg(ctx, msgPath); err != nil {
		log.Error().Err(err).Str("file", msgPath).Msg("prepare-commit-msg failed")
	}
	return nil
}
