package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/gustra/git-tasks/internal/core/task"
	"github.com/gustra/git-tasks/internal/tasks"
)

func hookApp(t *testing.T, g *stubGit, a task.Adapter) *cli.Command {
	t.Helper()

	cfg := genericTestConfig()
	flags := &Flags{
		Config:  cfg,
		Service: tasks.NewService(cfg, g, a, zerolog.Nop(), os.Stderr),
	}

	app := &cli.Command{Name: "git-tasks"}
	return NewHookCmd(flags).Register(app)
}

func TestHookPrepareCommitMsg(t *testing.T) {
	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	require.NoError(t, os.WriteFile(path, []byte("Just a commit message\n"), 0o644))

	g := &stubGit{current: "generic-1", branches: []string{"generic-1"}}
	adapter := &stubAdapter{task: task.Task{RemoteID: "1", Title: "First issue", Status: "New"}}
	app := hookApp(t, g, adapter)

	err := app.Run(t.Context(), []string{"git-tasks", "hook", "prepare-commit-msg", path})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\n\ngeneric-1 (New): First issue\n\nJust a commit message\n", string(content))
}

func TestHookPrepareCommitMsgAcceptsSourceArg(t *testing.T) {
	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	require.NoError(t, os.WriteFile(path, []byte("msg\n"), 0o644))

	g := &stubGit{current: "master", branches: []string{"master"}}
	app := hookApp(t, g, &stubAdapter{})

	err := app.Run(t.Context(), []string{"git-tasks", "hook", "prepare-commit-msg", path, "message"})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "msg\n", string(content))
}

func TestHookPrepareCommitMsgNeverFails(t *testing.T) {
	g := &stubGit{current: "generic-1", branches: []string{"generic-1"}}
	app := hookApp(t, g, &stubAdapter{})

	// Missing file argument and unreadable file both exit cleanly.
	assert.NoError(t, app.Run(t.Context(), []string{"git-tasks", "hook", "prepare-commit-msg"}))
	assert.NoError(t, app.Run(t.Context(), []string{"git-tasks", "hook", "prepare-commit-msg", "/does/not/exist"}))
}
