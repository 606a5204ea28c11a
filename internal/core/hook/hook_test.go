package hook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotate(t *testing.T) {
	msg, changed := Annotate("Just a commit message\n", "generic-1")
	assert.True(t, changed)
	assert.Equal(t, "\n\ngeneric-1\n\nJust a commit message\n", msg)
}

func TestAnnotateIdempotent(t *testing.T) {
	line := "generic #1 First issue"

	msg, changed := Annotate("Just a commit message\n", line)
	require.True(t, changed)

	again, changed := Annotate(msg, line)
	assert.False(t, changed)
	assert.Equal(t, msg, again)
}

func TestAnnotatePartialLineDoesNotCount(t *testing.T) {
	// The annotation must match an entire line, not a substring of one.
	msg, changed := Annotate("Fixes generic-1 properly\n", "generic-1")
	assert.True(t, changed)
	assert.Equal(t, "\n\ngeneric-1\n\nFixes generic-1 properly\n", msg)
}

func TestAnnotateEmptyMessage(t *testing.T) {
	msg, changed := Annotate("", "generic-1")
	assert.True(t, changed)
	assert.Equal(t, "\n\ngeneric-1\n\n", msg)
}

func TestApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	require.NoError(t, os.WriteFile(path, []byte("Just a commit message\n"), 0o644))

	require.NoError(t, Apply(path, "generic #1 First issue"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\n\ngeneric #1 First issue\n\nJust a commit message\n", string(content))

	// Re-applying the same annotation leaves the file untouched.
	require.NoError(t, Apply(path, "generic #1 First issue"))

	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\n\ngeneric #1 First issue\n\nJust a commit message\n", string(content))
}

func TestApplyMissingFile(t *testing.T) {
	err := Apply(filepath.Join(t.TempDir(), "missing"), "generic-1")
	assert.Error(t, err)
}
