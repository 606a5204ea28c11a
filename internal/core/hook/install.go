package hook

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed scripts/prepare-commit-msg
var hookScript []byte

// FileName is the hook file name recognized by git.
const FileName = "prepare-commit-msg"

// marker identifies hook files written by this tool, so stale copies can be
// refreshed without clobbering user-managed hooks.
const marker = "Installed by git-tasks"

// Install writes the bundled prepare-commit-msg artifact into the given
// hooks directory. An up-to-date artifact is a no-op, a stale artifact
// carrying the install marker is rewritten, and a hook file written by
// anything else is left untouched. Reports whether the file was written.
func Install(hooksDir string) (bool, error) {
	path := filepath.Join(hooksDir, FileName)

	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if bytes.Equal(existing, hookScript) {
			return false, nil
		}
		if !bytes.Contains(existing, []byte(marker)) {
			return false, nil
		}
	case !os.IsNotExist(err):
		return false, fmt.Errorf("read hook: %w", err)
	}

	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return false, fmt.Errorf("create hooks dir: %w", err)
	}

	if err := os.WriteFile(path, hookScript, 0o755); err != nil {
		return false, fmt.Errorf("write hook: %w", err)
	}

	return true, nil
}

// Installed checks whether a prepare-commit-msg hook file exists and is
// executable.
func Installed(hooksDir string) bool {
	info, err := os.Stat(filepath.Join(hooksDir, FileName))
	if err != nil {
		return false
	}
	return info.Mode()&0o100 != 0
}
