// Package hook implements the prepare-commit-msg annotation and the
// installation of the hook artifact into a repository.
package hook

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Annotate inserts the annotation line as a new paragraph before the
// existing message content. If the exact line is already present the
// message is returned unchanged, so re-running the hook (e.g. on amend)
// never stacks annotations.
func Annotate(message, line string) (string, bool) {
	for _, existing := range strings.Split(message, "\n") {
		if existing == line {
			return message, false
		}
	}
	return "\n\n" + line + "\n\n" + message, true
}

// Apply rewrites the commit message file at path with the annotation
// inserted. The file is written only when the content actually changes,
// so an error path never leaves a partially written message behind.
func Apply(path, line string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read commit message: %w", err)
	}

	updated, changed := Annotate(string(content), line)
	if !changed {
		return nil
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(path, []byte(updated), mode); err != nil {
		return fmt.Errorf("write commit message: %w", err)
	}
	return nil
}
