// Package task defines the task record and the adapter protocol used to
// fetch task metadata from external tracking systems.
package task

import (
	"fmt"
	"strings"

	"github.com/gustra/git-tasks/internal/core/config"
)

// Task is a unit of work identified by a string id, optionally annotated
// with metadata fetched from an external system. Tasks are value objects
// constructed fresh on every fetch; external state can change between
// invocations, so nothing is cached.
type Task struct {
	// ID is the task identifier, i.e. the branch name.
	ID string
	// RemoteID is the id reported by the external system, e.g. an issue number.
	RemoteID string
	Title    string
	Status   string
	System   *config.System
}

// StatusLine renders the default one-line form "<id> (<status>): <title>".
// Absent fields render as empty strings, not placeholders.
func (t Task) StatusLine() string {
	return fmt.Sprintf("%s (%s): %s", t.ID, t.Status, t.Title)
}

// Annotation renders the commit-message annotation line for the given
// message format name. An empty format selects the default StatusLine form.
func (t Task) Annotation(format string) string {
	switch format {
	case config.MessageFormatGeneric:
		return strings.TrimRight(fmt.Sprintf("%s #%s %s", format, t.RemoteID, t.Title), " ")
	default:
		return t.StatusLine()
	}
}
