package executil

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// RecordedCommand captures a command that was executed.
type RecordedCommand struct {
	Cmd  string
	Args []string
}

// Line returns the command as a single space-joined string.
func (c RecordedCommand) Line() string {
	return strings.TrimSpace(c.Cmd + " " + strings.Join(c.Args, " "))
}

// RecordingExecutor captures commands for testing.
// Configure Outputs and Errors maps to control return values. Keys are the
// full space-joined command line (e.g. "git branch --show-current"); a key
// of just the command name acts as a fallback for any invocation of it.
type RecordingExecutor struct {
	mu       sync.Mutex
	Commands []RecordedCommand

	// Outputs maps command lines to their stdout.
	Outputs map[string][]byte

	// Errors maps command lines to their error.
	Errors map[string]error
}

// Run records the command and returns configured output/error.
func (e *RecordingExecutor) Run(ctx context.Context, cmd string, args ...string) ([]byte, error) {
	return e.record(cmd, args...)
}

// RunStream records the command, writes configured output to stdout, and
// returns the configured error.
func (e *RecordingExecutor) RunStream(ctx context.Context, stdout, stderr io.Writer, cmd string, args ...string) error {
	out, err := e.record(cmd, args...)
	if len(out) > 0 {
		_, _ = stdout.Write(out)
	}
	return err
}

func (e *RecordingExecutor) record(cmd string, args ...string) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec := RecordedCommand{Cmd: cmd, Args: args}
	e.Commands = append(e.Commands, rec)

	var out []byte
	var err error

	if e.Outputs != nil {
		var ok bool
		if out, ok = e.Outputs[rec.Line()]; !ok {
			out = e.Outputs[cmd]
		}
	}
	if e.Errors != nil {
		var ok bool
		if err, ok = e.Errors[rec.Line()]; !ok {
			err = e.Errors[cmd]
		}
	}

	return out, err
}

// Reset clears recorded commands.
func (e *RecordingExecutor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Commands = nil
}

// ExitCodeError is a test error carrying an exit code, recognized by ExitCode.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode returns the configured exit code.
func (e *ExitCodeError) ExitCode() int {
	return e.Code
}
