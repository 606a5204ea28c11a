package task

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gustra/git-tasks/internal/core/config"
	"github.com/gustra/git-tasks/pkg/executil"
)

// AdapterError reports a failed or malformed external adapter invocation.
// It is always recoverable: callers degrade to a task with empty metadata.
type AdapterError struct {
	System string
	Err    error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("adapter %s: %v", e.System, e.Err)
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}

// Adapter fetches task metadata from an external tracking system.
// Implementations must not cache results across invocations.
type Adapter interface {
	Fetch(ctx context.Context, system *config.System, taskID string) (Task, error)
}

// CommandAdapter invokes the system's external command with the task id as
// its sole argument and parses the YAML mapping it writes to stdout.
type CommandAdapter struct {
	exec executil.Executor
}

// NewCommandAdapter creates an adapter backed by the given executor.
func NewCommandAdapter(exec executil.Executor) *CommandAdapter {
	return &CommandAdapter{exec: exec}
}

func (a *CommandAdapter) Fetch(ctx context.Context, system *config.System, taskID string) (Task, error) {
	var stdout, stderr bytes.Buffer
	if err := a.exec.RunStream(ctx, &stdout, &stderr, system.Command, taskID); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = fmt.Errorf("%s: %w", msg, err)
		}
		return Task{}, &AdapterError{System: system.Name, Err: err}
	}

	fields, err := parseResponse(stdout.Bytes())
	if err != nil {
		return Task{}, &AdapterError{System: system.Name, Err: err}
	}

	t := Task{
		ID:       taskID,
		RemoteID: stringField(fields, "id"),
		Title:    stringField(fields, "title"),
		Status:   stringField(fields, "status"),
		System:   system,
	}
	return t, nil
}

// parseResponse decodes the adapter's stdout into a mapping and validates
// it against the response schema.
func parseResponse(out []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(out)) == 0 {
		return nil, fmt.Errorf("empty response")
	}

	var fields map[string]any
	if err := yaml.Unmarshal(out, &fields); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	if err := validateResponse(fields); err != nil {
		return nil, fmt.Errorf("invalid response: %w", err)
	}

	return fields, nil
}

func stringField(fields map[string]any, key string) string {
	v, ok := fields[key]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
