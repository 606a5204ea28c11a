package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/gustra/git-tasks/pkg/executil"
)

// Executor implements Git using the git command-line tool, run in the
// current working directory.
type Executor struct {
	gitPath string
	exec    executil.Executor
}

// NewExecutor creates a new git executor with the specified git binary path.
func NewExecutor(gitPath string, exec executil.Executor) *Executor {
	return &Executor{gitPath: gitPath, exec: exec}
}

func (e *Executor) CurrentBranch(ctx context.Context) (string, error) {
	out, err := e.exec.Run(ctx, e.gitPath, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("git branch: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (e *Executor) Branches(ctx context.Context) ([]string, error) {
	out, err := e.exec.Run(ctx, e.gitPath, "for-each-ref", "--format=%(refname:short)", "refs/heads")
	if err != nil {
		return nil, fmt.Errorf("git for-each-ref: %w", err)
	}

	var branches []string
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			branches = append(branches, line)
		}
	}
	return branches, nil
}

func (e *Executor) BranchExists(ctx context.Context, name string) (bool, error) {
	_, err := e.exec.Run(ctx, e.gitPath, "show-ref", "--verify", "--quiet", "refs/heads/"+name)
	if err == nil {
		return true, nil
	}
	if executil.ExitCode(err) == 1 {
		return false, nil
	}
	return false, fmt.Errorf("git show-ref %s: %w", name, err)
}

func (e *Executor) CreateBranch(ctx context.Context, name string) error {
	if out, err := e.exec.Run(ctx, e.gitPath, "checkout", "-b", name); err != nil {
		return fmt.Errorf("create branch %s: %s: %w", name, strings.TrimSpace(string(out)), err)
	}
	return nil
}

func (e *Executor) Checkout(ctx context.Context, name string) error {
	if out, err := e.exec.Run(ctx, e.gitPath, "checkout", name); err != nil {
		return fmt.Errorf("checkout %s: %s: %w", name, strings.TrimSpace(string(out)), err)
	}
	return nil
}

func (e *Executor) DeleteBranch(ctx context.Context, name string) error {
	if out, err := e.exec.Run(ctx, e.gitPath, "branch", "-D", name); err != nil {
		return fmt.Errorf("delete branch %s: %s: %w", name, strings.TrimSpace(string(out)), err)
	}
	return nil
}

func (e *Executor) IsAncestor(ctx context.Context, candidate, of string) (bool, error) {
	_, err := e.exec.Run(ctx, e.gitPath, "merge-base", "--is-ancestor", candidate, of)
	if err == nil {
		return true, nil
	}
	// Exit code 1 is the tool's "no" answer, anything else is a failure.
	if executil.ExitCode(err) == 1 {
		return false, nil
	}
	return false, fmt.Errorf("merge-base %s %s: %w", candidate, of, err)
}

func (e *Executor) DefaultUpstream(ctx context.Context) (string, error) {
	out, err := e.exec.Run(ctx, e.gitPath, "rev-parse", "--abbrev-ref", "origin/HEAD")
	if err == nil {
		if ref := strings.TrimSpace(string(out)); ref != "" {
			return ref, nil
		}
	}
	// Repositories without a resolvable origin/HEAD fall back to the
	// conventional default.
	return "origin/master", nil
}

func (e *Executor) HooksDir(ctx context.Context) (string, error) {
	out, err := e.exec.Run(ctx, e.gitPath, "rev-parse", "--git-path", "hooks")
	if err != nil {
		return "", fmt.Errorf("git rev-parse --git-path hooks: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
