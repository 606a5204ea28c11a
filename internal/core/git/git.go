// Package git provides an abstraction over the git branch and ref
// operations needed by git-tasks.
package git

import "context"

// Git defines the branch store operations. Implementations surface the
// underlying tool's failures verbatim; callers decide what is fatal.
type Git interface {
	// CurrentBranch returns the checked-out branch name, or "" in detached HEAD state.
	CurrentBranch(ctx context.Context) (string, error)
	// Branches returns all local branch names.
	Branches(ctx context.Context) ([]string, error)
	// BranchExists reports whether a local branch with the given name exists.
	BranchExists(ctx context.Context, name string) (bool, error)
	// CreateBranch creates a branch at the current HEAD and switches to it.
	CreateBranch(ctx context.Context, name string) error
	// Checkout switches to an existing branch. A dirty working tree that
	// blocks the switch is propagated, not suppressed.
	Checkout(ctx context.Context, name string) error
	// DeleteBranch removes a branch ref. Deleting the current branch fails.
	DeleteBranch(ctx context.Context, name string) error
	// IsAncestor reports whether every commit reachable from candidate is
	// reachable from of, i.e. candidate is fully merged into of.
	IsAncestor(ctx context.Context, candidate, of string) (bool, error)
	// DefaultUpstream returns the conventional upstream tracking ref.
	DefaultUpstream(ctx context.Context) (string, error)
	// HooksDir returns the repository's hook directory.
	HooksDir(ctx context.Context) (string, error)
}
