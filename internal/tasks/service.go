// Package tasks orchestrates the task-to-branch lifecycle over the config
// resolver, the task adapter, and the git branch store.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/rs/zerolog"

	"github.com/gustra/git-tasks/internal/core/config"
	"github.com/gustra/git-tasks/internal/core/git"
	"github.com/gustra/git-tasks/internal/core/hook"
	"github.com/gustra/git-tasks/internal/core/task"
)

// Service combines the configured systems, the branch store, and the task
// adapter into the user-facing operations. All user output goes to out;
// diagnostics go to the logger.
type Service struct {
	cfg     *config.Config
	git     git.Git
	adapter task.Adapter
	logger  zerolog.Logger
	out     io.Writer
}

// NewService creates a task branch service.
func NewService(cfg *config.Config, g git.Git, adapter task.Adapter, logger zerolog.Logger, out io.Writer) *Service {
	return &Service{
		cfg:     cfg,
		git:     g,
		adapter: adapter,
		logger:  logger,
		out:     out,
	}
}

// Start switches to the branch named taskID, creating it at HEAD first if
// it does not exist. After creating a branch for a task that resolves to a
// configured system, the commit hook artifact is installed (idempotent).
func (s *Service) Start(ctx context.Context, taskID string) error {
	exists, err := s.git.BranchExists(ctx, taskID)
	if err != nil {
		return fmt.Errorf("check branch %s: %w", taskID, err)
	}

	if exists {
		if err := s.git.Checkout(ctx, taskID); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Switching to existing task %s\n", taskID)
		return nil
	}

	if err := s.git.CreateBranch(ctx, taskID); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Creating new task %s\n", taskID)

	if _, err := s.cfg.Resolve(taskID); err != nil {
		// Arbitrary branch names work fine without task metadata.
		if errors.Is(err, config.ErrUnresolved) {
			s.logger.Debug().Str("task", taskID).Msg("no system matched, skipping hook install")
			return nil
		}
		return err
	}

	hooksDir, err := s.git.HooksDir(ctx)
	if err != nil {
		return err
	}

	installed, err := hook.Install(hooksDir)
	if err != nil {
		return fmt.Errorf("install commit hook: %w", err)
	}
	if installed {
		fmt.Fprintln(s.out, "Installing commit hook")
	}

	return nil
}

// TaskBranches returns the local branches considered task branches, sorted
// lexicographically. With systems configured, a branch qualifies when its
// name resolves to one of them; with no systems, every branch except the
// protected ones counts as a task.
func (s *Service) TaskBranches(ctx context.Context) ([]string, error) {
	branches, err := s.git.Branches(ctx)
	if err != nil {
		return nil, err
	}

	var matched []string
	for _, b := range branches {
		if s.cfg.IsProtected(b) {
			continue
		}
		if len(s.cfg.Systems) == 0 {
			matched = append(matched, b)
			continue
		}
		if _, err := s.cfg.Resolve(b); err == nil {
			matched = append(matched, b)
		}
	}

	slices.Sort(matched)
	return matched, nil
}

// List prints the task branches one per line.
func (s *Service) List(ctx context.Context) error {
	branches, err := s.TaskBranches(ctx)
	if err != nil {
		return err
	}

	for _, b := range branches {
		fmt.Fprintln(s.out, b)
	}
	return nil
}

// Status prints one metadata line per task branch. Adapter failures degrade
// to empty title/status for that branch only; a batch is never aborted by
// one misbehaving system.
func (s *Service) Status(ctx context.Context) error {
	statuses, err := s.Statuses(ctx)
	if err != nil {
		return err
	}

	if len(statuses) == 0 {
		fmt.Fprintln(s.out, "No tasks started")
		return nil
	}

	for _, t := range statuses {
		fmt.Fprintln(s.out, t.StatusLine())
	}
	return nil
}

// Statuses resolves and fetches the task record for every task branch.
func (s *Service) Statuses(ctx context.Context) ([]task.Task, error) {
	branches, err := s.TaskBranches(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]task.Task, 0, len(branches))
	for _, b := range branches {
		t := task.Task{ID: b}

		if sys, err := s.cfg.Resolve(b); err == nil {
			t.System = sys

			fetched, err := s.adapter.Fetch(ctx, sys, b)
			if err == nil {
				statuses = append(statuses, fetched)
				continue
			}
			s.logger.Warn().Err(err).Str("task", b).Msg("adapter fetch failed")
		}

		statuses = append(statuses, t)
	}

	return statuses, nil
}

// Clean deletes task branches fully merged into the upstream ref, printing
// each deleted name. Neither the current branch nor the upstream ref itself
// is ever a candidate. In dry-run mode the selection is printed and nothing
// is deleted. Deletions are independent: one failure does not stop the
// rest, but any failure makes the aggregate error non-nil.
func (s *Service) Clean(ctx context.Context, dryRun bool) error {
	current, err := s.git.CurrentBranch(ctx)
	if err != nil {
		return err
	}

	upstream := s.cfg.Upstream
	if upstream == "" {
		if upstream, err = s.git.DefaultUpstream(ctx); err != nil {
			return err
		}
	}

	branches, err := s.TaskBranches(ctx)
	if err != nil {
		return err
	}

	var errs []error
	for _, b := range branches {
		// A branch is trivially its own ancestor; a local upstream would
		// otherwise delete itself.
		if b == current || b == upstream {
			continue
		}

		merged, err := s.git.IsAncestor(ctx, b, upstream)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !merged {
			continue
		}

		if !dryRun {
			if err := s.git.DeleteBranch(ctx, b); err != nil {
				errs = append(errs, err)
				continue
			}
		}
		fmt.Fprintln(s.out, b)
	}

	return errors.Join(errs...)
}

// AnnotateCommitMsg implements the prepare-commit-msg behavior: resolve the
// current branch as a task, render its annotation line, and insert it into
// the message file unless already present. Commits on branches that match
// no system are left untouched.
func (s *Service) AnnotateCommitMsg(ctx context.Context, msgPath string) error {
	branch, err := s.git.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	if branch == "" {
		return nil
	}

	sys, err := s.cfg.Resolve(branch)
	if err != nil {
		if errors.Is(err, config.ErrUnresolved) {
			return nil
		}
		return err
	}

	// A failed fetch degrades to annotating with the bare task id; the
	// commit must never be blocked by a broken adapter.
	line := branch
	if t, err := s.adapter.Fetch(ctx, sys, branch); err == nil {
		line = t.Annotation(sys.MessageFormat)
	} else {
		s.logger.Debug().Err(err).Str("task", branch).Msg("adapter fetch failed, using bare annotation")
	}

	return hook.Apply(msgPath, line)
}
