package gitexec

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// IsWorktreeClean reports whether `git status --porcelain` has no output,
// i.e. there are no staged, unstaged or untracked changes relative to
// HEAD. checkout uses
// this to enforce spec.md's "working tree is clean" precondition.
func (s *Store) IsWorktreeClean() (bool, error) {
	out, err := s.run(nil, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) == "", nil
}

// CheckoutCommit moves git's real HEAD (and the worktree) to target,
// recording reason as the HEAD reflog message via GIT_REFLOG_ACTION.
// `checkout`'s own `-m` flag is a boolean (three-way merge on conflicting
// local changes), not a reflog-message flag like `symbolic-ref -m` (see
// SetSymbolicRef in refs.go) — passing reason as its argument would make
// git treat it as a pathspec, so the reflog message has to go through the
// environment instead. Used by `checkout` to move the user into the
// effective tree of the series being switched to.
func (s *Store) CheckoutCommit(target Hash, reason string) error {
	_, err := s.runWithEnv([]string{"GIT_REFLOG_ACTION=" + reason}, nil, "checkout", "--quiet", string(target))
	return err
}

// IsAncestor reports whether ancestor is an ancestor of (or equal to)
// descendant, via `git merge-base --is-ancestor`.
func (s *Store) IsAncestor(ancestor, descendant Hash) (bool, error) {
	_, err := s.run(nil, "merge-base", "--is-ancestor", string(ancestor), string(descendant))
	if err == nil {
		return true, nil
	}
	if _, ok := err.(*CmdError); ok {
		return false, nil
	}
	return false, err
}

// Rebase invokes git's own interactive (or non-interactive) rebase to move
// the commit range (base, head] onto onto, returning the new HEAD hash on
// success. Conflict handling, --continue/--abort, and the rebase UI are
// entirely git's own (Non-goal: "conflict resolution beyond what git itself
// provides").
func (s *Store) Rebase(interactive bool, onto, base string) (Hash, error) {
	args := []string{"rebase"}
	if interactive {
		args = append(args, "-i")
	}
	args = append(args, "--onto", onto, base)

	// Runs with the terminal attached and no timeout, so the todo-list
	// editor of an interactive rebase can use the terminal.
	cmd := exec.Command(s.gitPath, args...)
	cmd.Dir = s.workDir
	if s.inheritEnv {
		cmd.Env = os.Environ()
	}
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("gitexec: git %s: %w", strings.Join(args, " "), err)
	}
	return s.Resolve("HEAD")
}
