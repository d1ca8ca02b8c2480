package series

import (
	"bytes"
	"fmt"

	"github.com/gitseries/git-series/internal/editor"
	"github.com/gitseries/git-series/internal/gitexec"
	"github.com/gitseries/git-series/internal/refs"
)

// CommitOptions configures Commit.
type CommitOptions struct {
	// All commits the working tree directly, skipping staged.
	All bool
	// Message, if non-empty, is used as the commit message without
	// launching an editor.
	Message string
	// Verbose seeds the editor buffer with a diff of the change being
	// committed, below the cut line, the way `git commit -v` does.
	Verbose bool
}

// Commit implements `git series commit` (§4.4): it promotes either the
// staged tree (default) or the working tree (-a) to a new committed series
// commit, then collapses staged and working back down to the new head —
// deliberately three separate ref updates rather than one transaction, so a
// crash mid-sequence always leaves the committed ref as the most advanced,
// recoverable state.
func (r *Repo) Commit(name string, opts CommitOptions) error {
	working, err := r.readWorking(name)
	if err != nil {
		return err
	}
	staged, err := r.readStaged(name)
	if err != nil {
		return err
	}
	committed, err := r.readCommitted(name)
	if err != nil {
		return err
	}

	var source = staged
	if opts.All {
		if !working.exists {
			return fmt.Errorf("%w: %q", ErrUnknownSeries, name)
		}
		source = working
	} else if !staged.exists {
		return fmt.Errorf("%w: nothing staged for %q; use -a or `series add`", ErrNothingToCommit, name)
	}

	if committed.exists && source.tree.Series == committed.tree.Series &&
		hashPtrEqual(source.tree.Base, committed.tree.Base) &&
		hashPtrEqual(source.tree.Cover, committed.tree.Cover) {
		return fmt.Errorf("%w: %q", ErrNothingToCommit, name)
	}

	message, err := r.resolveCommitMessage(opts, committed, source)
	if err != nil {
		return err
	}

	var prevCommitted gitexec.Hash
	if committed.exists {
		prevCommitted = committed.hash
	}
	newCommitted, err := r.writeTier(refs.Committed(name), prevCommitted, source.tree, message)
	if err != nil {
		return err
	}

	if staged.exists {
		if err := r.Store.DeleteRef(refs.Staged(name), staged.hash); err != nil {
			return fmt.Errorf("series: committed %s but failed to clear staged: %w", newCommitted, err)
		}
	}
	// Working is always rewritten to match the new committed tree, even
	// when -a was used and its content already matches: commit leaves
	// working "clean" relative to the new head in every case.
	if err := r.Store.UpdateRef(refs.Working(name), newCommitted, working.hash, message); err != nil {
		return fmt.Errorf("series: committed %s but failed to advance working: %w", newCommitted, err)
	}
	return nil
}

func (r *Repo) resolveCommitMessage(opts CommitOptions, committed, source tierState) (string, error) {
	if opts.Message != "" {
		return opts.Message, nil
	}

	var seed []byte
	if opts.Verbose {
		diffText, err := r.verboseDiff(committed, source)
		if err == nil && diffText != "" {
			seed = []byte("\n\n" + editor.CutLine + "\n" + diffText)
		}
	}

	result, _, err := editor.Edit(r.Store, seed)
	if err != nil {
		return "", err
	}
	if len(bytes.TrimSpace(result)) == 0 {
		return "", fmt.Errorf("%w", ErrEditorAborted)
	}
	return string(result), nil
}

func (r *Repo) verboseDiff(committed, source tierState) (string, error) {
	oldTreeHash, err := r.treeHashOf(committed)
	if err != nil {
		return "", err
	}
	newTreeHash, err := r.Store.WriteTree(source.tree.Encode())
	if err != nil {
		return "", err
	}
	return r.Store.DiffTrees(oldTreeHash, newTreeHash)
}

func (r *Repo) treeHashOf(t tierState) (gitexec.Hash, error) {
	if !t.exists {
		return r.Store.EmptyTree()
	}
	commit, err := r.Store.ReadCommit(t.hash)
	if err != nil {
		return "", err
	}
	return commit.Tree, nil
}
