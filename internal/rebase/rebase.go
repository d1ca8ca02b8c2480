// Package rebase drives `git series rebase`: it delegates the actual
// history rewrite entirely to git's own rebase machinery and then fixes
// up the working tier's series (and, if an onto commit was given, base) gitlinks
// to point at the rewritten history, per spec.md §4.6.
package rebase

import (
	"errors"
	"fmt"

	"github.com/gitseries/git-series/internal/gitexec"
	"github.com/gitseries/git-series/internal/series"
	"github.com/gitseries/git-series/internal/seriestree"
)

// Options configures Rebase.
type Options struct {
	// Interactive runs `git rebase -i`, opening the user's editor on the
	// todo list the way an ordinary interactive rebase does.
	Interactive bool
	// Onto, if non-empty, rewrites the series onto a new base, which also
	// becomes the new working base gitlink.
	Onto string
}

// Rebase rewrites name's working series (series.Tree.Series) via git's own
// rebase, then updates the working tier to point at the rebased HEAD.
func Rebase(repo *series.Repo, store *gitexec.Store, name string, opts Options) error {
	working, err := workingTree(repo, name)
	if err != nil {
		return err
	}

	clean, err := store.IsWorktreeClean()
	if err != nil {
		return err
	}
	if !clean {
		return fmt.Errorf("%w", series.ErrDirtyWorktree)
	}

	if working.Base == nil {
		return errors.New("rebase: no base recorded for this series; set one with `base` first")
	}
	rangeBase := string(*working.Base)

	onto := rangeBase
	if opts.Onto != "" {
		onto = opts.Onto
	}

	newHead, err := store.Rebase(opts.Interactive, onto, rangeBase)
	if err != nil {
		return err
	}

	newTree := &seriestree.Tree{Series: newHead, Cover: working.Cover, Unknown: working.Unknown}
	if opts.Onto != "" {
		ontoHash, err := store.Resolve(opts.Onto)
		if err != nil {
			return err
		}
		newTree.Base = &ontoHash
	} else {
		newTree.Base = working.Base
	}

	return repo.SyncWorkingTree(name, newTree)
}

func workingTree(repo *series.Repo, name string) (*seriestree.Tree, error) {
	return repo.WorkingTree(name)
}
