package series

import (
	"fmt"

	"github.com/gitseries/git-series/internal/gitexec"
	"github.com/gitseries/git-series/internal/refs"
	"github.com/gitseries/git-series/internal/seriestree"
)

// CurrentName returns the series SHEAD currently points at, if any.
func (r *Repo) CurrentName() (name string, ok bool, err error) {
	return r.currentSeriesName()
}

// WorkingTree returns a copy of name's working series tree, for callers
// outside this package (internal/rebase) that need to inspect and rewrite
// it without reaching into tierState.
func (r *Repo) WorkingTree(name string) (*seriestree.Tree, error) {
	working, err := r.readWorking(name)
	if err != nil {
		return nil, err
	}
	if !working.exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSeries, name)
	}
	return cloneTree(working.tree), nil
}

// SyncWorkingTree CAS-writes tree as name's new working tier, on top of
// whatever working currently resolves to. Used by internal/rebase after
// git's own rebase has produced a new series history.
func (r *Repo) SyncWorkingTree(name string, tree *seriestree.Tree) error {
	working, err := r.readWorking(name)
	if err != nil {
		return err
	}
	var prev gitexec.Hash
	if working.exists {
		prev = working.hash
	}
	_, err = r.writeTier(refs.Working(name), prev, tree, "")
	return err
}
