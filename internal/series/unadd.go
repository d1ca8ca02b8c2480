package series

import (
	"fmt"

	"github.com/gitseries/git-series/internal/gitexec"
	"github.com/gitseries/git-series/internal/refs"
	"github.com/gitseries/git-series/internal/seriestree"
)

// Unadd implements `git series unadd <change>...` (§4.5): the inverse of
// Add, copying named entries from the committed tree back into staged (or
// removing them from staged if absent from committed). If the resulting
// staged tree equals the committed tree, the staged ref is deleted rather
// than persisting a no-op. If there is no committed head yet and the
// result trivially matches working, the staged ref is kept (see
// DESIGN.md's resolution of the "no committed head" open question).
func (r *Repo) Unadd(name string, changes []string) error {
	if err := validateChanges(changes); err != nil {
		return err
	}

	staged, err := r.readStaged(name)
	if err != nil {
		return err
	}
	if !staged.exists {
		return fmt.Errorf("%w: nothing staged for %q", ErrNothingToAdd, name)
	}

	working, err := r.readWorking(name)
	if err != nil {
		return err
	}
	committed, err := r.readCommitted(name)
	if err != nil {
		return err
	}

	baseline := cloneTree(staged.tree)
	for _, change := range changes {
		switch change {
		case "series":
			if committed.exists {
				baseline.Series = committed.tree.Series
			} else if working.exists {
				baseline.Series = working.tree.Series
			}
		case "base":
			if committed.exists {
				baseline.Base = committed.tree.Base
			} else {
				baseline.Base = nil
			}
		case "cover":
			if committed.exists {
				baseline.Cover = committed.tree.Cover
			} else {
				baseline.Cover = nil
			}
		}
	}

	if committed.exists && treesEqual(baseline, committed.tree) {
		return r.Store.DeleteRef(refs.Staged(name), staged.hash)
	}

	var prev gitexec.Hash = staged.hash
	_, err = r.writeTier(refs.Staged(name), prev, baseline, "")
	return err
}

func treesEqual(a, b *seriestree.Tree) bool {
	if a.Series != b.Series {
		return false
	}
	if !hashPtrEqual(a.Base, b.Base) {
		return false
	}
	if !hashPtrEqual(a.Cover, b.Cover) {
		return false
	}
	return len(a.Unknown) == len(b.Unknown)
}

func hashPtrEqual(a, b *gitexec.Hash) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
