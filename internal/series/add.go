package series

import (
	"fmt"

	"github.com/gitseries/git-series/internal/gitexec"
	"github.com/gitseries/git-series/internal/refs"
	"github.com/gitseries/git-series/internal/seriestree"
)

var validChanges = map[string]bool{"series": true, "base": true, "cover": true}

func validateChanges(changes []string) error {
	if len(changes) == 0 {
		return fmt.Errorf("%w", ErrNothingToAdd)
	}
	for _, c := range changes {
		if !validChanges[c] {
			return fmt.Errorf("%w: %q", ErrInvalidChange, c)
		}
	}
	return nil
}

func cloneTree(t *seriestree.Tree) *seriestree.Tree {
	clone := &seriestree.Tree{Series: t.Series, Unknown: t.Unknown}
	if t.Base != nil {
		b := *t.Base
		clone.Base = &b
	}
	if t.Cover != nil {
		c := *t.Cover
		clone.Cover = &c
	}
	return clone
}

// Add implements `git series add <change>...` (§4.5): for each named
// change, copies that entry from the working tree into the staged tree,
// removing it from staged if absent from working.
func (r *Repo) Add(name string, changes []string) error {
	if err := validateChanges(changes); err != nil {
		return err
	}

	working, err := r.readWorking(name)
	if err != nil {
		return err
	}
	if !working.exists {
		return fmt.Errorf("%w: %q", ErrUnknownSeries, name)
	}

	staged, err := r.readStaged(name)
	if err != nil {
		return err
	}
	committed, err := r.readCommitted(name)
	if err != nil {
		return err
	}

	var baseline *seriestree.Tree
	var prev gitexec.Hash
	switch {
	case staged.exists:
		baseline, prev = cloneTree(staged.tree), staged.hash
	case committed.exists:
		baseline, prev = cloneTree(committed.tree), gitexec.ZeroHash
	default:
		baseline, prev = &seriestree.Tree{Series: working.tree.Series}, gitexec.ZeroHash
	}

	for _, change := range changes {
		switch change {
		case "series":
			baseline.Series = working.tree.Series
		case "base":
			baseline.Base = working.tree.Base
		case "cover":
			baseline.Cover = working.tree.Cover
		}
	}
	if baseline.Series == "" {
		baseline.Series = working.tree.Series
	}

	_, err = r.writeTier(refs.Staged(name), prev, baseline, "")
	return err
}
