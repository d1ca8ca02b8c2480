package series

import (
	"errors"
	"fmt"

	"github.com/gitseries/git-series/internal/gitexec"
	"github.com/gitseries/git-series/internal/refs"
	"github.com/gitseries/git-series/internal/seriestree"
)

// Start implements `git series start <name>` (§4.5): creates a working
// commit whose tree is {series: HEAD}, writes the working ref, and points
// SHEAD at the new series. No committed or staged ref is created.
func (r *Repo) Start(name string) error {
	if err := refs.Validate(r.Store, name); err != nil {
		return err
	}
	already, err := r.exists(name)
	if err != nil {
		return err
	}
	if already {
		return fmt.Errorf("%w: %q", ErrSeriesExists, name)
	}

	head, err := r.Store.Resolve("HEAD")
	if err != nil {
		if errors.Is(err, gitexec.ErrRefNotFound) {
			return fmt.Errorf("%w", ErrNoHead)
		}
		return err
	}

	tree := &seriestree.Tree{Series: head}
	workingRef := refs.Working(name)
	if _, err := r.writeTier(workingRef, gitexec.ZeroHash, tree, ""); err != nil {
		return err
	}

	return r.Store.SetSymbolicRef(refs.SHEAD, workingRef, shiftReflogMessage("(none)", workingRef, "start", name))
}

// shiftReflogMessage builds the reflog message format the historical
// implementation uses for SHEAD moves, which plain `git reflog`/`git
// status` render sensibly even for a reader who has never heard of
// git-series: "checkout: moving from {old} to {new} (git series
// {verb} {name})".
func shiftReflogMessage(oldTarget, newTarget, verb, name string) string {
	return fmt.Sprintf("checkout: moving from %s to %s (git series %s %s)", oldTarget, newTarget, verb, name)
}
