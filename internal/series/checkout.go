package series

import (
	"fmt"

	"github.com/gitseries/git-series/internal/refs"
)

// Checkout implements `git series checkout <name>` (§4.5): moves SHEAD to
// name and moves git's real HEAD to the series entry of whichever tier is
// "current" for name (working, else staged, else committed).
func (r *Repo) Checkout(name string) error {
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
	if !working.exists && !staged.exists && !committed.exists {
		return fmt.Errorf("%w: %q", ErrUnknownSeries, name)
	}

	effective := committed
	effectiveRef := refs.Committed(name)
	if staged.exists {
		effective, effectiveRef = staged, refs.Staged(name)
	}
	if working.exists {
		effective, effectiveRef = working, refs.Working(name)
	}

	clean, err := r.Store.IsWorktreeClean()
	if err != nil {
		return err
	}
	if !clean {
		return fmt.Errorf("%w", ErrDirtyWorktree)
	}

	oldTarget, hadOld, err := r.Store.ReadSymbolicRef(refs.SHEAD)
	if err != nil {
		return err
	}
	if !hadOld {
		oldTarget = "(none)"
	}

	if err := r.Store.CheckoutCommit(effective.tree.Series, shiftReflogMessage(oldTarget, effectiveRef, "checkout", name)); err != nil {
		return err
	}
	return r.Store.SetSymbolicRef(refs.SHEAD, effectiveRef, shiftReflogMessage(oldTarget, effectiveRef, "checkout", name))
}
