package series

import (
	"fmt"

	"github.com/gitseries/git-series/internal/refs"
)

// Detach implements `git series detach` (§4.5): clears SHEAD, leaving all
// three refs of the formerly-current series untouched and git's HEAD
// unchanged.
func (r *Repo) Detach() error {
	_, ok, err := r.Store.ReadSymbolicRef(refs.SHEAD)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w", ErrNoCurrentSeries)
	}
	return r.Store.DeleteSymbolicRef(refs.SHEAD)
}
