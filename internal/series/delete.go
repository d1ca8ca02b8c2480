package series

import "github.com/gitseries/git-series/internal/refs"

// Delete implements `git series delete <name>` (§4.5): removes any subset
// of the three refs that exist, and clears SHEAD if it named this series.
// The series need not be clean.
func (r *Repo) Delete(name string) error {
	current, isCurrent, err := r.currentSeriesName()
	if err != nil {
		return err
	}

	for _, tier := range []struct {
		ref  string
		read func(string) (tierState, error)
	}{
		{refs.Working(name), r.readWorking},
		{refs.Staged(name), r.readStaged},
		{refs.Committed(name), r.readCommitted},
	} {
		t, err := tier.read(name)
		if err != nil {
			return err
		}
		if !t.exists {
			continue
		}
		if err := r.Store.DeleteRef(tier.ref, t.hash); err != nil {
			return err
		}
	}

	if isCurrent && current == name {
		if err := r.Store.DeleteSymbolicRef(refs.SHEAD); err != nil {
			return err
		}
	}
	return nil
}
