package series

import (
	"fmt"
	"io"

	"github.com/gitseries/git-series/internal/present"
	"github.com/gitseries/git-series/internal/seriestree"
)

// Status reports the two comparisons spec.md §4.4/§8 expect from `git
// series status`: what's staged for commit (committed vs staged) and
// what's not staged (staged vs working, or committed vs working if nothing
// is staged), mirroring how `git status` reports against the index and the
// worktree.
type Status struct {
	Name        string
	StagedFor   []present.EntryChange // committed -> staged, only when staged exists
	NotStaged   []present.EntryChange // staged -> working (or committed -> working, if nothing is staged)
	HasStaged   bool
	HasWorking  bool
}

// Status computes the current status of name across all three tiers.
func (r *Repo) Status(name string) (*Status, error) {
	working, err := r.readWorking(name)
	if err != nil {
		return nil, err
	}
	staged, err := r.readStaged(name)
	if err != nil {
		return nil, err
	}
	committed, err := r.readCommitted(name)
	if err != nil {
		return nil, err
	}
	if !working.exists && !staged.exists && !committed.exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSeries, name)
	}

	var committedTree *seriestree.Tree
	if committed.exists {
		committedTree = committed.tree
	}

	st := &Status{Name: name, HasStaged: staged.exists, HasWorking: working.exists}

	if staged.exists {
		st.StagedFor = present.DiffTrees(committedTree, staged.tree)
		if working.exists {
			st.NotStaged = present.DiffTrees(staged.tree, working.tree)
		}
	} else if working.exists {
		st.NotStaged = present.DiffTrees(committedTree, working.tree)
	}

	return st, nil
}

// Render writes a human-readable status report in the style of `git
// status`, colorized the way internal/present renders every other
// series diff.
func (s *Status) Render(w io.Writer) {
	fmt.Fprintf(w, "series %s\n", s.Name)
	if len(s.StagedFor) == 0 && len(s.NotStaged) == 0 {
		fmt.Fprintln(w, "nothing to commit, working tree matches committed series")
		return
	}
	if len(s.StagedFor) > 0 {
		fmt.Fprintln(w, "Changes staged for commit:")
		present.RenderChanges(w, s.StagedFor)
	}
	if len(s.NotStaged) > 0 {
		fmt.Fprintln(w, "Changes not staged:")
		present.RenderChanges(w, s.NotStaged)
	}
}
