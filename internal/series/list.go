package series

import (
	"sort"

	"github.com/gitseries/git-series/internal/refs"
)

// Entry is one series named under any of the three ref prefixes.
type Entry struct {
	Name    string
	Current bool
}

// List implements §4.7's listing operation: the union of names appearing
// under any of the three ref prefixes, marking the one named by SHEAD.
func (r *Repo) List() ([]Entry, error) {
	names := make(map[string]bool)
	for _, prefix := range []string{refs.WorkingPrefix, refs.StagedPrefix, refs.CommittedPrefix} {
		refMap, err := r.Store.ListRefs(prefix)
		if err != nil {
			return nil, err
		}
		for ref := range refMap {
			if name, ok := refs.NameFromRef(ref, prefix); ok {
				names[name] = true
			}
		}
	}

	current, hasCurrent, err := r.currentSeriesName()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(names))
	for name := range names {
		entries = append(entries, Entry{Name: name, Current: hasCurrent && name == current})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}
