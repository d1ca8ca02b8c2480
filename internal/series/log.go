package series

import (
	"fmt"
	"io"

	"github.com/gitseries/git-series/internal/gitexec"
	"github.com/gitseries/git-series/internal/present"
	"github.com/gitseries/git-series/internal/seriescommit"
	"github.com/gitseries/git-series/internal/seriestree"
)

// LogEntry is one committed series commit in the walked history.
type LogEntry struct {
	Hash    gitexec.Hash
	Commit  *gitexec.Commit
	Tree    *seriestree.Tree
	IsRoot  bool
}

// Log walks name's committed history backward along first-parent links,
// stopping at (and including) the root commit detected via
// seriescommit.IsRoot — the series's own root-detection trick, not a
// generic "no parents" stop, since a root series commit does have
// parents (its own gitlinks).
func (r *Repo) Log(name string) ([]LogEntry, error) {
	committed, err := r.readCommitted(name)
	if err != nil {
		return nil, err
	}
	if !committed.exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSeries, name)
	}

	var entries []LogEntry
	hash := committed.hash
	for {
		commit, err := r.Store.ReadCommit(hash)
		if err != nil {
			return nil, err
		}
		treeEntries, err := r.Store.ReadTree(commit.Tree)
		if err != nil {
			return nil, err
		}
		tree, err := seriestree.Decode(treeEntries)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedSeriesTree, hash, err)
		}
		isRoot, err := seriescommit.IsRoot(r.Store, commit)
		if err != nil {
			return nil, err
		}

		entries = append(entries, LogEntry{Hash: hash, Commit: commit, Tree: tree, IsRoot: isRoot})
		if isRoot || len(commit.Parents) == 0 {
			break
		}
		hash = commit.Parents[0]
	}
	return entries, nil
}

// RenderLog writes entries newest-first, optionally including a diff
// against each entry's predecessor when patch is true (the `-p` flag).
func RenderLog(w io.Writer, store *gitexec.Store, entries []LogEntry, patch bool) error {
	for i, e := range entries {
		fmt.Fprintf(w, "series-commit %s\n", e.Hash)
		fmt.Fprintf(w, "Author: %s <%s>\n", e.Commit.Author.Name, e.Commit.Author.Email)
		fmt.Fprintf(w, "\n    %s\n\n", e.Commit.Message)

		if !patch {
			continue
		}
		var prevTree *seriestree.Tree
		if i+1 < len(entries) {
			prevTree = entries[i+1].Tree
		}
		changes := present.DiffTrees(prevTree, e.Tree)
		present.RenderChanges(w, changes)

		if !e.IsRoot {
			oldTreeHash, err := treeHashOfLogParent(store, entries, i)
			if err == nil {
				raw, err := store.DiffTrees(oldTreeHash, e.Commit.Tree)
				if err == nil {
					if err := present.RenderUnifiedDiff(w, raw); err != nil {
						fmt.Fprintln(w, raw)
					}
				}
			}
		}
		fmt.Fprintln(w)
	}
	return nil
}

func treeHashOfLogParent(store *gitexec.Store, entries []LogEntry, i int) (gitexec.Hash, error) {
	if i+1 >= len(entries) {
		return store.EmptyTree()
	}
	return entries[i+1].Commit.Tree, nil
}
