// Package seriescommit builds series commits — ordinary git commits whose
// parent list redundantly encodes the gitlinks in their tree so that git's
// garbage collector and transport never drop them — and detects the root
// of a committed series's history.
package seriescommit

import (
	"github.com/gitseries/git-series/internal/gitexec"
	"github.com/gitseries/git-series/internal/seriestree"
)

// Assemble builds a series commit from the previous series commit (if any),
// a series tree, and a message, following §4.3:
//
//  1. Collect every distinct gitlink hash at the top level of tree.
//  2. Parent list = [prev] ++ gitlinks if prev is set, else just gitlinks
//     (the root form).
//  3. Author/committer come from git's own identity resolution.
//
// Every distinct top-level gitlink — including one named "base" — is
// included in the parent list; this follows spec's explicit invariant over
// an undocumented exclusion observed in one historical implementation.
func Assemble(store *gitexec.Store, prev gitexec.Hash, treeHash gitexec.Hash, message string) (gitexec.Hash, error) {
	entries, err := store.ReadTree(treeHash)
	if err != nil {
		return "", err
	}
	tree, err := seriestree.Decode(entries)
	if err != nil {
		return "", err
	}

	gitlinks := dedupe(tree.Gitlinks())

	var parents []gitexec.Hash
	if prev != "" {
		parents = append(parents, prev)
	}
	parents = append(parents, gitlinks...)

	author, err := store.CurrentAuthor()
	if err != nil {
		return "", err
	}
	committer, err := store.CurrentCommitter()
	if err != nil {
		return "", err
	}

	return store.WriteCommit(treeHash, parents, author, committer, message)
}

func dedupe(hashes []gitexec.Hash) []gitexec.Hash {
	seen := make(map[gitexec.Hash]bool, len(hashes))
	out := make([]gitexec.Hash, 0, len(hashes))
	for _, h := range hashes {
		if seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, h)
	}
	return out
}

// IsRoot reports whether the committed series commit c is the root of its
// series's history: its first parent (if any) is itself one of the
// gitlinks in its own top-level tree. A commit with no parents at all is
// trivially the root.
func IsRoot(store *gitexec.Store, c *gitexec.Commit) (bool, error) {
	if len(c.Parents) == 0 {
		return true, nil
	}

	entries, err := store.ReadTree(c.Tree)
	if err != nil {
		return false, err
	}
	tree, err := seriestree.Decode(entries)
	if err != nil {
		return false, err
	}

	first := c.Parents[0]
	for _, g := range tree.Gitlinks() {
		if g == first {
			return true, nil
		}
	}
	return false, nil
}
