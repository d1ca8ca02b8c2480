package gitexec

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ReadTree reads the top-level entries of a tree object, in git's own
// canonical order (which is already lexicographic by name).
func (s *Store) ReadTree(h Hash) ([]TreeEntry, error) {
	out, err := s.run(nil, "ls-tree", string(h))
	if err != nil {
		var cmdErr *CmdError
		if errors.As(err, &cmdErr) {
			return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, h)
		}
		return nil, err
	}

	var entries []TreeEntry
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if line == "" {
			continue
		}
		// "<mode> SP <type> SP <object> TAB <name>"
		metaAndName := strings.SplitN(line, "\t", 2)
		if len(metaAndName) != 2 {
			return nil, fmt.Errorf("gitexec: malformed ls-tree line %q", line)
		}
		meta := strings.SplitN(metaAndName[0], " ", 3)
		if len(meta) != 3 {
			return nil, fmt.Errorf("gitexec: malformed ls-tree entry %q", metaAndName[0])
		}
		entries = append(entries, TreeEntry{
			Mode: TreeMode(meta[0]),
			Name: metaAndName[1],
			Hash: Hash(meta[2]),
		})
	}
	return entries, nil
}

// WriteTree builds a tree object from entries via `git mktree`, sorting
// entries into git's canonical order first (mktree requires sorted input).
func (s *Store) WriteTree(entries []TreeEntry) (Hash, error) {
	sorted := make([]TreeEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var buf strings.Builder
	for _, e := range sorted {
		objType := "blob"
		if e.Mode == ModeTree {
			objType = "tree"
		} else if e.Mode == ModeGitlink {
			objType = "commit"
		}
		fmt.Fprintf(&buf, "%s %s %s\t%s\n", e.Mode, objType, e.Hash, e.Name)
	}

	out, err := s.run([]byte(buf.String()), "mktree", "--missing")
	if err != nil {
		return "", fmt.Errorf("gitexec: write tree: %w", err)
	}
	return Hash(strings.TrimSpace(out)), nil
}
