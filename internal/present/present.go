// Package present renders the sketched, non-core presentation layer:
// the per-entry summaries of status and log -p, and log -p's tree-to-tree
// unified diffs. None of it participates in the series object model's
// invariants — it only formats what the core model already computed.
package present

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sourcegraph/go-diff/diff"

	"github.com/gitseries/git-series/internal/gitexec"
	"github.com/gitseries/git-series/internal/seriestree"
)

var (
	added    = color.New(color.FgGreen)
	removed  = color.New(color.FgRed)
	modified = color.New(color.FgYellow)
)

// EntryChangeKind classifies how one series tree entry changed between two
// trees.
type EntryChangeKind int

const (
	Unchanged EntryChangeKind = iota
	Added
	Removed
	Modified
)

// EntryChange is one entry's (series/base/cover) change between two trees.
type EntryChange struct {
	Name string
	Kind EntryChangeKind
	Old  *gitexec.Hash
	New  *gitexec.Hash
}

// DiffTrees compares old and new series trees entry-by-entry. old may be
// nil, meaning "no tree at all" (every present entry in new is Added).
func DiffTrees(old, new *seriestree.Tree) []EntryChange {
	var changes []EntryChange
	changes = append(changes, diffEntry("series", hashOf(old, func(t *seriestree.Tree) *gitexec.Hash { return &t.Series }), &new.Series))
	changes = append(changes, diffEntry("base", baseOf(old), new.Base))
	changes = append(changes, diffEntry("cover", coverOf(old), new.Cover))

	out := make([]EntryChange, 0, len(changes))
	for _, c := range changes {
		if c.Kind != Unchanged {
			out = append(out, c)
		}
	}
	return out
}

func hashOf(t *seriestree.Tree, get func(*seriestree.Tree) *gitexec.Hash) *gitexec.Hash {
	if t == nil {
		return nil
	}
	return get(t)
}

func baseOf(t *seriestree.Tree) *gitexec.Hash {
	if t == nil {
		return nil
	}
	return t.Base
}

func coverOf(t *seriestree.Tree) *gitexec.Hash {
	if t == nil {
		return nil
	}
	return t.Cover
}

func diffEntry(name string, old, new *gitexec.Hash) EntryChange {
	switch {
	case old == nil && new == nil:
		return EntryChange{Name: name, Kind: Unchanged}
	case old == nil && new != nil:
		return EntryChange{Name: name, Kind: Added, New: new}
	case old != nil && new == nil:
		return EntryChange{Name: name, Kind: Removed, Old: old}
	case *old == *new:
		return EntryChange{Name: name, Kind: Unchanged, Old: old, New: new}
	default:
		return EntryChange{Name: name, Kind: Modified, Old: old, New: new}
	}
}

// RenderChanges writes a short, colorized per-entry summary, one line per
// entry indented by two spaces, e.g.
//
//	modified base     a1b2c3d4e5..f6a7b8c9d0
//	added cover    0123456789
func RenderChanges(w io.Writer, changes []EntryChange) {
	for _, c := range changes {
		label, style := changeLabel(c.Kind)
		fmt.Fprintf(w, "  %s %-8s %s\n", style.Sprint(label), c.Name, summarize(c))
	}
}

func changeLabel(k EntryChangeKind) (string, *color.Color) {
	switch k {
	case Added:
		return "added", added
	case Removed:
		return "removed", removed
	case Modified:
		return "modified", modified
	default:
		return "unchanged", color.New()
	}
}

func summarize(c EntryChange) string {
	switch c.Kind {
	case Added:
		return short(*c.New)
	case Removed:
		return short(*c.Old)
	case Modified:
		return fmt.Sprintf("%s..%s", short(*c.Old), short(*c.New))
	default:
		return ""
	}
}

func short(h gitexec.Hash) string {
	s := string(h)
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

// RenderUnifiedDiff parses raw unified diff text (as produced by
// gitexec.Store.DiffTrees/DiffBlobs) into structured file diffs and writes
// a colorized rendering; log -p uses it for the diff between adjacent
// series trees.
func RenderUnifiedDiff(w io.Writer, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	fileDiffs, err := diff.NewMultiFileDiffReader(strings.NewReader(raw)).ReadAllFiles()
	if err != nil {
		return fmt.Errorf("present: parse diff: %w", err)
	}
	for _, fd := range fileDiffs {
		fmt.Fprintf(w, "%s %s -> %s\n", color.New(color.Bold).Sprint("diff"), fd.OrigName, fd.NewName)
		for _, h := range fd.Hunks {
			for _, line := range strings.Split(string(h.Body), "\n") {
				switch {
				case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
					added.Fprintln(w, line)
				case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
					removed.Fprintln(w, line)
				default:
					fmt.Fprintln(w, line)
				}
			}
		}
	}
	return nil
}
