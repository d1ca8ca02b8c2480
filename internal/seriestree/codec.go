// Package seriestree encodes and decodes the series tree: the tree object
// inside a series commit whose named entries are series (gitlink), an
// optional base (gitlink), and an optional cover (blob).
package seriestree

import (
	"errors"
	"fmt"

	"github.com/gitseries/git-series/internal/gitexec"
)

// ErrMissingSeries is MalformedSeriesTree's specific instance for a tree
// that lacks the mandatory "series" entry.
var ErrMissingSeries = errors.New("series tree: missing required \"series\" entry")

// ErrBadMode is MalformedSeriesTree's specific instance for an entry with
// the wrong mode for its name.
var ErrBadMode = errors.New("series tree: entry has wrong mode")

const (
	nameSeries = "series"
	nameBase   = "base"
	nameCover  = "cover"
)

// Tree is the decoded form of a series tree. Unknown carries any entries
// beyond {series, base, cover} found while decoding: decode never silently
// drops them, and Encode writes them straight back so round-tripping an
// unrecognized tree (e.g. produced by a newer implementation) is lossless.
type Tree struct {
	Series gitexec.Hash
	Base   *gitexec.Hash
	Cover  *gitexec.Hash

	Unknown []gitexec.TreeEntry
}

// Decode validates and parses a list of top-level tree entries into a Tree.
func Decode(entries []gitexec.TreeEntry) (*Tree, error) {
	t := &Tree{}
	haveSeries := false

	for _, e := range entries {
		switch e.Name {
		case nameSeries:
			if e.Mode != gitexec.ModeGitlink {
				return nil, fmt.Errorf("%w: %q has mode %s, want %s", ErrBadMode, nameSeries, e.Mode, gitexec.ModeGitlink)
			}
			t.Series = e.Hash
			haveSeries = true
		case nameBase:
			if e.Mode != gitexec.ModeGitlink {
				return nil, fmt.Errorf("%w: %q has mode %s, want %s", ErrBadMode, nameBase, e.Mode, gitexec.ModeGitlink)
			}
			h := e.Hash
			t.Base = &h
		case nameCover:
			if e.Mode != gitexec.ModeBlob {
				return nil, fmt.Errorf("%w: %q has mode %s, want %s", ErrBadMode, nameCover, e.Mode, gitexec.ModeBlob)
			}
			h := e.Hash
			t.Cover = &h
		default:
			t.Unknown = append(t.Unknown, e)
		}
	}

	if !haveSeries {
		return nil, ErrMissingSeries
	}
	return t, nil
}

// Encode renders t back into tree entries, ready for gitexec.Store.WriteTree
// (which will sort them into git's canonical lexicographic order).
func (t *Tree) Encode() []gitexec.TreeEntry {
	entries := []gitexec.TreeEntry{
		{Mode: gitexec.ModeGitlink, Name: nameSeries, Hash: t.Series},
	}
	if t.Base != nil {
		entries = append(entries, gitexec.TreeEntry{Mode: gitexec.ModeGitlink, Name: nameBase, Hash: *t.Base})
	}
	if t.Cover != nil {
		entries = append(entries, gitexec.TreeEntry{Mode: gitexec.ModeBlob, Name: nameCover, Hash: *t.Cover})
	}
	entries = append(entries, t.Unknown...)
	return entries
}

// Gitlinks returns every gitlink hash appearing at the top level of t:
// series first, then base if present, then any gitlink among the Unknown
// entries. cover is a blob, never a gitlink, and is excluded. The list is
// not deduplicated (base may equal series); callers needing a set should
// dedupe.
func (t *Tree) Gitlinks() []gitexec.Hash {
	links := []gitexec.Hash{t.Series}
	if t.Base != nil {
		links = append(links, *t.Base)
	}
	for _, e := range t.Unknown {
		if e.Mode == gitexec.ModeGitlink {
			links = append(links, e.Hash)
		}
	}
	return links
}
