// Package series implements the series state machine: start, checkout,
// detach, delete, base, cover, add, unadd, commit, status, log, and the
// cp/mv supplement, layered on internal/gitexec, internal/seriestree, and
// internal/seriescommit.
package series

import (
	"errors"
	"fmt"

	"github.com/gitseries/git-series/internal/gitexec"
	"github.com/gitseries/git-series/internal/refs"
	"github.com/gitseries/git-series/internal/seriescommit"
	"github.com/gitseries/git-series/internal/seriestree"
)

// Repo is an opened repository, ready to run series operations against.
type Repo struct {
	Store *gitexec.Store
}

// Open resolves dir's GIT_DIR and returns a Repo.
func Open(dir string) (*Repo, error) {
	store, err := gitexec.Open(dir)
	if err != nil {
		return nil, err
	}
	return &Repo{Store: store}, nil
}

// tierState is one tier (working, staged, or committed) of a series: its
// ref, the hash it resolves to, and its decoded series tree. exists is
// false if the ref does not exist at all.
type tierState struct {
	ref    string
	hash   gitexec.Hash
	tree   *seriestree.Tree
	exists bool
}

func (r *Repo) readTier(ref string) (tierState, error) {
	hash, err := r.Store.ResolveAny(ref)
	if err != nil {
		if errors.Is(err, gitexec.ErrRefNotFound) {
			return tierState{ref: ref}, nil
		}
		return tierState{}, err
	}
	commit, err := r.Store.ReadCommit(hash)
	if err != nil {
		return tierState{}, fmt.Errorf("series: read %s: %w", ref, err)
	}
	entries, err := r.Store.ReadTree(commit.Tree)
	if err != nil {
		return tierState{}, fmt.Errorf("series: read tree for %s: %w", ref, err)
	}
	tree, err := seriestree.Decode(entries)
	if err != nil {
		return tierState{}, fmt.Errorf("%w: %s: %v", ErrMalformedSeriesTree, ref, err)
	}
	return tierState{ref: ref, hash: hash, tree: tree, exists: true}, nil
}

func (r *Repo) readWorking(name string) (tierState, error)   { return r.readTier(refs.Working(name)) }
func (r *Repo) readStaged(name string) (tierState, error)    { return r.readTier(refs.Staged(name)) }
func (r *Repo) readCommitted(name string) (tierState, error) { return r.readTier(refs.Committed(name)) }

// exists reports whether any of the three tiers for name is present.
func (r *Repo) exists(name string) (bool, error) {
	for _, readFn := range []func(string) (tierState, error){r.readWorking, r.readStaged, r.readCommitted} {
		t, err := readFn(name)
		if err != nil {
			return false, err
		}
		if t.exists {
			return true, nil
		}
	}
	return false, nil
}

// writeTier assembles a series commit for tree on top of prev (the tier's
// previous hash, or "" if the tier didn't exist yet) and CAS-updates ref to
// it.
func (r *Repo) writeTier(ref string, prev gitexec.Hash, tree *seriestree.Tree, message string) (gitexec.Hash, error) {
	treeHash, err := r.Store.WriteTree(tree.Encode())
	if err != nil {
		return "", err
	}
	commitHash, err := seriescommit.Assemble(r.Store, prev, treeHash, message)
	if err != nil {
		return "", err
	}
	if err := r.Store.UpdateRef(ref, commitHash, prev, message); err != nil {
		return "", err
	}
	return commitHash, nil
}

// currentSeriesName resolves the current series, if any, by reading SHEAD.
// ok is false if SHEAD is absent or does not resolve.
func (r *Repo) currentSeriesName() (name string, ok bool, err error) {
	target, has, err := r.Store.ReadSymbolicRef(refs.SHEAD)
	if err != nil {
		return "", false, err
	}
	if !has {
		return "", false, nil
	}
	for _, prefix := range []string{refs.WorkingPrefix, refs.StagedPrefix, refs.CommittedPrefix} {
		if n, ok := refs.NameFromRef(target, prefix); ok {
			return n, true, nil
		}
	}
	return "", false, nil
}
