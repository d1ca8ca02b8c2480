package series

import (
	"errors"
	"fmt"

	"github.com/gitseries/git-series/internal/gitexec"
	"github.com/gitseries/git-series/internal/refs"
	"github.com/gitseries/git-series/internal/seriestree"
)

// ensureWorkingBaseline returns the tree to start mutating for name's
// working tier, bootstrapping a fresh {series: HEAD} tree (mirroring
// Start) if no working tier exists yet — base and cover can create a
// series on their own, per the data model ("created by start or first
// base/cover").
func (r *Repo) ensureWorkingBaseline(name string) (*seriestree.Tree, gitexec.Hash, error) {
	working, err := r.readWorking(name)
	if err != nil {
		return nil, "", err
	}
	if working.exists {
		return working.tree, working.hash, nil
	}

	head, err := r.Store.Resolve("HEAD")
	if err != nil {
		if errors.Is(err, gitexec.ErrRefNotFound) {
			return nil, "", fmt.Errorf("%w", ErrNoHead)
		}
		return nil, "", err
	}
	return &seriestree.Tree{Series: head}, gitexec.ZeroHash, nil
}

// GetBase returns the working tree's base gitlink, or nil if absent (the
// "distinctive sentinel" case is the CLI layer's concern, not this one's).
func (r *Repo) GetBase(name string) (*gitexec.Hash, error) {
	working, err := r.readWorking(name)
	if err != nil {
		return nil, err
	}
	if !working.exists {
		return nil, nil
	}
	return working.tree.Base, nil
}

// SetBase resolves commitish (any gitish) and rewrites the working tree
// with base set to it.
func (r *Repo) SetBase(name, commitish string) error {
	tree, prev, err := r.ensureWorkingBaseline(name)
	if err != nil {
		return err
	}
	hash, err := r.Store.Resolve(commitish)
	if err != nil {
		return err
	}
	tree.Base = &hash
	_, err = r.writeTier(refs.Working(name), prev, tree, "")
	return err
}

// ClearBase rewrites the working tree with base removed.
func (r *Repo) ClearBase(name string) error {
	tree, prev, err := r.ensureWorkingBaseline(name)
	if err != nil {
		return err
	}
	tree.Base = nil
	_, err = r.writeTier(refs.Working(name), prev, tree, "")
	return err
}
