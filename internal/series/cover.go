package series

import (
	"bytes"

	"github.com/gitseries/git-series/internal/editor"
	"github.com/gitseries/git-series/internal/refs"
)

// GetCover returns the working tree's cover letter bytes, or nil if absent.
func (r *Repo) GetCover(name string) ([]byte, error) {
	working, err := r.readWorking(name)
	if err != nil {
		return nil, err
	}
	if !working.exists || working.tree.Cover == nil {
		return nil, nil
	}
	return r.Store.ReadBlob(*working.tree.Cover)
}

// EditCover launches the editor on a buffer seeded with the existing cover
// letter (or empty), then writes a new cover blob on non-empty save, or
// removes cover on empty save.
func (r *Repo) EditCover(name string) error {
	tree, prev, err := r.ensureWorkingBaseline(name)
	if err != nil {
		return err
	}

	var seed []byte
	if tree.Cover != nil {
		seed, err = r.Store.ReadBlob(*tree.Cover)
		if err != nil {
			return err
		}
	}

	result, _, err := editor.Edit(r.Store, seed)
	if err != nil {
		return err
	}

	if len(bytes.TrimSpace(result)) == 0 {
		tree.Cover = nil
	} else {
		blobHash, err := r.Store.WriteBlob(result)
		if err != nil {
			return err
		}
		tree.Cover = &blobHash
	}

	_, err = r.writeTier(refs.Working(name), prev, tree, "")
	return err
}

// ClearCover removes cover from the working tree without editing.
func (r *Repo) ClearCover(name string) error {
	tree, prev, err := r.ensureWorkingBaseline(name)
	if err != nil {
		return err
	}
	tree.Cover = nil
	_, err = r.writeTier(refs.Working(name), prev, tree, "")
	return err
}
