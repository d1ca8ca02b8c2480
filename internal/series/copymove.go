package series

import (
	"errors"
	"fmt"

	"github.com/gitseries/git-series/internal/gitexec"
	"github.com/gitseries/git-series/internal/refs"
)

// tierRefPairs lists, for a series name, the (committed, staged, working)
// ref paths in the fixed order Copy/Move operate over.
func tierRefPairs(name string) [3]string {
	return [3]string{refs.Committed(name), refs.Staged(name), refs.Working(name)}
}

// Copy implements the `cp` supplement (carried over from the original
// implementation, not named in spec.md but not excluded by any Non-goal
// either — see DESIGN.md): it duplicates every existing tier of src onto
// dst, leaving src untouched.
func (r *Repo) Copy(src, dst string) error {
	if err := refs.Validate(r.Store, dst); err != nil {
		return err
	}
	dstExists, err := r.exists(dst)
	if err != nil {
		return err
	}
	if dstExists {
		return fmt.Errorf("%w: %q", ErrSeriesExists, dst)
	}

	srcRefs, dstRefs := tierRefPairs(src), tierRefPairs(dst)
	copied := 0
	for i := range srcRefs {
		hash, err := r.Store.ResolveAny(srcRefs[i])
		if err != nil {
			if isMissingRef(err) {
				continue
			}
			return err
		}
		if err := r.Store.UpdateRef(dstRefs[i], hash, gitexec.ZeroHash, fmt.Sprintf("git series cp %s %s", src, dst)); err != nil {
			return err
		}
		copied++
	}
	if copied == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownSeries, src)
	}
	return nil
}

// Move implements the `mv` supplement: like Copy, but deletes src's tiers
// afterward and, if SHEAD currently names src, repoints it at dst using
// the same checkout-style reflog message as Checkout.
func (r *Repo) Move(src, dst string) error {
	current, hasCurrent, err := r.currentSeriesName()
	if err != nil {
		return err
	}

	if err := r.Copy(src, dst); err != nil {
		return err
	}

	srcRefs := tierRefPairs(src)
	for _, ref := range srcRefs {
		hash, err := r.Store.ResolveAny(ref)
		if err != nil {
			if isMissingRef(err) {
				continue
			}
			return err
		}
		if err := r.Store.DeleteRef(ref, hash); err != nil {
			return err
		}
	}

	if hasCurrent && current == src {
		dstEffective, err := r.effectiveRef(dst)
		if err != nil {
			return err
		}
		oldTarget, _, _ := r.Store.ReadSymbolicRef(refs.SHEAD)
		msg := shiftReflogMessage(oldTarget, dstEffective, "mv", dst)
		if err := r.Store.SetSymbolicRef(refs.SHEAD, dstEffective, msg); err != nil {
			return err
		}
	}
	return nil
}

// effectiveRef picks name's preferred tier ref — working, else staged,
// else committed — the same preference Checkout uses.
func (r *Repo) effectiveRef(name string) (string, error) {
	for _, readFn := range []func(string) (tierState, error){r.readWorking, r.readStaged, r.readCommitted} {
		t, err := readFn(name)
		if err != nil {
			return "", err
		}
		if t.exists {
			return t.ref, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSeries, name)
}

func isMissingRef(err error) bool {
	return errors.Is(err, gitexec.ErrRefNotFound)
}
