package gitexec

import (
	"errors"
	"fmt"
	"strings"
)

// ResolveRef resolves a ref name (e.g. "HEAD", "refs/heads/main") to the
// hash it currently points at. Returns ErrRefNotFound if the ref does not
// exist.
func (s *Store) ResolveRef(ref string) (Hash, error) {
	return s.Resolve(ref)
}

// UpdateRef performs a compare-and-set update of ref: it is set to newHash
// only if its current value equals oldHash. Pass ZeroHash for oldHash to
// require that the ref does not currently exist (create-only). reason is
// recorded in the ref's reflog exactly as passed, letting callers control
// the message format real git commands show (e.g. the "checkout: moving
// from X to Y (...)" convention start/checkout use).
func (s *Store) UpdateRef(ref string, newHash, oldHash Hash, reason string) error {
	args := []string{"update-ref"}
	if reason != "" {
		args = append(args, "-m", reason)
	}
	args = append(args, ref, string(newHash), string(oldHash))

	_, err := s.run(nil, args...)
	if err != nil {
		var cmdErr *CmdError
		if errors.As(err, &cmdErr) {
			return fmt.Errorf("%w: %s", ErrRefRaced, ref)
		}
		return err
	}
	return nil
}

// DeleteRef deletes ref, requiring its current value to equal oldHash (CAS
// delete). If oldHash is ZeroHash, the deletion is unconditional.
func (s *Store) DeleteRef(ref string, oldHash Hash) error {
	args := []string{"update-ref", "-d", ref}
	if oldHash != ZeroHash {
		args = append(args, string(oldHash))
	}
	_, err := s.run(nil, args...)
	if err != nil {
		var cmdErr *CmdError
		if errors.As(err, &cmdErr) {
			return fmt.Errorf("%w: %s", ErrRefRaced, ref)
		}
		return err
	}
	return nil
}

// SetSymbolicRef points the symbolic ref name at target (e.g. making
// refs/SHEAD a symref to refs/git-series-internals/working/<name>).
func (s *Store) SetSymbolicRef(name, target, reason string) error {
	args := []string{"symbolic-ref"}
	if reason != "" {
		args = append(args, "-m", reason)
	}
	args = append(args, name, target)
	_, err := s.run(nil, args...)
	if err != nil {
		return fmt.Errorf("gitexec: set symbolic ref %s: %w", name, err)
	}
	return nil
}

// ReadSymbolicRef reads the target of a symbolic ref without resolving it
// further. ok is false if name does not exist or is not a symbolic ref.
func (s *Store) ReadSymbolicRef(name string) (target string, ok bool, err error) {
	out, runErr := s.run(nil, "symbolic-ref", "-q", "--no-recurse", name)
	if runErr != nil {
		var cmdErr *CmdError
		if errors.As(runErr, &cmdErr) {
			return "", false, nil
		}
		return "", false, runErr
	}
	return strings.TrimSpace(out), true, nil
}

// DeleteSymbolicRef removes a symbolic ref (e.g. refs/SHEAD on detach).
func (s *Store) DeleteSymbolicRef(name string) error {
	_, err := s.run(nil, "symbolic-ref", "--delete", name)
	if err != nil {
		var cmdErr *CmdError
		if errors.As(err, &cmdErr) {
			return nil // already absent
		}
		return fmt.Errorf("gitexec: delete symbolic ref %s: %w", name, err)
	}
	return nil
}

// ListRefs enumerates every ref under prefix, returning a map from full ref
// name to the hash it points at.
func (s *Store) ListRefs(prefix string) (map[string]Hash, error) {
	out, err := s.run(nil, "for-each-ref", "--format=%(objectname) %(refname)", prefix)
	if err != nil {
		return nil, fmt.Errorf("gitexec: list refs under %s: %w", prefix, err)
	}

	refs := make(map[string]Hash)
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, " ", 2)
		if len(parts) != 2 {
			continue
		}
		refs[parts[1]] = Hash(parts[0])
	}
	return refs, nil
}

// CheckRefFormat reports whether name is a syntactically valid git ref name
// component, deferring entirely to git's own rule (spec.md §4.4).
func (s *Store) CheckRefFormat(name string) bool {
	_, err := s.run(nil, "check-ref-format", "--normalize", name)
	return err == nil
}
