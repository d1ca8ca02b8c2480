// Package refs maps series names to the three per-series refs and the
// symbolic SHEAD ref, and validates series names.
package refs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gitseries/git-series/internal/gitexec"
)

// Bit-exact ref prefixes, per spec.md §6 and preserved verbatim from the
// historical implementation's naming so that existing repositories using
// this layout remain compatible.
const (
	CommittedPrefix = "refs/heads/git-series/"
	StagedPrefix    = "refs/git-series-internals/staged/"
	WorkingPrefix   = "refs/git-series-internals/working/"
	SHEAD           = "refs/SHEAD"
)

// ErrInvalidName is the InvalidName error kind.
var ErrInvalidName = errors.New("invalid series name")

// Committed, Staged, and Working return the full ref name for name's
// committed/staged/working tier.
func Committed(name string) string { return CommittedPrefix + name }
func Staged(name string) string    { return StagedPrefix + name }
func Working(name string) string   { return WorkingPrefix + name }

// Validate rejects empty names, names starting with "-", and anything git's
// own check-ref-format rejects once placed under CommittedPrefix (the most
// restrictive of the three prefixes, since it must also be a legal branch
// name component).
func Validate(store *gitexec.Store, name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("%w: %q starts with \"-\"", ErrInvalidName, name)
	}
	if !store.CheckRefFormat(Committed(name)) {
		return fmt.Errorf("%w: %q is not a valid ref name component", ErrInvalidName, name)
	}
	return nil
}

// NameFromRef strips prefix from ref and returns the bare series name, or
// ("", false) if ref does not have prefix.
func NameFromRef(ref, prefix string) (string, bool) {
	if !strings.HasPrefix(ref, prefix) {
		return "", false
	}
	return strings.TrimPrefix(ref, prefix), true
}
