package series

import "errors"

// Error kinds named in spec.md §7, modeled as sentinel errors wrapped with
// fmt.Errorf and inspected with errors.Is, matching the teacher's own style
// (see internal/gitexec.ErrRefRaced and internal/refs.ErrInvalidName for
// the kinds that live closer to the layers that detect them).
var (
	ErrUnknownSeries      = errors.New("unknown series")
	ErrSeriesExists       = errors.New("series already exists")
	ErrNoCurrentSeries    = errors.New("no current series")
	ErrInvalidChange      = errors.New("invalid change name")
	ErrNoHead             = errors.New("HEAD does not resolve to a commit")
	ErrDirtyWorktree      = errors.New("working tree is not clean")
	ErrNothingToAdd       = errors.New("nothing to add")
	ErrNothingToCommit    = errors.New("nothing to commit")
	ErrEditorAborted      = errors.New("editor aborted with no changes saved")
	ErrMalformedSeriesTree = errors.New("malformed series tree")
)
