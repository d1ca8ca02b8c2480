package gitexec

import "errors"

// Error kinds surfaced by the object-store gateway and, by extension, every
// layer built on top of it. These map directly onto the error kinds named in
// the error handling design: RefRaced, ObjectStoreError, GitSubprocessFailed.
var (
	// ErrRefRaced is returned when a compare-and-set ref update lost the
	// race against a concurrent writer.
	ErrRefRaced = errors.New("ref update raced: current value does not match expected")

	// ErrRefNotFound is returned when resolving a ref that does not exist.
	ErrRefNotFound = errors.New("ref not found")

	// ErrObjectNotFound is returned when reading an object that is not
	// present in the object database.
	ErrObjectNotFound = errors.New("object not found")

	// ErrNotAGitRepository is returned when the gateway cannot locate a
	// GIT_DIR from the current working directory or GIT_DIR override.
	ErrNotAGitRepository = errors.New("not a git repository")
)

// CmdError wraps a failed invocation of the git binary, carrying the exact
// command line and captured stderr so callers can build a GitSubprocessFailed
// diagnostic without re-parsing anything.
type CmdError struct {
	Args   []string
	Stderr string
}

func (e *CmdError) Error() string {
	return "git " + joinArgs(e.Args) + ": " + e.Stderr
}

// Is reports whether err is a *CmdError, independent of its contents, so
// callers can do errors.Is(err, new(CmdError)) style checks if they don't
// care about the details but do care about the classification.
func (e *CmdError) Is(target error) bool {
	_, ok := target.(*CmdError)
	return ok
}

func joinArgs(args []string) string {
	out := ""
	for i, a := range args {
		if i > 0 {
			out += " "
		}
		out += a
	}
	return out
}
