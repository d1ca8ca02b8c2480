package gitexec

import "strings"

// Var resolves one of git's own logical variables (e.g. "GIT_EDITOR",
// "GIT_PAGER") via `git var`, which already implements the documented
// fallback chain (GIT_EDITOR env -> core.editor -> VISUAL/EDITOR -> vi) so
// callers never need to reimplement it.
func (s *Store) Var(name string) (string, error) {
	out, err := s.run(nil, "var", name)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
