package gitexec

// DiffTrees returns the textual diff git itself would produce between two
// tree-ish objects, including gitlink changes rendered as git's own
// "Subproject commit" lines — reused as-is rather than reimplemented, since
// git already understands the series tree's gitlink entries perfectly well.
func (s *Store) DiffTrees(old, new Hash) (string, error) {
	return s.run(nil, "diff", string(old), string(new))
}

// DiffBlobs returns the textual diff between two blob objects (used for the
// cover letter's line-level diff).
func (s *Store) DiffBlobs(old, new Hash) (string, error) {
	return s.run(nil, "diff", string(old), string(new))
}

// EmptyTree returns the hash of the canonical empty tree, used as a
// synthetic "before" state when diffing against a tier that does not exist
// yet.
func (s *Store) EmptyTree() (Hash, error) {
	return s.WriteTree(nil)
}
