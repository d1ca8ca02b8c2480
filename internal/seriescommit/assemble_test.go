package seriescommit

import (
	"os/exec"
	"testing"

	"github.com/gitseries/git-series/internal/gitexec"
)

func initTestRepo(t *testing.T) *gitexec.Store {
	t.Helper()
	dir := t.TempDir()
	if out, err := exec.Command("git", "init", "--quiet", "-b", "main", dir).CombinedOutput(); err != nil {
		t.Fatalf("git init: %v: %s", err, out)
	}
	for _, kv := range [][2]string{{"user.email", "test@example.com"}, {"user.name", "Test User"}} {
		if out, err := exec.Command("git", "-C", dir, "config", kv[0], kv[1]).CombinedOutput(); err != nil {
			t.Fatalf("git config %s: %v: %s", kv[0], err, out)
		}
	}
	s, err := gitexec.Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func plainCommit(t *testing.T, s *gitexec.Store, message string, parents ...gitexec.Hash) gitexec.Hash {
	t.Helper()
	emptyTree, err := s.WriteTree(nil)
	if err != nil {
		t.Fatalf("WriteTree: %v", err)
	}
	id := gitexec.Identity{Name: "Test User", Email: "test@example.com", When: 1700000000, Zone: "+0000"}
	h, err := s.WriteCommit(emptyTree, parents, id, id, message)
	if err != nil {
		t.Fatalf("WriteCommit: %v", err)
	}
	return h
}

func seriesTreeHash(t *testing.T, s *gitexec.Store, series gitexec.Hash, base *gitexec.Hash) gitexec.Hash {
	t.Helper()
	entries := []gitexec.TreeEntry{{Mode: gitexec.ModeGitlink, Name: "series", Hash: series}}
	if base != nil {
		entries = append(entries, gitexec.TreeEntry{Mode: gitexec.ModeGitlink, Name: "base", Hash: *base})
	}
	h, err := s.WriteTree(entries)
	if err != nil {
		t.Fatalf("WriteTree: %v", err)
	}
	return h
}

// TestAssembleRoot exercises scenario S1/S4: a first series commit with no
// predecessor. Its parent list is exactly its top-level gitlinks, and
// IsRoot must report true.
func TestAssembleRoot(t *testing.T) {
	s := initTestRepo(t)
	c0 := plainCommit(t, s, "c0")
	c1 := plainCommit(t, s, "c1", c0)

	tree := seriesTreeHash(t, s, c1, &c0)
	root, err := Assemble(s, "", tree, "v1")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	commit, err := s.ReadCommit(root)
	if err != nil {
		t.Fatalf("ReadCommit: %v", err)
	}
	if len(commit.Parents) != 2 {
		t.Fatalf("parents = %v, want 2 entries (c1, c0 in some order)", commit.Parents)
	}
	isRoot, err := IsRoot(s, commit)
	if err != nil {
		t.Fatalf("IsRoot: %v", err)
	}
	if !isRoot {
		t.Fatalf("IsRoot = false, want true for the first series commit")
	}
}

// TestAssembleNonRoot exercises scenario S5: a second series commit whose
// first parent is the previous series commit, which is never itself a
// gitlink in the new tree, so IsRoot must report false.
func TestAssembleNonRoot(t *testing.T) {
	s := initTestRepo(t)
	c0 := plainCommit(t, s, "c0")
	c1 := plainCommit(t, s, "c1", c0)
	c2 := plainCommit(t, s, "c2", c1)

	v1Tree := seriesTreeHash(t, s, c1, &c0)
	v1, err := Assemble(s, "", v1Tree, "v1")
	if err != nil {
		t.Fatalf("Assemble v1: %v", err)
	}

	v2Tree := seriesTreeHash(t, s, c2, &c0)
	v2, err := Assemble(s, v1, v2Tree, "v2")
	if err != nil {
		t.Fatalf("Assemble v2: %v", err)
	}

	commit, err := s.ReadCommit(v2)
	if err != nil {
		t.Fatalf("ReadCommit: %v", err)
	}
	if commit.Parents[0] != v1 {
		t.Fatalf("first parent = %s, want previous series commit %s", commit.Parents[0], v1)
	}
	isRoot, err := IsRoot(s, commit)
	if err != nil {
		t.Fatalf("IsRoot: %v", err)
	}
	if isRoot {
		t.Fatalf("IsRoot = true, want false for a non-root series commit")
	}

	v1Commit, err := s.ReadCommit(v1)
	if err != nil {
		t.Fatalf("ReadCommit(v1): %v", err)
	}
	v1IsRoot, err := IsRoot(s, v1Commit)
	if err != nil {
		t.Fatalf("IsRoot(v1): %v", err)
	}
	if !v1IsRoot {
		t.Fatalf("IsRoot(v1) = false, want true")
	}
}
