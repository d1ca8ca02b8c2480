package gitexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/cli/safeexec"
)

// Store is the object-store gateway: a thin wrapper over a real git
// repository, reached by shelling out to the git binary. Every object it
// produces or reads is a genuine git object, so an ordinary `git push`/`git
// fetch` against the repository transports everything without extension.
type Store struct {
	gitPath string
	gitDir  string
	workDir string

	// inheritEnv, when true, passes the invoking process's environment
	// through to every git invocation (GIT_AUTHOR_*, GIT_EDITOR, EDITOR,
	// GIT_DIR overrides, ...). git-series always wants this: it is
	// explicitly documented (spec.md §6) to honor the user's environment.
	inheritEnv bool
}

// Open locates the git binary and resolves GIT_DIR from dir (or the
// environment, or upward directory search — whatever `git rev-parse
// --git-dir` itself would do), returning a ready-to-use Store.
func Open(dir string) (*Store, error) {
	gitPath, err := safeexec.LookPath("git")
	if err != nil {
		return nil, fmt.Errorf("gitexec: locate git binary: %w", err)
	}

	s := &Store{gitPath: gitPath, workDir: dir, inheritEnv: true}

	out, err := s.run(nil, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAGitRepository, err)
	}
	s.gitDir = strings.TrimSpace(out)
	return s, nil
}

// GitDir returns the absolute path to the repository's GIT_DIR.
func (s *Store) GitDir() string { return s.gitDir }

func (s *Store) run(stdin []byte, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.gitPath, args...)
	cmd.Dir = s.workDir
	if s.inheritEnv {
		cmd.Env = os.Environ()
	}
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &CmdError{Args: args, Stderr: strings.TrimSpace(stderr.String())}
		}
		return "", fmt.Errorf("gitexec: exec git %s: %w", strings.Join(args, " "), err)
	}
	return stdout.String(), nil
}

// runWithEnv behaves like run but appends extra environment variables on top
// of the inherited environment, letting callers override identity or editor
// resolution for a single invocation without mutating the Store.
func (s *Store) runWithEnv(extraEnv []string, stdin []byte, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.gitPath, args...)
	cmd.Dir = s.workDir
	if s.inheritEnv {
		cmd.Env = os.Environ()
	}
	cmd.Env = append(cmd.Env, extraEnv...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &CmdError{Args: args, Stderr: strings.TrimSpace(stderr.String())}
		}
		return "", fmt.Errorf("gitexec: exec git %s: %w", strings.Join(args, " "), err)
	}
	return stdout.String(), nil
}

// Resolve resolves an arbitrary gitish (raw hash, ref, "ref^", "ref~2", ...)
// to the hash of the commit it names. Returns ErrRefNotFound if it does not
// resolve to anything.
func (s *Store) Resolve(rev string) (Hash, error) {
	out, err := s.run(nil, "rev-parse", "--verify", "--quiet", rev+"^{commit}")
	if err != nil {
		var cmdErr *CmdError
		if errors.As(err, &cmdErr) {
			return "", fmt.Errorf("%w: %q", ErrRefNotFound, rev)
		}
		return "", err
	}
	return Hash(strings.TrimSpace(out)), nil
}

// ResolveAny resolves rev to the hash of whatever object it names, without
// requiring it to be a commit. Used for blob/tree lookups (e.g. the cover
// entry, or a raw tree hash read out of a series tree).
func (s *Store) ResolveAny(rev string) (Hash, error) {
	out, err := s.run(nil, "rev-parse", "--verify", "--quiet", rev)
	if err != nil {
		var cmdErr *CmdError
		if errors.As(err, &cmdErr) {
			return "", fmt.Errorf("%w: %q", ErrRefNotFound, rev)
		}
		return "", err
	}
	return Hash(strings.TrimSpace(out)), nil
}

// WriteBlob hashes and stores data as a blob, returning its hash.
func (s *Store) WriteBlob(data []byte) (Hash, error) {
	out, err := s.run(data, "hash-object", "-w", "--stdin")
	if err != nil {
		return "", fmt.Errorf("gitexec: write blob: %w", err)
	}
	return Hash(strings.TrimSpace(out)), nil
}

// ReadBlob reads back the bytes of a blob object.
func (s *Store) ReadBlob(h Hash) ([]byte, error) {
	out, err := s.run(nil, "cat-file", "blob", string(h))
	if err != nil {
		var cmdErr *CmdError
		if errors.As(err, &cmdErr) {
			return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, h)
		}
		return nil, err
	}
	return []byte(out), nil
}
