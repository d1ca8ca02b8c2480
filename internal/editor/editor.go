// Package editor launches the user's editor on a scratch buffer, the way
// `cover` seeds a buffer with the existing cover letter and `commit -v`
// seeds one with a diff below a cut-line.
package editor

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/gitseries/git-series/internal/gitexec"
)

// CutLine marks the point in a seeded buffer below which content is
// stripped before being handed back to the caller — used by `commit -v` to
// show a diff the user should not accidentally commit into the message.
const CutLine = "# ------------------------ >8 ------------------------"

// Edit writes seed to a scratch file, runs the resolved editor on it
// (inheriting the process's stdio so the editor can use the terminal), and
// returns the file's contents after the editor exits, with any content at
// or below CutLine and any trailing newlines stripped. changed reports
// whether that result differs from seed with its surrounding whitespace
// trimmed.
func Edit(store *gitexec.Store, seed []byte) (result []byte, changed bool, err error) {
	dir, err := os.MkdirTemp("", "git-series-edit-")
	if err != nil {
		return nil, false, fmt.Errorf("editor: create scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, uuid.NewString()+".txt")
	if err := os.WriteFile(path, seed, 0o600); err != nil {
		return nil, false, fmt.Errorf("editor: write scratch file: %w", err)
	}

	editorCmd, err := store.Var("GIT_EDITOR")
	if err != nil {
		return nil, false, fmt.Errorf("editor: resolve editor: %w", err)
	}

	cmdline := editorCmd + " " + shellQuote(path)
	cmd := exec.Command("sh", "-c", cmdline)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, false, fmt.Errorf("editor: %q exited with error: %w", editorCmd, err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("editor: read scratch file: %w", err)
	}

	stripped := stripBelowCutLine(edited)
	return stripped, !bytes.Equal(stripped, bytes.TrimSpace(seed)), nil
}

func stripBelowCutLine(buf []byte) []byte {
	idx := bytes.Index(buf, []byte(CutLine))
	if idx < 0 {
		return bytes.TrimRight(buf, "\n")
	}
	return bytes.TrimRight(buf[:idx], "\n")
}

func shellQuote(s string) string {
	return "'" + bytesReplaceAll(s, "'", `'"'"'`) + "'"
}

func bytesReplaceAll(s, old, new string) string {
	return string(bytes.ReplaceAll([]byte(s), []byte(old), []byte(new)))
}
