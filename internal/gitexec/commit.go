package gitexec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// WriteCommit assembles and stores a commit object with the given tree,
// parents (in order — the first is git's "first parent"), and author /
// committer identities, returning its hash.
func (s *Store) WriteCommit(tree Hash, parents []Hash, author, committer Identity, message string) (Hash, error) {
	args := []string{"commit-tree", string(tree)}
	for _, p := range parents {
		args = append(args, "-p", string(p))
	}

	env := identityEnv(author, committer)
	out, err := s.runWithEnv(env, []byte(message), args...)
	if err != nil {
		return "", fmt.Errorf("gitexec: write commit: %w", err)
	}
	return Hash(strings.TrimSpace(out)), nil
}

// ReadCommit reads and parses a commit object.
func (s *Store) ReadCommit(h Hash) (*Commit, error) {
	out, err := s.run(nil, "cat-file", "commit", string(h))
	if err != nil {
		var cmdErr *CmdError
		if errors.As(err, &cmdErr) {
			return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, h)
		}
		return nil, err
	}
	return parseCommit(h, out)
}

func parseCommit(h Hash, raw string) (*Commit, error) {
	idx := strings.Index(raw, "\n\n")
	if idx < 0 {
		return nil, fmt.Errorf("gitexec: malformed commit %s: no header/message separator", h)
	}
	header, message := raw[:idx], raw[idx+2:]

	c := &Commit{Hash: h, Message: message}
	for _, line := range strings.Split(header, "\n") {
		if line == "" {
			continue
		}
		key, val, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		switch key {
		case "tree":
			c.Tree = Hash(val)
		case "parent":
			c.Parents = append(c.Parents, Hash(val))
		case "author":
			c.Author = parseIdentityLine(val)
		case "committer":
			c.Committer = parseIdentityLine(val)
		}
	}
	if c.Tree == "" {
		return nil, fmt.Errorf("gitexec: malformed commit %s: missing tree", h)
	}
	return c, nil
}

// parseIdentityLine parses "Name <email> 1234567890 +0000".
func parseIdentityLine(s string) Identity {
	open := strings.LastIndex(s, "<")
	close := strings.LastIndex(s, ">")
	if open < 0 || close < 0 || close < open {
		return Identity{}
	}
	name := strings.TrimSpace(s[:open])
	email := s[open+1 : close]
	rest := strings.TrimSpace(s[close+1:])
	fields := strings.Fields(rest)

	id := Identity{Name: name, Email: email}
	if len(fields) >= 1 {
		if ts, err := strconv.ParseInt(fields[0], 10, 64); err == nil {
			id.When = ts
		}
	}
	if len(fields) >= 2 {
		id.Zone = fields[1]
	}
	return id
}

func identityEnv(author, committer Identity) []string {
	var env []string
	if author.Name != "" {
		env = append(env,
			"GIT_AUTHOR_NAME="+author.Name,
			"GIT_AUTHOR_EMAIL="+author.Email,
			"GIT_AUTHOR_DATE="+identityDate(author),
		)
	}
	if committer.Name != "" {
		env = append(env,
			"GIT_COMMITTER_NAME="+committer.Name,
			"GIT_COMMITTER_EMAIL="+committer.Email,
			"GIT_COMMITTER_DATE="+identityDate(committer),
		)
	}
	return env
}

func identityDate(id Identity) string {
	if id.When == 0 {
		return ""
	}
	zone := id.Zone
	if zone == "" {
		zone = "+0000"
	}
	return fmt.Sprintf("%d %s", id.When, zone)
}
