package gitexec

// Hash is an opaque, fixed-length object id rendered as lowercase hex. The
// gateway is oblivious to whether the underlying repository uses SHA-1 (40
// hex chars) or SHA-256 (64 hex chars) object ids.
type Hash string

// ZeroHash is never a real object id; it stands in for "ref must not already
// exist" when passed as the expected-old value to UpdateRef.
const ZeroHash Hash = ""

// TreeMode is one of git's canonical tree entry modes.
type TreeMode string

const (
	ModeBlob      TreeMode = "100644"
	ModeExecBlob  TreeMode = "100755"
	ModeTree      TreeMode = "040000"
	ModeGitlink   TreeMode = "160000"
	ModeSymlink   TreeMode = "120000"
)

// TreeEntry is one line of a git tree object.
type TreeEntry struct {
	Mode TreeMode
	Name string
	Hash Hash
}

// Identity is a git author/committer identity line: "Name <email>" plus a
// Unix timestamp and zone offset, exactly as git itself stores it.
type Identity struct {
	Name  string
	Email string
	When  int64  // unix seconds
	Zone  string // e.g. "+0000"
}

// Commit is a parsed git commit object.
type Commit struct {
	Hash      Hash
	Tree      Hash
	Parents   []Hash
	Author    Identity
	Committer Identity
	Message   string
}
