package series

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAddUnaddRoundTrip exercises spec.md §8 property 6 with no committed
// head: adding a change to staged and then unadding the same change takes
// that change back out of staged (here: base is absent again), while the
// staged ref itself is kept rather than deleted.
func TestAddUnaddRoundTrip(t *testing.T) {
	repo := initTestRepo(t)
	c0 := commitEmptyFile(t, repo, "c0")
	require.NoError(t, repo.Start("feat"))
	require.NoError(t, repo.SetBase("feat", string(c0)))

	require.NoError(t, repo.Add("feat", []string{"base"}))

	staged, err := repo.readStaged("feat")
	require.NoError(t, err)
	require.True(t, staged.exists)
	require.NotNil(t, staged.tree.Base)
	require.Equal(t, c0, *staged.tree.Base)

	require.NoError(t, repo.Unadd("feat", []string{"base"}))

	// No committed head exists yet, so per DESIGN.md's resolution of the
	// "no committed head" open question, the staged ref is kept rather
	// than deleted, with base removed (since committed has none).
	staged, err = repo.readStaged("feat")
	require.NoError(t, err)
	require.True(t, staged.exists)
	require.Nil(t, staged.tree.Base)
}

// TestAddUnaddCollapsesToCommittedDeletesStaged exercises the literal
// spec.md rule: "if the resulting staged tree equals the committed
// tree, delete the staged ref rather than persisting a no-op."
func TestAddUnaddCollapsesToCommittedDeletesStaged(t *testing.T) {
	repo := initTestRepo(t)
	_ = commitEmptyFile(t, repo, "c0")
	require.NoError(t, repo.Start("feat"))
	require.NoError(t, repo.Commit("feat", CommitOptions{All: true, Message: "v1"}))

	c1 := commitEmptyFile(t, repo, "c1")
	syncWorkingSeries(t, repo, "feat", c1)
	require.NoError(t, repo.Add("feat", []string{"series"}))

	staged, err := repo.readStaged("feat")
	require.NoError(t, err)
	require.True(t, staged.exists)
	require.Equal(t, c1, staged.tree.Series)

	require.NoError(t, repo.Unadd("feat", []string{"series"}))

	staged, err = repo.readStaged("feat")
	require.NoError(t, err)
	require.False(t, staged.exists)
}

// TestAddRejectsInvalidChange and TestAddRejectsEmptyChanges exercise the
// InvalidChange/NothingToAdd error kinds spec.md §4.5 names for `add`.
func TestAddRejectsInvalidChange(t *testing.T) {
	repo := initTestRepo(t)
	commitEmptyFile(t, repo, "c0")
	require.NoError(t, repo.Start("feat"))

	err := repo.Add("feat", []string{"bogus"})
	require.ErrorIs(t, err, ErrInvalidChange)
}

func TestAddRejectsEmptyChanges(t *testing.T) {
	repo := initTestRepo(t)
	commitEmptyFile(t, repo, "c0")
	require.NoError(t, repo.Start("feat"))

	err := repo.Add("feat", nil)
	require.ErrorIs(t, err, ErrNothingToAdd)
}
