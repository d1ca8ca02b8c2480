package series

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitseries/git-series/internal/present"
)

func entryChange(changes []present.EntryChange, name string) (present.EntryChange, bool) {
	for _, c := range changes {
		if c.Name == name {
			return c, true
		}
	}
	return present.EntryChange{}, false
}

// TestStatusNothingToCommit exercises spec.md §8 property 5's base case:
// a freshly-started series with nothing staged reports no StagedFor
// entries, and the (empty committed) -> working diff as NotStaged.
func TestStatusNothingToCommit(t *testing.T) {
	repo := initTestRepo(t)
	commitEmptyFile(t, repo, "c0")
	require.NoError(t, repo.Start("feat"))

	st, err := repo.Status("feat")
	require.NoError(t, err)
	require.True(t, st.HasWorking)
	require.False(t, st.HasStaged)
	require.Empty(t, st.StagedFor)

	_, hasSeries := entryChange(st.NotStaged, "series")
	require.True(t, hasSeries)
}

// TestStatusStagedAndNotStaged exercises the two-sided diff shape: staged
// differs from committed (StagedFor), and working differs from staged
// (NotStaged).
func TestStatusStagedAndNotStaged(t *testing.T) {
	repo := initTestRepo(t)
	c0 := commitEmptyFile(t, repo, "c0")
	require.NoError(t, repo.Start("feat"))
	require.NoError(t, repo.Commit("feat", CommitOptions{All: true, Message: "v1"}))

	c1 := commitEmptyFile(t, repo, "c1")
	syncWorkingSeries(t, repo, "feat", c1)
	require.NoError(t, repo.Add("feat", []string{"series"}))

	c2 := commitEmptyFile(t, repo, "c2")
	syncWorkingSeries(t, repo, "feat", c2)

	st, err := repo.Status("feat")
	require.NoError(t, err)
	require.True(t, st.HasStaged)
	require.True(t, st.HasWorking)

	stagedSeries, ok := entryChange(st.StagedFor, "series")
	require.True(t, ok)
	require.Equal(t, present.Modified, stagedSeries.Kind)
	require.Equal(t, c0, *stagedSeries.Old)
	require.Equal(t, c1, *stagedSeries.New)

	notStagedSeries, ok := entryChange(st.NotStaged, "series")
	require.True(t, ok)
	require.Equal(t, present.Modified, notStagedSeries.Kind)
	require.Equal(t, c1, *notStagedSeries.Old)
	require.Equal(t, c2, *notStagedSeries.New)
}

// TestStatusUnknownSeries exercises the ErrUnknownSeries error kind.
func TestStatusUnknownSeries(t *testing.T) {
	repo := initTestRepo(t)
	commitEmptyFile(t, repo, "c0")

	_, err := repo.Status("nope")
	require.ErrorIs(t, err, ErrUnknownSeries)
}
