package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	commits := []Commit{
		{Repo: "b", Hash: "1", When: base},
		{Repo: "a", Hash: "2", When: base.Add(time.Hour)},
		{Repo: "a", Hash: "3", When: base},
		{Repo: "a", Hash: "0", When: base},
	}

	SortNewestFirst(commits)

	got := make([]string, 0, len(commits))
	for _, c := range commits {
		got = append(got, c.Repo+c.Hash)
	}
	assert.Equal(t, []string{"a2", "a0", "a3", "b1"}, got)
}

func TestFilterByEmail(t *testing.T) {
	commits := []Commit{
		{Hash: "1", Email: "Alice@Example.com"},
		{Hash: "2", Email: "bob@example.com"},
		{Hash: "3", Email: "alice@example.com "},
	}

	got := FilterByEmail(commits, []string{" alice@example.com", ""})
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].Hash)
	assert.Equal(t, "3", got[1].Hash)

	assert.Empty(t, FilterByEmail(commits, nil))
	assert.Empty(t, FilterByEmail(commits, []string{"  "}))
}

func TestToActivities(t *testing.T) {
	when := time.Date(2015, 1, 5, 0, 0, 0, 0, time.UTC)
	acts := ToActivities([]Commit{{Hash: "1", When: when}})

	require.Len(t, acts, 1)
	assert.True(t, acts[0].Date().Equal(when))
	assert.Empty(t, ToActivities(nil))
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	assert.True(t, WindowStart(now, 0).IsZero())
	assert.True(t, WindowStart(now, -3).IsZero())
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), WindowStart(now, 1))
	assert.Equal(t, time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC), WindowStart(now, 6))
	assert.Equal(t, time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC), WindowStart(now, 12))
}

func TestSince_UsesTimeNow(t *testing.T) {
	old := timeNow
	timeNow = func() time.Time { return time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { timeNow = old })

	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), Since(2))
}
