package history

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// TestAppendAndRecent tests sequence assignment and newest-first
// retrieval
func TestAppendAndRecent(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		err := store.Append(&Entry{
			Generation: "jewel",
			Prefix:     "osd reweight",
			Command:    fmt.Sprintf("id=%d weight=0.5", i),
		})
		require.NoError(t, err)
	}

	entries, err := store.Recent(3)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, uint64(5), entries[0].Seq, "newest first")
	assert.Equal(t, uint64(4), entries[1].Seq)
	assert.Equal(t, uint64(3), entries[2].Seq)
	assert.Equal(t, "id=4 weight=0.5", entries[0].Command)
	assert.False(t, entries[0].Time.IsZero(), "append stamps the time")
}

// TestRecentFewerThanAsked tests that Recent returns what exists
func TestRecentFewerThanAsked(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Append(&Entry{Generation: "jewel", Prefix: "pg stat"}))

	entries, err := store.Recent(100)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

// TestRecentEmpty tests an empty store
func TestRecentEmpty(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// TestFailureEntry tests that failed commands keep their code and
// error text
func TestFailureEntry(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Append(&Entry{
		Generation: "jewel",
		Prefix:     "osd reweight",
		Command:    "id=99 weight=0.5",
		Code:       -2,
		Error:      `"osd reweight" failed: no such file or directory (code -2)`,
	}))

	entries, err := store.Recent(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, -2, entries[0].Code)
	assert.Contains(t, entries[0].Error, "no such file or directory")
}

// TestPersistsAcrossReopen tests that history survives close/open
func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Append(&Entry{Generation: "hammer", Prefix: "mon stat"}))
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	entries, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "mon stat", entries[0].Prefix)
	assert.Equal(t, uint64(1), entries[0].Seq)
}
