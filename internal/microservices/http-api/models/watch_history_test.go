package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendKeepsInsertionOrder(t *testing.T) {
	h := &WatchHistory{UserID: "u1"}

	for _, id := range []int64{5, 3, 9} {
		_, evicted, err := h.Append(id)
		require.NoError(t, err)
		assert.False(t, evicted)
	}

	assert.Equal(t, []int64{5, 3, 9}, h.MovieIDs())
	for i, e := range h.Entries {
		assert.Equal(t, i, e.Position)
	}
}

func TestAppendRejectsDuplicate(t *testing.T) {
	h := &WatchHistory{UserID: "u1"}

	_, _, err := h.Append(7)
	require.NoError(t, err)

	_, _, err = h.Append(7)
	assert.ErrorIs(t, err, ErrDuplicateMovie)
	assert.Equal(t, []int64{7}, h.MovieIDs(), "rejected append must not change the list")
}

func TestAppendEvictsOldestAtCapacity(t *testing.T) {
	h := &WatchHistory{UserID: "u1"}

	for id := int64(1); id <= WatchHistoryCapacity; id++ {
		_, evicted, err := h.Append(id)
		require.NoError(t, err)
		assert.False(t, evicted)
	}

	evictedID, evicted, err := h.Append(11)
	require.NoError(t, err)
	assert.True(t, evicted)
	assert.Equal(t, int64(1), evictedID)

	want := []int64{2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	assert.Equal(t, want, h.MovieIDs())
	assert.Len(t, h.Entries, WatchHistoryCapacity)
	for i, e := range h.Entries {
		assert.Equal(t, i, e.Position)
	}
}

func TestEvictedMovieCanReturn(t *testing.T) {
	h := &WatchHistory{UserID: "u1"}

	for id := int64(1); id <= WatchHistoryCapacity+1; id++ {
		h.Append(id)
	}
	assert.False(t, h.Contains(1))

	_, evicted, err := h.Append(1)
	require.NoError(t, err)
	assert.True(t, evicted)
	assert.Equal(t, int64(1), h.Entries[len(h.Entries)-1].MovieID)
}

func TestRemovePreservesOrder(t *testing.T) {
	h := &WatchHistory{UserID: "u1"}
	for _, id := range []int64{1, 2, 3, 4} {
		h.Append(id)
	}

	assert.True(t, h.Remove(2))
	assert.Equal(t, []int64{1, 3, 4}, h.MovieIDs())
	for i, e := range h.Entries {
		assert.Equal(t, i, e.Position)
	}
}

func TestRemoveMissingMovie(t *testing.T) {
	h := &WatchHistory{UserID: "u1"}
	h.Append(1)

	assert.False(t, h.Remove(99))
	assert.Equal(t, []int64{1}, h.MovieIDs())
}

func TestRemoveFreesCapacity(t *testing.T) {
	h := &WatchHistory{UserID: "u1"}
	for id := int64(1); id <= WatchHistoryCapacity; id++ {
		h.Append(id)
	}

	require.True(t, h.Remove(5))

	_, evicted, err := h.Append(20)
	require.NoError(t, err)
	assert.False(t, evicted, "append after remove must not evict")
	assert.Len(t, h.Entries, WatchHistoryCapacity)
}
