package cache_test

import (
	"testing"

	"github.com/fintrackhq/finance_tracker_app/internal/core/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID    string
	Value string
}

func (r record) Key() string { return r.ID }

func TestCollection_ReadAfterWrite(t *testing.T) {
	c := cache.NewCollection[record]()
	c.Append(record{ID: "r1", Value: "first"})

	got, ok := c.Get("r1")
	require.True(t, ok)
	assert.Equal(t, "first", got.Value)
	assert.Equal(t, 1, c.Len())
}

func TestCollection_GetMatchesTrimmedIDs(t *testing.T) {
	c := cache.NewCollection[record]()
	c.Append(record{ID: "42", Value: "answer"})

	got, ok := c.Get(" 42 ")
	require.True(t, ok)
	assert.Equal(t, "answer", got.Value)

	_, ok = c.Get("43")
	assert.False(t, ok)
}

func TestCollection_UpsertReplacesInPlace(t *testing.T) {
	c := cache.NewCollection[record]()
	c.Replace([]record{{ID: "a", Value: "one"}, {ID: "b", Value: "two"}})

	c.Upsert(record{ID: "a", Value: "one-edited"})
	assert.Equal(t, 2, c.Len())

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "one-edited", got.Value)

	// Unknown key appends.
	c.Upsert(record{ID: "c", Value: "three"})
	assert.Equal(t, 3, c.Len())
}

func TestCollection_Update(t *testing.T) {
	c := cache.NewCollection[record]()
	c.Append(record{ID: "a", Value: "one"})

	ok := c.Update("a", func(r record) record {
		r.Value = "merged"
		return r
	})
	require.True(t, ok)

	got, _ := c.Get("a")
	assert.Equal(t, "merged", got.Value)

	assert.False(t, c.Update("missing", func(r record) record { return r }))
}

func TestCollection_Remove(t *testing.T) {
	c := cache.NewCollection[record]()
	c.Replace([]record{{ID: "a"}, {ID: "b"}})

	require.True(t, c.Remove("a"))
	assert.False(t, c.Contains("a"))
	assert.Equal(t, 1, c.Len())

	assert.False(t, c.Remove("a"))
}

func TestCollection_RemoveWhere(t *testing.T) {
	c := cache.NewCollection[record]()
	c.Replace([]record{
		{ID: "a", Value: "keep"},
		{ID: "b", Value: "drop"},
		{ID: "c", Value: "drop"},
	})

	removed := c.RemoveWhere(func(r record) bool { return r.Value == "drop" })
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, c.Len())
	assert.True(t, c.Contains("a"))
}

func TestCollection_SnapshotIsIsolated(t *testing.T) {
	c := cache.NewCollection[record]()
	c.Replace([]record{{ID: "a", Value: "one"}})

	snap := c.Snapshot()
	require.Len(t, snap, 1)
	snap[0].Value = "mutated"

	got, _ := c.Get("a")
	assert.Equal(t, "one", got.Value)
}

func TestCollection_Filter(t *testing.T) {
	c := cache.NewCollection[record]()
	c.Replace([]record{
		{ID: "a", Value: "x"},
		{ID: "b", Value: "y"},
		{ID: "c", Value: "x"},
	})

	xs := c.Filter(func(r record) bool { return r.Value == "x" })
	assert.Len(t, xs, 2)
}

func TestStore_LoadedAndDirtyFlags(t *testing.T) {
	store := cache.NewStore()
	assert.False(t, store.Loaded())
	assert.False(t, store.Dirty())

	store.MarkLoaded()
	store.MarkDirty()
	assert.True(t, store.Loaded())
	assert.True(t, store.Dirty())

	store.ClearDirty()
	assert.False(t, store.Dirty())
}
