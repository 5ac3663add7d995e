package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/readykit/internal/store"
	"github.com/mesh-intelligence/readykit/pkg/types"
)

func TestChecklistDefaults(t *testing.T) {
	c := NewChecklist(newAdapter(t))
	cats := c.Categories()
	require.Len(t, cats, 10)

	wantCounts := []int{8, 13, 34, 29, 15, 26, 11, 15, 5, 10}
	for i, cat := range cats {
		assert.Equal(t, i+1, cat.ID)
		assert.Len(t, cat.Items, wantCounts[i], cat.Name)
		for _, it := range cat.Items {
			assert.False(t, it.Completed)
			assert.Equal(t, 1, it.Quantity)
		}
	}
	assert.Equal(t, "Water & Hydration", cats[0].Name)
	assert.Equal(t, types.ChecklistItem{ID: "water-1", Text: "Water", Quantity: 1}, cats[0].Items[0])
	assert.Equal(t, "prep-10", cats[9].Items[9].ID)

	assert.Equal(t, Stats{Total: 166, Completed: 0, Percent: 0}, c.Stats())
}

func TestChecklistMutations(t *testing.T) {
	a := newAdapter(t)
	c := NewChecklist(a)

	ok, err := c.SetCompleted(1, "water-2", true)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Toggle(3, "medical-5")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.SetQuantity(1, "water-1", 6)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.SetCompleted(1, "medical-5", true)
	require.NoError(t, err)
	assert.False(t, ok, "item belongs to another category")

	ok, err = c.Toggle(99, "water-1")
	require.NoError(t, err)
	assert.False(t, ok)

	water, ok := c.CategoryStats(1)
	require.True(t, ok)
	assert.Equal(t, Stats{Total: 8, Completed: 1, Percent: 13}, water)

	// Changes survive a reload from the store.
	again := NewChecklist(a)
	cat, ok := again.Category(1)
	require.True(t, ok)
	assert.True(t, cat.Items[1].Completed)
	assert.Equal(t, 6, cat.Items[0].Quantity)

	require.NoError(t, again.Reset())
	assert.Equal(t, 0, again.Stats().Completed)
	cat, _ = again.Category(1)
	assert.Equal(t, 6, cat.Items[0].Quantity)
}

func TestChecklistStatsAcrossCategories(t *testing.T) {
	a := newAdapter(t)
	require.NoError(t, store.Write(a, types.KeyChecklistItems, []types.ChecklistCategory{
		{ID: 1, Name: "A", Items: []types.ChecklistItem{
			{ID: "a-1", Completed: true}, {ID: "a-2"}, {ID: "a-3"},
		}},
		{ID: 2, Name: "B", Items: []types.ChecklistItem{
			{ID: "b-1", Completed: true}, {ID: "b-2", Completed: true}, {ID: "b-3"}, {ID: "b-4"}, {ID: "b-5"},
		}},
	}))

	c := NewChecklist(a)
	assert.Equal(t, Stats{Total: 8, Completed: 3, Percent: 38}, c.Stats())
}

func TestChecklistCategoriesReturnsCopy(t *testing.T) {
	c := NewChecklist(newAdapter(t))
	cats := c.Categories()
	cats[0].Items[0].Completed = true
	assert.Equal(t, 0, c.Stats().Completed)
}
