package repo

import (
	"slices"

	"github.com/mesh-intelligence/readykit/internal/store"
	"github.com/mesh-intelligence/readykit/internal/views"
	"github.com/mesh-intelligence/readykit/pkg/types"
)

// Stats summarizes completion of a set of checklist items.
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Percent   int `json:"percent"`
}

func newStats(total, completed int) Stats {
	return Stats{Total: total, Completed: completed, Percent: views.Progress(completed, total)}
}

// Checklist is the categorized preparedness checklist stored under
// types.KeyChecklistItems.
type Checklist struct {
	adapter    *store.Adapter
	categories []types.ChecklistCategory
}

// NewChecklist loads the checklist, falling back to the built-in categories.
func NewChecklist(a *store.Adapter) *Checklist {
	c := &Checklist{adapter: a}
	c.Reload()
	return c
}

// Reload re-reads the checklist from the store.
func (c *Checklist) Reload() {
	c.categories = store.Read(c.adapter, types.KeyChecklistItems, defaultChecklist())
	if c.categories == nil {
		c.categories = []types.ChecklistCategory{}
	}
}

// Categories returns a deep copy of every category in order.
func (c *Checklist) Categories() []types.ChecklistCategory {
	out := make([]types.ChecklistCategory, len(c.categories))
	for i, cat := range c.categories {
		cat.Items = slices.Clone(cat.Items)
		out[i] = cat
	}
	return out
}

// Category returns a copy of the category with the given id.
func (c *Checklist) Category(id int) (types.ChecklistCategory, bool) {
	i := c.categoryIndex(id)
	if i < 0 {
		return types.ChecklistCategory{}, false
	}
	cat := c.categories[i]
	cat.Items = slices.Clone(cat.Items)
	return cat, true
}

func (c *Checklist) categoryIndex(id int) int {
	return slices.IndexFunc(c.categories, func(cat types.ChecklistCategory) bool { return cat.ID == id })
}

// item returns a pointer to the addressed item, or nil.
func (c *Checklist) item(catID int, itemID string) *types.ChecklistItem {
	ci := c.categoryIndex(catID)
	if ci < 0 {
		return nil
	}
	ii := c.categories[ci].Item(itemID)
	if ii < 0 {
		return nil
	}
	return &c.categories[ci].Items[ii]
}

// SetCompleted marks an item complete or incomplete. It reports false when
// the category or item does not exist.
func (c *Checklist) SetCompleted(catID int, itemID string, done bool) (bool, error) {
	it := c.item(catID, itemID)
	if it == nil {
		return false, nil
	}
	it.Completed = done
	return true, c.persist()
}

// Toggle flips an item's completion.
func (c *Checklist) Toggle(catID int, itemID string) (bool, error) {
	it := c.item(catID, itemID)
	if it == nil {
		return false, nil
	}
	it.Completed = !it.Completed
	return true, c.persist()
}

// SetQuantity records how many of an item the household has.
func (c *Checklist) SetQuantity(catID int, itemID string, qty int) (bool, error) {
	it := c.item(catID, itemID)
	if it == nil {
		return false, nil
	}
	it.Quantity = qty
	return true, c.persist()
}

// Reset marks every item incomplete. Quantities are kept.
func (c *Checklist) Reset() error {
	for ci := range c.categories {
		for ii := range c.categories[ci].Items {
			c.categories[ci].Items[ii].Completed = false
		}
	}
	return c.persist()
}

// Stats returns completion across every category.
func (c *Checklist) Stats() Stats {
	total, completed := 0, 0
	for _, cat := range c.categories {
		total += len(cat.Items)
		completed += cat.Completed()
	}
	return newStats(total, completed)
}

// CategoryStats returns completion for one category.
func (c *Checklist) CategoryStats(catID int) (Stats, bool) {
	i := c.categoryIndex(catID)
	if i < 0 {
		return Stats{}, false
	}
	cat := c.categories[i]
	return newStats(len(cat.Items), cat.Completed()), true
}

func (c *Checklist) persist() error {
	return store.Write(c.adapter, types.KeyChecklistItems, c.categories)
}
