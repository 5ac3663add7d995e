// Package repo holds the readykit repositories: one generic Collection per
// id-keyed entity list and the Checklist. Each repository keeps its current
// state in memory and persists the whole document through a store.Adapter
// after every change.
package repo

import (
	"slices"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/readykit/internal/store"
	"github.com/mesh-intelligence/readykit/pkg/types"
)

// entity constrains PT to a pointer to T that can have its id assigned.
type entity[T any] interface {
	*T
	types.Entity
	SetEntityID(id string)
}

// Patch is a partial update for a T.
type Patch[T any] interface {
	Apply(*T)
}

// Collection is an ordered list of entities stored under one key.
//
// Mutations update the in-memory list first and then persist it. A failed
// write is returned (and recorded on the adapter) but the in-memory change
// stands, so the caller keeps seeing what the user did.
type Collection[T types.Entity, PT entity[T]] struct {
	adapter *store.Adapter
	key     string
	seed    func() []T
	items   []T
}

func newCollection[T types.Entity, PT entity[T]](a *store.Adapter, key string, seed func() []T) *Collection[T, PT] {
	c := &Collection[T, PT]{adapter: a, key: key, seed: seed}
	c.Reload()
	return c
}

// Concrete collections.
type (
	Pantry      = Collection[types.PantryItem, *types.PantryItem]
	Contacts    = Collection[types.EmergencyContact, *types.EmergencyContact]
	Books       = Collection[types.Book, *types.Book]
	Frequencies = Collection[types.HamFrequency, *types.HamFrequency]
	Documents   = Collection[types.Document, *types.Document]
)

// NewPantry loads the pantry, seeding the default items on first use.
func NewPantry(a *store.Adapter) *Pantry {
	return newCollection[types.PantryItem](a, types.KeyPantryItems, defaultPantry)
}

// NewContacts loads the emergency contacts.
func NewContacts(a *store.Adapter) *Contacts {
	return newCollection[types.EmergencyContact](a, types.KeyContacts, defaultContacts)
}

// NewBooks loads the book list.
func NewBooks(a *store.Adapter) *Books {
	return newCollection[types.Book](a, types.KeyBooks, defaultBooks)
}

// NewFrequencies loads the radio frequencies.
func NewFrequencies(a *store.Adapter) *Frequencies {
	return newCollection[types.HamFrequency](a, types.KeyFrequencies, defaultFrequencies)
}

// NewDocuments loads the document locations. There are no default documents.
func NewDocuments(a *store.Adapter) *Documents {
	return newCollection[types.Document](a, types.KeyDocuments, func() []types.Document { return []types.Document{} })
}

// Key returns the store key the collection persists under.
func (c *Collection[T, PT]) Key() string { return c.key }

// Reload re-reads the collection from the store. A missing or unreadable
// document yields the seed list.
func (c *Collection[T, PT]) Reload() {
	c.items = store.Read(c.adapter, c.key, c.seed())
	if c.items == nil {
		c.items = []T{}
	}
}

// List returns a copy of the entities in insertion order.
func (c *Collection[T, PT]) List() []T {
	return slices.Clone(c.items)
}

// Len returns the number of entities.
func (c *Collection[T, PT]) Len() int { return len(c.items) }

// Get returns the entity with the given id.
func (c *Collection[T, PT]) Get(id string) (T, bool) {
	if i := c.index(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

func (c *Collection[T, PT]) index(id string) int {
	return slices.IndexFunc(c.items, func(v T) bool { return v.EntityID() == id })
}

// Add assigns v a fresh id, appends it, and returns the stored entity.
func (c *Collection[T, PT]) Add(v T) (T, error) {
	PT(&v).SetEntityID(generateID())
	c.items = append(c.items, v)
	return v, c.persist()
}

// Update applies p to the entity with the given id. An unknown id is a no-op
// and reports false.
func (c *Collection[T, PT]) Update(id string, p Patch[T]) (bool, error) {
	i := c.index(id)
	if i < 0 {
		return false, nil
	}
	p.Apply(&c.items[i])
	PT(&c.items[i]).SetEntityID(id)
	return true, c.persist()
}

// Delete removes the entity with the given id. Unknown ids are ignored.
func (c *Collection[T, PT]) Delete(id string) error {
	return c.DeleteMultiple([]string{id})
}

// DeleteMultiple removes every entity whose id is in ids.
func (c *Collection[T, PT]) DeleteMultiple(ids []string) error {
	n := len(c.items)
	c.items = slices.DeleteFunc(c.items, func(v T) bool {
		return slices.Contains(ids, v.EntityID())
	})
	if len(c.items) == n {
		return nil
	}
	return c.persist()
}

func (c *Collection[T, PT]) persist() error {
	return store.Write(c.adapter, c.key, c.items)
}

// generateID returns a UUID v7, falling back to v4 if v7 generation fails.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
