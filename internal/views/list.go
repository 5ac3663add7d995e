package views

import (
	"cmp"
	"slices"
	"strings"
)

// FilterBySearch keeps the items where any field contains term, ignoring
// case. A blank term returns items unchanged.
func FilterBySearch[T any](items []T, term string, fields ...func(T) string) []T {
	if strings.TrimSpace(term) == "" {
		return items
	}
	needle := strings.ToLower(term)
	var out []T
	for _, it := range items {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(it)), needle) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// Group is one bucket produced by GroupBy.
type Group[T any] struct {
	Key   string
	Items []T
}

// GroupBy buckets items by key. Groups appear in the order their key was
// first seen and items keep their relative order.
func GroupBy[T any](items []T, key func(T) string) []Group[T] {
	var groups []Group[T]
	index := make(map[string]int)
	for _, it := range items {
		k := key(it)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}

// Direction is a sort order.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// ParseDirection maps "asc" and "desc" to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(s) {
	case "", "asc":
		return Asc, true
	case "desc":
		return Desc, true
	}
	return Asc, false
}

// SortBy returns a sorted copy of items. The sort is stable and items is not
// modified.
func SortBy[T any, K cmp.Ordered](items []T, key func(T) K, dir Direction) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		c := cmp.Compare(key(a), key(b))
		if dir == Desc {
			return -c
		}
		return c
	})
	return out
}
