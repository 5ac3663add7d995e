package types

import "context"

// Store is the host key-value store. Keys and values are strings; values are
// JSON documents written by the Adapter. Every backend applies a write to a
// single key atomically.
type Store interface {
	// Get returns the value stored under key.
	// Returns ErrKeyNotFound when the key has never been written.
	Get(ctx context.Context, key string) (string, error)

	// Set overwrites the value stored under key. Returns ErrQuotaExceeded
	// when the write would push the store past its quota; the previous
	// value is kept.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key succeeds.
	Delete(ctx context.Context, key string) error

	// Keys returns every stored key in lexical order.
	Keys(ctx context.Context) ([]string, error)

	// SetMany writes all entries or none of them.
	SetMany(ctx context.Context, entries map[string]string) error

	// Size returns the bytes in use, counted as len(key)+len(value) per entry.
	Size(ctx context.Context) (int64, error)

	// Close releases backend resources. Idempotent.
	Close() error
}
