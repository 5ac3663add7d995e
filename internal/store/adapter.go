package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/readykit/pkg/types"
)

// Adapter is the typed JSON layer over a Store. Read and Write never panic
// and never leave the caller without a value: failures are recorded as a
// *types.StorageError, logged, and retrievable through LastError.
//
// There is no cache. A successful Write is visible to the next Read.
type Adapter struct {
	store types.Store
	log   *zap.Logger

	mu      sync.Mutex
	lastErr error
}

// NewAdapter wraps s. A nil logger discards log output.
func NewAdapter(s types.Store, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{store: s, log: log}
}

// Store returns the underlying store.
func (a *Adapter) Store() types.Store { return a.store }

// LastError returns the most recently recorded storage error, or nil.
func (a *Adapter) LastError() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr
}

// ClearError forgets the recorded error.
func (a *Adapter) ClearError() {
	a.record(nil)
}

func (a *Adapter) record(err error) {
	a.mu.Lock()
	a.lastErr = err
	a.mu.Unlock()
}

// Has reports whether key holds a value.
func (a *Adapter) Has(key string) bool {
	_, err := a.store.Get(context.Background(), key)
	return err == nil
}

// Read decodes the value under key into a T. A missing key or an
// undecodable value yields fallback unchanged.
func Read[T any](a *Adapter, key string, fallback T) T {
	raw, err := a.store.Get(context.Background(), key)
	if err != nil {
		a.record(&types.StorageError{Op: types.OpRead, Key: key, Err: err})
		if !errors.Is(err, types.ErrKeyNotFound) {
			a.log.Warn("storage read failed", zap.String("key", key), zap.Error(err))
		}
		return fallback
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		a.record(&types.StorageError{Op: types.OpRead, Key: key, Err: err})
		a.log.Warn("stored value is not valid JSON", zap.String("key", key), zap.Error(err))
		return fallback
	}
	a.log.Debug("storage read", zap.String("key", key), zap.Int("bytes", len(raw)))
	return v
}

// Write encodes v as JSON and stores it under key. On failure the previous
// value stays in place and the returned *types.StorageError is also recorded.
func Write[T any](a *Adapter, key string, v T) error {
	data, err := json.Marshal(v)
	if err == nil {
		err = a.store.Set(context.Background(), key, string(data))
	}
	if err != nil {
		serr := &types.StorageError{Op: types.OpWrite, Key: key, Err: err}
		a.record(serr)
		a.log.Warn("storage write failed", zap.String("key", key), zap.Error(err))
		return serr
	}
	a.record(nil)
	a.log.Debug("storage write", zap.String("key", key), zap.Int("bytes", len(data)))
	return nil
}

// WriteAll encodes every value and stores them with a single SetMany, so
// either all keys change or none do.
func (a *Adapter) WriteAll(values map[string]any) error {
	entries := make(map[string]string, len(values))
	for k, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			serr := &types.StorageError{Op: types.OpWrite, Key: k, Err: err}
			a.record(serr)
			return serr
		}
		entries[k] = string(data)
	}
	if err := a.store.SetMany(context.Background(), entries); err != nil {
		serr := &types.StorageError{Op: types.OpWrite, Err: err}
		a.record(serr)
		a.log.Warn("storage batch write failed", zap.Int("keys", len(entries)), zap.Error(err))
		return serr
	}
	a.record(nil)
	a.log.Debug("storage batch write", zap.Int("keys", len(entries)))
	return nil
}

// Delete removes key.
func (a *Adapter) Delete(key string) error {
	if err := a.store.Delete(context.Background(), key); err != nil {
		serr := &types.StorageError{Op: types.OpWrite, Key: key, Err: err}
		a.record(serr)
		return serr
	}
	return nil
}
