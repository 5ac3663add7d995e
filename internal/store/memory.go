package store

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/mesh-intelligence/readykit/pkg/types"
)

// Memory is a map-backed Store. Operations fail with ErrStoreClosed after
// Close.
type Memory struct {
	mu     sync.RWMutex
	quota  int64
	data   map[string]string
	closed bool
}

// NewMemory returns an empty in-memory store with the given quota
// (0 = unlimited).
func NewMemory(quota int64) *Memory {
	return &Memory{quota: quota, data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return "", types.ErrStoreClosed
	}
	v, ok := m.data[key]
	if !ok {
		return "", types.ErrKeyNotFound
	}
	return v, nil
}

func (m *Memory) Set(ctx context.Context, key, value string) error {
	return m.SetMany(ctx, map[string]string{key: value})
}

func (m *Memory) SetMany(_ context.Context, entries map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return types.ErrStoreClosed
	}
	for k := range entries {
		if err := checkKey(k); err != nil {
			return err
		}
	}
	if err := checkQuota(m.quota, m.sizeLocked(), m.data, entries); err != nil {
		return err
	}
	maps.Copy(m.data, entries)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return types.ErrStoreClosed
	}
	delete(m.data, key)
	return nil
}

func (m *Memory) Keys(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, types.ErrStoreClosed
	}
	return slices.Sorted(maps.Keys(m.data)), nil
}

func (m *Memory) Size(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return 0, types.ErrStoreClosed
	}
	return m.sizeLocked(), nil
}

func (m *Memory) sizeLocked() int64 {
	var n int64
	for k, v := range m.data {
		n += entrySize(k, v)
	}
	return n
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
