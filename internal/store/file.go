package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/mesh-intelligence/readykit/pkg/types"
)

const fileExt = ".json"

// File stores each key as <DataDir>/<key>.json. Writes use the temp-file,
// fsync, rename pattern so a reader never sees a half-written document.
type File struct {
	mu     sync.RWMutex
	dir    string
	quota  int64
	closed bool
}

// OpenFile creates dir if needed and returns a File store rooted there.
func OpenFile(dir string, quota int64) (*File, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &File{dir: dir, quota: quota}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+fileExt)
}

func (f *File) Get(_ context.Context, key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.closed {
		return "", types.ErrStoreClosed
	}
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", types.ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", key, err)
	}
	return string(data), nil
}

func (f *File) Set(ctx context.Context, key, value string) error {
	return f.SetMany(ctx, map[string]string{key: value})
}

// SetMany stages every value in a temp file before renaming any of them. If
// a rename fails, the keys already replaced are restored to their previous
// contents, so a failure leaves all keys as they were.
func (f *File) SetMany(_ context.Context, entries map[string]string) error {
	for k := range entries {
		if err := checkKey(k); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return types.ErrStoreClosed
	}

	if f.quota > 0 {
		current, err := f.readAllLocked()
		if err != nil {
			return err
		}
		var used int64
		for k, v := range current {
			used += entrySize(k, v)
		}
		if err := checkQuota(f.quota, used, current, entries); err != nil {
			return err
		}
	}

	prev, err := f.snapshotLocked(entries)
	if err != nil {
		return err
	}

	staged := make(map[string]string, len(entries))
	cleanup := func() {
		for _, tmp := range staged {
			os.Remove(tmp)
		}
	}
	for _, k := range slices.Sorted(maps.Keys(entries)) {
		tmp, err := stageFile(f.dir, []byte(entries[k]))
		if err != nil {
			cleanup()
			return fmt.Errorf("staging %s: %w", k, err)
		}
		staged[k] = tmp
	}
	var renamed []string
	for _, k := range slices.Sorted(maps.Keys(staged)) {
		if err := rename(staged[k], f.path(k)); err != nil {
			cleanup()
			err = fmt.Errorf("renaming temp file for %s: %w", k, err)
			return errors.Join(err, f.restoreLocked(renamed, prev))
		}
		delete(staged, k)
		renamed = append(renamed, k)
	}
	return nil
}

// rename is os.Rename; tests replace it to simulate a failing disk.
var rename = os.Rename

// snapshotLocked reads the current value of every key in entries. A nil
// value marks a key that does not exist yet.
func (f *File) snapshotLocked(entries map[string]string) (map[string]*string, error) {
	prev := make(map[string]*string, len(entries))
	for k := range entries {
		data, err := os.ReadFile(f.path(k))
		if errors.Is(err, fs.ErrNotExist) {
			prev[k] = nil
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", k, err)
		}
		v := string(data)
		prev[k] = &v
	}
	return prev, nil
}

// restoreLocked puts the keys already replaced by a failed SetMany back to
// their previous state.
func (f *File) restoreLocked(keys []string, prev map[string]*string) error {
	var errs []error
	for _, k := range slices.Backward(keys) {
		old := prev[k]
		if old == nil {
			if err := os.Remove(f.path(k)); err != nil && !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, fmt.Errorf("restoring %s: %w", k, err))
			}
			continue
		}
		tmp, err := stageFile(f.dir, []byte(*old))
		if err == nil {
			err = rename(tmp, f.path(k))
			if err != nil {
				os.Remove(tmp)
			}
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("restoring %s: %w", k, err))
		}
	}
	return errors.Join(errs...)
}

// stageFile writes data to a synced temp file in dir and returns its name.
func stageFile(dir string, data []byte) (string, error) {
	tmp, err := os.CreateTemp(dir, ".kv-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(name)
		return "", fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	return name, nil
}

func (f *File) Delete(_ context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return types.ErrStoreClosed
	}
	err := os.Remove(f.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", key, err)
	}
	return nil
}

func (f *File) Keys(_ context.Context) ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.closed {
		return nil, types.ErrStoreClosed
	}
	return f.keysLocked()
}

func (f *File) keysLocked() ([]string, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("listing data dir: %w", err)
	}
	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, fileExt) {
			continue
		}
		key := strings.TrimSuffix(name, fileExt)
		if checkKey(key) != nil {
			continue
		}
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys, nil
}

func (f *File) readAllLocked() (map[string]string, error) {
	keys, err := f.keysLocked()
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		data, err := os.ReadFile(f.path(k))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", k, err)
		}
		out[k] = string(data)
	}
	return out, nil
}

func (f *File) Size(_ context.Context) (int64, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.closed {
		return 0, types.ErrStoreClosed
	}
	keys, err := f.keysLocked()
	if err != nil {
		return 0, err
	}
	var n int64
	for _, k := range keys {
		info, err := os.Stat(f.path(k))
		if err != nil {
			return 0, fmt.Errorf("stat %s: %w", k, err)
		}
		n += int64(len(k)) + info.Size()
	}
	return n, nil
}

func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}
