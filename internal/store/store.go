// Package store implements the readykit key-value backends and the typed
// Adapter that repositories persist through.
//
// Every backend stores one JSON document per key. The file backend is the
// default and keeps each key in its own <key>.json file; sqlite and redis
// back the same interface for users who prefer them.
package store

import (
	"context"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/readykit/pkg/types"
)

// validKey restricts keys to names that are safe as file names and redis keys.
var validKey = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

func checkKey(key string) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("invalid key %q", key)
	}
	return nil
}

// Open creates the backend selected by cfg.
func Open(ctx context.Context, cfg types.Config, log *zap.Logger) (types.Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	log.Debug("opening store",
		zap.String("backend", cfg.Backend),
		zap.String("data_dir", cfg.DataDir),
		zap.Int64("quota_bytes", cfg.QuotaBytes))

	switch cfg.Backend {
	case types.BackendFile:
		return OpenFile(cfg.DataDir, cfg.QuotaBytes)
	case types.BackendSQLite:
		return OpenSQLite(ctx, cfg.DataDir, cfg.QuotaBytes)
	case types.BackendRedis:
		return OpenRedis(ctx, cfg.Redis, cfg.QuotaBytes)
	case types.BackendMemory:
		return NewMemory(cfg.QuotaBytes), nil
	default:
		return nil, types.ErrBackendUnknown
	}
}

// entrySize is the quota cost of one key/value pair.
func entrySize(key, value string) int64 {
	return int64(len(key) + len(value))
}

// checkQuota reports ErrQuotaExceeded if replacing the entries in next would
// push a store currently using used bytes past quota. old holds the current
// values of any keys in next that already exist. A quota of 0 is unlimited.
func checkQuota(quota, used int64, old, next map[string]string) error {
	if quota <= 0 {
		return nil
	}
	projected := used
	for k, v := range next {
		if prev, ok := old[k]; ok {
			projected -= entrySize(k, prev)
		}
		projected += entrySize(k, v)
	}
	if projected > quota {
		return fmt.Errorf("%w: %d of %d bytes", types.ErrQuotaExceeded, projected, quota)
	}
	return nil
}
