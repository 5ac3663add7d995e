package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-redis/redis/v8"

	"github.com/mesh-intelligence/readykit/pkg/types"
)

const defaultRedisPrefix = "readykit:"

// Redis stores each key as a redis string under a common prefix.
type Redis struct {
	client *redis.Client
	prefix string
	quota  int64
}

// OpenRedis connects to cfg.Addr and verifies the connection with PING.
func OpenRedis(ctx context.Context, cfg types.RedisConfig, quota int64) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedis(client, cfg.Prefix, quota), nil
}

// NewRedis wraps an existing client. An empty prefix uses "readykit:".
func NewRedis(client *redis.Client, prefix string, quota int64) *Redis {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &Redis{client: client, prefix: prefix, quota: quota}
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", types.ErrKeyNotFound
	}
	if err != nil {
		return "", r.wrap("get "+key, err)
	}
	return v, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	return r.SetMany(ctx, map[string]string{key: value})
}

// SetMany writes every entry inside one MULTI/EXEC block.
func (r *Redis) SetMany(ctx context.Context, entries map[string]string) error {
	for k := range entries {
		if err := checkKey(k); err != nil {
			return err
		}
	}
	if r.quota > 0 {
		current, err := r.readAll(ctx)
		if err != nil {
			return err
		}
		var used int64
		for k, v := range current {
			used += entrySize(k, v)
		}
		if err := checkQuota(r.quota, used, current, entries); err != nil {
			return err
		}
	}
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, v := range entries {
			pipe.Set(ctx, r.prefix+k, v, 0)
		}
		return nil
	})
	if err != nil {
		return r.wrap("set", err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return r.wrap("delete "+key, err)
	}
	return nil
}

func (r *Redis) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), r.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, r.wrap("scan", err)
	}
	slices.Sort(keys)
	return keys, nil
}

func (r *Redis) readAll(ctx context.Context) (map[string]string, error) {
	keys, err := r.Keys(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		v, err := r.Get(ctx, k)
		if errors.Is(err, types.ErrKeyNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

func (r *Redis) Size(ctx context.Context) (int64, error) {
	all, err := r.readAll(ctx)
	if err != nil {
		return 0, err
	}
	var n int64
	for k, v := range all {
		n += entrySize(k, v)
	}
	return n, nil
}

func (r *Redis) Close() error {
	err := r.client.Close()
	if errors.Is(err, redis.ErrClosed) {
		return nil
	}
	return err
}

func (r *Redis) wrap(op string, err error) error {
	if errors.Is(err, redis.ErrClosed) {
		return types.ErrStoreClosed
	}
	return fmt.Errorf("redis %s: %w", op, err)
}
