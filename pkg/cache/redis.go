package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is the shared-backend Store for multi-process deployments. Hit and
// miss counters are process-local; entry counts come from the server.
type Redis struct {
	rdb    *redis.Client
	prefix string

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// NewRedis connects and verifies the backend before returning.
func NewRedis(ctx context.Context, addr, password string, db int, prefix string) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return &Redis{rdb: rdb, prefix: prefix}, nil
}

var _ Store = (*Redis)(nil)

func (r *Redis) key(k string) string {
	return r.prefix + ":cache:" + k
}

func (r *Redis) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := r.rdb.Get(ctx, r.key(key)).Bytes()
	if err == redis.Nil {
		r.misses.Add(1)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache read failed: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("cache unmarshal failed: %w", err)
	}
	r.hits.Add(1)
	return true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal failed: %w", err)
	}
	return r.rdb.Set(ctx, r.key(key), data, ttl).Err()
}

func (r *Redis) Remove(ctx context.Context, key string) error {
	n, err := r.rdb.Del(ctx, r.key(key)).Result()
	if n > 0 {
		r.evictions.Add(n)
	}
	return err
}

func (r *Redis) Clear(ctx context.Context) error {
	iter := r.rdb.Scan(ctx, 0, r.prefix+":cache:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
		r.evictions.Add(1)
	}
	return iter.Err()
}

func (r *Redis) Stats(ctx context.Context) Stats {
	var entries int64
	iter := r.rdb.Scan(ctx, 0, r.prefix+":cache:*", 0).Iterator()
	for iter.Next(ctx) {
		entries++
	}
	return Stats{
		Hits:      r.hits.Load(),
		Misses:    r.misses.Load(),
		Entries:   entries,
		Evictions: r.evictions.Load(),
	}
}

// Close releases the underlying connection.
func (r *Redis) Close() error {
	return r.rdb.Close()
}
