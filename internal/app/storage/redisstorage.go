package storage

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// RedisKV is the Redis-backed KVStore.
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV connects to the given Redis address and verifies the connection.
func NewRedisKV(ctx context.Context, addr string) (*RedisKV, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisKV{client: client}, nil
}

// Get implements KVStore.
func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrKeyNotFound
		}
		return "", err
	}
	return value, nil
}

// Put implements KVStore. Values never expire, mappings are write-once by
// contract and counters are overwritten in place.
func (r *RedisKV) Put(ctx context.Context, key string, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

// PutIfAbsent implements KVStore via SETNX.
func (r *RedisKV) PutIfAbsent(ctx context.Context, key string, value string) (bool, error) {
	return r.client.SetNX(ctx, key, value, 0).Result()
}

// List implements KVStore. The cursor is the decimal form of the Redis SCAN
// cursor; SCAN does not order keys, which is fine for counting.
func (r *RedisKV) List(ctx context.Context, cursor string, limit int) ([]string, string, error) {
	var scanCursor uint64
	if cursor != "" {
		parsed, err := strconv.ParseUint(cursor, 10, 64)
		if err != nil {
			return nil, "", err
		}
		scanCursor = parsed
	}
	keys, nextCursor, err := r.client.Scan(ctx, scanCursor, "*", int64(limit)).Result()
	if err != nil {
		return nil, "", err
	}
	if nextCursor == 0 {
		return keys, "", nil
	}
	return keys, strconv.FormatUint(nextCursor, 10), nil
}

// Ping implements KVStore.
func (r *RedisKV) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close implements KVStore.
func (r *RedisKV) Close() error {
	return r.client.Close()
}
