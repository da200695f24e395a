package helpers

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes the redis client used for rate limiting and the
// notification unread-count cache.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// CacheGetInt reads an integer counter. The second return is false when the
// key is absent or holds something that is not an integer.
func CacheGetInt(ctx context.Context, rdb *redis.Client, key string) (int, bool) {
	v, err := rdb.Get(ctx, key).Result()
	if err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// CacheSetInt stores an integer counter with a TTL.
func CacheSetInt(ctx context.Context, rdb *redis.Client, key string, n int, ttl time.Duration) error {
	return rdb.Set(ctx, key, n, ttl).Err()
}

// CacheDel drops a key; missing keys are not an error.
func CacheDel(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, key).Err()
}
