package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const roomCountKey = "rooms:count"

// RoomCount caches the estimated number of rooms for a short TTL.
type RoomCount struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRoomCount(rdb *redis.Client, ttl time.Duration) *RoomCount {
	return &RoomCount{rdb: rdb, ttl: ttl}
}

// Get reports ok=false on a miss.
func (c *RoomCount) Get(ctx context.Context) (int64, bool, error) {
	n, err := c.rdb.Get(ctx, roomCountKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

func (c *RoomCount) Set(ctx context.Context, n int64) error {
	return c.rdb.Set(ctx, roomCountKey, n, c.ttl).Err()
}
