// internal/cache/redis.go
package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Rdb is the global Redis client. Connect it once at application startup.
var Rdb *redis.Client

// ConnectRedis initializes the global Redis client and pings it.
func ConnectRedis(addr string, db int) error {
	Rdb = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return nil
}

// SelectionCache fronts the daily_selections table. Entries are
// immutable once written, so expiry only exists to bound the keyspace.
// It satisfies daily.Cache; every operation is best-effort.
type SelectionCache struct{}

func selectionKey(day, gameType string) string {
	return "daily:" + gameType + ":" + day
}

// selectionTTL keeps an entry until a day past the next UTC midnight.
func selectionTTL() time.Duration {
	now := time.Now().UTC()
	midnight := now.Truncate(24 * time.Hour).Add(24 * time.Hour)
	return midnight.Sub(now) + 24*time.Hour
}

func (SelectionCache) GetSelection(ctx context.Context, day, gameType string) (int64, bool) {
	val, err := Rdb.Get(ctx, selectionKey(day, gameType)).Result()
	if err != nil {
		return 0, false
	}
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (SelectionCache) SetSelection(ctx context.Context, day, gameType string, cardID int64) {
	Rdb.Set(ctx, selectionKey(day, gameType), strconv.FormatInt(cardID, 10), selectionTTL())
}
