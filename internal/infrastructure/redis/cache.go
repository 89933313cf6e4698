package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avatarctic/admin-dashboard/internal/core/ports"
	"github.com/go-redis/redis/v8"
)

// QueryCache implements ports.QueryCache on Redis, so multiple dashboard
// instances can share captured query results. Entries are stored without a
// server-side expiry: freshness is checked by the reading store, matching the
// in-memory backend.
type QueryCache struct {
	r redis.Cmdable
	// key prefix to namespace entries per resource store
	prefix string
}

// NewQueryCache creates a Redis-backed query cache.
func NewQueryCache(r redis.Cmdable, prefix string) *QueryCache {
	return &QueryCache{r: r, prefix: prefix}
}

func (c *QueryCache) namespaced(key string) string {
	return c.prefix + ":" + key
}

// registryKey tracks every stored key so Clear does not need a SCAN.
func (c *QueryCache) registryKey() string {
	return c.prefix + ":keys"
}

// Get implements ports.QueryCache.Get.
func (c *QueryCache) Get(ctx context.Context, key string) (*ports.CacheEntry, bool, error) {
	b, err := c.r.Get(ctx, c.namespaced(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var entry ports.CacheEntry
	if err := json.Unmarshal(b, &entry); err != nil {
		return nil, false, fmt.Errorf("corrupt cache entry for %q: %w", key, err)
	}
	return &entry, true, nil
}

// Put implements ports.QueryCache.Put.
func (c *QueryCache) Put(ctx context.Context, key string, payload []byte, total int) error {
	entry := ports.CacheEntry{
		Key:        key,
		Payload:    payload,
		Total:      total,
		CapturedAt: time.Now(),
	}
	b, err := json.Marshal(&entry)
	if err != nil {
		return err
	}

	pipe := c.r.TxPipeline()
	pipe.Set(ctx, c.namespaced(key), b, 0)
	pipe.SAdd(ctx, c.registryKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

// Clear implements ports.QueryCache.Clear.
func (c *QueryCache) Clear(ctx context.Context) error {
	keys, err := c.r.SMembers(ctx, c.registryKey()).Result()
	if err != nil {
		return err
	}
	namespaced := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		namespaced = append(namespaced, c.namespaced(k))
	}
	namespaced = append(namespaced, c.registryKey())
	return c.r.Del(ctx, namespaced...).Err()
}
