package ports

import (
	"context"
	"time"
)

// QueryCache stores query results keyed by the derived request key.
// Implementations never evict on read: Get returns whatever is stored and the
// caller decides whether the entry is still fresh. Implementations should
// degrade gracefully (returning an error without crashing callers) so that
// stores can fall back to a remote fetch.
type QueryCache interface {
	// Get returns the entry for key. ok=false if not found. Staleness is
	// not checked here.
	Get(ctx context.Context, key string) (*CacheEntry, bool, error)
	// Put creates or overwrites the entry for key, stamping it with the
	// current time.
	Put(ctx context.Context, key string, payload []byte, total int) error
	// Clear removes all entries.
	Clear(ctx context.Context) error
}

// CacheEntry is an immutable captured query result. Payload holds the
// JSON-marshaled item slice so that memory- and redis-backed caches share
// one contract.
type CacheEntry struct {
	Key        string    `json:"key"`
	Payload    []byte    `json:"payload"`
	Total      int       `json:"total"`
	CapturedAt time.Time `json:"captured_at"`
}

// Fresh reports whether the entry is still inside the freshness window.
func (e *CacheEntry) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.CapturedAt) < ttl
}
