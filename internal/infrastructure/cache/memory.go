package cache

import (
	"context"
	"sync"
	"time"

	"github.com/avatarctic/admin-dashboard/internal/core/ports"
)

// Memory is the in-process query cache. Entries are immutable after Put and
// are never evicted on read; staleness is the caller's concern. Growth is
// unbounded over the process lifetime, which is acceptable given the bounded
// query-key cardinality per session.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]*ports.CacheEntry
	now     func() time.Time
}

// NewMemory creates an empty in-memory query cache.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]*ports.CacheEntry),
		now:     time.Now,
	}
}

// Get implements ports.QueryCache.Get.
func (m *Memory) Get(_ context.Context, key string) (*ports.CacheEntry, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.entries[key]
	return entry, ok, nil
}

// Put implements ports.QueryCache.Put.
func (m *Memory) Put(_ context.Context, key string, payload []byte, total int) error {
	entry := &ports.CacheEntry{
		Key:        key,
		Payload:    append([]byte(nil), payload...),
		Total:      total,
		CapturedAt: m.now(),
	}
	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
	return nil
}

// Clear implements ports.QueryCache.Clear.
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	m.entries = make(map[string]*ports.CacheEntry)
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, fresh or stale.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
