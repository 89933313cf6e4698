package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/avatarctic/admin-dashboard/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// Store orchestrates queries for one resource collection: derive the cache
// key, serve fresh cached results without a network call, otherwise fetch
// remotely, write the cache, and publish the new visible result set.
//
// Every dispatch gets a monotonic sequence number. A settlement whose
// sequence is no longer the latest is discarded, so a slow request can never
// overwrite the results of a request issued after it.
type Store[T any] struct {
	name         string
	fetcher      ports.ResourceFetcher[T]
	cache        ports.QueryCache
	ttl          time.Duration
	defaultLimit int
	logger       *logrus.Logger
	now          func() time.Time

	mu      sync.Mutex
	items   []T
	total   int
	loading bool
	seq     uint64
}

// New creates a store for one resource collection. name labels log lines and
// metrics ("users", "products").
func New[T any](name string, fetcher ports.ResourceFetcher[T], cache ports.QueryCache, ttl time.Duration, defaultLimit int, logger *logrus.Logger) *Store[T] {
	return &Store[T]{
		name:         name,
		fetcher:      fetcher,
		cache:        cache,
		ttl:          ttl,
		defaultLimit: defaultLimit,
		logger:       logger,
		now:          time.Now,
	}
}

// FetchList loads one page of the collection.
func (s *Store[T]) FetchList(ctx context.Context, limit, skip int) error {
	key := fmt.Sprintf("list:%d:%d", limit, skip)
	return s.dispatch(ctx, "list", key, func(ctx context.Context) ([]T, int, error) {
		return s.fetcher.List(ctx, limit, skip)
	})
}

// Search runs a free-text query. Blank input falls back to the first default
// page, matching what the dashboard shows when the search box is cleared.
func (s *Store[T]) Search(ctx context.Context, query string) error {
	if strings.TrimSpace(query) == "" {
		return s.FetchList(ctx, s.defaultLimit, 0)
	}
	key := "search:" + query
	return s.dispatch(ctx, "search", key, func(ctx context.Context) ([]T, int, error) {
		return s.fetcher.Search(ctx, query)
	})
}

// Snapshot returns the current visible result set. The items slice is
// replaced wholesale on settlement and never mutated, so it is safe to hand
// out.
func (s *Store[T]) Snapshot() ports.Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ports.Snapshot[T]{Items: s.items, Total: s.total, Loading: s.loading}
}

// ClearCache drops every captured query result. The next request for any key
// goes to the upstream regardless of how recently it was cached.
func (s *Store[T]) ClearCache(ctx context.Context) error {
	return s.cache.Clear(ctx)
}

type loadFunc[T any] func(ctx context.Context) ([]T, int, error)

func (s *Store[T]) dispatch(ctx context.Context, op, key string, load loadFunc[T]) error {
	if entry, ok, err := s.cache.Get(ctx, key); err == nil && ok && entry.Fresh(s.now(), s.ttl) {
		var items []T
		if uErr := json.Unmarshal(entry.Payload, &items); uErr != nil {
			// corrupt payload: treat as a miss and refetch
			s.logger.WithFields(logrus.Fields{"store": s.name, "key": key}).WithError(uErr).Warn("discarding unreadable cache entry")
		} else {
			cacheHits.WithLabelValues(s.name, op).Inc()
			s.mu.Lock()
			s.seq++
			s.items, s.total, s.loading = items, entry.Total, false
			s.mu.Unlock()
			return nil
		}
	} else if err != nil {
		s.logger.WithFields(logrus.Fields{"store": s.name, "key": key}).WithError(err).Warn("cache lookup failed, falling back to upstream")
	}
	cacheMisses.WithLabelValues(s.name, op).Inc()

	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.loading = true
	s.mu.Unlock()

	items, total, err := load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		// A newer request owns the visible state; this settlement is stale.
		staleSettlements.WithLabelValues(s.name, op).Inc()
		s.logger.WithFields(logrus.Fields{"store": s.name, "key": key}).Debug("discarding superseded settlement")
		return nil
	}
	s.loading = false
	if err != nil {
		// Prior items/total stay on screen; the failure only surfaces to the caller.
		s.logger.WithFields(logrus.Fields{"store": s.name, "op": op, "key": key}).WithError(err).Error("fetch failed")
		return err
	}

	s.items, s.total = items, total
	if payload, mErr := json.Marshal(items); mErr == nil {
		if cErr := s.cache.Put(ctx, key, payload, total); cErr != nil {
			s.logger.WithFields(logrus.Fields{"store": s.name, "key": key}).WithError(cErr).Warn("cache write failed")
		}
	}
	return nil
}
