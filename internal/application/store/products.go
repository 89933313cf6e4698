package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avatarctic/admin-dashboard/internal/core/domain/product"
	"github.com/avatarctic/admin-dashboard/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// Products is the resource store for the product catalog. On top of the
// shared list/search behavior it filters by category and keeps the category
// list, which is fetched once and exempt from the freshness window.
type Products struct {
	*Store[product.Product]
	catalog ports.ProductCatalog

	catMu      sync.RWMutex
	categories []string
}

func NewProducts(catalog ports.ProductCatalog, cache ports.QueryCache, ttl time.Duration, defaultLimit int, logger *logrus.Logger) *Products {
	return &Products{
		Store:   New[product.Product]("products", catalog, cache, ttl, defaultLimit, logger),
		catalog: catalog,
	}
}

// FilterByCategory narrows the visible set to one category. The pseudo
// category "all" drops the filter and behaves as a plain list fetch.
func (s *Products) FilterByCategory(ctx context.Context, category string, limit, skip int) error {
	if category == product.CategoryAll || category == "" {
		return s.FetchList(ctx, limit, skip)
	}
	key := fmt.Sprintf("category:%s:%d:%d", category, limit, skip)
	return s.dispatch(ctx, "category", key, func(ctx context.Context) ([]product.Product, int, error) {
		return s.catalog.ByCategory(ctx, category, limit, skip)
	})
}

// FetchCategories loads the category list. Calling it again refetches; the
// result replaces the previous list wholesale.
func (s *Products) FetchCategories(ctx context.Context) error {
	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{"store": s.name}).WithError(err).Error("failed to fetch categories")
		return err
	}
	s.catMu.Lock()
	s.categories = categories
	s.catMu.Unlock()
	return nil
}

// Categories returns the last fetched category list, possibly empty.
func (s *Products) Categories() []string {
	s.catMu.RLock()
	defer s.catMu.RUnlock()
	return s.categories
}

// GetByID fetches a single product straight from the upstream.
func (s *Products) GetByID(ctx context.Context, id int) (*product.Product, error) {
	return s.catalog.GetByID(ctx, id)
}
