package ports

import (
	"context"

	"github.com/avatarctic/admin-dashboard/internal/core/domain/product"
	"github.com/avatarctic/admin-dashboard/internal/core/domain/user"
)

// Snapshot is the visible result set a store currently holds. While a request
// is in flight Loading is true and Items/Total keep their previous values.
type Snapshot[T any] struct {
	Items   []T  `json:"items"`
	Total   int  `json:"total"`
	Loading bool `json:"loading"`
}

// UserStore orchestrates user queries: cache lookup, remote fetch on miss,
// cache write, visible-state update.
type UserStore interface {
	FetchList(ctx context.Context, limit, skip int) error
	Search(ctx context.Context, query string) error
	GetByID(ctx context.Context, id int) (*user.User, error)
	Snapshot() Snapshot[user.User]
	ClearCache(ctx context.Context) error
}

// ProductStore is the product counterpart of UserStore, extended with
// category filtering and the TTL-exempt category list.
type ProductStore interface {
	FetchList(ctx context.Context, limit, skip int) error
	Search(ctx context.Context, query string) error
	FilterByCategory(ctx context.Context, category string, limit, skip int) error
	FetchCategories(ctx context.Context) error
	Categories() []string
	GetByID(ctx context.Context, id int) (*product.Product, error)
	Snapshot() Snapshot[product.Product]
	ClearCache(ctx context.Context) error
}
