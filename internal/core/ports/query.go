package ports

import (
	"context"

	"github.com/avatarctic/admin-dashboard/internal/core/domain/product"
	"github.com/avatarctic/admin-dashboard/internal/core/domain/user"
)

// UserQuery is the view-facing controller over the user store. It translates
// UI intents into store calls: search input is debounced, page changes
// dispatch immediately, and the snapshot exposes the visible result set
// without triggering a fetch.
type UserQuery interface {
	Init(ctx context.Context) error
	HandleSearch(text string)
	HandlePageChange(page int)
	Snapshot() Snapshot[user.User]
}

// ProductQuery is the product counterpart of UserQuery, extended with the
// immediate category filter and the category list.
type ProductQuery interface {
	Init(ctx context.Context) error
	HandleSearch(text string)
	HandlePageChange(page int)
	HandleCategoryFilter(category string)
	Snapshot() Snapshot[product.Product]
	Categories() []string
}
