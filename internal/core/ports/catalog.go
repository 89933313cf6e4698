package ports

import (
	"context"

	"github.com/avatarctic/admin-dashboard/internal/core/domain/auth"
	"github.com/avatarctic/admin-dashboard/internal/core/domain/product"
	"github.com/avatarctic/admin-dashboard/internal/core/domain/user"
)

// ResourceFetcher is the remote read contract shared by every resource type:
// one HTTP call per operation, no retries, results plus the upstream total.
type ResourceFetcher[T any] interface {
	List(ctx context.Context, limit, skip int) ([]T, int, error)
	Search(ctx context.Context, query string) ([]T, int, error)
}

// UserDirectory reads users from the upstream provider.
type UserDirectory interface {
	ResourceFetcher[user.User]
	GetByID(ctx context.Context, id int) (*user.User, error)
}

// ProductCatalog reads products from the upstream provider.
type ProductCatalog interface {
	ResourceFetcher[product.Product]
	ByCategory(ctx context.Context, category string, limit, skip int) ([]product.Product, int, error)
	GetByID(ctx context.Context, id int) (*product.Product, error)
	// Categories returns the flat list of category identifiers, normalized
	// from whichever shape the upstream returns.
	Categories(ctx context.Context) ([]string, error)
}

// AuthClient performs the single credential exchange against the upstream
// provider.
type AuthClient interface {
	Login(ctx context.Context, username, password string) (*auth.UpstreamUser, error)
}
