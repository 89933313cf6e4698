// Package query is the view-facing layer of the resource stores. It
// translates UI intents (page change, search text change, category change)
// into store calls, debouncing rapid search input so only the pause after a
// typing burst reaches the upstream. It keeps no state of its own beyond the
// wiring.
package query

import (
	"context"
	"time"

	"github.com/avatarctic/admin-dashboard/internal/core/domain/product"
	"github.com/avatarctic/admin-dashboard/internal/core/domain/user"
	"github.com/avatarctic/admin-dashboard/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// Users binds a UI to the user store.
type Users struct {
	store    ports.UserStore
	debounce *Debouncer
	pageSize int
	logger   *logrus.Logger
}

func NewUsers(store ports.UserStore, debounceDelay time.Duration, pageSize int, logger *logrus.Logger) *Users {
	return &Users{
		store:    store,
		debounce: NewDebouncer(debounceDelay),
		pageSize: pageSize,
		logger:   logger,
	}
}

// Init loads the first page.
func (q *Users) Init(ctx context.Context) error {
	return q.store.FetchList(ctx, q.pageSize, 0)
}

// HandleSearch dispatches the search once the input stream pauses. Each call
// supersedes the previous pending one.
func (q *Users) HandleSearch(text string) {
	q.debounce.Schedule(func() {
		if err := q.store.Search(context.Background(), text); err != nil {
			q.logger.WithFields(logrus.Fields{"query": text}).WithError(err).Warn("user search dispatch failed")
		}
	})
}

// HandlePageChange dispatches immediately; pagination is not debounced.
func (q *Users) HandlePageChange(page int) {
	if page < 1 {
		page = 1
	}
	skip := (page - 1) * q.pageSize
	if err := q.store.FetchList(context.Background(), q.pageSize, skip); err != nil {
		q.logger.WithFields(logrus.Fields{"page": page}).WithError(err).Warn("user page dispatch failed")
	}
}

func (q *Users) Snapshot() ports.Snapshot[user.User] {
	return q.store.Snapshot()
}

// Products binds a UI to the product store.
type Products struct {
	store    ports.ProductStore
	debounce *Debouncer
	pageSize int
	logger   *logrus.Logger
}

func NewProducts(store ports.ProductStore, debounceDelay time.Duration, pageSize int, logger *logrus.Logger) *Products {
	return &Products{
		store:    store,
		debounce: NewDebouncer(debounceDelay),
		pageSize: pageSize,
		logger:   logger,
	}
}

// Init loads the first page and, if not yet known, the category list.
func (q *Products) Init(ctx context.Context) error {
	if err := q.store.FetchList(ctx, q.pageSize, 0); err != nil {
		return err
	}
	if len(q.store.Categories()) == 0 {
		return q.store.FetchCategories(ctx)
	}
	return nil
}

// HandleSearch dispatches the search once the input stream pauses.
func (q *Products) HandleSearch(text string) {
	q.debounce.Schedule(func() {
		if err := q.store.Search(context.Background(), text); err != nil {
			q.logger.WithFields(logrus.Fields{"query": text}).WithError(err).Warn("product search dispatch failed")
		}
	})
}

// HandleCategoryFilter dispatches immediately; changing the category resets
// to the first page.
func (q *Products) HandleCategoryFilter(category string) {
	if err := q.store.FilterByCategory(context.Background(), category, q.pageSize, 0); err != nil {
		q.logger.WithFields(logrus.Fields{"category": category}).WithError(err).Warn("product filter dispatch failed")
	}
}

// HandlePageChange dispatches immediately; pagination is not debounced.
func (q *Products) HandlePageChange(page int) {
	if page < 1 {
		page = 1
	}
	skip := (page - 1) * q.pageSize
	if err := q.store.FetchList(context.Background(), q.pageSize, skip); err != nil {
		q.logger.WithFields(logrus.Fields{"page": page}).WithError(err).Warn("product page dispatch failed")
	}
}

func (q *Products) Snapshot() ports.Snapshot[product.Product] {
	return q.store.Snapshot()
}

func (q *Products) Categories() []string {
	return q.store.Categories()
}
