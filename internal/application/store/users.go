package store

import (
	"context"
	"time"

	"github.com/avatarctic/admin-dashboard/internal/core/domain/user"
	"github.com/avatarctic/admin-dashboard/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// Users is the resource store for the user directory.
type Users struct {
	*Store[user.User]
	directory ports.UserDirectory
}

func NewUsers(directory ports.UserDirectory, cache ports.QueryCache, ttl time.Duration, defaultLimit int, logger *logrus.Logger) *Users {
	return &Users{
		Store:     New[user.User]("users", directory, cache, ttl, defaultLimit, logger),
		directory: directory,
	}
}

// GetByID fetches a single user straight from the upstream. Detail views are
// not cached; a missing id surfaces as a not-found error for the handler to
// translate.
func (s *Users) GetByID(ctx context.Context, id int) (*user.User, error) {
	return s.directory.GetByID(ctx, id)
}
