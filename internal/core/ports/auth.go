package ports

import (
	"context"

	"github.com/avatarctic/admin-dashboard/internal/core/domain/auth"
)

// AuthService exchanges credentials with the upstream provider and manages
// the session tokens this service issues.
type AuthService interface {
	Login(ctx context.Context, req *auth.LoginRequest) (*auth.Session, error)
	ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error)
}
