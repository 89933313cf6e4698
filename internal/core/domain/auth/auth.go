package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest represents the login request forwarded to the upstream provider.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Identity is the authenticated user as reported by the upstream provider.
type Identity struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Image     string `json:"image"`
}

// UpstreamUser is the upstream login response. Older API versions return the
// bearer token as "token", newer ones as "accessToken"; Token() hides that.
type UpstreamUser struct {
	Identity
	AccessToken string `json:"accessToken"`
	LegacyToken string `json:"token"`
}

func (u *UpstreamUser) Token() string {
	if u.AccessToken != "" {
		return u.AccessToken
	}
	return u.LegacyToken
}

// Claims are the session JWT claims issued by this service after a
// successful upstream login.
type Claims struct {
	Identity      Identity `json:"identity"`
	UpstreamToken string   `json:"upstream_token,omitempty"`

	jwt.RegisteredClaims
}

// Session is returned to the dashboard UI after login.
type Session struct {
	Token     string   `json:"token"`
	ExpiresIn int64    `json:"expires_in"`
	Identity  Identity `json:"identity"`
}

// SessionInfo is the capability consumed by handlers: whether the caller is
// authenticated and, if so, who they are.
type SessionInfo struct {
	IsAuthenticated bool      `json:"is_authenticated"`
	Identity        *Identity `json:"identity,omitempty"`
}
