package helpers

import (
	"net/http"
	"strings"

	"github.com/avatarctic/admin-dashboard/internal/core/domain/auth"
	"github.com/labstack/echo/v4"
)

const identityContextKey = "identity"

// GetBearerToken extracts the bearer token from the Authorization header.
func GetBearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "malformed authorization header")
	}
	return parts[1], nil
}

// SetIdentity stores the authenticated identity on the request context.
func SetIdentity(c echo.Context, identity *auth.Identity) {
	c.Set(identityContextKey, identity)
}

// GetIdentity returns the authenticated identity set by the JWT middleware.
func GetIdentity(c echo.Context) (*auth.Identity, error) {
	identity, ok := c.Get(identityContextKey).(*auth.Identity)
	if !ok || identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "no authenticated identity in context")
	}
	return identity, nil
}

// GetSessionInfo reports the session capability for the current request.
func GetSessionInfo(c echo.Context) auth.SessionInfo {
	identity, ok := c.Get(identityContextKey).(*auth.Identity)
	if !ok || identity == nil {
		return auth.SessionInfo{IsAuthenticated: false}
	}
	return auth.SessionInfo{IsAuthenticated: true, Identity: identity}
}
