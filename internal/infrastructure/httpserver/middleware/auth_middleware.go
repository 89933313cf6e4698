package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/avatarctic/admin-dashboard/internal/core/ports"
	"github.com/avatarctic/admin-dashboard/internal/infrastructure/httpserver/helpers"
)

type JWTMiddleware struct {
	authService ports.AuthService
	logger      *logrus.Logger
}

func NewJWTMiddleware(authService ports.AuthService, logger *logrus.Logger) *JWTMiddleware {
	return &JWTMiddleware{authService: authService, logger: logger}
}

// RequireJWT creates middleware that validates the session token and sets
// the authenticated identity on the request context.
func (m *JWTMiddleware) RequireJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := helpers.GetBearerToken(c)
			if err != nil {
				return err
			}

			claims, err := m.authService.ValidateToken(c.Request().Context(), tokenString)
			if err != nil {
				if m.logger != nil {
					m.logger.WithFields(logrus.Fields{"ip": c.RealIP(), "path": c.Request().URL.Path, "error": err.Error()}).Warn("session token validation failed")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}

			helpers.SetIdentity(c, &claims.Identity)

			if m.logger != nil {
				m.logger.WithFields(logrus.Fields{"username": claims.Identity.Username}).Debug("session validated and identity set")
			}

			return next(c)
		}
	}
}
