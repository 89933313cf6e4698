package httpserver

import (
	"net/http"

	"github.com/avatarctic/admin-dashboard/internal/core/domain/auth"
	"github.com/avatarctic/admin-dashboard/internal/infrastructure/httpserver/helpers"
	"github.com/labstack/echo/v4"
)

// Auth handlers
func (s *Server) login(c echo.Context) error {
	var req auth.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	session, err := s.authSvc.Login(c.Request().Context(), &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	return c.JSON(http.StatusOK, session)
}

// me returns the session capability for the authenticated caller.
func (s *Server) me(c echo.Context) error {
	return c.JSON(http.StatusOK, helpers.GetSessionInfo(c))
}
