package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// clearCaches drops every captured query result in both stores. Used by the
// dashboard's manual refresh action.
func (s *Server) clearCaches(c echo.Context) error {
	ctx := c.Request().Context()
	if err := s.users.ClearCache(ctx); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to clear users cache")
	}
	if err := s.products.ClearCache(ctx); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to clear products cache")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "cleared"})
}
