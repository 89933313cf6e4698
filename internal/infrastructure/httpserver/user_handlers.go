package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/avatarctic/admin-dashboard/internal/infrastructure/dummyjson"
	"github.com/labstack/echo/v4"
)

// User handlers
func (s *Server) listUsers(c echo.Context) error {
	limit := queryInt(c, "limit", 10)
	skip := queryInt(c, "skip", 0)
	q := c.QueryParam("q")

	var err error
	if strings.TrimSpace(q) != "" {
		err = s.users.Search(c.Request().Context(), q)
	} else {
		err = s.users.FetchList(c.Request().Context(), limit, skip)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "failed to load users")
	}

	return c.JSON(http.StatusOK, s.users.Snapshot())
}

func (s *Server) getUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	u, err := s.users.GetByID(c.Request().Context(), id)
	if err != nil {
		if dummyjson.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return echo.NewHTTPError(http.StatusBadGateway, "failed to load user")
	}

	return c.JSON(http.StatusOK, u)
}

func queryInt(c echo.Context, name string, defaultValue int) int {
	if value := c.QueryParam(name); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n >= 0 {
			return n
		}
	}
	return defaultValue
}
