package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/avatarctic/admin-dashboard/internal/infrastructure/dummyjson"
	"github.com/labstack/echo/v4"
)

// Product handlers
func (s *Server) listProducts(c echo.Context) error {
	limit := queryInt(c, "limit", 10)
	skip := queryInt(c, "skip", 0)
	q := c.QueryParam("q")
	category := c.QueryParam("category")

	ctx := c.Request().Context()
	var err error
	switch {
	case strings.TrimSpace(q) != "":
		err = s.products.Search(ctx, q)
	case category != "":
		err = s.products.FilterByCategory(ctx, category, limit, skip)
	default:
		err = s.products.FetchList(ctx, limit, skip)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "failed to load products")
	}

	return c.JSON(http.StatusOK, s.products.Snapshot())
}

func (s *Server) getProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := s.products.GetByID(c.Request().Context(), id)
	if err != nil {
		if dummyjson.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return echo.NewHTTPError(http.StatusBadGateway, "failed to load product")
	}

	return c.JSON(http.StatusOK, p)
}

func (s *Server) listCategories(c echo.Context) error {
	if len(s.products.Categories()) == 0 {
		if err := s.products.FetchCategories(c.Request().Context()); err != nil {
			return echo.NewHTTPError(http.StatusBadGateway, "failed to load categories")
		}
	}
	return c.JSON(http.StatusOK, map[string]any{"categories": s.products.Categories()})
}
