package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// searchEvent carries one keystroke's worth of search input.
type searchEvent struct {
	Query string `json:"q"`
}

// userSearchEvent feeds search input through the debounced query controller.
// A typing burst results in a single upstream search once the input pauses;
// the dashboard polls the snapshot for the settled result.
func (s *Server) userSearchEvent(c echo.Context) error {
	var ev searchEvent
	if err := c.Bind(&ev); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	s.userQuery.HandleSearch(ev.Query)
	return c.JSON(http.StatusAccepted, map[string]string{"status": "scheduled"})
}

// userSnapshot returns the visible result set without dispatching a fetch.
func (s *Server) userSnapshot(c echo.Context) error {
	return c.JSON(http.StatusOK, s.userQuery.Snapshot())
}

func (s *Server) productSearchEvent(c echo.Context) error {
	var ev searchEvent
	if err := c.Bind(&ev); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	s.productQuery.HandleSearch(ev.Query)
	return c.JSON(http.StatusAccepted, map[string]string{"status": "scheduled"})
}

func (s *Server) productSnapshot(c echo.Context) error {
	return c.JSON(http.StatusOK, s.productQuery.Snapshot())
}
