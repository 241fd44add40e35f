package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nhossain/bistro-server/internal/transport"
)

type StatsStore interface {
	Snapshot(ctx context.Context) (transport.Stats, error)
}

type StatsHTTP struct {
	Store StatsStore
}

// AdminStats returns the dashboard snapshot: estimated collection counts
// plus the exact summed revenue, recomputed on every call.
func (h *StatsHTTP) AdminStats(c echo.Context) error {
	stats, err := h.Store.Snapshot(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}
