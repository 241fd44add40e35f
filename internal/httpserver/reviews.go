package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
)

type ReviewStore interface {
	All(ctx context.Context) ([]bson.M, error)
}

type ReviewHTTP struct {
	Store ReviewStore
}

func (h *ReviewHTTP) GetReviews(c echo.Context) error {
	reviews, err := h.Store.All(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, reviews)
}
