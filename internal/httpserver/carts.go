package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nhossain/bistro-server/internal/transport"
)

type CartStore interface {
	ByEmail(ctx context.Context, email string) ([]bson.M, error)
	Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

type CartHTTP struct {
	Store CartStore
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	email := c.QueryParam("email")

	items, err := h.Store.ByEmail(c.Request().Context(), email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	var doc bson.M
	if err := c.Bind(&doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.Store.Insert(c.Request().Context(), doc)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, transport.InsertResult{InsertedID: id.Hex()})
}

func (h *CartHTTP) DeleteCartItem(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	count, err := h.Store.Delete(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, transport.DeleteResult{DeletedCount: count})
}
