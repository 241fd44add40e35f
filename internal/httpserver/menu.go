package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nhossain/bistro-server/internal/logging"
	"github.com/nhossain/bistro-server/internal/transport"
	"github.com/nhossain/bistro-server/internal/util"
)

type MenuStore interface {
	All(ctx context.Context) ([]bson.M, error)
	ByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, patch transport.MenuItemPatch) (int64, int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// MenuSearcher is satisfied by search.MenuIndex. A nil searcher leaves the
// search route unregistered.
type MenuSearcher interface {
	Search(ctx context.Context, query string, from, size int) (int64, []map[string]any, error)
}

type MenuHTTP struct {
	Store    MenuStore
	Events   EventPublisher
	Searcher MenuSearcher
}

func (h *MenuHTTP) GetMenu(c echo.Context) error {
	items, err := h.Store.All(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

// GetMenuItem returns null for an absent id; absence is an empty result
// here, not an error.
func (h *MenuHTTP) GetMenuItem(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	item, err := h.Store.ByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, item)
}

func (h *MenuHTTP) CreateMenuItem(c echo.Context) error {
	ctx := c.Request().Context()

	var doc bson.M
	if err := c.Bind(&doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.Store.Insert(ctx, doc)
	if err != nil {
		logging.FromContext(ctx).Error("menu insert failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Events, id.Hex(), map[string]any{
		"type":   "menu_item_created",
		"itemId": id.Hex(),
		"name":   doc["name"],
	})

	return c.JSON(http.StatusOK, transport.InsertResult{InsertedID: id.Hex()})
}

func (h *MenuHTTP) PatchMenuItem(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var patch transport.MenuItemPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	matched, modified, err := h.Store.Update(c.Request().Context(), id, patch)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, transport.UpdateResult{MatchedCount: matched, ModifiedCount: modified})
}

func (h *MenuHTTP) DeleteMenuItem(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	count, err := h.Store.Delete(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Events, id.Hex(), map[string]any{
		"type":   "menu_item_deleted",
		"itemId": id.Hex(),
	})

	return c.JSON(http.StatusOK, transport.DeleteResult{DeletedCount: count})
}

func (h *MenuHTTP) SearchMenu(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.search")

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter q is required")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, limit := util.Calculate(page, size)

	total, items, err := h.Searcher.Search(ctx, q, from, limit)
	if err != nil {
		l.Error("menu search failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
			"has_prev":    page > 1,
			"has_next":    int64(from+limit) < total,
		},
	})
}
