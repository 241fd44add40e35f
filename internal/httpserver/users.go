package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nhossain/bistro-server/internal/logging"
	auth "github.com/nhossain/bistro-server/internal/middleware/auth"
	"github.com/nhossain/bistro-server/internal/models"
	"github.com/nhossain/bistro-server/internal/transport"
)

type UserStore interface {
	All(ctx context.Context) ([]models.User, error)
	ByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	GrantAdmin(ctx context.Context, id primitive.ObjectID) (int64, int64, error)
}

type UserHTTP struct {
	Store  UserStore
	Events EventPublisher
}

func (h *UserHTTP) GetUsers(c echo.Context) error {
	users, err := h.Store.All(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}

// CreateUser is idempotent by email: a second create for the same address
// returns a message instead of inserting a duplicate account.
func (h *UserHTTP) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()

	var doc bson.M
	if err := c.Bind(&doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	email, _ := doc["email"].(string)

	existing, err := h.Store.ByEmail(ctx, email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if existing != nil {
		return c.JSON(http.StatusOK, echo.Map{"message": "this user is exist"})
	}

	id, err := h.Store.Insert(ctx, doc)
	if err != nil {
		logging.FromContext(ctx).Error("user insert failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Events, email, map[string]any{
		"type":   "user_created",
		"userId": id.Hex(),
		"email":  email,
	})

	return c.JSON(http.StatusOK, transport.InsertResult{InsertedID: id.Hex()})
}

func (h *UserHTTP) DeleteUser(c echo.Context) error {
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

func (h *UserHTTP) GrantAdmin(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	matched, modified, err := h.Store.GrantAdmin(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, transport.UpdateResult{MatchedCount: matched, ModifiedCount: modified})
}

// CheckAdmin reports whether the caller's own account carries the admin
// role. Asking about anyone else's address is rejected.
func (h *UserHTTP) CheckAdmin(c echo.Context) error {
	email := c.Param("email")

	claimsEmail, ok := auth.ClaimsEmail(c)
	if !ok || claimsEmail != email {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
	}

	user, err := h.Store.ByEmail(c.Request().Context(), email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, transport.AdminCheckResponse{Admin: user.IsAdmin()})
}
