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
	"github.com/nhossain/bistro-server/internal/payments"
	"github.com/nhossain/bistro-server/internal/transport"
)

type PaymentStore interface {
	ByEmail(ctx context.Context, email string) ([]models.Payment, error)
	Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error)
}

// IntentCreator is satisfied by payments.StripeClient.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64) (string, error)
}

type PaymentHTTP struct {
	Store   PaymentStore
	Carts   CartStore
	Intents IntentCreator
	Events  EventPublisher
}

// CreateIntent asks the payment provider for a pending charge and hands
// the confirmation secret back to the client. Provider failures surface
// unchanged; there is no retry.
func (h *PaymentHTTP) CreateIntent(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.IntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	amount := payments.MinorUnits(req.Price)
	secret, err := h.Intents.CreateIntent(ctx, amount)
	if err != nil {
		logging.FromContext(ctx).Error("payment intent failed", "amount", amount, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, transport.IntentResponse{ClientSecret: secret})
}

// RecordPayment settles a checkout: the payment record is inserted, then
// the purchased cart entries are bulk-deleted. The two calls are not
// atomic; if the delete fails after the insert, the partial state stands
// and the error is returned to the caller.
func (h *PaymentHTTP) RecordPayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payments.record")

	// The record is stored exactly as the client sent it; cartIds and
	// email are only read out for the cleanup and the event.
	var doc bson.M
	if err := c.Bind(&doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rawIDs, _ := doc["cartIds"].([]any)
	cartIDs := make([]primitive.ObjectID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		hex, _ := raw.(string)
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid cart id: "+hex)
		}
		cartIDs = append(cartIDs, id)
	}
	email, _ := doc["email"].(string)

	paymentID, err := h.Store.Insert(ctx, doc)
	if err != nil {
		l.Error("payment insert failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	deleted, err := h.Carts.DeleteMany(ctx, cartIDs)
	if err != nil {
		l.Error("cart cleanup failed after payment insert", "payment_id", paymentID.Hex(), "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	price, _ := doc["price"].(float64)
	publish(c, h.Events, email, map[string]any{
		"type":      "payment_recorded",
		"paymentId": paymentID.Hex(),
		"email":     email,
		"price":     price,
	})

	return c.JSON(http.StatusOK, transport.SettlementResult{
		PaymentResult: transport.InsertResult{InsertedID: paymentID.Hex()},
		DeleteResult:  transport.DeleteResult{DeletedCount: deleted},
	})
}

// GetHistory returns the caller's own payment records only.
func (h *PaymentHTTP) GetHistory(c echo.Context) error {
	email := c.Param("email")

	claimsEmail, ok := auth.ClaimsEmail(c)
	if !ok || claimsEmail != email {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
	}

	history, err := h.Store.ByEmail(c.Request().Context(), email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, history)
}
