package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	auth "github.com/nhossain/bistro-server/internal/middleware/auth"
)

type Deps struct {
	Guard          *auth.Guard
	AuthHandler    *AuthHTTP
	UserHandler    *UserHTTP
	MenuHandler    *MenuHTTP
	ReviewHandler  *ReviewHTTP
	CartHandler    *CartHTTP
	PaymentHandler *PaymentHTTP
	StatsHandler   *StatsHTTP

	// Ping reports store readiness; nil means always ready.
	Ping func(ctx context.Context) error
}

// Register wires every route with its gate. The gating matrix is uneven on
// purpose: it reproduces the system being ported (menu create/update are
// open while delete is admin-only, user deletes and role grants are open).
func Register(e *echo.Echo, d *Deps) {
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "restaurant is running")
	})
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ping != nil {
			if err := d.Ping(c.Request().Context()); err != nil {
				return c.NoContent(http.StatusServiceUnavailable)
			}
		}
		return c.NoContent(http.StatusOK)
	})

	e.POST("/jwt", d.AuthHandler.IssueToken)

	e.GET("/users", d.UserHandler.GetUsers, d.Guard.RequireToken, d.Guard.RequireAdmin)
	e.POST("/users", d.UserHandler.CreateUser)
	e.DELETE("/users/:id", d.UserHandler.DeleteUser)
	e.PATCH("/user/admin/:id", d.UserHandler.GrantAdmin)
	e.GET("/user/admin/:email", d.UserHandler.CheckAdmin, d.Guard.RequireToken)

	e.GET("/menu", d.MenuHandler.GetMenu)
	e.GET("/menu/:id", d.MenuHandler.GetMenuItem)
	e.POST("/menu", d.MenuHandler.CreateMenuItem)
	e.PATCH("/menu/:id", d.MenuHandler.PatchMenuItem)
	e.DELETE("/menu/:id", d.MenuHandler.DeleteMenuItem, d.Guard.RequireToken, d.Guard.RequireAdmin)
	if d.MenuHandler.Searcher != nil {
		e.GET("/menu-search", d.MenuHandler.SearchMenu)
	}

	e.GET("/reviews", d.ReviewHandler.GetReviews)

	e.GET("/carts", d.CartHandler.GetCart)
	e.POST("/carts", d.CartHandler.AddToCart)
	e.DELETE("/carts/:id", d.CartHandler.DeleteCartItem)

	e.POST("/create-payment-intent", d.PaymentHandler.CreateIntent)
	e.POST("/payments", d.PaymentHandler.RecordPayment)
	e.GET("/payments/:email", d.PaymentHandler.GetHistory, d.Guard.RequireToken)

	e.GET("/admin-stats", d.StatsHandler.AdminStats, d.Guard.RequireToken, d.Guard.RequireAdmin)
}
