package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/nhossain/bistro-server/internal/models"
	"github.com/nhossain/bistro-server/internal/service"
)

const rejectMessage = "forbidden access"

// UserLookup is the single store read the role gate performs.
type UserLookup interface {
	ByEmail(ctx context.Context, email string) (*models.User, error)
}

// Guard holds the two request gates. RequireToken checks only the bearer
// token's shape, signature and expiry; RequireAdmin must be composed after
// it and adds a role lookup against the user collection.
type Guard struct {
	Tokens *service.TokenService
	Users  UserLookup
}

func (g *Guard) RequireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, rejectMessage)
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, rejectMessage)
		}

		claims, err := g.Tokens.Parse(parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, rejectMessage)
		}

		setUserContext(c, claims)
		return next(c)
	}
}

func (g *Guard) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		email, ok := ClaimsEmail(c)
		if !ok {
			return echo.NewHTTPError(http.StatusForbidden, rejectMessage)
		}

		user, err := g.Users.ByEmail(c.Request().Context(), email)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		if !user.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, rejectMessage)
		}

		return next(c)
	}
}

func setUserContext(c echo.Context, claims jwt.MapClaims) {
	c.Set("claims", claims)
	if email, ok := claims["email"].(string); ok {
		c.Set("email", email)
	}
}

// ClaimsEmail returns the email the access gate attached, if any.
func ClaimsEmail(c echo.Context) (string, bool) {
	email, ok := c.Get("email").(string)
	return email, ok && email != ""
}
