package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nhossain/bistro-server/internal/logging"
	"github.com/nhossain/bistro-server/internal/service"
	"github.com/nhossain/bistro-server/internal/transport"
)

type AuthHTTP struct {
	Tokens *service.TokenService
}

// IssueToken signs whatever identity descriptor the client supplies into a
// time-limited access token. Authentication itself happens upstream; this
// endpoint only mints the credential the gates verify.
func (h *AuthHTTP) IssueToken(c echo.Context) error {
	ctx := c.Request().Context()

	var identity map[string]any
	if err := c.Bind(&identity); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.Tokens.Issue(identity)
	if err != nil {
		logging.FromContext(ctx).Error("token issue failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create token")
	}

	return c.JSON(http.StatusOK, transport.TokenResponse{Token: token})
}
