package httpserver

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nhossain/bistro-server/internal/logging"
)

// EventPublisher is satisfied by events.Producer. A nil publisher disables
// event emission entirely.
type EventPublisher interface {
	PublishEvent(ctx context.Context, key string, event any) error
}

// publish emits a domain event best-effort: failures are logged and never
// fail the request that produced them.
func publish(c echo.Context, p EventPublisher, key string, event map[string]any) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := p.PublishEvent(ctx, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("event publish failed", "key", key, "error", err)
	}
}
