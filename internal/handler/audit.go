package handler

import (
    "context"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/laundryhub/slotboard/internal/queue"
)

// audit enriches the event with the caller's network identity and hands
// it to the broker in the background.  Recording the audit trail is
// strictly best-effort: a broker outage must never slow down or fail the
// request being audited.
func audit(c echo.Context, ev queue.AccessEvent) {
    ev.IPAddress = c.RealIP()
    ev.UserAgent = c.Request().UserAgent()
    if ev.AccessedAt == "" {
        ev.AccessedAt = time.Now().UTC().Format(time.RFC3339)
    }
    go func() {
        ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
        defer cancel()
        _ = queue.PublishAccessEvent(ctx, ev)
    }()
}
