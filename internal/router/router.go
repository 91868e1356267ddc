// Package router defines how HTTP routes are registered for the board.
package router

import (
    "github.com/labstack/echo/v4"

    "github.com/laundryhub/slotboard/internal/handler"
)

// Handlers bundles everything RegisterRoutes needs to wire up the API.
type Handlers struct {
    Reservations *handler.ReservationHandler
    Profiles     *handler.ProfileHandler
    AccessLogs   *handler.AccessLogHandler
    Streams      *handler.StreamHandler
}

// RegisterRoutes registers the full HTTP surface on the provided Echo
// instance.  The rate limiter guards the mutating endpoints; the response
// cache covers the read-mostly listings.  The reservations snapshot and
// both SSE streams run without either so clients always see live state.
func RegisterRoutes(e *echo.Echo, h Handlers, cache, limit echo.MiddlewareFunc) {
    // Health check for load balancers and monitoring.
    e.GET("/healthz", handler.Health)

    e.GET("/reservations", h.Reservations.List)
    e.POST("/reservations", h.Reservations.Create, limit)
    e.DELETE("/reservations", h.Reservations.Delete, limit)
    e.GET("/reservations/stream", h.Streams.ReservationStream)

    e.GET("/profiles", h.Profiles.GetAll, cache)
    e.POST("/profiles", h.Profiles.Save, limit)
    e.GET("/profiles/stream", h.Streams.ProfileStream)

    e.GET("/access-logs", h.AccessLogs.List, cache)
}
