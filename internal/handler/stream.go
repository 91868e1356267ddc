package handler

import (
    "encoding/json"
    "fmt"
    "net/http"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/laundryhub/slotboard/internal/hub"
    "github.com/laundryhub/slotboard/internal/model"
    "github.com/laundryhub/slotboard/internal/queue"
)

// heartbeatInterval paces the keep-alive frames that stop proxies from
// timing out an otherwise idle stream.
const heartbeatInterval = 30 * time.Second

// StreamHandler serves the long-lived SSE connections.  Each open tab
// holds one subscription per stream; there is no replay of events missed
// while disconnected — clients re-fetch the snapshot on reconnect.
type StreamHandler struct {
    Reservations *hub.Hub
    Profiles     *hub.Hub
}

// NewStreamHandler constructs a StreamHandler over the two hubs.
func NewStreamHandler(reservations, profiles *hub.Hub) *StreamHandler {
    if reservations == nil || profiles == nil {
        panic("nil hub passed to NewStreamHandler")
    }
    return &StreamHandler{Reservations: reservations, Profiles: profiles}
}

// ReservationStream handles GET /reservations/stream.
func (h *StreamHandler) ReservationStream(c echo.Context) error {
    return h.stream(c, h.Reservations)
}

// ProfileStream handles GET /profiles/stream.
func (h *StreamHandler) ProfileStream(c echo.Context) error {
    return h.stream(c, h.Profiles)
}

// stream runs one subscription channel: emit the connected envelope,
// register with the hub, then alternate between heartbeat ticks, event
// deliveries and peer disconnect until the connection ends.  Every exit
// path unsubscribes and stops the heartbeat timer.
func (h *StreamHandler) stream(c echo.Context, hb *hub.Hub) error {
    w := c.Response()
    w.Header().Set(echo.HeaderContentType, "text/event-stream")
    w.Header().Set("Cache-Control", "no-cache, no-transform")
    w.Header().Set(echo.HeaderConnection, "keep-alive")
    // nginx would buffer the stream otherwise
    w.Header().Set("X-Accel-Buffering", "no")
    w.WriteHeader(http.StatusOK)

    clientID := uuid.NewString()
    audit(c, queue.AccessEvent{Action: model.ActionSSEConnect, Detail: "clientId: " + clientID})
    defer audit(c, queue.AccessEvent{Action: model.ActionSSEDisconnect, Detail: "clientId: " + clientID})

    // The connected envelope must precede any data frames so the client
    // knows the channel is established before events arrive.
    connected, _ := json.Marshal(map[string]string{"type": "connected", "clientId": clientID})
    if err := writeFrame(w, connected); err != nil {
        return nil
    }

    subID, events := hb.Subscribe()
    defer hb.Unsubscribe(subID)

    ticker := time.NewTicker(heartbeatInterval)
    defer ticker.Stop()

    heartbeat := []byte(`{"type":"heartbeat"}`)
    ctx := c.Request().Context()
    for {
        select {
        case <-ctx.Done():
            // peer disconnected or server shutting down
            return nil
        case <-ticker.C:
            if err := writeFrame(w, heartbeat); err != nil {
                return nil
            }
        case payload, ok := <-events:
            if !ok {
                // dropped by the hub as a dead subscriber
                return nil
            }
            if err := writeFrame(w, payload); err != nil {
                return nil
            }
        }
    }
}

// writeFrame emits one SSE frame and flushes it to the client so delivery
// is prompt rather than buffered.
func writeFrame(w *echo.Response, payload []byte) error {
    if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
        return err
    }
    w.Flush()
    return nil
}
