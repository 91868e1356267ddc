// Package hub implements the in-process pub/sub registry that fans
// reservation and profile change events out to every open SSE stream.
// It is intentionally simple: best-effort broadcast with bounded
// per-subscriber buffers and no replay of past events.
package hub

import (
    "sync"

    "github.com/google/uuid"
)

// defaultBuffer is the per-subscriber channel capacity.  A subscriber that
// falls this far behind is considered dead and is dropped on the next
// publish rather than allowed to stall the fan-out loop.
const defaultBuffer = 16

// Hub maintains the live set of subscribers.  Subscribers exist only for
// the lifetime of their connection; nothing is persisted across restarts.
// All methods are safe for concurrent use.
type Hub struct {
    mu   sync.Mutex
    subs map[string]chan []byte
}

// New returns an empty Hub.
func New() *Hub {
    return &Hub{subs: make(map[string]chan []byte)}
}

// Subscribe registers a new subscriber and returns its id together with
// the channel future events arrive on.  There is no backlog: the channel
// only ever carries events published after registration.
func (h *Hub) Subscribe() (string, <-chan []byte) {
    id := uuid.NewString()
    ch := make(chan []byte, defaultBuffer)
    h.mu.Lock()
    h.subs[id] = ch
    h.mu.Unlock()
    return id, ch
}

// Unsubscribe removes a subscriber and closes its channel.  Removing an
// id that is unknown or already removed is a no-op.
func (h *Hub) Unsubscribe(id string) {
    h.mu.Lock()
    defer h.mu.Unlock()
    if ch, ok := h.subs[id]; ok {
        delete(h.subs, id)
        close(ch)
    }
}

// Publish delivers payload to every current subscriber, best-effort and
// independently per subscriber.  A subscriber whose buffer is full cannot
// accept delivery; it is removed and its channel closed, so membership
// heals itself without a separate health check.  Publish never blocks on
// a slow consumer and failures are invisible to the publisher.
func (h *Hub) Publish(payload []byte) {
    h.mu.Lock()
    defer h.mu.Unlock()
    for id, ch := range h.subs {
        select {
        case ch <- payload:
        default:
            delete(h.subs, id)
            close(ch)
        }
    }
}

// Len reports the number of currently registered subscribers.
func (h *Hub) Len() int {
    h.mu.Lock()
    defer h.mu.Unlock()
    return len(h.subs)
}
