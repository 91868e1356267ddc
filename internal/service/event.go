package service

import (
    "encoding/json"

    "github.com/laundryhub/slotboard/internal/model"
)

// Change event types carried on the SSE streams.
const (
    EventAdd           = "add"
    EventDelete        = "delete"
    EventProfileUpdate = "profile_update"
)

// ChangeEvent is the tagged union pushed to subscribers whenever the
// board changes.  Events are transient: they exist only on the wire
// between publish and delivery and are never persisted.
type ChangeEvent struct {
    Type        string             `json:"type"`
    Reservation *model.Reservation `json:"reservation,omitempty"`
    Profile     *model.Profile     `json:"profile,omitempty"`
}

// encodeEvent marshals an event for hub fan-out.  The payload types are
// plain structs, so a marshal failure would be a programming error; the
// nil return tells callers to skip the publish.
func encodeEvent(ev ChangeEvent) []byte {
    b, err := json.Marshal(ev)
    if err != nil {
        return nil
    }
    return b
}
