// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// services and handlers to distinguish expected domain outcomes from
// storage faults. Anything not wrapped in one of these sentinels is an
// unexpected storage error and must be treated as fatal for the request.
package repository

import "errors"

// ErrSlotTaken is returned when an insert collides with the unique
// (date, time_slot) index, i.e. the slot already holds a reservation.
// The service layer translates this into its AlreadyBooked outcome.
var ErrSlotTaken = errors.New("slot taken")

// ErrNotFound is returned when a lookup or delete targets a row that
// does not exist. Handlers should translate this into an HTTP 404
// response.
var ErrNotFound = errors.New("not found")
