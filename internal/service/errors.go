// Package service implements the business logic of the slot board:
// validation, the insert-or-reject booking flow, cancellation and the
// hand-off of change events to the notification hub.
package service

import "errors"

// ErrValidation wraps all request-shape problems (missing or malformed
// fields).  It is detected before any storage access and handlers map it
// to HTTP 400.
var ErrValidation = errors.New("validation")

// ErrAlreadyBooked is the caller-facing translation of the store's
// ErrSlotTaken: somebody else holds the slot.  Expected under concurrent
// demand, mapped to HTTP 409.
var ErrAlreadyBooked = errors.New("already booked")

// ErrNotFound is returned when a cancellation targets a slot that holds
// no reservation, e.g. after two cancel requests race.  Mapped to 404.
var ErrNotFound = errors.New("not found")
