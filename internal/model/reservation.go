package model

// TimeSlots enumerates the seven bookable 2-hour bands of a day, in order.
// Every reservation must reference one of these values.
var TimeSlots = []string{"08-10", "10-12", "12-14", "14-16", "16-18", "18-20", "20-22"}

// ValidTimeSlot reports whether s is one of the fixed bands in TimeSlots.
func ValidTimeSlot(s string) bool {
	for _, t := range TimeSlots {
		if t == s {
			return true
		}
	}
	return false
}

// Reservation records one user's claim on a single washing-machine slot.
// A slot is identified by the (Date, TimeSlot) pair, which is unique across
// all live reservations.  Rows are never updated in place; cancelling and
// re-creating is the only way to change a booking.
//
// Fields:
//  ID        – opaque identifier assigned at creation.
//  Date      – calendar date in ISO 8601 form (YYYY-MM-DD).
//  TimeSlot  – one of the bands in TimeSlots.
//  UserID    – the booking user (references a Profile, not enforced).
//  UserColor – display color snapshot at booking time; may go stale.
//  CreatedAt – RFC3339 timestamp set at insert time, immutable.
type Reservation struct {
	ID        string  `json:"id"`        // reservations.id
	Date      string  `json:"date"`      // reservations.date
	TimeSlot  string  `json:"timeSlot"`  // reservations.time_slot
	UserID    string  `json:"userId"`    // reservations.user_id
	UserColor *string `json:"userColor"` // reservations.user_color (nullable)
	CreatedAt string  `json:"createdAt"` // reservations.created_at
}

// ReservationDraft carries the caller-supplied fields of a new reservation.
// ID and CreatedAt are assigned by the service at insert time.
type ReservationDraft struct {
	Date      string  `json:"date"`
	TimeSlot  string  `json:"timeSlot"`
	UserID    string  `json:"userId"`
	UserColor *string `json:"userColor"`
}
