package model

// Profile describes a member of the shared laundry room.  Profiles are
// upserted by the client whenever a user edits their name or color; the
// color is also snapshotted onto reservations at booking time.
//
// Fields:
//  ID        – opaque user identifier chosen by the client.
//  Name      – display name.
//  Color     – display color (hex string).
//  UpdatedAt – RFC3339 timestamp of the last save.
type Profile struct {
	ID        string `json:"id"`        // profiles.id
	Name      string `json:"name"`      // profiles.name
	Color     string `json:"color"`     // profiles.color
	UpdatedAt string `json:"updatedAt"` // profiles.updated_at
}
