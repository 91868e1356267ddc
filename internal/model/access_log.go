package model

// Action values recorded in the access log.  These mirror the actions the
// board's clients perform; anything else is rejected at query time only.
const (
	ActionPageView          = "page_view"
	ActionReservationCreate = "reservation_create"
	ActionReservationDelete = "reservation_delete"
	ActionProfileUpdate     = "profile_update"
	ActionSSEConnect        = "sse_connect"
	ActionSSEDisconnect     = "sse_disconnect"
)

// AccessLog is one audit entry describing a user action.  Entries are
// written asynchronously by the queue consumer and only ever read back
// through the access-log listing endpoint.
type AccessLog struct {
	ID         int64   `json:"id"`         // access_logs.id
	UserID     *string `json:"userId"`     // access_logs.user_id (nullable)
	UserName   *string `json:"userName"`   // access_logs.user_name (nullable)
	Action     string  `json:"action"`     // access_logs.action
	Detail     *string `json:"detail"`     // access_logs.detail (nullable)
	IPAddress  *string `json:"ipAddress"`  // access_logs.ip_address (nullable)
	UserAgent  *string `json:"userAgent"`  // access_logs.user_agent (nullable)
	AccessedAt string  `json:"accessedAt"` // access_logs.accessed_at
}
