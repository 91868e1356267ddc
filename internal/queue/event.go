// Package queue defines message payloads exchanged over the message broker
// plus the publisher and background consumer for the access-log pipeline.
package queue

// AccessEventQueue is the durable queue audit entries travel through.
const AccessEventQueue = "access.events"

// AccessEvent is published whenever a user action should be recorded in
// the access log.  It contains everything the consumer needs to write the
// row without querying the primary database, so a broker backlog never
// blocks request handling.
type AccessEvent struct {
    UserID     string `json:"user_id,omitempty"`
    UserName   string `json:"user_name,omitempty"`
    Action     string `json:"action"`
    Detail     string `json:"detail,omitempty"`
    IPAddress  string `json:"ip_address,omitempty"`
    UserAgent  string `json:"user_agent,omitempty"`
    AccessedAt string `json:"accessed_at"`
}
