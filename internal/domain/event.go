package domain

import "time"

// Lifecycle event entity kinds
const (
	EntityRequest = "request"
	EntitySession = "session"
)

// LifecycleEvent records one successful state-machine transition.
type LifecycleEvent struct {
	EntityKind     string    `json:"entity_kind"`
	EntityID       string    `json:"entity_id"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	Timestamp      time.Time `json:"timestamp"`
}

// NotificationSink receives lifecycle events for user-facing display.
// Emit is fire-and-forget; the core never consumes a return value.
type NotificationSink interface {
	Emit(event LifecycleEvent)
}

// Clock supplies "now" so lifecycles stay testable and the expiry rule is
// driven by an external scheduler rather than the core itself.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }
