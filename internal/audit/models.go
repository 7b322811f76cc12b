package audit

import "time"

// Action names for the events the core emits. Kept as constants so consumers
// can filter without string literals drifting.
const (
	ActionResidencyCreated = "residency.created"
	ActionResidencyClosed  = "residency.closed"
	ActionActivityRecorded = "activity.recorded"
	ActionActivityRejected = "activity.rejected"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp   time.Time
	Action      string
	ResidentID  string
	HomeID      string
	ResidencyID string
	GroupID     string
	Reason      string
}
