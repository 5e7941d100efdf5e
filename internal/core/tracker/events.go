package tracker

import "time"

// State represents the externally observable tracker mode.
type State string

const (
	StateActive State = "active"
	StateIdle   State = "idle"
)

// EventType defines the type of tracker event.
type EventType string

const (
	// EventStateChange is emitted immediately when activity resets the
	// idle clock, without waiting for the next poll.
	EventStateChange EventType = "state_change"
	// EventProgress is emitted on every poll tick with the current state
	// and the elapsed time since the last activity.
	EventProgress EventType = "progress"
)

// Event represents a tracker update for observers.
type Event struct {
	Type    EventType
	State   State
	Elapsed time.Duration
	At      time.Time
}
