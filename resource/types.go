package resource

import "reflect"

// Handle is an opaque reference to a box in a table.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Event types for table lifecycle notifications.
type EventType uint8

const (
	EventCreated EventType = iota
	EventRemoved
	EventDropped
)

func (e EventType) String() string {
	switch e {
	case EventCreated:
		return "created"
	case EventRemoved:
		return "removed"
	case EventDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// Event represents a table lifecycle event.
type Event struct {
	GoType reflect.Type
	Handle Handle
	Type   EventType
}

// Observer receives notifications about table lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}
