package dispatcher

import "github.com/dshills/chessterm/internal/input/key"

// EventType tags the variant held by an Event.
type EventType uint8

const (
	// EventNone carries no input.
	EventNone EventType = iota
	// EventKey carries a keyboard event in Event.Key.
	EventKey
	// EventUpdate is the synthetic per-frame tick generated by the loop.
	EventUpdate
)

// String returns the variant name.
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "Key"
	case EventUpdate:
		return "Update"
	default:
		return "None"
	}
}

// Event is the unit of dispatch. Only EventKey uses the Key field.
type Event struct {
	Type EventType
	Key  key.Event
}

// NoneEvent returns an empty event.
func NoneEvent() Event {
	return Event{Type: EventNone}
}

// KeyEvent wraps a keyboard event.
func KeyEvent(ev key.Event) Event {
	return Event{Type: EventKey, Key: ev}
}

// UpdateEvent returns the per-frame update event.
func UpdateEvent() Event {
	return Event{Type: EventUpdate}
}

// String returns a short description such as "Key(<C-c>)".
func (e Event) String() string {
	if e.Type == EventKey {
		return "Key(" + e.Key.String() + ")"
	}
	return e.Type.String()
}
