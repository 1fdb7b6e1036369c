// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}

// Status reports whether an event was consumed by a handler.
type Status uint8

const (
	// Ignored means the handler did not consume the event and it
	// may be offered to other handlers.
	Ignored Status = iota
	// Captured means the handler consumed the event.
	Captured
)

// Merge combines two statuses. The result is Captured if either
// is.
func (s Status) Merge(s2 Status) Status {
	if s == Captured || s2 == Captured {
		return Captured
	}
	return Ignored
}

func (s Status) String() string {
	switch s {
	case Ignored:
		return "Ignored"
	case Captured:
		return "Captured"
	default:
		panic("unknown Status")
	}
}
