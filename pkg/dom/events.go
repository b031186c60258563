package dom

import "context"

// EventType names a dispatched event.
type EventType string

const (
	EventInput  EventType = "input"
	EventSubmit EventType = "submit"
)

// Event is dispatched to listeners registered on an element id.
type Event struct {
	Type   EventType
	Target string

	ctx              context.Context
	defaultPrevented bool
}

// NewEvent constructs an event for the target element.
func NewEvent(ctx context.Context, typ EventType, target string) *Event {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Event{Type: typ, Target: target, ctx: ctx}
}

// Context returns the context the event was dispatched with.
func (e *Event) Context() context.Context {
	return e.ctx
}

// PreventDefault cancels the default action of the event.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener cancelled the default action.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Handler is an event listener.
type Handler func(event *Event)

type listenerKey struct {
	target string
	typ    EventType
}
