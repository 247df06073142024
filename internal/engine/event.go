package engine

import "fmt"

// EventKind identifies a window event.
type EventKind int

const (
	EventNone EventKind = iota
	// EventResize carries the new drawable size. A zero dimension means minimized.
	EventResize
	EventCloseRequested
	EventKeyPressed
	EventRedrawRequested
)

func (k EventKind) String() string {
	switch k {
	case EventResize:
		return "resize"
	case EventCloseRequested:
		return "close_requested"
	case EventKeyPressed:
		return "key_pressed"
	case EventRedrawRequested:
		return "redraw_requested"
	}
	return "none"
}

// Key is a keyboard key the engine reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
)

// Event is a platform event translated for the engine.
type Event struct {
	Kind   EventKind
	Width  uint32
	Height uint32
	Key    Key
}

func (e Event) String() string {
	switch e.Kind {
	case EventResize:
		return fmt.Sprintf("resize(%dx%d)", e.Width, e.Height)
	case EventKeyPressed:
		return fmt.Sprintf("key_pressed(%d)", e.Key)
	}
	return e.Kind.String()
}

// EventSource delivers pending window events. PollEvents must not block.
type EventSource interface {
	PollEvents() []Event
}
