// Package input translates SDL2 events into engine events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/argand/internal/engine"
)

// Window is the SDL window events are read for.
type Window interface {
	DrawableSize() (int, int)
	Minimized() bool
	ID() uint32
}

// minimizedWaitMS bounds how long PollEvents blocks while nothing can be presented.
const minimizedWaitMS = 100

// Input is the engine's EventSource for one SDL window.
type Input struct {
	window Window
	events []engine.Event
}

var _ engine.EventSource = (*Input)(nil)

// New creates an input handler for win.
func New(win Window) *Input {
	return &Input{
		window: win,
		events: make([]engine.Event, 0, 16),
	}
}

// PollEvents drains the SDL queue and returns the translated events. The
// returned slice is reused by the next call. While the window is minimized it
// waits briefly for the first event.
func (i *Input) PollEvents() []engine.Event {
	i.events = i.events[:0]

	if i.window.Minimized() {
		if event := sdl.WaitEventTimeout(minimizedWaitMS); event != nil {
			i.push(event)
		}
	}

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		i.push(event)
	}

	return i.events
}

func (i *Input) push(event sdl.Event) {
	if ev, ok := i.translate(event); ok {
		i.events = append(i.events, ev)
	}
}

func (i *Input) translate(event sdl.Event) (engine.Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return engine.Event{Kind: engine.EventCloseRequested}, true

	case *sdl.WindowEvent:
		if e.WindowID != i.window.ID() {
			return engine.Event{}, false
		}
		return i.windowEvent(e)

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			return engine.Event{Kind: engine.EventKeyPressed, Key: translateKey(e.Keysym.Scancode)}, true
		}
	}
	return engine.Event{}, false
}

func (i *Input) windowEvent(e *sdl.WindowEvent) (engine.Event, bool) {
	switch e.Event {
	case sdl.WINDOWEVENT_CLOSE:
		return engine.Event{Kind: engine.EventCloseRequested}, true

	case sdl.WINDOWEVENT_MINIMIZED:
		return engine.Event{Kind: engine.EventResize}, true

	case sdl.WINDOWEVENT_SIZE_CHANGED, sdl.WINDOWEVENT_RESTORED, sdl.WINDOWEVENT_DISPLAY_CHANGED:
		// The drawable size is authoritative; window coordinates are scaled on high-DPI.
		w, h := i.window.DrawableSize()
		return engine.Event{Kind: engine.EventResize, Width: clampSize(w), Height: clampSize(h)}, true

	case sdl.WINDOWEVENT_EXPOSED:
		return engine.Event{Kind: engine.EventRedrawRequested}, true
	}
	return engine.Event{}, false
}

func translateKey(code sdl.Scancode) engine.Key {
	if code == sdl.SCANCODE_ESCAPE {
		return engine.KeyEscape
	}
	return engine.KeyUnknown
}

func clampSize(v int) uint32 {
	if v < 0 {
		return 0
	}
	return uint32(v)
}
