// Package input drains SDL2 events into viewer-level input events.
package input

import "github.com/veandco/go-sdl2/sdl"

// EventType classifies an input event.
type EventType int

// Event types.
const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseDown
	EventMouseUp
	EventMouseMove
)

// Key identifies the keys the viewer reacts to. Anything else maps to
// KeyUnknown and is ignored downstream.
type Key int

// Recognized keys.
const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyUp
	KeyDown
	KeyEquals
	KeyMinus
	KeyB
	KeyM
	KeyL
)

// Event is one processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Width  int // window resize
	Height int
	X, Y   int // mouse position
	DX, DY int // mouse motion delta
	Button uint8
}

// LeftButton is the mouse button used for drag rotation.
const LeftButton = 1 // sdl.BUTTON_LEFT

// Input polls and buffers SDL events once per frame.
type Input struct {
	events []Event
}

// New creates an input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update drains all pending SDL events into the frame's event list.
// It never blocks; an empty queue yields an empty list.
func (in *Input) Update() {
	in.events = in.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			in.events = append(in.events, Event{Type: EventQuit})

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				in.events = append(in.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				in.events = append(in.events, Event{
					Type: EventKeyDown,
					Key:  mapScancode(e.Keysym.Scancode),
				})
			}

		case *sdl.MouseButtonEvent:
			t := EventMouseDown
			if e.Type == sdl.MOUSEBUTTONUP {
				t = EventMouseUp
			}
			in.events = append(in.events, Event{
				Type:   t,
				X:      int(e.X),
				Y:      int(e.Y),
				Button: e.Button,
			})

		case *sdl.MouseMotionEvent:
			in.events = append(in.events, Event{
				Type: EventMouseMove,
				X:    int(e.X),
				Y:    int(e.Y),
				DX:   int(e.XRel),
				DY:   int(e.YRel),
			})
		}
	}
}

// Events returns the events from the last Update. The slice is reused
// between frames; callers must not retain it.
func (in *Input) Events() []Event {
	return in.events
}

func mapScancode(sc sdl.Scancode) Key {
	switch sc {
	case sdl.SCANCODE_ESCAPE:
		return KeyEscape
	case sdl.SCANCODE_SPACE:
		return KeySpace
	case sdl.SCANCODE_UP:
		return KeyUp
	case sdl.SCANCODE_DOWN:
		return KeyDown
	case sdl.SCANCODE_EQUALS:
		return KeyEquals
	case sdl.SCANCODE_MINUS:
		return KeyMinus
	case sdl.SCANCODE_B:
		return KeyB
	case sdl.SCANCODE_M:
		return KeyM
	case sdl.SCANCODE_L:
		return KeyL
	default:
		return KeyUnknown
	}
}
