package viewer

import (
	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/engine/input"
)

// Command asks the frame loop to do something the state alone cannot express.
type Command int

// Commands.
const (
	CommandNone Command = iota
	CommandLoadModel
	CommandExit
)

// Controller is the transition function from input events to state changes.
// It owns the drag bookkeeping: whether the left button is held and whether
// any drag rotation was applied during the current frame.
type Controller struct {
	sensitivity float32
	zoomStep    float32

	dragging         bool
	draggedThisFrame bool
}

// NewController creates a controller with the configured sensitivities.
func NewController(cfg config.ViewConfig) *Controller {
	return &Controller{
		sensitivity: cfg.DragSensitivity,
		zoomStep:    cfg.ZoomStep,
	}
}

// BeginFrame resets the per-frame drag marker. Call once before applying the
// frame's events.
func (c *Controller) BeginFrame() {
	c.draggedThisFrame = false
}

// DraggedThisFrame reports whether a drag rotation was applied since the
// last BeginFrame. A manual drag suppresses the auto-rotate increment for
// that frame only; the flag resets next frame.
func (c *Controller) DraggedThisFrame() bool {
	return c.draggedThisFrame
}

// Apply feeds one event through the state machine. Unrecognized events and
// keys are no-ops: the viewer stays interactive no matter what arrives.
func (c *Controller) Apply(s *State, ev input.Event) Command {
	switch ev.Type {
	case input.EventQuit:
		return CommandExit

	case input.EventMouseDown:
		if ev.Button == input.LeftButton {
			c.dragging = true
		}

	case input.EventMouseUp:
		if ev.Button == input.LeftButton {
			c.dragging = false
		}

	case input.EventMouseMove:
		if c.dragging && (ev.DX != 0 || ev.DY != 0) {
			s.Rotate(float32(ev.DX)*c.sensitivity, float32(ev.DY)*c.sensitivity)
			c.draggedThisFrame = true
		}

	case input.EventKeyDown:
		switch ev.Key {
		case input.KeyEscape:
			return CommandExit
		case input.KeySpace:
			s.ToggleAutoRotate()
		case input.KeyUp, input.KeyEquals:
			s.AdjustZoom(c.zoomStep)
		case input.KeyDown, input.KeyMinus:
			s.AdjustZoom(-c.zoomStep)
		case input.KeyB:
			s.NextBackground()
		case input.KeyM:
			s.NextObject()
		case input.KeyL:
			return CommandLoadModel
		}
	}
	return CommandNone
}
