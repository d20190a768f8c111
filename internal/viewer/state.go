// Package viewer implements the interactive view state, the input-to-state
// transition logic, and the per-frame loop.
package viewer

import (
	gomath "math"

	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/engine/render"
	"github.com/Faultbox/meshview/pkg/mesh"
)

const twoPi = 2 * gomath.Pi

// State is the single mutable view state: rotation angles, zoom, auto-rotate
// flag, palette indices and the current mesh. There is exactly one instance
// per process, mutated only from the frame loop's thread.
type State struct {
	RotationX  float32 // radians, always in [0, 2*pi)
	RotationY  float32 // radians, always in [0, 2*pi)
	Zoom       float32 // always within [minZoom, maxZoom]
	AutoRotate bool
	Background int // index into render.Palette
	Object     int
	Mesh       *mesh.Mesh

	minZoom, maxZoom float32
}

// NewState creates the view state with its defaults and the starting mesh.
// The object starts black on a white background, matching the palette order.
func NewState(cfg config.ViewConfig, m *mesh.Mesh) *State {
	return &State{
		Zoom:       1.0,
		AutoRotate: cfg.AutoRotate,
		Background: 1, // white
		Object:     0, // black
		Mesh:       m,
		minZoom:    cfg.MinZoom,
		maxZoom:    cfg.MaxZoom,
	}
}

// Rotate applies a drag delta: horizontal motion spins about the Y axis,
// vertical motion about the X axis. Angles wrap into [0, 2*pi).
func (s *State) Rotate(dx, dy float32) {
	s.RotationY = wrapAngle(s.RotationY + dx)
	s.RotationX = wrapAngle(s.RotationX + dy)
}

// AutoRotateStep advances the Y rotation by the per-frame auto increment.
func (s *State) AutoRotateStep(speed float32) {
	s.RotationY = wrapAngle(s.RotationY + speed)
}

// AdjustZoom changes the zoom by delta, clamped to the configured range.
func (s *State) AdjustZoom(delta float32) {
	s.Zoom += delta
	if s.Zoom < s.minZoom {
		s.Zoom = s.minZoom
	}
	if s.Zoom > s.maxZoom {
		s.Zoom = s.maxZoom
	}
}

// ToggleAutoRotate flips the auto-rotate flag.
func (s *State) ToggleAutoRotate() {
	s.AutoRotate = !s.AutoRotate
}

// NextBackground advances the background color, wrapping at the palette end.
func (s *State) NextBackground() {
	s.Background = (s.Background + 1) % len(render.Palette)
}

// NextObject advances the object color, wrapping at the palette end.
func (s *State) NextObject() {
	s.Object = (s.Object + 1) % len(render.Palette)
}

// BackgroundColor returns the current background color.
func (s *State) BackgroundColor() render.Color {
	return render.Palette[s.Background]
}

// ObjectColor returns the current object color.
func (s *State) ObjectColor() render.Color {
	return render.Palette[s.Object]
}

// SetMesh replaces the current mesh wholesale. Callers only pass fully
// validated meshes, so a failed load never reaches this point and the old
// mesh stays renderable until the swap.
func (s *State) SetMesh(m *mesh.Mesh) {
	s.Mesh = m
}

// wrapAngle normalizes an angle into [0, 2*pi). Rotation is periodic, so
// nothing is lost by wrapping.
func wrapAngle(a float32) float32 {
	wrapped := float32(gomath.Mod(float64(a), twoPi))
	if wrapped < 0 {
		wrapped += twoPi
	}
	return wrapped
}
