package render

import "github.com/veandco/go-sdl2/sdl"

// maxCoord bounds line endpoints before they are handed to SDL. Projected
// vertices near the camera plane can land far outside the viewport; the
// drawing still has to stay inside int32-safe range.
const maxCoord = 1 << 20

// Surface is the minimal drawing contract the renderer needs: clear the
// frame, draw a line, present the result.
type Surface interface {
	Clear(c Color) error
	DrawLine(x0, y0, x1, y1 float32, c Color) error
	Present()
}

// SDLSurface implements Surface on top of an SDL 2D renderer.
type SDLSurface struct {
	renderer *sdl.Renderer
}

// NewSDLSurface wraps an SDL renderer.
func NewSDLSurface(r *sdl.Renderer) *SDLSurface {
	return &SDLSurface{renderer: r}
}

// Clear fills the whole surface with c.
func (s *SDLSurface) Clear(c Color) error {
	if err := s.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	return s.renderer.Clear()
}

// DrawLine draws a line between two points. Coordinates far outside the
// viewport are clamped, not rejected; the off-screen part is simply not
// visible.
func (s *SDLSurface) DrawLine(x0, y0, x1, y1 float32, c Color) error {
	if err := s.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	return s.renderer.DrawLine(
		clampCoord(x0), clampCoord(y0),
		clampCoord(x1), clampCoord(y1),
	)
}

// Present flips the frame to the screen.
func (s *SDLSurface) Present() {
	s.renderer.Present()
}

func clampCoord(v float32) int32 {
	if v > maxCoord {
		return maxCoord
	}
	if v < -maxCoord {
		return -maxCoord
	}
	return int32(v)
}
