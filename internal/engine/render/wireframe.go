package render

import "github.com/Faultbox/meshview/internal/engine/projection"

// DrawWireframe redraws one full frame: clear to the background color, then
// draw every mesh edge between its projected endpoints in the object color.
// Edges index into points, which preserve vertex order, so no bounds checks
// are needed beyond what the mesh loader already guaranteed.
func DrawWireframe(s Surface, points []projection.ScreenPoint, edges [][2]int, background, object Color) error {
	if err := s.Clear(background); err != nil {
		return err
	}

	for _, e := range edges {
		p0, p1 := points[e[0]], points[e[1]]
		if err := s.DrawLine(p0.U, p0.V, p1.U, p1.V, object); err != nil {
			return err
		}
	}
	return nil
}
