// Package projection implements the vertex transform and perspective
// projection pipeline: model space → rotated space → screen space.
package projection

import (
	gomath "math"

	"github.com/Faultbox/meshview/pkg/math"
	"github.com/Faultbox/meshview/pkg/mesh"
)

// nearEpsilon is the smallest allowed projection denominator. A vertex at or
// behind the camera plane projects to a very large but finite coordinate
// instead of producing NaN or Inf.
const nearEpsilon = 1e-4

// View is the camera state for one frame: rotation angles in radians, the
// zoom multiplier, the fixed camera distance and the base projection scale.
type View struct {
	RotationX float32
	RotationY float32
	Zoom      float32
	Distance  float32
	Scale     float32
}

// Viewport is the target surface size in pixels.
type Viewport struct {
	Width  int
	Height int
}

// ScreenPoint is a projected vertex. Index is the position of the source
// vertex in the mesh, so face and edge references stay valid against the
// projected sequence.
type ScreenPoint struct {
	U, V  float32
	Index int
}

// RotateX rotates v about the X axis by angle radians (right-handed).
func RotateX(v math.Vec3, angle float32) math.Vec3 {
	sin, cos := sincos(angle)
	return math.Vec3{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}

// RotateY rotates v about the Y axis by angle radians (right-handed).
func RotateY(v math.Vec3, angle float32) math.Vec3 {
	sin, cos := sincos(angle)
	return math.Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// Project transforms every mesh vertex into screen space, preserving vertex
// order. It is a pure function of its inputs; no state survives the call.
func Project(m *mesh.Mesh, view View, vp Viewport) []ScreenPoint {
	points := make([]ScreenPoint, len(m.Vertices))

	sinX, cosX := sincos(view.RotationX)
	sinY, cosY := sincos(view.RotationY)
	scale := view.Scale * view.Zoom
	halfW := float32(vp.Width) / 2
	halfH := float32(vp.Height) / 2

	for i, v := range m.Vertices {
		// Rotation about X, then Y.
		y := v.Y*cosX - v.Z*sinX
		z := v.Y*sinX + v.Z*cosX
		x := v.X*cosY + z*sinY
		z = -v.X*sinY + z*cosY

		denom := z + view.Distance
		if denom < nearEpsilon {
			denom = nearEpsilon
		}
		factor := scale / denom

		points[i] = ScreenPoint{
			U:     x*factor + halfW,
			V:     -y*factor + halfH,
			Index: i,
		}
	}
	return points
}

func sincos(angle float32) (sin, cos float32) {
	s, c := gomath.Sincos(float64(angle))
	return float32(s), float32(c)
}
