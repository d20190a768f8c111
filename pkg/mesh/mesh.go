// Package mesh provides the polygonal mesh data model and file loaders.
package mesh

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Faultbox/meshview/pkg/math"
)

// Load-time validation errors.
var (
	ErrMalformedVertex   = errors.New("malformed vertex line")
	ErrMalformedFace     = errors.New("malformed face line")
	ErrFaceTooShort      = errors.New("face needs at least 3 vertices")
	ErrFaceIndexRange    = errors.New("face index out of range")
	ErrUnsupportedFormat = errors.New("unsupported model format")
)

// Face is an ordered list of indices into a mesh's vertex slice.
type Face []int

// Mesh is an immutable polygonal surface: vertices, faces, and the
// deduplicated edge set derived from the face windings. A Mesh is built
// once by New and never mutated; the viewer swaps whole meshes.
type Mesh struct {
	Name     string
	Vertices []math.Vec3
	Faces    []Face
	Edges    [][2]int
}

// New validates the faces against the vertex count and builds the edge set.
// Every face must have at least 3 indices, all within range.
func New(name string, vertices []math.Vec3, faces []Face) (*Mesh, error) {
	for fi, f := range faces {
		if len(f) < 3 {
			return nil, fmt.Errorf("face %d: %w", fi, ErrFaceTooShort)
		}
		for _, idx := range f {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("face %d: index %d with %d vertices: %w",
					fi, idx, len(vertices), ErrFaceIndexRange)
			}
		}
	}

	return &Mesh{
		Name:     name,
		Vertices: vertices,
		Faces:    faces,
		Edges:    buildEdges(faces),
	}, nil
}

// buildEdges walks each face's winding and collects unique undirected edges.
func buildEdges(faces []Face) [][2]int {
	seen := make(map[[2]int]struct{})
	var edges [][2]int

	for _, f := range faces {
		for i := range f {
			a, b := f[i], f[(i+1)%len(f)]
			if a == b {
				continue
			}
			if b < a {
				a, b = b, a
			}
			key := [2]int{a, b}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, key)
		}
	}
	return edges
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (m *Mesh) Bounds() (min, max math.Vec3) {
	if len(m.Vertices) == 0 {
		return math.Vec3{}, math.Vec3{}
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return min, max
}

// Cube returns the built-in default mesh: a unit cube with 8 vertices,
// 6 quad faces and 12 unique edges. The viewer starts with it so there is
// always something renderable.
func Cube() *Mesh {
	vertices := []math.Vec3{
		{X: -1, Y: -1, Z: -1},
		{X: 1, Y: -1, Z: -1},
		{X: 1, Y: 1, Z: -1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1},
		{X: 1, Y: -1, Z: 1},
		{X: 1, Y: 1, Z: 1},
		{X: -1, Y: 1, Z: 1},
	}
	faces := []Face{
		{0, 1, 2, 3}, // back
		{4, 5, 6, 7}, // front
		{0, 1, 5, 4}, // bottom
		{2, 3, 7, 6}, // top
		{1, 2, 6, 5}, // right
		{3, 0, 4, 7}, // left
	}
	return &Mesh{
		Name:     "cube",
		Vertices: vertices,
		Faces:    faces,
		Edges:    buildEdges(faces),
	}
}

// Load reads a model file, dispatching on the extension.
// Supported: .obj (Wavefront), .glb/.gltf (glTF 2.0).
func Load(path string) (*Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return LoadOBJ(path)
	case ".glb", ".gltf":
		return LoadGLTF(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}
