package mesh

import (
	"encoding/binary"
	"fmt"
	gomath "math"
	"path/filepath"

	"github.com/qmuntal/gltf"

	"github.com/Faultbox/meshview/pkg/math"
)

// LoadGLTF reads a glTF 2.0 document (.gltf or binary .glb) and flattens
// every triangle primitive into a single Mesh. Only POSITION data and the
// triangle indices are read; normals, UVs and materials have no meaning for
// a wireframe view.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	var (
		vertices []math.Vec3
		faces    []Face
	)

	for _, gm := range doc.Meshes {
		for _, prim := range gm.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}

			positions, err := readPositions(doc, posIdx)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: %w", gm.Name, err)
			}

			base := len(vertices)
			vertices = append(vertices, positions...)

			if prim.Indices != nil {
				indices, err := readIndices(doc, *prim.Indices)
				if err != nil {
					return nil, fmt.Errorf("mesh %q: %w", gm.Name, err)
				}
				for i := 0; i+2 < len(indices); i += 3 {
					faces = append(faces, Face{
						base + indices[i],
						base + indices[i+1],
						base + indices[i+2],
					})
				}
			} else {
				// Unindexed primitive: sequential triangles.
				for i := 0; i+2 < len(positions); i += 3 {
					faces = append(faces, Face{base + i, base + i + 1, base + i + 2})
				}
			}
		}
	}

	return New(filepath.Base(path), vertices, faces)
}

// readPositions decodes a VEC3 float accessor.
func readPositions(doc *gltf.Document, accessorIdx int) ([]math.Vec3, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("position accessor: expected float VEC3, got %v/%v",
			accessor.Type, accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor)
	if err != nil {
		return nil, err
	}
	if stride == 0 {
		stride = 12
	}
	if accessor.Count > 0 && (accessor.Count-1)*stride+12 > len(data) {
		return nil, fmt.Errorf("position accessor: buffer too short for %d elements", accessor.Count)
	}

	out := make([]math.Vec3, accessor.Count)
	for i := 0; i < accessor.Count; i++ {
		off := i * stride
		out[i] = math.Vec3{
			X: readFloat32(data[off:]),
			Y: readFloat32(data[off+4:]),
			Z: readFloat32(data[off+8:]),
		}
	}
	return out, nil
}

// readIndices decodes a scalar index accessor (ubyte, ushort or uint).
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("index accessor: expected SCALAR, got %v", accessor.Type)
	}

	data, stride, err := accessorBytes(doc, accessor)
	if err != nil {
		return nil, err
	}

	width := map[gltf.ComponentType]int{
		gltf.ComponentUbyte:  1,
		gltf.ComponentUshort: 2,
		gltf.ComponentUint:   4,
	}[accessor.ComponentType]
	if width == 0 {
		return nil, fmt.Errorf("index accessor: unsupported component type %v", accessor.ComponentType)
	}
	if stride == 0 {
		stride = width
	}
	if accessor.Count > 0 && (accessor.Count-1)*stride+width > len(data) {
		return nil, fmt.Errorf("index accessor: buffer too short for %d elements", accessor.Count)
	}

	out := make([]int, accessor.Count)
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		for i := 0; i < accessor.Count; i++ {
			out[i] = int(data[i*stride])
		}
	case gltf.ComponentUshort:
		for i := 0; i < accessor.Count; i++ {
			out[i] = int(binary.LittleEndian.Uint16(data[i*stride:]))
		}
	case gltf.ComponentUint:
		for i := 0; i < accessor.Count; i++ {
			out[i] = int(binary.LittleEndian.Uint32(data[i*stride:]))
		}
	}
	return out, nil
}

// accessorBytes returns the raw bytes backing an accessor, starting at the
// accessor's first element, along with the byte stride (0 = tightly packed).
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor) ([]byte, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, fmt.Errorf("accessor has no buffer view")
	}
	view := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[view.Buffer]
	if len(buffer.Data) == 0 {
		return nil, 0, fmt.Errorf("buffer %d has no data", view.Buffer)
	}

	start := view.ByteOffset + accessor.ByteOffset
	if start > len(buffer.Data) {
		return nil, 0, fmt.Errorf("accessor offset %d beyond buffer size %d", start, len(buffer.Data))
	}
	return buffer.Data[start:], view.ByteStride, nil
}

func readFloat32(b []byte) float32 {
	return gomath.Float32frombits(binary.LittleEndian.Uint32(b))
}
