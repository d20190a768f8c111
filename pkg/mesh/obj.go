package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Faultbox/meshview/pkg/math"
)

// LoadOBJ reads a Wavefront OBJ file from disk.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model: %w", err)
	}
	defer f.Close()

	return ParseOBJ(f, filepath.Base(path))
}

// ParseOBJ parses the line-oriented Wavefront OBJ format. Vertex lines are
// "v x y z", face lines are "f i j k [l...]" with 1-based indices, which are
// converted to 0-based. "#" starts a comment; unknown keywords (vn, vt,
// usemtl, ...) are skipped. A face referencing a vertex that does not exist
// is a parse error, not something deferred to render time.
func ParseOBJ(r io.Reader, name string) (*Mesh, error) {
	var (
		vertices []math.Vec3
		faces    []Face
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			vertices = append(vertices, v)

		case "f":
			f, err := parseFace(fields[1:], len(vertices))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			faces = append(faces, f)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}

	return New(name, vertices, faces)
}

func parseVertex(fields []string) (math.Vec3, error) {
	if len(fields) < 3 {
		return math.Vec3{}, ErrMalformedVertex
	}
	var coords [3]float32
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("%w: %q", ErrMalformedVertex, fields[i])
		}
		coords[i] = float32(f)
	}
	return math.Vec3{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

func parseFace(fields []string, vertexCount int) (Face, error) {
	if len(fields) < 3 {
		return nil, ErrFaceTooShort
	}
	face := make(Face, 0, len(fields))
	for _, tok := range fields {
		// "i/vt/vn" references: only the vertex index matters here.
		if slash := strings.IndexByte(tok, '/'); slash >= 0 {
			tok = tok[:slash]
		}
		idx, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedFace, tok)
		}
		if idx < 1 {
			return nil, fmt.Errorf("%w: index %d (OBJ indices are 1-based)", ErrMalformedFace, idx)
		}
		if idx > vertexCount {
			return nil, fmt.Errorf("index %d with %d vertices: %w", idx, vertexCount, ErrFaceIndexRange)
		}
		face = append(face, idx-1)
	}
	return face, nil
}
