package mesh

import (
	"errors"
	"strings"
	"testing"
)

const triangleOBJ = `
# a single triangle
v 0.0 0.0 0.0
v 1.0 0.0 0.0
v 0.0 1.0 0.0
f 1 2 3
`

func TestParseOBJTriangle(t *testing.T) {
	m, err := ParseOBJ(strings.NewReader(triangleOBJ), "triangle")
	if err != nil {
		t.Fatalf("ParseOBJ() error = %v", err)
	}
	if len(m.Vertices) != 3 {
		t.Errorf("got %d vertices, want 3", len(m.Vertices))
	}
	if len(m.Faces) != 1 {
		t.Errorf("got %d faces, want 1", len(m.Faces))
	}
	if len(m.Edges) != 3 {
		t.Errorf("got %d edges, want 3", len(m.Edges))
	}
	// Indices shifted from 1-based to 0-based.
	want := Face{0, 1, 2}
	for i, idx := range m.Faces[0] {
		if idx != want[i] {
			t.Errorf("face index %d = %d, want %d", i, m.Faces[0][i], want[i])
		}
	}
}

func TestParseOBJQuadEdges(t *testing.T) {
	src := `
v -1 -1 0
v 1 -1 0
v 1 1 0
v -1 1 0
f 1 2 3 4
`
	m, err := ParseOBJ(strings.NewReader(src), "quad")
	if err != nil {
		t.Fatalf("ParseOBJ() error = %v", err)
	}
	if len(m.Edges) != 4 {
		t.Errorf("got %d edges, want 4 (winding closes back to the first vertex)", len(m.Edges))
	}
}

func TestParseOBJSlashReferences(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1/1/1 2/1/1 3/1/1
`
	m, err := ParseOBJ(strings.NewReader(src), "textured")
	if err != nil {
		t.Fatalf("ParseOBJ() error = %v", err)
	}
	if len(m.Faces) != 1 || len(m.Faces[0]) != 3 {
		t.Errorf("got faces %v, want one triangle", m.Faces)
	}
}

func TestParseOBJRejectsOutOfRangeIndex(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 4
`
	_, err := ParseOBJ(strings.NewReader(src), "bad")
	if !errors.Is(err, ErrFaceIndexRange) {
		t.Errorf("ParseOBJ() error = %v, want ErrFaceIndexRange", err)
	}
}

func TestParseOBJRejectsZeroIndex(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f 0 1 2
`
	_, err := ParseOBJ(strings.NewReader(src), "bad")
	if !errors.Is(err, ErrMalformedFace) {
		t.Errorf("ParseOBJ() error = %v, want ErrMalformedFace", err)
	}
}

func TestParseOBJRejectsMalformedVertex(t *testing.T) {
	_, err := ParseOBJ(strings.NewReader("v 1.0 nope 2.0\n"), "bad")
	if !errors.Is(err, ErrMalformedVertex) {
		t.Errorf("ParseOBJ() error = %v, want ErrMalformedVertex", err)
	}
}

func TestParseOBJIgnoresCommentsAndUnknownKeywords(t *testing.T) {
	src := `
# header comment
o triangle
s off
usemtl none
v 0 0 0 # inline comment
v 1 0 0
v 0 1 0
f 1 2 3
`
	m, err := ParseOBJ(strings.NewReader(src), "commented")
	if err != nil {
		t.Fatalf("ParseOBJ() error = %v", err)
	}
	if len(m.Vertices) != 3 {
		t.Errorf("got %d vertices, want 3", len(m.Vertices))
	}
}
