package render

import (
	"testing"

	"github.com/Faultbox/meshview/internal/engine/projection"
)

// recordSurface records draw calls for assertions.
type recordSurface struct {
	cleared   []Color
	lines     [][4]float32
	lineColor []Color
	presented int
}

func (r *recordSurface) Clear(c Color) error {
	r.cleared = append(r.cleared, c)
	return nil
}

func (r *recordSurface) DrawLine(x0, y0, x1, y1 float32, c Color) error {
	r.lines = append(r.lines, [4]float32{x0, y0, x1, y1})
	r.lineColor = append(r.lineColor, c)
	return nil
}

func (r *recordSurface) Present() {
	r.presented++
}

func TestDrawWireframe(t *testing.T) {
	points := []projection.ScreenPoint{
		{U: 10, V: 10, Index: 0},
		{U: 50, V: 10, Index: 1},
		{U: 30, V: 40, Index: 2},
	}
	edges := [][2]int{{0, 1}, {1, 2}, {0, 2}}

	s := &recordSurface{}
	if err := DrawWireframe(s, points, edges, Black, White); err != nil {
		t.Fatalf("DrawWireframe() error = %v", err)
	}

	if len(s.cleared) != 1 || s.cleared[0] != Black {
		t.Errorf("cleared = %v, want one clear to black", s.cleared)
	}
	if len(s.lines) != 3 {
		t.Fatalf("drew %d lines, want 3", len(s.lines))
	}
	if s.lines[0] != [4]float32{10, 10, 50, 10} {
		t.Errorf("first line = %v, want {10 10 50 10}", s.lines[0])
	}
	for i, c := range s.lineColor {
		if c != White {
			t.Errorf("line %d color = %v, want white", i, c)
		}
	}
}

func TestDrawWireframeDeterministic(t *testing.T) {
	points := []projection.ScreenPoint{{U: 0, V: 0}, {U: 1e9, V: -1e9, Index: 1}}
	edges := [][2]int{{0, 1}}

	a, b := &recordSurface{}, &recordSurface{}
	if err := DrawWireframe(a, points, edges, Blue, Red); err != nil {
		t.Fatalf("DrawWireframe() error = %v", err)
	}
	if err := DrawWireframe(b, points, edges, Blue, Red); err != nil {
		t.Fatalf("DrawWireframe() error = %v", err)
	}
	if len(a.lines) != len(b.lines) || a.lines[0] != b.lines[0] {
		t.Error("identical input produced different draw calls")
	}
}

func TestClampCoord(t *testing.T) {
	if got := clampCoord(1e30); got != maxCoord {
		t.Errorf("clampCoord(1e30) = %d, want %d", got, int32(maxCoord))
	}
	if got := clampCoord(-1e30); got != -maxCoord {
		t.Errorf("clampCoord(-1e30) = %d, want %d", got, int32(-maxCoord))
	}
	if got := clampCoord(123.7); got != 123 {
		t.Errorf("clampCoord(123.7) = %d, want 123", got)
	}
}

func TestPaletteOrder(t *testing.T) {
	want := []Color{Black, White, Red, Green, Blue}
	if len(Palette) != len(want) {
		t.Fatalf("palette has %d colors, want %d", len(Palette), len(want))
	}
	for i := range want {
		if Palette[i] != want[i] {
			t.Errorf("palette[%d] = %v, want %v", i, Palette[i], want[i])
		}
	}
}
