package render

import "testing"

func TestTessellateMoveLineClose(t *testing.T) {
	subpaths := Tessellate("m 0 0 l 10 0 l 10 10 c", 1)
	if len(subpaths) != 1 {
		t.Fatalf("got %d subpaths, want 1", len(subpaths))
	}
	sp := subpaths[0]
	if !sp.Closed {
		t.Fatal("expected subpath to be closed")
	}
	want := []Point{{0, 0}, {10, 0}, {10, 10}}
	if len(sp.Points) != len(want) {
		t.Fatalf("got %d points, want %d", len(sp.Points), len(want))
	}
	for i, p := range want {
		if sp.Points[i] != p {
			t.Errorf("point %d = %+v, want %+v", i, sp.Points[i], p)
		}
	}
}

func TestTessellateAppliesDrawingScale(t *testing.T) {
	subpaths := Tessellate("m 0 0 l 20 40", 2)
	if len(subpaths) != 1 || len(subpaths[0].Points) != 2 {
		t.Fatalf("got %+v", subpaths)
	}
	got := subpaths[0].Points[1]
	if got.X != 10 || got.Y != 20 {
		t.Fatalf("scale exponent 2 should halve coordinates, got %+v", got)
	}
}

func TestTessellateMultipleSubpaths(t *testing.T) {
	subpaths := Tessellate("m 0 0 l 10 0 m 20 20 l 30 20", 1)
	if len(subpaths) != 2 {
		t.Fatalf("got %d subpaths, want 2", len(subpaths))
	}
}

func TestTessellateBezierFlattensIntoSegments(t *testing.T) {
	subpaths := Tessellate("m 0 0 b 0 10 10 10 10 0", 1)
	if len(subpaths) != 1 {
		t.Fatalf("got %d subpaths, want 1", len(subpaths))
	}
	// 1 starting point + drawingFlattenSegments sampled points.
	if got, want := len(subpaths[0].Points), 1+drawingFlattenSegments; got != want {
		t.Fatalf("got %d points, want %d", got, want)
	}
	last := subpaths[0].Points[len(subpaths[0].Points)-1]
	if last.X != 10 || last.Y != 0 {
		t.Fatalf("last flattened point = %+v, want the curve's end point {10 0}", last)
	}
}

func TestTessellateEmptyInput(t *testing.T) {
	if got := Tessellate("", 1); len(got) != 0 {
		t.Fatalf("got %+v, want no subpaths", got)
	}
}
