package render

import (
	"testing"

	"github.com/assforge/asstk/ast"
)

func TestLayerKindString(t *testing.T) {
	cases := map[LayerKind]string{
		LayerText:   "text",
		LayerVector: "vector",
		LayerClip:   "clip",
		LayerKind(99): "unknown",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("LayerKind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestBoundingBoxIntersects(t *testing.T) {
	a := BoundingBox{X: 0, Y: 0, W: 10, H: 10}
	b := BoundingBox{X: 5, Y: 5, W: 10, H: 10}
	c := BoundingBox{X: 20, Y: 20, W: 10, H: 10}
	if !a.Intersects(b) {
		t.Fatal("expected a and b to intersect")
	}
	if a.Intersects(c) {
		t.Fatal("expected a and c not to intersect")
	}
	// touching edges do not count as overlap
	d := BoundingBox{X: 10, Y: 0, W: 10, H: 10}
	if a.Intersects(d) {
		t.Fatal("expected touching edges not to count as overlap")
	}
}

func TestBoundingBoxOverlapArea(t *testing.T) {
	a := BoundingBox{X: 0, Y: 0, W: 10, H: 10}
	b := BoundingBox{X: 5, Y: 5, W: 10, H: 10}
	if got := a.OverlapArea(b); got != 25 {
		t.Fatalf("got overlap area %v, want 25", got)
	}
	c := BoundingBox{X: 20, Y: 20, W: 10, H: 10}
	if got := a.OverlapArea(c); got != 0 {
		t.Fatalf("got overlap area %v, want 0", got)
	}
}

func TestBoundingBoxExpand(t *testing.T) {
	a := BoundingBox{X: 10, Y: 10, W: 20, H: 20}
	e := a.Expand(5)
	want := BoundingBox{X: 5, Y: 5, W: 30, H: 30}
	if e != want {
		t.Fatalf("got %+v, want %+v", e, want)
	}
}

func TestRenderContextKindEnabled(t *testing.T) {
	ctx := RenderContext{}
	if !ctx.kindEnabled(ast.EventDialogue) {
		t.Fatal("expected Dialogue always enabled")
	}
	if ctx.kindEnabled(ast.EventComment) {
		t.Fatal("expected Comment disabled with nil EnabledKinds")
	}
	ctx.EnabledKinds = map[ast.EventKind]bool{ast.EventComment: true}
	if !ctx.kindEnabled(ast.EventComment) {
		t.Fatal("expected Comment enabled once added to EnabledKinds")
	}
}
