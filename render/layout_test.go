package render

import (
	"testing"

	"github.com/assforge/asstk/plugin"
)

func TestAnchorFraction(t *testing.T) {
	cases := []struct {
		alignment  int
		hx, vy     float64
	}{
		{1, 0, 1},   // bottom-left
		{2, 0.5, 1}, // bottom-center
		{3, 1, 1},   // bottom-right
		{4, 0, 0.5}, // middle-left
		{5, 0.5, 0.5},
		{6, 1, 0.5},
		{7, 0, 0}, // top-left
		{8, 0.5, 0},
		{9, 1, 0},
	}
	for _, c := range cases {
		hx, vy := AnchorFraction(c.alignment)
		if hx != c.hx || vy != c.vy {
			t.Errorf("AnchorFraction(%d) = (%v,%v), want (%v,%v)", c.alignment, hx, vy, c.hx, c.vy)
		}
	}
}

func TestAnchorFractionOutOfRangeDefaultsToBottomCenter(t *testing.T) {
	hx, vy := AnchorFraction(0)
	if hx != 0.5 || vy != 1 {
		t.Fatalf("got (%v,%v), want bottom-center (alignment 2) default", hx, vy)
	}
}

func TestScreenScale(t *testing.T) {
	ctx := RenderContext{Width: 1920, Height: 1080}
	sx, sy := ScreenScale(ctx, 384, 288)
	if sx != 1920.0/384 || sy != 1080.0/288 {
		t.Fatalf("got (%v,%v)", sx, sy)
	}
}

func TestScreenScalePrefersContextPlayRes(t *testing.T) {
	ctx := RenderContext{Width: 1280, Height: 720, PlayResX: 1280, PlayResY: 720}
	sx, sy := ScreenScale(ctx, 384, 288)
	if sx != 1 || sy != 1 {
		t.Fatalf("got (%v,%v), want (1,1)", sx, sy)
	}
}

func TestDefaultPositionBottomCenter(t *testing.T) {
	p := DefaultPosition(384, 288, 10, 10, 10, 20, 2)
	if p.X != 192 || p.Y != 268 {
		t.Fatalf("got %+v, want {192 268}", p)
	}
}

func TestDefaultPositionTopLeft(t *testing.T) {
	p := DefaultPosition(384, 288, 15, 10, 5, 20, 7)
	if p.X != 15 || p.Y != 5 {
		t.Fatalf("got %+v, want {15 5}", p)
	}
}

func TestResolveMoveInterpolatesOverEventDuration(t *testing.T) {
	m := &plugin.MoveArgs{From: plugin.Point{X: 0, Y: 0}, To: plugin.Point{X: 100, Y: 200}}
	p := ResolveMove(m, 100, 50)
	if p.X != 50 || p.Y != 100 {
		t.Fatalf("got %+v, want {50 100}", p)
	}
}

func TestResolveMoveWithExplicitTiming(t *testing.T) {
	m := &plugin.MoveArgs{
		From: plugin.Point{X: 0, Y: 0}, To: plugin.Point{X: 100, Y: 100},
		HasTiming: true, T1: 50, T2: 150,
	}
	p := ResolveMove(m, 200, 50)
	if p.X != 0 || p.Y != 0 {
		t.Fatalf("got %+v, want {0 0} before T1", p)
	}
	p2 := ResolveMove(m, 200, 150)
	if p2.X != 100 || p2.Y != 100 {
		t.Fatalf("got %+v, want {100 100} at T2", p2)
	}
}
