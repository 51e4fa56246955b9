package render

import "github.com/assforge/asstk/plugin"

// AnchorFraction returns the horizontal and vertical fraction, each in [0,1], of a text block's
// bounding box that an alignment value (the numpad layout: 7 8 9 / 4 5 6 / 1 2 3) anchors to a
// position. hx is 0/0.5/1 for left/center/right; vy is 0/0.5/1 for top/middle/bottom.
func AnchorFraction(alignment int) (hx, vy float64) {
	if alignment < 1 || alignment > 9 {
		alignment = 2
	}
	col := (alignment - 1) % 3
	row := (alignment - 1) / 3
	switch col {
	case 0:
		hx = 0
	case 1:
		hx = 0.5
	case 2:
		hx = 1
	}
	switch row {
	case 0:
		vy = 1 // bottom row
	case 1:
		vy = 0.5 // middle row
	case 2:
		vy = 0 // top row
	}
	return hx, vy
}

// ScreenScale returns the multiplier that converts PlayRes-space coordinates to screen pixels
// for ctx's output dimensions.
func ScreenScale(ctx RenderContext, playResX, playResY float64) (sx, sy float64) {
	px, py := playResX, playResY
	if ctx.PlayResX > 0 {
		px = ctx.PlayResX
	}
	if ctx.PlayResY > 0 {
		py = ctx.PlayResY
	}
	if px <= 0 {
		px = 384
	}
	if py <= 0 {
		py = 288
	}
	return float64(ctx.Width) / px, float64(ctx.Height) / py
}

// DefaultPosition computes the position an event with no explicit \pos/\move renders at, from
// its resolved style's margins and the text's effective alignment, in PlayRes space. Horizontal
// placement honors MarginL/MarginR against the left/right anchor columns and centers otherwise;
// vertical placement honors MarginT for a top-row alignment and MarginB for a bottom-row
// alignment, falling back to vertical center for the middle row.
func DefaultPosition(playResX, playResY float64, marginL, marginR, marginT, marginB int, alignment int) Point {
	hx, vy := AnchorFraction(alignment)

	var x float64
	switch hx {
	case 0:
		x = float64(marginL)
	case 1:
		x = playResX - float64(marginR)
	default:
		x = playResX / 2
	}

	var y float64
	switch vy {
	case 0:
		y = float64(marginT)
	case 1:
		y = playResY - float64(marginB)
	default:
		y = playResY / 2
	}
	return Point{X: x, Y: y}
}

// AnchorOffset returns the top-left corner of a w x h box whose anchor point (hx, vy fractions
// into the box) is placed at anchor.
func AnchorOffset(anchor Point, w, h, hx, vy float64) Point {
	return Point{X: anchor.X - w*hx, Y: anchor.Y - h*vy}
}

// ResolveMove returns the PlayRes-space position a \move(...) interpolates to at tCs, clamped to
// m's own timing window (or to [0, eventDurationCs] when the tag omitted explicit timing, per
// ASS's "move spans the whole event by default" behavior).
func ResolveMove(m *plugin.MoveArgs, eventDurationCs, tCs int) Point {
	t1, t2 := 0, eventDurationCs
	if m.HasTiming {
		t1, t2 = m.T1, m.T2
	}
	p := progress(tCs, t1, t2)
	return Point{
		X: m.From.X + (m.To.X-m.From.X)*p,
		Y: m.From.Y + (m.To.Y-m.From.Y)*p,
	}
}
