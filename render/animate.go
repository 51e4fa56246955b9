package render

import "math"

// An Easing selects how \t(...)'s progress fraction is reshaped before interpolation, per
// spec.md §4.7.2's Accelerating/Decelerating/Bezier table.
type Easing int

const (
	Linear Easing = iota
	Accelerating
	Decelerating
	Bezier
)

// An AnimationTrack is one interpolated property over an event's lifetime, built by diffing the
// plugin.AnimationState before and after a \t(...) block's target tags are applied (transform.go). Timing
// is centiseconds relative to the event's own start.
type AnimationTrack struct {
	Property  string
	T1, T2    int
	Accel     float64 // used when Kind == Accelerating or Decelerating
	BezierX1, BezierY1, BezierX2, BezierY2 float64
	Kind      Easing

	StartValue, EndValue any
}

// progress returns the clamped linear fraction of tCs through [t1, t2], per spec.md §4.7.2:
// "linear = clamp((t - t1) / max(t2 - t1, 1), 0, 1)".
func progress(tCs, t1, t2 int) float64 {
	span := t2 - t1
	if span < 1 {
		span = 1
	}
	p := float64(tCs-t1) / float64(span)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// ease reshapes a linear progress fraction p according to track's easing kind.
func ease(track AnimationTrack, p float64) float64 {
	switch track.Kind {
	case Accelerating:
		k := track.Accel
		if k <= 0 {
			k = 1
		}
		return math.Pow(p, k)
	case Decelerating:
		k := track.Accel
		if k <= 0 {
			k = 1
		}
		return 1 - math.Pow(1-p, k)
	case Bezier:
		return bezierY(p, track.BezierX1, track.BezierY1, track.BezierX2, track.BezierY2)
	default:
		return p
	}
}

// cubicBezier1D evaluates one axis of a cubic Bezier with endpoints (0,v0) and (1,v3) and
// control ordinates v1, v2 at parameter t.
func cubicBezier1D(t, v0, v1, v2, v3 float64) float64 {
	mt := 1 - t
	return mt*mt*mt*v0 + 3*mt*mt*t*v1 + 3*mt*t*t*v2 + t*t*t*v3
}

// bezierY evaluates the cubic Bezier (0,0),(x1,y1),(x2,y2),(1,1) at x = p by binary-search
// inversion on the x axis to find t, then returns y(t) — the Open Question decision recorded in
// DESIGN.md for spec.md §4.7.2's "derived y from fixed x progression".
func bezierY(p, x1, y1, x2, y2 float64) float64 {
	lo, hi := 0.0, 1.0
	for i := 0; i < 30; i++ {
		mid := (lo + hi) / 2
		x := cubicBezier1D(mid, 0, x1, x2, 1)
		if x < p {
			lo = mid
		} else {
			hi = mid
		}
	}
	t := (lo + hi) / 2
	return cubicBezier1D(t, 0, y1, y2, 1)
}

// lerpColor linearly interpolates each RGBA channel independently as a float, per spec.md
// §4.7.2's Color/Color row, rounding to the nearest u8 at the end.
func lerpColor(a, b RGBA, p float64) RGBA {
	lerp := func(x, y uint8) uint8 {
		v := float64(x) + (float64(y)-float64(x))*p
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		return uint8(math.Round(v))
	}
	return RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

// Evaluate returns track's interpolated value at tCs, per spec.md §4.7.2's interpolation table:
// Float/Float lerps directly, Integer/Integer lerps then rounds, Position lerps componentwise,
// Color lerps componentwise per channel, and a type mismatch between start/end leaves the value
// unchanged (returns StartValue).
func (track AnimationTrack) Evaluate(tCs int) any {
	p := ease(track, progress(tCs, track.T1, track.T2))
	switch s := track.StartValue.(type) {
	case float64:
		e, ok := track.EndValue.(float64)
		if !ok {
			return s
		}
		return s + (e-s)*p
	case int:
		e, ok := track.EndValue.(int)
		if !ok {
			return s
		}
		return int(math.Round(float64(s) + (float64(e)-float64(s))*p))
	case Point:
		e, ok := track.EndValue.(Point)
		if !ok {
			return s
		}
		return Point{X: s.X + (e.X-s.X)*p, Y: s.Y + (e.Y-s.Y)*p}
	case RGBA:
		e, ok := track.EndValue.(RGBA)
		if !ok {
			return s
		}
		return lerpColor(s, e, p)
	default:
		return track.StartValue
	}
}
