package render

import (
	"math"
	"strings"

	"github.com/assforge/asstk/ast"
)

// drawingFlattenSegments is how many line segments a cubic Bezier command is flattened into.
const drawingFlattenSegments = 12

// Tessellate parses one \p<n> drawing-mode path (the raw text between the override block's
// drawing-mode toggle and the next tag) into a sequence of flattened Subpaths in PlayRes space.
// scaleExp is the drawing scale from \p<n>: coordinates are divided by 2^(scaleExp-1) per ASS's
// drawing-scale convention.
//
// Supported commands are m (moveto), n (moveto without closing the previous subpath), l
// (lineto), b (cubic Bezier, three control points per segment), and c (close the current
// subpath). s (uniform b-spline) is approximated by straight lines through its control points
// rather than a true spline fit — drawings using it render as a close polygonal approximation,
// not a pixel-exact curve.
func Tessellate(raw string, scaleExp int) []Subpath {
	scale := 1.0
	if scaleExp > 1 {
		scale = 1 / math.Pow(2, float64(scaleExp-1))
	}

	tokens := strings.Fields(raw)
	var subpaths []Subpath
	var cur *Subpath
	var pos Point
	var cmd byte
	i := 0

	readPoint := func() (Point, bool) {
		if i+1 >= len(tokens) {
			return Point{}, false
		}
		x, okx := ast.ParseLooseFloat(tokens[i])
		y, oky := ast.ParseLooseFloat(tokens[i+1])
		if !okx || !oky {
			return Point{}, false
		}
		i += 2
		return Point{X: x * scale, Y: y * scale}, true
	}

	flushSubpath := func() {
		if cur != nil && len(cur.Points) > 0 {
			subpaths = append(subpaths, *cur)
		}
	}

	for i < len(tokens) {
		tok := tokens[i]
		if len(tok) == 1 && strings.ContainsRune("mlbscn", rune(tok[0])) {
			cmd = tok[0]
			i++
			continue
		}
		switch cmd {
		case 'm', 'n':
			p, ok := readPoint()
			if !ok {
				i++
				continue
			}
			flushSubpath()
			cur = &Subpath{Points: []Point{p}}
			pos = p
		case 'l', 's':
			p, ok := readPoint()
			if !ok {
				i++
				continue
			}
			if cur == nil {
				cur = &Subpath{Points: []Point{pos}}
			}
			cur.Points = append(cur.Points, p)
			pos = p
		case 'b':
			p1, ok1 := readPoint()
			p2, ok2 := readPoint()
			p3, ok3 := readPoint()
			if !ok1 || !ok2 || !ok3 {
				i = len(tokens)
				continue
			}
			if cur == nil {
				cur = &Subpath{Points: []Point{pos}}
			}
			cur.Points = append(cur.Points, flattenCubic(pos, p1, p2, p3, drawingFlattenSegments)...)
			pos = p3
		case 'c':
			if cur != nil {
				cur.Closed = true
			}
			i++
		default:
			i++
		}
	}
	flushSubpath()
	return subpaths
}

// flattenCubic samples the cubic Bezier p0,p1,p2,p3 into n line segments, excluding the starting
// point p0 (the caller already holds it as the subpath's current point).
func flattenCubic(p0, p1, p2, p3 Point, n int) []Point {
	out := make([]Point, 0, n)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		out = append(out, Point{
			X: cubicBezier1D(t, p0.X, p1.X, p2.X, p3.X),
			Y: cubicBezier1D(t, p0.Y, p1.Y, p2.Y, p3.Y),
		})
	}
	return out
}
