package compositor

import (
	"math"

	"github.com/assforge/asstk/internal/text"
	"github.com/assforge/asstk/render"
)

// SoftwareCompositor is the reference Compositor: a pure-Go scanline rasterizer with no font
// shaper of its own, grounded on renderer/renderer.go's renderImage in spirit (a bounded, fully
// in-process raster pipeline) though not in code, since renderImage only ever decodes existing
// images rather than rasterizing vector paths or text.
type SoftwareCompositor struct {
	// Background is the frame's initial fill color, typically transparent for overlay use.
	Background render.RGBA
}

// Composite rasterizes layers in order onto a width x height frame. Every event's layer group is
// preceded by exactly one ClipLayer (render.Render's own guarantee); Composite tracks the most
// recently seen ClipLayer and applies it to every subsequent Text/Vector layer until the next
// ClipLayer replaces it.
func (c SoftwareCompositor) Composite(layers []render.Layer, width, height int) (Frame, error) {
	f := newFrame(width, height)
	fillFrame(f, c.Background)

	clip := BoundingBox{X: 0, Y: 0, W: float64(width), H: float64(height)}
	inverse := false

	for _, l := range layers {
		switch t := l.(type) {
		case *render.ClipLayer:
			clip = BoundingBox{X: t.Rect.X, Y: t.Rect.Y, W: t.Rect.W, H: t.Rect.H}
			inverse = t.Inverse
		case *render.TextLayer:
			drawText(f, t, clip, inverse)
		case *render.VectorLayer:
			drawVector(f, t, clip, inverse)
		}
	}
	return *f, nil
}

// BoundingBox mirrors render.BoundingBox's fields without importing render's collision-resolver
// methods; Composite only needs the rectangle, not Intersects/OverlapArea/Expand.
type BoundingBox struct {
	X, Y, W, H float64
}

func (b BoundingBox) contains(x, y float64, inverse bool) bool {
	inside := x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
	if inverse {
		return !inside
	}
	return inside
}

func fillFrame(f *Frame, c render.RGBA) {
	if c.A == 0 && c.R == 0 && c.G == 0 && c.B == 0 {
		return
	}
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			f.set(x, y, c.R, c.G, c.B, c.A)
		}
	}
}

// drawText renders t as a filled box approximating its glyph run's advance width, the same
// measureApprox-style simplification render.buildEventLayers itself makes in the absence of a
// real font rasterizer: width comes from internal/text's cluster-width estimator scaled by
// FontSize, height is FontSize itself.
func drawText(f *Frame, t *render.TextLayer, clip BoundingBox, inverse bool) {
	if t.FontSize <= 0 {
		return
	}
	cells := text.Width(t.Text)
	if cells <= 0 {
		cells = len([]rune(t.Text))
	}
	w := float64(cells) * t.FontSize * 0.5
	h := t.FontSize
	blendRect(f, t.X, t.Y, w, h, t.Color, clip, inverse)
	for _, e := range t.Effects {
		switch eff := e.(type) {
		case render.OutlineEffect:
			blendRectOutline(f, t.X, t.Y, w, h, eff.Width, eff.Color, clip, inverse)
		case render.ShadowEffect:
			blendRect(f, t.X+eff.DX, t.Y+eff.DY, w, h, eff.Color, clip, inverse)
		}
	}
}

// drawVector scan-converts a VectorLayer's subpaths with an even-odd fill rule, the standard
// polygon-fill algorithm for paths that may self-intersect or nest (spec.md's drawing mode
// permits both). No pack library covers 2D path rasterization without also bringing a font
// shaper the domain stack explicitly keeps external, so this is hand-rolled; see DESIGN.md.
func drawVector(f *Frame, v *render.VectorLayer, clip BoundingBox, inverse bool) {
	if len(v.Subpaths) == 0 {
		return
	}
	minY, maxY := boundsY(v.Subpaths)
	top := int(math.Floor(minY))
	bottom := int(math.Ceil(maxY))
	if top < 0 {
		top = 0
	}
	if bottom > f.Height {
		bottom = f.Height
	}
	for y := top; y < bottom; y++ {
		scanY := float64(y) + 0.5
		xs := scanlineIntersections(v.Subpaths, scanY)
		for i := 0; i+1 < len(xs); i += 2 {
			x0, x1 := xs[i], xs[i+1]
			for x := int(math.Ceil(x0 - 0.5)); float64(x)+0.5 < x1; x++ {
				blendPixel(f, x, y, v.Fill, clip, inverse)
			}
		}
	}
	if v.HasStroke {
		strokeSubpaths(f, v.Subpaths, v.Stroke, v.StrokeWidth, clip, inverse)
	}
}

func boundsY(subpaths []render.Subpath) (min, max float64) {
	first := true
	for _, sp := range subpaths {
		for _, p := range sp.Points {
			if first {
				min, max = p.Y, p.Y
				first = false
				continue
			}
			if p.Y < min {
				min = p.Y
			}
			if p.Y > max {
				max = p.Y
			}
		}
	}
	return min, max
}

// scanlineIntersections returns the sorted x-coordinates where every closed edge in subpaths
// crosses the horizontal line y = scanY, the classic even-odd scanline-fill edge table.
func scanlineIntersections(subpaths []render.Subpath, scanY float64) []float64 {
	var xs []float64
	for _, sp := range subpaths {
		pts := sp.Points
		if len(pts) < 2 {
			continue
		}
		n := len(pts)
		for i := 0; i < n; i++ {
			a := pts[i]
			b := pts[(i+1)%n]
			if i == n-1 && !sp.Closed {
				break
			}
			if (a.Y <= scanY && b.Y > scanY) || (b.Y <= scanY && a.Y > scanY) {
				tpar := (scanY - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+tpar*(b.X-a.X))
			}
		}
	}
	sortFloats(xs)
	return xs
}

func sortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

func strokeSubpaths(f *Frame, subpaths []render.Subpath, color render.RGBA, width float64, clip BoundingBox, inverse bool) {
	if width <= 0 {
		width = 1
	}
	for _, sp := range subpaths {
		n := len(sp.Points)
		if n < 2 {
			continue
		}
		limit := n
		if !sp.Closed {
			limit = n - 1
		}
		for i := 0; i < limit; i++ {
			a := sp.Points[i]
			b := sp.Points[(i+1)%n]
			drawLine(f, a, b, width, color, clip, inverse)
		}
	}
}

// drawLine walks a evenly spaced samples between a and b, blending a width-sized square at each.
// A simpler stand-in for a real stroked-path rasterizer, adequate for outline widths this
// pipeline measures in single-digit pixels.
func drawLine(f *Frame, a, b render.Point, width float64, color render.RGBA, clip BoundingBox, inverse bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		blendRect(f, a.X-width/2, a.Y-width/2, width, width, color, clip, inverse)
		return
	}
	steps := int(length) + 1
	for s := 0; s <= steps; s++ {
		tpar := float64(s) / float64(steps)
		x := a.X + dx*tpar
		y := a.Y + dy*tpar
		blendRect(f, x-width/2, y-width/2, width, width, color, clip, inverse)
	}
}

func blendRect(f *Frame, x, y, w, h float64, color render.RGBA, clip BoundingBox, inverse bool) {
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := int(math.Ceil(x+w)), int(math.Ceil(y+h))
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			blendPixel(f, px, py, color, clip, inverse)
		}
	}
}

func blendRectOutline(f *Frame, x, y, w, h, width float64, color render.RGBA, clip BoundingBox, inverse bool) {
	if width <= 0 {
		return
	}
	blendRect(f, x-width, y-width, w+2*width, width, color, clip, inverse)
	blendRect(f, x-width, y+h, w+2*width, width, color, clip, inverse)
	blendRect(f, x-width, y, width, h, color, clip, inverse)
	blendRect(f, x+w, y, width, h, color, clip, inverse)
}

// blendPixel alpha-composites color onto f's pixel at (x, y), straight over straight, after
// checking clip. Out-of-frame coordinates are silently dropped, matching Frame.set.
func blendPixel(f *Frame, x, y int, color render.RGBA, clip BoundingBox, inverse bool) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	if !clip.contains(float64(x)+0.5, float64(y)+0.5, inverse) {
		return
	}
	if color.A == 0 {
		return
	}
	dr, dg, db, da := f.At(x, y)
	srcA := float64(color.A) / 255
	dstA := float64(da) / 255
	outA := srcA + dstA*(1-srcA)
	if outA == 0 {
		f.set(x, y, 0, 0, 0, 0)
		return
	}
	blend := func(src, dst uint8) uint8 {
		s := float64(src) / 255
		d := float64(dst) / 255
		v := (s*srcA + d*dstA*(1-srcA)) / outA
		return clamp8(v * 255)
	}
	f.set(x, y, blend(color.R, dr), blend(color.G, dg), blend(color.B, db), clamp8(outA*255))
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
