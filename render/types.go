// Package render implements the render pipeline from spec.md §4.7: per-event text segmentation
// against override-tag state, drawing-mode tessellation, tag resolution against a ResolvedStyle,
// animation/fade/move interpolation, alignment and collision-aware layout, and emission of an
// ordered IntermediateLayer sequence. The cumulative per-segment style is modeled directly on
// renderer/renderer_style.go's PushStyle/PopStyle style stack, generalized from chroma's
// syntax-highlighting vocabulary to ASS's override-tag vocabulary.
package render

import "github.com/assforge/asstk/ast"

// A LayerKind identifies which IntermediateLayer variant a Layer is, mirroring the
// ast.SectionKind tagged-union idiom.
type LayerKind int

const (
	LayerText LayerKind = iota
	LayerVector
	LayerClip
)

func (k LayerKind) String() string {
	switch k {
	case LayerText:
		return "text"
	case LayerVector:
		return "vector"
	case LayerClip:
		return "clip"
	default:
		return "unknown"
	}
}

// A Layer is one IntermediateLayer in the ordered sequence the pipeline emits for a frame
// (spec.md §4.7: "An ordered sequence of IntermediateLayers ready for compositing").
type Layer interface {
	Kind() LayerKind
}

// RGBA is the render pipeline's output color representation: plain, non-inverted 0-255 channels,
// the form spec.md §4.7 step 5 requires ("at resolve time convert to RGBA with alpha = 255 -
// stored"). ast.Color already stores alpha non-inverted; RGBA exists as render's own wire type so
// compositor implementations need not import ast.
type RGBA struct {
	R, G, B, A uint8
}

func rgbaFromColor(c ast.Color) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// An Effect is one visual modifier layered onto a Text layer, per spec.md §4.7's Text variant:
// "[Bold|Italic|Underline|Strikethrough|Outline{color,width}|Shadow{color,dx,dy}|Blur(sigma)]".
type Effect interface{ isEffect() }

type BoldEffect struct{}
type ItalicEffect struct{}
type UnderlineEffect struct{}
type StrikethroughEffect struct{}
type OutlineEffect struct {
	Color RGBA
	Width float64
}
type ShadowEffect struct {
	Color  RGBA
	DX, DY float64
}
type BlurEffect struct{ Sigma float64 }

func (BoldEffect) isEffect()          {}
func (ItalicEffect) isEffect()        {}
func (UnderlineEffect) isEffect()     {}
func (StrikethroughEffect) isEffect() {}
func (OutlineEffect) isEffect()       {}
func (ShadowEffect) isEffect()        {}
func (BlurEffect) isEffect()          {}

// A TextLayer is a run of shaped text at a resolved screen position with its accumulated
// effects list.
type TextLayer struct {
	Text       string
	FontFamily string
	FontSize   float64
	Color      RGBA
	X, Y       float64
	Effects    []Effect
}

func (*TextLayer) Kind() LayerKind { return LayerText }

// A Point is a PlayRes- or screen-space coordinate, depending on context; the pipeline converts
// between the two explicitly at the boundary documented in each function's doc comment.
type Point struct{ X, Y float64 }

// A Subpath is one moveto-started, optionally closed run of points in a drawing-mode path, after
// Bezier/spline flattening.
type Subpath struct {
	Points []Point
	Closed bool
}

// A VectorLayer is a tessellated \p<n> drawing, emitted as a single layer per spec.md §4.7 step 3.
type VectorLayer struct {
	Subpaths    []Subpath
	Fill        RGBA
	HasStroke   bool
	Stroke      RGBA
	StrokeWidth float64
}

func (*VectorLayer) Kind() LayerKind { return LayerVector }

// A BoundingBox is an axis-aligned screen-space rectangle, used for both text layout and the
// collision resolver (spec.md §4.7.1).
type BoundingBox struct {
	X, Y, W, H float64
}

// Intersects reports whether b and o overlap (touching edges do not count as overlap).
func (b BoundingBox) Intersects(o BoundingBox) bool {
	return b.X < o.X+o.W && o.X < b.X+b.W && b.Y < o.Y+o.H && o.Y < b.Y+b.H
}

// OverlapArea returns the area of the intersection of b and o, 0 if they do not intersect.
func (b BoundingBox) OverlapArea(o BoundingBox) float64 {
	x1, y1 := max(b.X, o.X), max(b.Y, o.Y)
	x2, y2 := min(b.X+b.W, o.X+o.W), min(b.Y+b.H, o.Y+o.H)
	if x2 <= x1 || y2 <= y1 {
		return 0
	}
	return (x2 - x1) * (y2 - y1)
}

// Expand returns a copy of b grown by margin on every side.
func (b BoundingBox) Expand(margin float64) BoundingBox {
	return BoundingBox{X: b.X - margin, Y: b.Y - margin, W: b.W + 2*margin, H: b.H + 2*margin}
}

// A ClipLayer restricts the layers that follow it, up to the next ClipLayer, to a rectangle, per
// \clip/\iclip (spec.md §4.7 step 10). Render emits exactly one ClipLayer at the start of each
// event's layer group; there is no separate pop layer. Inverse clips hide the rectangle's
// interior instead of its exterior.
type ClipLayer struct {
	Rect    BoundingBox
	Inverse bool
}

func (*ClipLayer) Kind() LayerKind { return LayerClip }

// A RenderContext is the target frame's geometry: output pixel size and an optional PlayRes
// override, plus the feature flags spec.md §4.7 calls out (Unicode-aware line breaking).
type RenderContext struct {
	Width, Height      int
	PlayResX, PlayResY float64 // 0 means "use the script's own declared PlayRes"
	UnicodeLinebreaks  bool
	// EnabledKinds, if non-nil, extends event selection beyond Dialogue (spec.md §4.7 step 1:
	// "kind in {Dialogue} unless a command kind is enabled").
	EnabledKinds map[ast.EventKind]bool
}

func (c RenderContext) kindEnabled(k ast.EventKind) bool {
	if k == ast.EventDialogue {
		return true
	}
	return c.EnabledKinds != nil && c.EnabledKinds[k]
}
