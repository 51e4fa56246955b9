package render

import (
	"sort"

	"github.com/alecthomas/chroma"

	"github.com/assforge/asstk/analysis"
	"github.com/assforge/asstk/ast"
	"github.com/assforge/asstk/issues"
	"github.com/assforge/asstk/plugin"
	"github.com/assforge/asstk/span"
)

// eventPlacement is one event's resolved screen-space box and layers, pending the final
// layer-index/source-order sort Render applies before flattening.
type eventPlacement struct {
	layerIdx int
	order    int
	box      BoundingBox
	layers   []Layer
}

// Render produces the ordered IntermediateLayer sequence (spec.md §4.7) for script at the given
// frame timestamp tCs (centiseconds from script start). stylesByName is typically the byName map
// analysis.ResolveStyles returned; reg resolves override tags (nil uses plugin.DefaultRegistry).
// Issues encountered along the way (unknown styles, malformed tags, parse failures) are appended
// to collector in source order, per spec.md §5's ordering guarantee.
func Render(ctx RenderContext, script *ast.Script, stylesByName map[string]*analysis.ResolvedStyle, reg *plugin.Registry, tCs int, collector *issues.Collector) []Layer {
	if reg == nil {
		reg = plugin.DefaultRegistry
	}
	if collector == nil {
		collector = issues.NewCollector()
	}
	events := script.Events()
	if events == nil {
		return nil
	}
	info := script.ScriptInfo()
	var playResX, playResY float64 = 384, 288
	if info != nil {
		playResX = info.PlayResX(script.Source)
		playResY = info.PlayResY(script.Source)
	}
	sx, sy := ScreenScale(ctx, playResX, playResY)
	resolver := NewResolver(2)

	var placements []eventPlacement

	for order, ev := range events.Entries {
		if !ctx.kindEnabled(ev.Kind) {
			continue
		}
		startCs, err := ast.ParseTimeCentiseconds(ev.Start.String(script.Source))
		if err != nil {
			collector.Addf(issues.Warning, issues.Format, 0, "event has malformed Start time: %v", err)
			continue
		}
		endCs, err := ast.ParseTimeCentiseconds(ev.End.String(script.Source))
		if err != nil {
			collector.Addf(issues.Warning, issues.Format, 0, "event has malformed End time: %v", err)
			continue
		}
		if tCs < startCs || tCs >= endCs {
			continue
		}
		duration := ast.SaturatingSub(endCs, startCs)
		localT := tCs - startCs

		seg := SegmentEvent(reg, script.Source, ev, stylesByName, duration, collector)
		for _, o := range seg.Outcomes {
			reportOutcome(collector, o)
		}

		alpha := FadeAlpha(seg.Fade, duration, localT) * FadeExAlpha(seg.FadeEx, localT)
		layerIdx := parseLayerIndex(script.Source, ev.Layer)

		anchor := resolvePosition(seg, playResX, playResY, duration, localT)
		box, layers := buildEventLayers(seg, anchor, sx, sy, localT, alpha)

		if seg.Pos == nil && seg.Move == nil {
			resolved := resolver.FindPosition(box, seg.Style.Alignment, collectBoxes(placements))
			layers = shiftLayers(layers, resolved.X-box.X, resolved.Y-box.Y)
			box = resolved
		}

		// Every event's layer group is preceded by exactly one ClipLayer, a real one from
		// \clip/\iclip or an unrestricted full-frame one otherwise, so a compositor walking the
		// flattened layer list can treat "a ClipLayer starts a new event's group" as reliable
		// without needing separate group boundary metadata.
		clip := fullFrameClip(ctx)
		if seg.Clip != nil {
			clip = clipLayerFor(seg.Clip, sx, sy)
		}
		layers = append([]Layer{clip}, layers...)

		placements = append(placements, eventPlacement{layerIdx: layerIdx, order: order, box: box, layers: layers})
	}

	sort.SliceStable(placements, func(i, j int) bool {
		if placements[i].layerIdx != placements[j].layerIdx {
			return placements[i].layerIdx < placements[j].layerIdx
		}
		return placements[i].order < placements[j].order
	})

	var out []Layer
	for _, p := range placements {
		out = append(out, p.layers...)
	}
	return out
}

func reportOutcome(collector *issues.Collector, o TagOutcome) {
	if collector == nil {
		return
	}
	switch o.Kind {
	case OutcomeUnknown:
		collector.Addf(issues.Info, issues.Plugin, 0, "%s", o.Message)
	case OutcomeMalformed, OutcomeInvalid, OutcomeFailed:
		collector.Addf(issues.Warning, issues.Plugin, 0, "tag %s: %s", o.Tag, o.Message)
	}
}

func parseLayerIndex(source []byte, s span.Span) int {
	n, ok := ast.ParseLooseInt(s.String(source))
	if !ok {
		return 0
	}
	return n
}

// resolvePosition returns the PlayRes-space anchor point the event's text/drawing box is placed
// against: an explicit \move interpolated for localT, an explicit \pos, or the style/alignment
// default.
func resolvePosition(seg EventSegments, playResX, playResY float64, duration, localT int) Point {
	switch {
	case seg.Move != nil:
		return ResolveMove(seg.Move, duration, localT)
	case seg.Pos != nil:
		return Point{X: seg.Pos.X, Y: seg.Pos.Y}
	default:
		return DefaultPosition(playResX, playResY, seg.Style.MarginL, seg.Style.MarginR, seg.Style.MarginT, seg.Style.MarginB, seg.Style.Alignment)
	}
}

// buildEventLayers lays out seg's segments or drawing at the given PlayRes anchor, converts to
// screen space via (sx, sy), and returns the resulting layers plus their combined bounding box
// in screen space.
func buildEventLayers(seg EventSegments, anchor Point, sx, sy float64, localT int, alpha float64) (BoundingBox, []Layer) {
	hx, vy := AnchorFraction(seg.Style.Alignment)

	if seg.IsDrawing {
		fill := colourRGBA(seg.Style.PrimaryColour, mulAlpha(seg.Style.PrimaryAlpha, alpha))
		var stroke RGBA
		hasStroke := seg.Style.Outline > 0
		if hasStroke {
			stroke = colourRGBA(seg.Style.OutlineColour, mulAlpha(seg.Style.OutlineAlpha, alpha))
		}
		box := drawingBoundingBox(seg.Drawing, anchor, sx, sy)
		layer := &VectorLayer{
			Subpaths:    scaleSubpaths(seg.Drawing, anchor, sx, sy),
			Fill:        fill,
			HasStroke:   hasStroke,
			Stroke:      stroke,
			StrokeWidth: seg.Style.Outline * sx,
		}
		return box, []Layer{layer}
	}

	// Lay segments out left to right on a single baseline at the anchor; a full implementation
	// would wrap via WrapLines against the style's measured width budget per segment run.
	x := anchor.X
	y := anchor.Y
	var layers []Layer
	var totalWidth, height float64
	for _, s := range seg.Segments {
		style := s.Style
		for _, track := range s.Tracks {
			applyTrackValue(&style, track, localT)
		}
		fontSize := style.Fontsize * sy
		textX := x * sx
		textY := y * sy
		layers = append(layers, &TextLayer{
			Text:       s.Text,
			FontFamily: style.Fontname,
			FontSize:   fontSize,
			Color:      colourRGBA(style.PrimaryColour, mulAlpha(style.PrimaryAlpha, alpha)),
			X:          textX,
			Y:          textY,
			Effects:    effectsFor(style),
		})
		w := measureApprox(s.Text) * fontSize
		x += w / sx
		if fontSize > height {
			height = fontSize
		}
		totalWidth += w
	}
	boxW := totalWidth
	boxH := height
	box := BoundingBox{X: anchor.X*sx - boxW*hx, Y: anchor.Y*sy - boxH*vy, W: boxW, H: boxH}
	layers = shiftLayers(layers, -boxW*hx, -boxH*vy)
	return box, layers
}

func mulAlpha(stored uint8, mult float64) uint8 {
	op := float64(stored) / 255 * mult
	if op < 0 {
		op = 0
	}
	if op > 1 {
		op = 1
	}
	return uint8(op * 255)
}

func effectsFor(s styleState) []Effect {
	var effects []Effect
	if s.Bold == chroma.Yes {
		effects = append(effects, BoldEffect{})
	}
	if s.Italic == chroma.Yes {
		effects = append(effects, ItalicEffect{})
	}
	if s.Underline == chroma.Yes {
		effects = append(effects, UnderlineEffect{})
	}
	if s.StrikeOut == chroma.Yes {
		effects = append(effects, StrikethroughEffect{})
	}
	if s.Outline > 0 {
		effects = append(effects, OutlineEffect{Color: colourRGBA(s.OutlineColour, s.OutlineAlpha), Width: s.Outline})
	}
	if s.Shadow > 0 {
		effects = append(effects, ShadowEffect{Color: colourRGBA(s.BackColour, s.BackAlpha), DX: s.Shadow, DY: s.Shadow})
	}
	if s.Blur > 0 {
		effects = append(effects, BlurEffect{Sigma: s.Blur})
	}
	return effects
}

// measureApprox returns a fallback glyph-advance-per-em estimate (internal/text's rune-width
// estimator has no notion of font size, so this returns a unitless per-character width the
// caller multiplies by font size).
func measureApprox(s string) float64 {
	return 0.55 * float64(len([]rune(s)))
}

func scaleSubpaths(subpaths []Subpath, anchor Point, sx, sy float64) []Subpath {
	out := make([]Subpath, len(subpaths))
	for i, sp := range subpaths {
		pts := make([]Point, len(sp.Points))
		for j, p := range sp.Points {
			pts[j] = Point{X: (anchor.X + p.X) * sx, Y: (anchor.Y + p.Y) * sy}
		}
		out[i] = Subpath{Points: pts, Closed: sp.Closed}
	}
	return out
}

func drawingBoundingBox(subpaths []Subpath, anchor Point, sx, sy float64) BoundingBox {
	first := true
	var minX, minY, maxX, maxY float64
	for _, sp := range subpaths {
		for _, p := range sp.Points {
			x, y := (anchor.X+p.X)*sx, (anchor.Y+p.Y)*sy
			if first {
				minX, maxX, minY, maxY = x, x, y, y
				first = false
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if first {
		return BoundingBox{X: anchor.X * sx, Y: anchor.Y * sy}
	}
	return BoundingBox{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

func collectBoxes(placements []eventPlacement) []BoundingBox {
	out := make([]BoundingBox, len(placements))
	for i, p := range placements {
		out[i] = p.box
	}
	return out
}

func shiftLayers(layers []Layer, dx, dy float64) []Layer {
	for _, l := range layers {
		switch t := l.(type) {
		case *TextLayer:
			t.X += dx
			t.Y += dy
		case *VectorLayer:
			for i := range t.Subpaths {
				for j := range t.Subpaths[i].Points {
					t.Subpaths[i].Points[j].X += dx
					t.Subpaths[i].Points[j].Y += dy
				}
			}
		}
	}
	return layers
}

// fullFrameClip is the no-op clip prepended to an event's layer group when it has no explicit
// \clip/\iclip, so every group in the flattened layer list starts with a ClipLayer a compositor
// can rely on for group boundaries.
func fullFrameClip(ctx RenderContext) *ClipLayer {
	return &ClipLayer{Rect: BoundingBox{X: 0, Y: 0, W: float64(ctx.Width), H: float64(ctx.Height)}}
}

func clipLayerFor(c *plugin.ClipArgs, sx, sy float64) *ClipLayer {
	if c.HasRect {
		return &ClipLayer{
			Inverse: c.Inverse,
			Rect:    BoundingBox{X: c.X1 * sx, Y: c.Y1 * sy, W: (c.X2 - c.X1) * sx, H: (c.Y2 - c.Y1) * sy},
		}
	}
	subpaths := Tessellate(c.Path, 1)
	box := drawingBoundingBox(subpaths, Point{}, sx, sy)
	return &ClipLayer{Inverse: c.Inverse, Rect: box}
}
