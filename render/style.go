package render

import (
	"github.com/alecthomas/chroma"

	"github.com/assforge/asstk/analysis"
	"github.com/assforge/asstk/plugin"
)

// styleState is the cumulative per-segment style the pipeline threads through an event's text,
// generalizing renderer/renderer_style.go's chroma.StyleEntry-based style stack: the four
// bool-ish toggles and four colors it models reuse chroma.Trilean/chroma.Colour directly, while
// every field chroma has no vocabulary for (scale, spacing, rotation, border geometry, alignment,
// wrap style, drawing mode, karaoke) is a plain Go field alongside them.
type styleState struct {
	Bold, Italic, Underline, StrikeOut chroma.Trilean

	Fontname string
	Fontsize float64

	PrimaryColour, SecondaryColour, OutlineColour, BackColour chroma.Colour
	PrimaryAlpha, SecondaryAlpha, OutlineAlpha, BackAlpha      uint8

	ScaleX, ScaleY float64
	Spacing        float64
	Angle          float64
	AngleX, AngleY float64

	Outline, Shadow, Blur float64

	BorderStyle  int
	Alignment    int
	WrapStyle    int
	MarginL, MarginR, MarginT, MarginB int
	Encoding     int

	DrawingMode int
}

func triFromBool(b bool) chroma.Trilean {
	if b {
		return chroma.Yes
	}
	return chroma.No
}

// triOf converts a tag handler's Trilean (Inherit/Off/On, where Inherit means "this override
// block didn't touch the field") against a base chroma.Trilean, leaving base untouched on
// Inherit.
func triOf(base chroma.Trilean, t plugin.Trilean) chroma.Trilean {
	switch t {
	case plugin.On:
		return chroma.Yes
	case plugin.Off:
		return chroma.No
	default:
		return base
	}
}

func colourFromRGB(r, g, b uint8) chroma.Colour {
	return chroma.NewColour(r, g, b)
}

// stateFromResolvedStyle builds the initial styleState an event's text starts with, before any
// override blocks are applied, from the event's resolved style.
func stateFromResolvedStyle(s *analysis.ResolvedStyle) styleState {
	return styleState{
		Bold:      triFromBool(s.Bold),
		Italic:    triFromBool(s.Italic),
		Underline: triFromBool(s.Underline),
		StrikeOut: triFromBool(s.StrikeOut),

		Fontname: s.Fontname,
		Fontsize: s.Fontsize,

		PrimaryColour:   colourFromRGB(s.PrimaryColour.R, s.PrimaryColour.G, s.PrimaryColour.B),
		PrimaryAlpha:    s.PrimaryColour.A,
		SecondaryColour: colourFromRGB(s.SecondaryColour.R, s.SecondaryColour.G, s.SecondaryColour.B),
		SecondaryAlpha:  s.SecondaryColour.A,
		OutlineColour:   colourFromRGB(s.OutlineColour.R, s.OutlineColour.G, s.OutlineColour.B),
		OutlineAlpha:    s.OutlineColour.A,
		BackColour:      colourFromRGB(s.BackColour.R, s.BackColour.G, s.BackColour.B),
		BackAlpha:       s.BackColour.A,

		ScaleX:  s.ScaleX,
		ScaleY:  s.ScaleY,
		Spacing: s.Spacing,
		Angle:   s.Angle,

		Outline: s.Outline,
		Shadow:  s.Shadow,

		BorderStyle: s.BorderStyle,
		Alignment:   s.Alignment,

		MarginL: s.MarginL,
		MarginR: s.MarginR,
		MarginT: s.MarginT,
		MarginB: s.MarginB,
		Encoding: s.Encoding,
	}
}

// applyAnimationState folds a plugin.AnimationState (the result of walking one override block
// through the tag registry) into base, respecting each field's Has-flag so untouched fields are
// left exactly as base had them — the same "absent means inherit" convention the Has-flags
// already follow on ast.Style.
func applyAnimationState(base styleState, st *plugin.AnimationState) styleState {
	out := base
	out.Bold = triOf(base.Bold, st.Bold)
	out.Italic = triOf(base.Italic, st.Italic)
	out.Underline = triOf(base.Underline, st.Underline)
	out.StrikeOut = triOf(base.StrikeOut, st.StrikeOut)

	if st.HasFontname {
		out.Fontname = st.Fontname
	}
	if st.HasFontsize {
		out.Fontsize = st.Fontsize
	}
	if st.HasPrimaryColour {
		out.PrimaryColour = colourFromRGB(st.PrimaryColour.R, st.PrimaryColour.G, st.PrimaryColour.B)
		out.PrimaryAlpha = st.PrimaryColour.A
	}
	if st.HasSecondaryColour {
		out.SecondaryColour = colourFromRGB(st.SecondaryColour.R, st.SecondaryColour.G, st.SecondaryColour.B)
		out.SecondaryAlpha = st.SecondaryColour.A
	}
	if st.HasOutlineColour {
		out.OutlineColour = colourFromRGB(st.OutlineColour.R, st.OutlineColour.G, st.OutlineColour.B)
		out.OutlineAlpha = st.OutlineColour.A
	}
	if st.HasBackColour {
		out.BackColour = colourFromRGB(st.BackColour.R, st.BackColour.G, st.BackColour.B)
		out.BackAlpha = st.BackColour.A
	}
	if st.HasScaleX {
		out.ScaleX = st.ScaleX
	}
	if st.HasScaleY {
		out.ScaleY = st.ScaleY
	}
	if st.HasSpacing {
		out.Spacing = st.Spacing
	}
	if st.HasAngle {
		out.Angle = st.Angle
	}
	if st.HasAngleX {
		out.AngleX = st.AngleX
	}
	if st.HasAngleY {
		out.AngleY = st.AngleY
	}
	if st.HasOutline {
		out.Outline = st.Outline
	}
	if st.HasShadow {
		out.Shadow = st.Shadow
	}
	if st.HasBlur {
		out.Blur = st.Blur
	}
	if st.HasAlignment {
		out.Alignment = st.Alignment
	}
	if st.HasWrapStyle {
		out.WrapStyle = st.WrapStyle
	}
	if st.HasDrawingMode {
		out.DrawingMode = st.DrawingMode
	}
	return out
}

// colourRGBA converts one styleState color/alpha pair into render's RGBA output type, inverting
// nothing further since ast.Color and the tag handlers have already normalized stored alpha.
func colourRGBA(c chroma.Colour, alpha uint8) RGBA {
	return RGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: alpha}
}
