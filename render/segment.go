package render

import (
	"strings"

	"github.com/assforge/asstk/analysis"
	"github.com/assforge/asstk/ast"
	"github.com/assforge/asstk/issues"
	"github.com/assforge/asstk/plugin"
)

// An eventPiece is one run of an event's raw text: either a plain-text run or the inner content
// of one {...} override block, in source order.
type eventPiece struct {
	Override bool
	Text     string
}

// splitEventPieces splits raw into alternating plain-text and override-block pieces. Override
// blocks are not nested in ASS, so the first unmatched '}' closes the block that opened at the
// preceding '{'; an unterminated '{' runs to the end of the string.
func splitEventPieces(raw string) []eventPiece {
	var pieces []eventPiece
	i := 0
	for i < len(raw) {
		if raw[i] == '{' {
			if j := strings.IndexByte(raw[i+1:], '}'); j >= 0 {
				pieces = append(pieces, eventPiece{Override: true, Text: raw[i+1 : i+1+j]})
				i += j + 2
				continue
			}
			pieces = append(pieces, eventPiece{Override: true, Text: raw[i+1:]})
			break
		}
		if j := strings.IndexByte(raw[i:], '{'); j >= 0 {
			pieces = append(pieces, eventPiece{Text: raw[i : i+j]})
			i += j
			continue
		}
		pieces = append(pieces, eventPiece{Text: raw[i:]})
		break
	}
	return pieces
}

// A TextSegment is one run of text sharing a single cumulative style, with whatever \t(...)
// tracks are active at the point it appears.
type TextSegment struct {
	Text   string
	Style  styleState
	Tracks []AnimationTrack
}

// EventSegments is the result of walking one event's text: either a single tessellated drawing
// (IsDrawing true) or an ordered run of TextSegments, plus every tag outcome encountered, in
// source order, for the issue collector.
type EventSegments struct {
	IsDrawing    bool
	DrawingScale int
	Drawing      []Subpath
	Style        styleState
	Segments     []TextSegment
	Outcomes     []TagOutcome

	// Positioning/timing fields reflect the cumulative AnimationState at the end of the walk:
	// in practice \pos/\move/\org/\clip/\fad appear once per event, so "whatever the state holds
	// after the last override block" is the event's effective value for each.
	Pos    *plugin.Point
	Move   *plugin.MoveArgs
	Origin *plugin.Point
	Clip   *plugin.ClipArgs
	Fade   *plugin.FadeArgs
	FadeEx *plugin.FadeExArgs
	Karaoke []plugin.KaraokeMark
}

func lookupEventStyle(byName map[string]*analysis.ResolvedStyle, name string, collector *issues.Collector) *analysis.ResolvedStyle {
	if s, ok := byName[name]; ok {
		return s
	}
	if collector != nil {
		collector.Addf(issues.Warning, issues.Analysis, 0, "unknown style name %q, falling back to Default", name)
	}
	return analysis.DefaultResolvedStyle()
}

// SegmentEvent walks one event's text, applying override blocks through reg (plugin.
// DefaultRegistry if nil) and producing the ordered segments the rest of the pipeline lays out.
// Drawing-mode detection happens on the first piece only (spec.md §4.7 step 3): if the first
// override block in the event sets \p to a nonzero scale, the entire remaining text — including
// any text inside later override blocks' surrounding plain-text runs — is treated as one
// drawing path rather than as display text, matching how \p is used in practice (always the
// line's very first tag).
func SegmentEvent(reg *plugin.Registry, source []byte, ev *ast.Event, stylesByName map[string]*analysis.ResolvedStyle, eventDurationCs int, collector *issues.Collector) EventSegments {
	if reg == nil {
		reg = plugin.DefaultRegistry
	}

	eventStyle := lookupEventStyle(stylesByName, ev.Style.String(source), collector)
	base := stateFromResolvedStyle(eventStyle)
	cumAnim := animationStateFromResolvedStyle(eventStyle)
	cumTracks := map[string]AnimationTrack{}

	resolveReset := func(name string) plugin.AnimationState {
		if name == "" {
			return animationStateFromResolvedStyle(eventStyle)
		}
		return animationStateFromResolvedStyle(lookupEventStyle(stylesByName, name, collector))
	}

	pieces := splitEventPieces(ev.Text.String(source))

	var outcomes []TagOutcome
	var segments []TextSegment
	var drawingText strings.Builder
	isDrawing := false
	sawFirstBlock := false

	recordTransforms := func(transforms []plugin.TransformArgs) {
		for _, tr := range transforms {
			t1, t2 := 0, eventDurationCs
			if tr.HasTiming {
				t1, t2 = tr.T1, tr.T2
			}
			for _, track := range buildAnimationTracks(reg, cumAnim, tr, t1, t2, collector) {
				cumTracks[track.Property] = track
			}
		}
	}

	tracksSnapshot := func() []AnimationTrack {
		out := make([]AnimationTrack, 0, len(cumTracks))
		for _, t := range cumTracks {
			out = append(out, t)
		}
		return out
	}

	for _, p := range pieces {
		if p.Override {
			blockOutcomes, transforms := applyOverrideBlockCapturingTransforms(reg, p.Text, &cumAnim, resolveReset)
			outcomes = append(outcomes, blockOutcomes...)
			recordTransforms(transforms)
			if !sawFirstBlock {
				sawFirstBlock = true
				isDrawing = cumAnim.HasDrawingMode && cumAnim.DrawingMode != 0
			}
			continue
		}
		if isDrawing {
			drawingText.WriteString(p.Text)
			continue
		}
		if p.Text == "" {
			continue
		}
		segments = append(segments, TextSegment{
			Text:   p.Text,
			Style:  applyAnimationState(base, &cumAnim),
			Tracks: tracksSnapshot(),
		})
	}

	style := applyAnimationState(base, &cumAnim)
	common := EventSegments{
		Style:    style,
		Outcomes: outcomes,
		Pos:      cumAnim.Pos,
		Move:     cumAnim.Move,
		Origin:   cumAnim.Origin,
		Clip:     cumAnim.Clip,
		Fade:     cumAnim.Fade,
		FadeEx:   cumAnim.FadeEx,
		Karaoke:  cumAnim.Karaoke,
	}
	if isDrawing {
		common.IsDrawing = true
		common.DrawingScale = cumAnim.DrawingMode
		common.Drawing = Tessellate(drawingText.String(), cumAnim.DrawingMode)
		return common
	}
	common.Segments = segments
	return common
}
