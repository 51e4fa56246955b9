package ast

import "github.com/assforge/asstk/span"

// A Style is a named record borrowed from one "Style:" line in a [V4+ Styles] /
// [V4++ Styles] / [V4 Styles] block. Fields are held as raw spans; numeric and color fields
// are parsed on demand (by package analysis's style resolver), never eagerly, so a Style with
// unparsable fields is still representable and reportable as an issue rather than a parse
// failure (spec.md §3, §4.4).
type Style struct {
	Name            span.Span
	Fontname        span.Span
	Fontsize        span.Span
	PrimaryColour   span.Span
	SecondaryColour span.Span
	OutlineColour   span.Span
	BackColour      span.Span
	Bold            span.Span
	Italic          span.Span
	Underline       span.Span
	StrikeOut       span.Span
	ScaleX          span.Span
	ScaleY          span.Span
	Spacing         span.Span
	Angle           span.Span
	BorderStyle     span.Span
	Outline         span.Span
	Shadow          span.Span
	Alignment       span.Span
	MarginL         span.Span
	MarginR         span.Span
	MarginV         span.Span
	Encoding        span.Span

	// v4++ extensions. HasMarginT/HasMarginB distinguish "absent" from "present but empty"; the
	// resolver falls back to margin_v both when the field is absent and when it is empty.
	MarginT    span.Span
	HasMarginT bool
	MarginB    span.Span
	HasMarginB bool
	RelativeTo span.Span
	HasParent  bool
	Parent     span.Span

	// Raw is the full comma-split field list in format-line order, preserved so the parser can
	// populate both the named fields above (for known format layouts) and round-trip unknown
	// extra columns some scripts append.
	Raw []span.Span
}

// Styles is the [V4+ Styles] / [V4++ Styles] / [V4 Styles] section: an ordered format-line
// declaration plus the styles declared against it.
type Styles struct {
	SectionSpan span.Span
	FormatLine  []string
	Entries     []*Style
}

func (*Styles) Kind() SectionKind {
	return KindStyles
}

// ByName returns the last style with the given name (later declarations shadow earlier ones,
// matching how real renderers resolve duplicate style names).
func (s *Styles) ByName(source []byte, name string) (*Style, bool) {
	var found *Style
	for _, st := range s.Entries {
		if st.Name.String(source) == name {
			found = st
		}
	}
	if found == nil {
		return nil, false
	}
	return found, true
}

// DefaultV4PlusFormat is the field order assumed when a [V4+ Styles] block has no Format line.
var DefaultV4PlusFormat = []string{
	"Name", "Fontname", "Fontsize",
	"PrimaryColour", "SecondaryColour", "OutlineColour", "BackColour",
	"Bold", "Italic", "Underline", "StrikeOut",
	"ScaleX", "ScaleY", "Spacing", "Angle",
	"BorderStyle", "Outline", "Shadow",
	"Alignment", "MarginL", "MarginR", "MarginV", "Encoding",
}
