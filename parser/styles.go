package parser

import (
	"strings"

	"github.com/assforge/asstk/ast"
	"github.com/assforge/asstk/issues"
	"github.com/assforge/asstk/span"
	"github.com/assforge/asstk/token"
)

// parseStyles consumes a [V4+ Styles]/[V4++ Styles]/[V4 Styles] section: the first "Format:"
// line defines the field mapping (spec.md §4.2); subsequent "Style:" lines are comma-split
// (styles never contain embedded commas) and assigned by case-insensitive format-name lookup.
func parseStyles(source []byte, tok *token.Tokenizer, collector *issues.Collector) *ast.Styles {
	start := tok.Offset()
	st := &ast.Styles{}

	tok.SetContext(token.FieldValue)
	for !tok.AtEOF() {
		save := *tok
		t, ok := tok.Next()
		if !ok {
			break
		}
		if t.Kind == token.KindSectionHeader {
			*tok = save
			break
		}
		if t.Kind != token.KindKeyValue {
			continue
		}

		switch t.Key.String(source) {
		case "Format":
			st.FormatLine = splitFieldNames(t.Value.String(source))
		case "Style":
			format := st.FormatLine
			if format == nil {
				format = ast.DefaultV4PlusFormat
			}
			fields := splitCommaSpans(source, t.Value)
			if len(fields) != len(format) {
				collector.Addf(issues.Warning, issues.Parsing, t.Line,
					"style field count %d does not match format field count %d", len(fields), len(format))
			}
			st.Entries = append(st.Entries, assignStyleFields(format, fields))
		}
	}
	st.SectionSpan = makeSectionSpan(start, tok.Offset())
	return st
}

// splitFieldNames parses a Format: value into trimmed field names.
func splitFieldNames(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// splitCommaSpans splits a span by literal commas into sub-spans, trimming ASCII whitespace
// from each, without copying source bytes.
func splitCommaSpans(source []byte, s span.Span) []span.Span {
	var out []span.Span
	start := s.Start
	for i := s.Start; i < s.End; i++ {
		if source[i] == ',' {
			out = append(out, trimSpan(source, span.New(start, i)))
			start = i + 1
		}
	}
	out = append(out, trimSpan(source, span.New(start, s.End)))
	return out
}

func trimSpan(source []byte, s span.Span) span.Span {
	start, end := s.Start, s.End
	for start < end && isSpaceOrTabByte(source[start]) {
		start++
	}
	for end > start && isSpaceOrTabByte(source[end-1]) {
		end--
	}
	return span.New(start, end)
}

func isSpaceOrTabByte(b byte) bool {
	return b == ' ' || b == '\t'
}

// assignStyleFields maps comma-split field spans to a Style by case-insensitive format-name
// lookup. Missing fields (format longer than the value list) receive empty spans.
func assignStyleFields(format []string, fields []span.Span) *ast.Style {
	st := &ast.Style{Raw: fields}
	get := func(i int) span.Span {
		if i < 0 || i >= len(fields) {
			return span.Span{}
		}
		return fields[i]
	}
	for i, name := range format {
		v := get(i)
		switch strings.ToLower(name) {
		case "name":
			st.Name = v
		case "fontname":
			st.Fontname = v
		case "fontsize":
			st.Fontsize = v
		case "primarycolour", "primarycolor":
			st.PrimaryColour = v
		case "secondarycolour", "secondarycolor":
			st.SecondaryColour = v
		case "outlinecolour", "outlinecolor":
			st.OutlineColour = v
		case "backcolour", "backcolor":
			st.BackColour = v
		case "bold":
			st.Bold = v
		case "italic":
			st.Italic = v
		case "underline":
			st.Underline = v
		case "strikeout":
			st.StrikeOut = v
		case "scalex":
			st.ScaleX = v
		case "scaley":
			st.ScaleY = v
		case "spacing":
			st.Spacing = v
		case "angle":
			st.Angle = v
		case "borderstyle":
			st.BorderStyle = v
		case "outline":
			st.Outline = v
		case "shadow":
			st.Shadow = v
		case "alignment":
			st.Alignment = v
		case "marginl":
			st.MarginL = v
		case "marginr":
			st.MarginR = v
		case "marginv":
			st.MarginV = v
		case "encoding":
			st.Encoding = v
		case "margint":
			st.MarginT = v
			st.HasMarginT = true
		case "marginb":
			st.MarginB = v
			st.HasMarginB = true
		case "relativeto":
			st.RelativeTo = v
		case "parent":
			st.Parent = v
			st.HasParent = true
		}
	}
	return st
}
