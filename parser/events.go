package parser

import (
	"strings"

	"github.com/assforge/asstk/ast"
	"github.com/assforge/asstk/issues"
	"github.com/assforge/asstk/span"
	"github.com/assforge/asstk/token"
)

// parseEvents consumes an [Events] section. Each Dialogue/Comment/Picture/Sound/Movie/Command
// line is split at commas with a limit equal to the format field count, so the final field
// (Text) absorbs any embedded commas intact (spec.md §4.2, §6).
func parseEvents(source []byte, tok *token.Tokenizer, collector *issues.Collector) *ast.Events {
	start := tok.Offset()
	ev := &ast.Events{}

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

		key := t.Key.String(source)
		if key == "Format" {
			ev.FormatLine = splitFieldNames(t.Value.String(source))
			continue
		}

		kind, ok := ast.ParseEventKind(key)
		if !ok {
			continue
		}

		format := ev.FormatLine
		if format == nil {
			format = ast.DefaultEventFormat
		}
		fields := splitCommaSpansLimit(source, t.Value, len(format))
		if len(fields) != len(format) {
			collector.Addf(issues.Warning, issues.Parsing, t.Line,
				"event field count %d does not match format field count %d", len(fields), len(format))
		}
		threshold := len(format)
		if threshold > 9 {
			threshold = 9
		}
		if len(fields) < threshold {
			continue
		}
		ev.Entries = append(ev.Entries, assignEventFields(kind, format, fields))
	}
	ev.SectionSpan = makeSectionSpan(start, tok.Offset())
	return ev
}

// splitCommaSpansLimit splits a span at the first n-1 commas, leaving the remainder (which may
// contain more commas) as the final part.
func splitCommaSpansLimit(source []byte, s span.Span, n int) []span.Span {
	if n <= 1 {
		return []span.Span{trimSpan(source, s)}
	}
	var out []span.Span
	start := s.Start
	count := 1
	for i := s.Start; i < s.End; i++ {
		if source[i] == ',' && count < n {
			out = append(out, trimSpan(source, span.New(start, i)))
			start = i + 1
			count++
		}
	}
	out = append(out, trimSpan(source, span.New(start, s.End)))
	return out
}

func assignEventFields(kind ast.EventKind, format []string, fields []span.Span) *ast.Event {
	ev := &ast.Event{Kind: kind}
	get := func(i int) span.Span {
		if i < 0 || i >= len(fields) {
			return span.Span{}
		}
		return fields[i]
	}
	for i, name := range format {
		v := get(i)
		switch strings.ToLower(name) {
		case "layer", "marked":
			ev.Layer = v
		case "start":
			ev.Start = v
		case "end":
			ev.End = v
		case "style":
			ev.Style = v
		case "name", "actor":
			ev.Name = v
		case "marginl":
			ev.MarginL = v
		case "marginr":
			ev.MarginR = v
		case "marginv":
			ev.MarginV = v
		case "effect":
			ev.Effect = v
		case "text":
			ev.Text = v
		}
	}
	return ev
}
