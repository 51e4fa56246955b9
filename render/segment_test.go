package render

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma"

	"github.com/assforge/asstk/analysis"
	"github.com/assforge/asstk/ast"
	"github.com/assforge/asstk/issues"
	"github.com/assforge/asstk/span"
)

// spanOf returns the span of text's first occurrence in source, for building test fixtures
// without hand-computing byte offsets.
func spanOf(source, text string) span.Span {
	i := strings.Index(source, text)
	if i < 0 {
		panic("spanOf: " + text + " not found in " + source)
	}
	return span.New(i, i+len(text))
}

func testStylesByName() map[string]*analysis.ResolvedStyle {
	def := analysis.DefaultResolvedStyle()
	return map[string]*analysis.ResolvedStyle{"Default": def}
}

func TestSplitEventPieces(t *testing.T) {
	pieces := splitEventPieces(`hello {\b1}world`)
	want := []eventPiece{
		{Override: false, Text: "hello "},
		{Override: true, Text: `\b1`},
		{Override: false, Text: "world"},
	}
	if len(pieces) != len(want) {
		t.Fatalf("got %+v, want %+v", pieces, want)
	}
	for i := range want {
		if pieces[i] != want[i] {
			t.Errorf("piece %d = %+v, want %+v", i, pieces[i], want[i])
		}
	}
}

func TestSplitEventPiecesUnterminatedBlock(t *testing.T) {
	pieces := splitEventPieces(`text{\b1`)
	want := []eventPiece{
		{Override: false, Text: "text"},
		{Override: true, Text: `\b1`},
	}
	if len(pieces) != len(want) || pieces[0] != want[0] || pieces[1] != want[1] {
		t.Fatalf("got %+v, want %+v", pieces, want)
	}
}

func TestSegmentEventPlainText(t *testing.T) {
	reg := testRegistry(t)
	full := "Default|Hello, world!"
	src := []byte(full)
	event := &ast.Event{
		Style: spanOf(full, "Default"),
		Text:  spanOf(full, "Hello, world!"),
	}
	collector := issues.NewCollector()
	seg := SegmentEvent(reg, src, event, testStylesByName(), 100, collector)
	if seg.IsDrawing {
		t.Fatal("expected plain text, not a drawing")
	}
	if len(seg.Segments) != 1 || seg.Segments[0].Text != "Hello, world!" {
		t.Fatalf("got %+v", seg.Segments)
	}
}

func TestSegmentEventAppliesOverrideBlockStyle(t *testing.T) {
	reg := testRegistry(t)
	full := `Default|{\b1}Bold text`
	src := []byte(full)
	event := &ast.Event{
		Style: spanOf(full, "Default"),
		Text:  spanOf(full, `{\b1}Bold text`),
	}
	collector := issues.NewCollector()
	seg := SegmentEvent(reg, src, event, testStylesByName(), 100, collector)
	if len(seg.Segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(seg.Segments))
	}
	if seg.Segments[0].Style.Bold != chroma.Yes {
		t.Fatalf("expected segment style to carry Bold=Yes from the override block, got %v", seg.Segments[0].Style.Bold)
	}
}

func TestSegmentEventUnknownStyleFallsBackToDefault(t *testing.T) {
	reg := testRegistry(t)
	full := `Ghost|plain`
	src := []byte(full)
	event := &ast.Event{
		Style: spanOf(full, "Ghost"),
		Text:  spanOf(full, "plain"),
	}
	collector := issues.NewCollector()
	seg := SegmentEvent(reg, src, event, testStylesByName(), 100, collector)
	if collector.Len() == 0 {
		t.Fatal("expected an issue for an unknown style name")
	}
	if len(seg.Segments) != 1 || seg.Segments[0].Text != "plain" {
		t.Fatalf("got %+v", seg.Segments)
	}
}

func TestSegmentEventDrawingMode(t *testing.T) {
	reg := testRegistry(t)
	full := `Default|{\p1}m 0 0 l 10 0 l 10 10`
	src := []byte(full)
	event := &ast.Event{
		Style: spanOf(full, "Default"),
		Text:  spanOf(full, `{\p1}m 0 0 l 10 0 l 10 10`),
	}
	collector := issues.NewCollector()
	seg := SegmentEvent(reg, src, event, testStylesByName(), 100, collector)
	if !seg.IsDrawing {
		t.Fatal("expected drawing mode to be detected from the first override block")
	}
	if len(seg.Drawing) != 1 {
		t.Fatalf("got %d subpaths, want 1", len(seg.Drawing))
	}
}

func TestSegmentEventCapturesPosAndFade(t *testing.T) {
	reg := testRegistry(t)
	full := `Default|{\pos(10,20)\fad(100,100)}text`
	src := []byte(full)
	event := &ast.Event{
		Style: spanOf(full, "Default"),
		Text:  spanOf(full, `{\pos(10,20)\fad(100,100)}text`),
	}
	collector := issues.NewCollector()
	seg := SegmentEvent(reg, src, event, testStylesByName(), 500, collector)
	if seg.Pos == nil || seg.Pos.X != 10 || seg.Pos.Y != 20 {
		t.Fatalf("got Pos=%+v", seg.Pos)
	}
	if seg.Fade == nil || seg.Fade.FadeInCs != 100 || seg.Fade.FadeOutCs != 100 {
		t.Fatalf("got Fade=%+v", seg.Fade)
	}
}
