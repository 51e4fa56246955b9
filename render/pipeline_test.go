package render

import (
	"strings"
	"testing"

	"github.com/assforge/asstk/analysis"
	"github.com/assforge/asstk/ast"
	"github.com/assforge/asstk/issues"
	"github.com/assforge/asstk/span"
)

// buildTestEvent lays out one event's fields, each delimited by '|', over a single source
// string and returns both the source bytes and the *ast.Event pointing into it — mirroring how
// the parser lays a real Dialogue line's comma-separated fields out as spans over Script.Source.
func buildTestEvent(layer, start, end, style, name, marginL, marginR, marginV, effect, text string) ([]byte, *ast.Event) {
	fields := []string{layer, start, end, style, name, marginL, marginR, marginV, effect, text}
	full := strings.Join(fields, "|")
	spans := make([]span.Span, len(fields))
	off := 0
	for i, f := range fields {
		spans[i] = span.New(off, off+len(f))
		off += len(f) + 1
	}
	ev := &ast.Event{
		Kind:    ast.EventDialogue,
		Layer:   spans[0],
		Start:   spans[1],
		End:     spans[2],
		Style:   spans[3],
		Name:    spans[4],
		MarginL: spans[5],
		MarginR: spans[6],
		MarginV: spans[7],
		Effect:  spans[8],
		Text:    spans[9],
	}
	return []byte(full), ev
}

func TestRenderSkipsEventsOutsideTimeWindow(t *testing.T) {
	reg := testRegistry(t)
	src, ev := buildTestEvent("0", "0:00:01.00", "0:00:02.00", "Default", "", "0", "0", "0", "", "hi")
	script := &ast.Script{
		Source:   src,
		Sections: []ast.Section{&ast.Events{Entries: []*ast.Event{ev}}},
	}
	ctx := RenderContext{Width: 384, Height: 288}
	layers := Render(ctx, script, testStylesByName(), reg, 50, issues.NewCollector())
	if len(layers) != 0 {
		t.Fatalf("got %d layers at t=50cs (before event starts at 100cs), want 0", len(layers))
	}
}

func TestRenderProducesTextLayerWithinWindow(t *testing.T) {
	reg := testRegistry(t)
	src, ev := buildTestEvent("0", "0:00:00.00", "0:00:02.00", "Default", "", "0", "0", "0", "", "hello")
	script := &ast.Script{
		Source:   src,
		Sections: []ast.Section{&ast.Events{Entries: []*ast.Event{ev}}},
	}
	ctx := RenderContext{Width: 384, Height: 288}
	layers := Render(ctx, script, testStylesByName(), reg, 50, issues.NewCollector())
	if len(layers) < 2 {
		t.Fatalf("got %d layers, want a leading ClipLayer plus at least one TextLayer", len(layers))
	}
	if _, ok := layers[0].(*ClipLayer); !ok {
		t.Fatalf("got %T as the first layer, want *ClipLayer (every event group starts with one)", layers[0])
	}
	if _, ok := layers[1].(*TextLayer); !ok {
		t.Fatalf("got %T, want *TextLayer", layers[1])
	}
}

func TestRenderSkipsDisabledEventKind(t *testing.T) {
	reg := testRegistry(t)
	src, ev := buildTestEvent("0", "0:00:00.00", "0:00:02.00", "Default", "", "0", "0", "0", "", "hello")
	ev.Kind = ast.EventComment
	script := &ast.Script{
		Source:   src,
		Sections: []ast.Section{&ast.Events{Entries: []*ast.Event{ev}}},
	}
	ctx := RenderContext{Width: 384, Height: 288}
	layers := Render(ctx, script, testStylesByName(), reg, 50, issues.NewCollector())
	if len(layers) != 0 {
		t.Fatalf("got %d layers for a disabled Comment event, want 0", len(layers))
	}
}

func TestRenderSkipsMalformedTime(t *testing.T) {
	reg := testRegistry(t)
	src, ev := buildTestEvent("0", "not-a-time", "0:00:02.00", "Default", "", "0", "0", "0", "", "hello")
	collector := issues.NewCollector()
	script := &ast.Script{
		Source:   src,
		Sections: []ast.Section{&ast.Events{Entries: []*ast.Event{ev}}},
	}
	ctx := RenderContext{Width: 384, Height: 288}
	layers := Render(ctx, script, testStylesByName(), reg, 50, collector)
	if len(layers) != 0 {
		t.Fatalf("got %d layers for a malformed Start time, want 0", len(layers))
	}
	if collector.Len() == 0 {
		t.Fatal("expected an issue for the malformed time")
	}
}

func TestRenderNilCollectorDoesNotPanic(t *testing.T) {
	reg := testRegistry(t)
	src, ev := buildTestEvent("0", "0:00:00.00", "0:00:02.00", "Default", "", "0", "0", "0", "", "hello")
	script := &ast.Script{
		Source:   src,
		Sections: []ast.Section{&ast.Events{Entries: []*ast.Event{ev}}},
	}
	ctx := RenderContext{Width: 384, Height: 288}
	Render(ctx, script, testStylesByName(), reg, 50, nil)
}

func TestRenderResolvesStyleForScopedEvent(t *testing.T) {
	reg := testRegistry(t)
	def := analysis.DefaultResolvedStyle()
	def.Alignment = 2
	styles := map[string]*analysis.ResolvedStyle{"Default": def}
	src, ev := buildTestEvent("0", "0:00:00.00", "0:00:01.00", "Default", "", "0", "0", "0", "", "x")
	script := &ast.Script{
		Source:   src,
		Sections: []ast.Section{&ast.Events{Entries: []*ast.Event{ev}}},
	}
	ctx := RenderContext{Width: 100, Height: 100}
	layers := Render(ctx, script, styles, reg, 0, issues.NewCollector())
	if len(layers) == 0 {
		t.Fatal("expected at least one layer")
	}
}
