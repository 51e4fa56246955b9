package parser

import (
	"strings"
	"testing"

	"github.com/assforge/asstk/span"
)

func TestAdjustRangeBefore(t *testing.T) {
	d := Delta{EditRange: span.New(100, 110), SizeDelta: 5}
	got := d.AdjustRange(span.New(0, 10))
	if got != span.New(0, 10) {
		t.Fatalf("expected unchanged span before the edit, got %+v", got)
	}
}

func TestAdjustRangeAfter(t *testing.T) {
	d := Delta{EditRange: span.New(10, 20), SizeDelta: 5}
	got := d.AdjustRange(span.New(30, 40))
	if got != span.New(35, 45) {
		t.Fatalf("expected shifted span after the edit, got %+v", got)
	}
}

func TestAdjustRangeOverlapping(t *testing.T) {
	d := Delta{EditRange: span.New(10, 30), SizeDelta: -5}
	got := d.AdjustRange(span.New(15, 40))
	if got.Start != 10 {
		t.Fatalf("expected clamped start 10, got %d", got.Start)
	}
	if got.End != 35 {
		t.Fatalf("expected end 35, got %d", got.End)
	}
}

func TestApplyChangeReplacesOnlyTargetSection(t *testing.T) {
	script := Parse([]byte(sampleScript))

	// Replace the event's style name in place.
	styleEv := script.Events().Entries[0].Style
	newScript, delta := ApplyChange(script, styleEv, "Alt")

	if len(delta.Sections) == 0 {
		t.Fatal("expected at least one section change recorded")
	}
	if newScript.Title() != "Test" {
		t.Fatalf("expected Script Info section preserved, got title %q", newScript.Title())
	}
	events := newScript.Events()
	if events == nil || len(events.Entries) != 2 {
		t.Fatalf("expected events preserved, got %+v", events)
	}
	if got := events.Entries[0].Style.String(newScript.Source); got != "Alt" {
		t.Fatalf("expected replaced style Alt, got %q", got)
	}
	if !strings.Contains(string(newScript.Source), "Alt") {
		t.Fatal("expected new source to contain replacement")
	}
}
