package parser

import (
	"testing"

	"github.com/assforge/asstk/issues"
)

func TestParseEventsDropsLineWithTooFewFields(t *testing.T) {
	src := "[Events]\n" +
		"Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n" +
		"Dialogue: 0,0:00:00.00,0:00:05.00,Default,,0,0,0\n" +
		"Dialogue: 0,0:00:05.00,0:00:10.00,Default,,0,0,0,,Hello\n"
	script := Parse([]byte(src))

	events := script.Events()
	if events == nil || len(events.Entries) != 1 {
		t.Fatalf("expected the malformed line to be dropped, leaving 1 entry, got %+v", events)
	}
	if text := events.Entries[0].Text.String(script.Source); text != "Hello" {
		t.Fatalf("expected the surviving entry's text to be %q, got %q", "Hello", text)
	}

	found := false
	for _, iss := range script.Issues.All() {
		if iss.Severity == issues.Warning {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a Warning for the line with too few fields")
	}
}
