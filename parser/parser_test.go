package parser

import (
	"strings"
	"testing"

	"github.com/assforge/asstk/ast"
	"github.com/assforge/asstk/issues"
)

const sampleScript = `[Script Info]
Title: Test
ScriptType: v4.00+
PlayResX: 1920
PlayResY: 1080

[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding
Style: Default,Arial,20,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,2,2,10,10,10,1

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:00.00,0:00:02.00,Default,,0,0,0,,Hello, world
Comment: 0,0:00:01.00,0:00:03.00,Default,,0,0,0,,note
`

func TestParseFullScript(t *testing.T) {
	script := Parse([]byte(sampleScript))
	if script.Version != ast.AssV4 {
		t.Fatalf("expected AssV4, got %v", script.Version)
	}
	if script.Title() != "Test" {
		t.Fatalf("expected title Test, got %q", script.Title())
	}

	styles := script.Styles()
	if styles == nil || len(styles.Entries) != 1 {
		t.Fatalf("expected 1 style, got %+v", styles)
	}
	name := styles.Entries[0].Name.String(script.Source)
	if name != "Default" {
		t.Fatalf("expected style name Default, got %q", name)
	}

	events := script.Events()
	if events == nil || len(events.Entries) != 2 {
		t.Fatalf("expected 2 events, got %+v", events)
	}
	text := events.Entries[0].Text.String(script.Source)
	if text != "Hello, world" {
		t.Fatalf("expected text with embedded comma preserved, got %q", text)
	}
	if events.Entries[1].Kind != ast.EventComment {
		t.Fatalf("expected second entry to be a Comment")
	}
}

func TestParseUnknownSectionSuggestsStyles(t *testing.T) {
	src := "[Typo Section]\nStyle: Default,Arial,20\n\n[Events]\nFormat: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n"
	script := Parse([]byte(src))
	var sawWarning, sawInfo bool
	for _, iss := range script.Issues.All() {
		if iss.Severity == issues.Warning && strings.Contains(iss.Message, "unknown section") {
			sawWarning = true
		}
		if iss.Severity == issues.Info && strings.Contains(iss.Message, "[V4+ Styles]") {
			sawInfo = true
		}
	}
	if !sawWarning {
		t.Fatal("expected an unknown section Warning issue")
	}
	if !sawInfo {
		t.Fatal("expected a separate Info issue suggesting [V4+ Styles]")
	}
}

func TestParseUnknownEventsSectionTypoSuggestsEvents(t *testing.T) {
	src := "[Evnt]\nDialogue: 0,0:00:00.00,0:00:05.00,Default,,0,0,0,,Hello\n"
	script := Parse([]byte(src))
	var sawWarning, sawInfo bool
	for _, iss := range script.Issues.All() {
		if iss.Severity == issues.Warning && strings.Contains(iss.Message, "unknown section") {
			sawWarning = true
		}
		if iss.Severity == issues.Info && strings.Contains(iss.Message, "Events") {
			sawInfo = true
		}
	}
	if !sawWarning {
		t.Fatal("expected an unknown section Warning issue")
	}
	if !sawInfo {
		t.Fatal("expected a separate Info issue mentioning Events")
	}
}

func TestParseStripsUTF8BOM(t *testing.T) {
	src := "\xEF\xBB\xBF[Script Info]\nTitle: X\n"
	script := Parse([]byte(src))
	if script.Title() != "X" {
		t.Fatalf("expected BOM stripped and title parsed, got %q", script.Title())
	}
}

func TestParseRejectsUTF16BOM(t *testing.T) {
	src := "\xFF\xFE[Script Info]\nTitle: X\n"
	script := Parse([]byte(src))
	found := false
	for _, iss := range script.Issues.All() {
		if strings.Contains(iss.Message, "UTF-16") {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a UTF-16 BOM warning")
	}
}

func TestParseOversizedInput(t *testing.T) {
	big := make([]byte, MaxInputSize+1)
	script := Parse(big)
	if len(script.Sections) != 0 {
		t.Fatal("expected no sections for oversized input")
	}
	if !script.Issues.HasErrors() {
		t.Fatal("expected a size-cap error")
	}
}

func TestParseFontsSection(t *testing.T) {
	src := "[Fonts]\nfontname: arial.ttf\n#!&.\n"
	script := Parse([]byte(src))
	fonts := script.Fonts()
	if fonts == nil || len(fonts.Files) != 1 {
		t.Fatalf("expected 1 embedded font, got %+v", fonts)
	}
	if fonts.Files[0].Filename.String(script.Source) != "arial.ttf" {
		t.Fatalf("got filename %q", fonts.Files[0].Filename.String(script.Source))
	}
}
