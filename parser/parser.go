// Package parser converts a tokenized ASS source buffer into a package ast Script, tolerating
// and reporting malformed input rather than aborting (spec.md §4.2).
package parser

import (
	"bytes"
	"strings"

	"github.com/assforge/asstk/ast"
	"github.com/assforge/asstk/issues"
	"github.com/assforge/asstk/token"
)

// MaxInputSize is the reference cap on input length, reported as a Resource/Security issue when
// exceeded (spec.md §4.2). 50 MiB.
const MaxInputSize = 50 * 1024 * 1024

// Parse tokenizes and parses source into a Script. It never panics on malformed input; problems
// are recorded in the returned Script's Issues collector. A size-cap violation is the one
// condition that prevents any further scanning: the returned Script has an empty Sections list
// and Source left as given, with the single Security issue recorded.
func Parse(source []byte) *ast.Script {
	collector := issues.NewCollector()

	if len(source) > MaxInputSize {
		collector.Add(issues.New(issues.Error, issues.Security,
			"input exceeds maximum permitted size of 50 MiB"))
		return &ast.Script{Source: source, Version: ast.VersionUnknown, Issues: collector}
	}

	source, bomIssue := stripOrRejectBOM(source)
	if bomIssue != nil {
		collector.Add(bomIssue)
	}

	script := &ast.Script{Source: source, Version: ast.VersionUnknown, Issues: collector}

	tok := token.New(source, collector)
	for {
		advanced := scanToNextSectionHeader(tok, collector)
		if !advanced {
			break
		}

		headerStart := tok.Offset()
		header, line, ok := readSectionHeader(tok, source)
		if !ok {
			continue
		}

		name := strings.TrimSpace(header)
		switch {
		case strings.EqualFold(name, "Script Info"):
			si, newVersion := parseScriptInfo(source, tok, collector)
			si.SectionSpan.Start = headerStart
			script.Sections = append(script.Sections, si)
			if newVersion != ast.VersionUnknown {
				script.Version = newVersion
			}
		case isStylesHeader(name):
			st := parseStyles(source, tok, collector)
			st.SectionSpan.Start = headerStart
			script.Sections = append(script.Sections, st)
		case strings.EqualFold(name, "Events"):
			ev := parseEvents(source, tok, collector)
			ev.SectionSpan.Start = headerStart
			script.Sections = append(script.Sections, ev)
		case strings.EqualFold(name, "Fonts"):
			f := parseFonts(source, tok, collector)
			f.SectionSpan.Start = headerStart
			script.Sections = append(script.Sections, f)
		case strings.EqualFold(name, "Graphics"):
			g := parseGraphics(source, tok, collector)
			g.SectionSpan.Start = headerStart
			script.Sections = append(script.Sections, g)
		default:
			collector.Addf(issues.Warning, issues.Parsing, line, "unknown section %q", name)
			if suggestion := suggestSection(source, tok); suggestion != "" {
				collector.Addf(issues.Info, issues.Parsing, line, "did you mean %s?", suggestion)
			}
			skipToNextSectionHeader(tok)
		}
	}

	return script
}

func isStylesHeader(name string) bool {
	return strings.EqualFold(name, "V4 Styles") ||
		strings.EqualFold(name, "V4+ Styles") ||
		strings.EqualFold(name, "V4++ Styles")
}

// stripOrRejectBOM strips a valid UTF-8 BOM and rejects UTF-16 BOMs with a Format warning,
// returning the (possibly shortened) source.
func stripOrRejectBOM(source []byte) ([]byte, *issues.Issue) {
	switch {
	case bytes.HasPrefix(source, []byte{0xEF, 0xBB, 0xBF}):
		return source[3:], nil
	case bytes.HasPrefix(source, []byte{0xFF, 0xFE}), bytes.HasPrefix(source, []byte{0xFE, 0xFF}):
		return source, issues.New(issues.Warning, issues.Format, "input has a UTF-16 byte order mark; only UTF-8 is supported")
	default:
		return source, nil
	}
}

// scanToNextSectionHeader advances tok past blank/comment lines and any stray content until it
// is positioned at (but has not consumed) a section header line, or reaches EOF. Stray non-blank,
// non-comment, non-header lines are reported once per run.
func scanToNextSectionHeader(tok *token.Tokenizer, collector *issues.Collector) bool {
	tok.SetContext(token.Document)
	reportedStray := false
	for !tok.AtEOF() {
		save := *tok
		t, ok := tok.Next()
		if !ok {
			return false
		}
		switch t.Kind {
		case token.KindEmpty, token.KindComment:
			continue
		case token.KindSectionHeader:
			*tok = save
			return true
		default:
			if !reportedStray {
				collector.Addf(issues.Warning, issues.Parsing, t.Line, "expected section header, found stray content")
				reportedStray = true
			}
		}
	}
	return false
}

// readSectionHeader consumes the section header line tok is positioned at and returns its name.
func readSectionHeader(tok *token.Tokenizer, source []byte) (string, int, bool) {
	t, ok := tok.Next()
	if !ok || t.Kind != token.KindSectionHeader {
		return "", 0, false
	}
	return t.Header.String(source), t.Line, true
}

// skipToNextSectionHeader discards lines until the next section header or EOF, without
// reporting (the caller already reported the unknown section).
func skipToNextSectionHeader(tok *token.Tokenizer) {
	tok.SetContext(token.Document)
	for !tok.AtEOF() {
		save := *tok
		t, ok := tok.Next()
		if !ok {
			return
		}
		if t.Kind == token.KindSectionHeader {
			*tok = save
			return
		}
	}
}

// suggestSection inspects the first interior line of the section tok is about to skip and
// returns a heuristic suggestion, per spec.md §4.2.
func suggestSection(source []byte, tok *token.Tokenizer) string {
	save := *tok
	defer func() { *tok = save }()

	tok.SetContext(token.FieldValue)
	for !tok.AtEOF() {
		t, ok := tok.Next()
		if !ok {
			return ""
		}
		if t.Kind == token.KindSectionHeader {
			return ""
		}
		if t.Kind != token.KindKeyValue {
			continue
		}
		key := t.Key.String(source)
		switch key {
		case "Style":
			return "[V4+ Styles]"
		case "Dialogue", "Comment":
			return "[Events]"
		case "Title", "ScriptType":
			return "[Script Info]"
		case "Format":
			return disambiguateFormatLine(source, tok)
		}
	}
	return ""
}

// disambiguateFormatLine looks ahead past a "Format:" line for the following Dialogue/Style
// line to decide between [Events] and [V4+ Styles].
func disambiguateFormatLine(source []byte, tok *token.Tokenizer) string {
	save := *tok
	defer func() { *tok = save }()

	for !tok.AtEOF() {
		t, ok := tok.Next()
		if !ok {
			return ""
		}
		if t.Kind == token.KindSectionHeader {
			return ""
		}
		if t.Kind != token.KindKeyValue {
			continue
		}
		switch t.Key.String(source) {
		case "Dialogue", "Comment":
			return "[Events]"
		case "Style":
			return "[V4+ Styles]"
		}
	}
	return ""
}
