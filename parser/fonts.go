package parser

import (
	"strings"

	"github.com/assforge/asstk/ast"
	"github.com/assforge/asstk/issues"
	"github.com/assforge/asstk/span"
	"github.com/assforge/asstk/token"
)

// parseFonts consumes a [Fonts] section: repeating "fontname: ..." headers each followed by
// UU-encoded data lines (spec.md §4.2).
func parseFonts(source []byte, tok *token.Tokenizer, collector *issues.Collector) *ast.Fonts {
	start := tok.Offset()
	files := parseEmbeddedFiles(source, tok, "fontname")
	return &ast.Fonts{SectionSpan: makeSectionSpan(start, tok.Offset()), Files: files}
}

// parseGraphics consumes a [Graphics] section: repeating "filename: ..." headers each followed
// by UU-encoded data lines.
func parseGraphics(source []byte, tok *token.Tokenizer, collector *issues.Collector) *ast.Graphics {
	start := tok.Offset()
	files := parseEmbeddedFiles(source, tok, "filename")
	return &ast.Graphics{SectionSpan: makeSectionSpan(start, tok.Offset()), Files: files}
}

// parseEmbeddedFiles is shared by Fonts and Graphics: both accept either "fontname:" or
// "filename:" as the entry header, since real-world scripts are inconsistent about which one
// they use in which section.
func parseEmbeddedFiles(source []byte, tok *token.Tokenizer, primaryHeaderKey string) []*ast.EmbeddedFile {
	var files []*ast.EmbeddedFile
	var current *ast.EmbeddedFile

	// UuEncodedData context disables comment recognition (data lines may start with ';' or '#')
	// and colon-splitting (data lines may contain ':' bytes); header lines are detected here by
	// manual prefix match instead of relying on the tokenizer's key-value split.
	tok.SetContext(token.UuEncodedData)
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
		if t.Kind == token.KindEmpty {
			continue
		}

		if valueSpan, isHeader := matchEmbeddedHeader(source, t.Full, primaryHeaderKey); isHeader {
			current = &ast.EmbeddedFile{Filename: valueSpan}
			files = append(files, current)
			continue
		}

		if current != nil {
			current.DataLines = append(current.DataLines, t.Full)
		}
	}
	return files
}

// matchEmbeddedHeader reports whether full is a "fontname:"/"filename:" header line, case-
// insensitively, and returns the trimmed span of its filename value.
func matchEmbeddedHeader(source []byte, full span.Span, primaryHeaderKey string) (span.Span, bool) {
	line := full.String(source)
	trimmedLine := strings.TrimSpace(line)
	lower := strings.ToLower(trimmedLine)
	leadingTrim := len(line) - len(strings.TrimLeft(line, " \t"))

	for _, key := range []string{primaryHeaderKey, "fontname", "filename"} {
		prefix := key + ":"
		if strings.HasPrefix(lower, prefix) {
			colonPos := full.Start + leadingTrim + len(key)
			return trimSpan(source, span.New(colonPos+1, full.End)), true
		}
	}
	return span.Span{}, false
}
