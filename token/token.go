package token

import (
	"github.com/assforge/asstk/issues"
	"github.com/assforge/asstk/span"
)

// A Kind classifies a single line of input.
type Kind int

const (
	// KindSectionHeader is a "[Name]" line.
	KindSectionHeader Kind = iota
	// KindKeyValue is a "Key: Value" line.
	KindKeyValue
	// KindComment is a ";..." or "#..." line.
	KindComment
	// KindEmpty is a blank (possibly whitespace-only) line.
	KindEmpty
	// KindRaw is any other line; the parser decides what, if anything, it means in context.
	KindRaw
)

func (k Kind) String() string {
	switch k {
	case KindSectionHeader:
		return "section-header"
	case KindKeyValue:
		return "key-value"
	case KindComment:
		return "comment"
	case KindEmpty:
		return "empty"
	case KindRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// A Token is a single classified line. Every span borrows from the Tokenizer's source buffer.
type Token struct {
	Kind Kind
	// Line is the 1-based source line number this token begins on.
	Line int
	// Full is the span of the entire line, excluding its line terminator.
	Full span.Span
	// Header is the span of the name inside "[Name]" for KindSectionHeader tokens.
	Header span.Span
	// Key is the span of the key for KindKeyValue tokens.
	Key span.Span
	// Value is the span of the value for KindKeyValue tokens (whitespace-trimmed).
	Value span.Span
}

// A Tokenizer walks a source buffer one line at a time, classifying each line without
// interpreting section semantics; that is the Parser's job. It never returns an error: malformed
// constructs are reported through the supplied issues.Collector and scanning continues.
type Tokenizer struct {
	source  []byte
	pos     int
	line    int
	context Context
	issues  *issues.Collector
}

// New returns a Tokenizer over source, reporting issues to collector.
func New(source []byte, collector *issues.Collector) *Tokenizer {
	return &Tokenizer{source: source, pos: 0, line: 1, context: Document, issues: collector}
}

// Context returns the scanner's current context.
func (t *Tokenizer) Context() Context {
	return t.context
}

// SetContext overrides the scanner's context; used by the parser when entering a section whose
// interior lines must be read under FieldValue, DrawingCommands, or UuEncodedData rules.
func (t *Tokenizer) SetContext(c Context) {
	t.context = c
}

// Offset returns the current byte offset into source.
func (t *Tokenizer) Offset() int {
	return t.pos
}

// Line returns the current 1-based line number.
func (t *Tokenizer) Line() int {
	return t.line
}

// AtEOF reports whether the scanner has consumed the entire source.
func (t *Tokenizer) AtEOF() bool {
	return t.pos >= len(t.source)
}

// nextLineEnd finds the offset of the line terminator starting at pos, plus the offset of the
// start of the following line. Handles both "\n" and "\r\n".
func (t *Tokenizer) nextLineEnd() (contentEnd, nextStart int) {
	source := t.source
	for i := t.pos; i < len(source); i++ {
		if source[i] == '\n' {
			end := i
			if end > t.pos && source[end-1] == '\r' {
				end--
			}
			return end, i + 1
		}
	}
	return len(source), len(source)
}

func isSpaceOrTab(b byte) bool {
	return b == ' ' || b == '\t'
}

func trimASCII(source []byte, s span.Span) span.Span {
	start, end := s.Start, s.End
	for start < end && isSpaceOrTab(source[start]) {
		start++
	}
	for end > start && isSpaceOrTab(source[end-1]) {
		end--
	}
	return span.New(start, end)
}

// Next scans and classifies the next line, returning (token, true) or a zero Token and false at
// EOF. Unclosed "[...]" in SectionHeader position is reported as an issue but the scan
// continues, treating the remainder of the line as the header name.
func (t *Tokenizer) Next() (Token, bool) {
	if t.AtEOF() {
		return Token{}, false
	}

	lineStart := t.pos
	lineNo := t.line
	contentEnd, nextStart := t.nextLineEnd()
	full := span.New(lineStart, contentEnd)

	t.pos = nextStart
	t.line++

	trimmed := trimASCII(t.source, full)
	if trimmed.IsEmpty() {
		return Token{Kind: KindEmpty, Line: lineNo, Full: full}, true
	}

	first := t.source[trimmed.Start]
	if (first == ';' || first == '#') && t.context.CommentsRecognized() {
		return Token{Kind: KindComment, Line: lineNo, Full: full}, true
	}

	if first == '[' {
		closeIdx := -1
		for i := trimmed.Start + 1; i < trimmed.End; i++ {
			if t.source[i] == ']' {
				closeIdx = i
				break
			}
		}
		if closeIdx == -1 {
			if t.issues != nil {
				t.issues.Addf(issues.Warning, issues.Parsing, lineNo, "unclosed section header")
			}
			return Token{Kind: KindSectionHeader, Line: lineNo, Full: full, Header: span.New(trimmed.Start+1, trimmed.End)}, true
		}
		header := trimASCII(t.source, span.New(trimmed.Start+1, closeIdx))
		return Token{Kind: KindSectionHeader, Line: lineNo, Full: full, Header: header}, true
	}

	if t.context.ColonEntersFieldValue() {
		colonIdx := -1
		for i := trimmed.Start; i < trimmed.End; i++ {
			if t.source[i] == ':' {
				colonIdx = i
				break
			}
		}
		if colonIdx != -1 {
			key := trimASCII(t.source, span.New(trimmed.Start, colonIdx))
			value := trimASCII(t.source, span.New(colonIdx+1, trimmed.End))
			return Token{Kind: KindKeyValue, Line: lineNo, Full: full, Key: key, Value: value}, true
		}
	}

	return Token{Kind: KindRaw, Line: lineNo, Full: full}, true
}
