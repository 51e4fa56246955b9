// Package token implements the byte-level line and structural-token scanner described in
// spec.md §4.1. It never aborts on malformed input: problems are recorded in an
// issues.Collector and scanning continues at the next line.
package token

// A Context tracks what kind of source region the scanner is currently inside. It controls
// whether a colon enters field-value mode, whether "{...}" introduces an override block, and
// whether whitespace is significant.
type Context int

const (
	// Document is the top-level context: looking for a "[Section]" header or a comment/blank
	// line between sections.
	Document Context = iota
	// SectionHeader is active while scanning the "[Name]" of a section header.
	SectionHeader
	// FieldValue is active while scanning the value half of a "Key: Value" line.
	FieldValue
	// StyleOverride is active while scanning a "{...}" override-tag block inside event text.
	StyleOverride
	// DrawingCommands is active while scanning drawing-mode ("\p<n>") path data.
	DrawingCommands
	// UuEncodedData is active while scanning UU-encoded Fonts/Graphics data lines.
	UuEncodedData
)

func (c Context) String() string {
	switch c {
	case Document:
		return "document"
	case SectionHeader:
		return "section-header"
	case FieldValue:
		return "field-value"
	case StyleOverride:
		return "style-override"
	case DrawingCommands:
		return "drawing-commands"
	case UuEncodedData:
		return "uu-encoded-data"
	default:
		return "unknown"
	}
}

// ColonEntersFieldValue reports whether a ':' encountered in this context begins a field value,
// per spec.md §4.1.
func (c Context) ColonEntersFieldValue() bool {
	return c == Document || c == FieldValue
}

// BracesAreOverrideBlock reports whether "{...}" introduces an override block in this context.
func (c Context) BracesAreOverrideBlock() bool {
	return c == FieldValue || c == StyleOverride
}

// WhitespaceSignificant reports whether leading/trailing whitespace must be preserved verbatim
// rather than trimmed, per spec.md §4.1.
func (c Context) WhitespaceSignificant() bool {
	return c == DrawingCommands || c == UuEncodedData
}

// CommentsRecognized reports whether a leading ';' or '#' starts a comment line in this
// context. UU-encoded data lines are raw 6-bit-packed bytes and may legitimately begin with
// either byte, so comment recognition is suppressed there.
func (c Context) CommentsRecognized() bool {
	return c != UuEncodedData
}
