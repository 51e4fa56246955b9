package ast

import (
	"bytes"
	"github.com/assforge/asstk/span"
)

// An EmbeddedFile is one "filename: ..." block followed by its UU-encoded data lines, shared
// by Fonts and Graphics (spec.md §3, §4.1: "collect filename: ... followed by successive
// UU-encoded data lines until the next section or EOF").
type EmbeddedFile struct {
	Filename span.Span
	DataLines []span.Span
}

// Decode lazily UU-decodes the concatenated data lines into raw bytes. ASS's embedded-font
// encoding is the same 6-bit "uuencode"-derived scheme used by SSA: each line begins with a
// length byte (ASCII '!'+n, i.e. byte value 33+n, n in [0,63]), clamped to printable range, every input line
// corresponds to one source line with no embedded line terminator stored.
func (f *EmbeddedFile) Decode(source []byte) []byte {
	var out bytes.Buffer
	for _, line := range f.DataLines {
		decodeUULine(&out, line.Value(source))
	}
	return out.Bytes()
}

func decodeUULine(out *bytes.Buffer, line []byte) {
	if len(line) == 0 {
		return
	}
	n := int(line[0]) - 33
	if n <= 0 {
		return
	}
	payload := line[1:]
	decoded := make([]byte, 0, n)
	for i := 0; i+4 <= len(payload) && len(decoded) < n; i += 4 {
		var group [4]byte
		for j := 0; j < 4; j++ {
			c := payload[i+j]
			group[j] = (c - 33) & 0x3F
		}
		b0 := group[0]<<2 | group[1]>>4
		b1 := group[1]<<4 | group[2]>>2
		b2 := group[2]<<6 | group[3]
		decoded = append(decoded, b0, b1, b2)
	}
	if len(decoded) > n {
		decoded = decoded[:n]
	}
	out.Write(decoded)
}

// Fonts is the [Fonts] section: a sequence of embedded font files.
type Fonts struct {
	SectionSpan span.Span
	Files       []*EmbeddedFile
}

func (*Fonts) Kind() SectionKind {
	return KindFonts
}

// Graphics is the [Graphics] section: a sequence of embedded image files.
type Graphics struct {
	SectionSpan span.Span
	Files       []*EmbeddedFile
}

func (*Graphics) Kind() SectionKind {
	return KindGraphics
}
