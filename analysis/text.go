package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/assforge/asstk/ast"
	"github.com/assforge/asstk/span"
)

// A TextAnalysis is the single-pass result of scanning one event's text: character count
// excluding override blocks, the spans of every {...} override block, a detected drawing-mode
// level (0 if none), and an animation score (spec.md §4.4).
type TextAnalysis struct {
	CleanedLength int
	OverrideSpans []span.Span
	DrawingMode   int
	AnimationScore float64
}

// animationWeights assigns the weight table from spec.md §4.4: "\move"≈3, "\t"≈3, "\fad*"≈2,
// transform of color/scale/rotation≈1 each.
var animationWeights = map[string]float64{
	"move": 3,
	"t":    3,
	"fad":  2,
	"fade": 2,
}

// colorScaleRotationTags score 1 each when they appear outside a \t(...) block (the \t block
// itself already scores via the "t" weight above; these account for direct, non-animated use
// that nonetheless signals visual dynamism worth flagging in performance/animation heuristics).
var colorScaleRotationTags = map[string]bool{
	"c": true, "1c": true, "2c": true, "3c": true, "4c": true,
	"fscx": true, "fscy": true, "frz": true, "fr": true, "frx": true, "fry": true,
}

// AnalyzeText runs TextAnalysis over one event's Text span.
func AnalyzeText(source []byte, text span.Span) TextAnalysis {
	var a TextAnalysis
	s := text.String(source)
	base := text.Start

	i := 0
	firstBlockSeen := false
	for i < len(s) {
		switch {
		case s[i] == '{':
			end := strings.IndexByte(s[i:], '}')
			var blockEnd int
			var tagBody string
			if end < 0 {
				blockEnd = len(s)
				tagBody = s[i+1:]
			} else {
				blockEnd = i + end + 1
				tagBody = s[i+1 : blockEnd-1]
			}
			blockSpan := span.New(base+i, base+blockEnd)
			a.OverrideSpans = append(a.OverrideSpans, blockSpan)

			for _, tag := range splitTags(tagBody) {
				name, drawMode, isDraw := tagName(tag)
				if isDraw && !firstBlockSeen {
					a.DrawingMode = drawMode
				}
				a.AnimationScore += scoreTag(name, tag)
			}
			firstBlockSeen = true
			i = blockEnd
		case s[i] == '\\' && i+1 < len(s) && (s[i+1] == 'N' || s[i+1] == 'n' || s[i+1] == 'h'):
			a.CleanedLength++
			i += 2
		default:
			_, size := utf8.DecodeRuneInString(s[i:])
			a.CleanedLength++
			i += size
		}
	}
	return a
}

// splitTags splits an override block's body into individual "\tagname args" invocations. Tags
// start with '\'; nested parens (as in \t(...)) are not split on.
func splitTags(body string) []string {
	var tags []string
	depth := 0
	start := -1
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case '\\':
			if depth == 0 {
				if start >= 0 {
					tags = append(tags, body[start:i])
				}
				start = i
			}
		}
	}
	if start >= 0 {
		tags = append(tags, body[start:])
	}
	return tags
}

// tagName extracts the bare tag name (no backslash, no args) from one "\tagname(...)" or
// "\tagnameARGS" invocation, and reports whether it is a \p<n> drawing-mode tag.
func tagName(tag string) (name string, drawMode int, isDraw bool) {
	tag = strings.TrimPrefix(tag, "\\")
	i := 0
	for i < len(tag) && (isAlpha(tag[i]) || (i == 0 && tag[i] >= '1' && tag[i] <= '4')) {
		i++
	}
	name = tag[:i]
	if name == "p" {
		j := i
		for j < len(tag) && tag[j] >= '0' && tag[j] <= '9' {
			j++
		}
		if n, ok := ast.ParseLooseInt(tag[i:j]); ok {
			return name, n, true
		}
	}
	return name, 0, false
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func scoreTag(name string, full string) float64 {
	if name == "fad" || name == "fade" {
		return animationWeights["fad"]
	}
	if w, ok := animationWeights[name]; ok {
		return w
	}
	if colorScaleRotationTags[name] {
		return 1
	}
	return 0
}
