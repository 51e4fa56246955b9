package render

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/muesli/reflow/wordwrap"

	"github.com/assforge/asstk/internal/text"
)

// splitHardBreaks splits raw event text on literal "\N" escapes — ASS's only escape that is
// always a hard line break regardless of WrapStyle. This runs before any \n/wrap-style handling,
// per the Open Question decision recorded in DESIGN.md: \N is applied first, and wrap-style
// reflow then applies only to the soft-wrappable runs between hard breaks.
func splitHardBreaks(raw string) []string {
	return strings.Split(raw, `\N`)
}

// resolveSoftBreaks folds \h into a non-breaking space and, for WrapStyle 2 ("no word wrap"),
// promotes \n to an additional hard break; for every other wrap style \n is a no-op whitespace
// escape, matching common ASS renderer behavior of ignoring it when automatic wrapping is on.
func resolveSoftBreaks(line string, wrapStyle int) []string {
	line = strings.ReplaceAll(line, `\h`, " ")
	if wrapStyle == 2 {
		return strings.Split(line, `\n`)
	}
	return []string{strings.ReplaceAll(line, `\n`, " ")}
}

// WrapLines breaks raw event text (with override blocks already stripped) into display lines
// according to wrapStyle and a maxWidth budget in the same units measureWidth returns.
// measureWidth is injected so callers can supply real glyph-shaper metrics; a nil measureWidth
// falls back to internal/text's rune-width estimator.
//
// WrapStyle 2 performs no automatic wrapping at all: only \N and \n produce line breaks.
// WrapStyle 0 and 3 ("smart" wrapping) greedily pack words up to maxWidth; style 3 additionally
// prefers to leave the last line wider than the rest by biasing the break point, the documented
// difference between the two smart styles. WrapStyle 1 wraps at the last word boundary that
// fits, without style 3's line-balancing (so it packs lines exactly as style 0 does).
func WrapLines(raw string, wrapStyle int, maxWidth int, unicodeAware bool, measureWidth func(string) int) []string {
	if measureWidth == nil {
		measureWidth = text.Width
	}
	var out []string
	for _, hard := range splitHardBreaks(raw) {
		for _, soft := range resolveSoftBreaks(hard, wrapStyle) {
			if wrapStyle == 2 || maxWidth <= 0 {
				out = append(out, soft)
				continue
			}
			out = append(out, wrapOne(soft, wrapStyle, maxWidth, unicodeAware, measureWidth)...)
		}
	}
	return out
}

// wrapOne wraps a single soft-breakable run.
func wrapOne(s string, wrapStyle int, maxWidth int, unicodeAware bool, measureWidth func(string) int) []string {
	tokens := tokenizeWords(s, unicodeAware)
	lines := greedyPack(tokens, maxWidth, measureWidth)
	if wrapStyle == 3 && len(lines) > 1 {
		lines = rebalanceBottomHeavy(tokens, lines, maxWidth, measureWidth)
	}
	return lines
}

// tokenizeWords splits s into word/whitespace tokens. unicodeAware uses uax29/v2's Unicode text
// segmentation (word-break algorithm, UAX #29); otherwise splitting is naive whitespace-based
// via strings.Fields.
func tokenizeWords(s string, unicodeAware bool) []string {
	if !unicodeAware {
		return strings.Fields(s)
	}
	var tokens []string
	seg := words.NewSegmenter([]byte(s))
	for seg.Next() {
		tok := strings.TrimSpace(seg.Text())
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// greedyPack packs tokens into lines no wider than maxWidth (per measureWidth), breaking before
// the first token that would overflow.
func greedyPack(tokens []string, maxWidth int, measureWidth func(string) int) []string {
	if len(tokens) == 0 {
		return []string{""}
	}
	var lines []string
	cur := tokens[0]
	for _, tok := range tokens[1:] {
		candidate := cur + " " + tok
		if measureWidth(candidate) > maxWidth {
			lines = append(lines, cur)
			cur = tok
			continue
		}
		cur = candidate
	}
	lines = append(lines, cur)
	return lines
}

// rebalanceBottomHeavy reruns muesli/reflow's own greedy wrapper against progressively narrower
// widths to find the narrowest width that still produces the same line count as lines, which
// tends to push more text onto later lines than a naive forward greedy pack — approximating
// WrapStyle 3's "last line widest" bias without a full two-pass balanced-wrap solver.
func rebalanceBottomHeavy(tokens []string, lines []string, maxWidth int, measureWidth func(string) int) []string {
	joined := strings.Join(tokens, " ")
	best := lines
	for w := maxWidth; w > maxWidth/2; w-- {
		wrapped := strings.Split(strings.TrimRight(wordwrap.String(joined, w), "\n"), "\n")
		if len(wrapped) == len(lines) {
			best = wrapped
		}
	}
	return best
}
