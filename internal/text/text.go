// Package text wraps grapheme- and width-aware Unicode helpers: grapheme-cluster counting and
// splitting, and a fallback glyph-width estimator (Width) used by render's WrapLines and the
// reference compositor. Grounded on
// renderer/renderer.go's measureText, which wraps uniseg.GraphemeClusterCount the same way.
package text

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ClusterCount returns the number of extended grapheme clusters in s, the Unicode-correct
// notion of "character count" for accessibility/performance budgets (a combining-mark sequence
// or an emoji ZWJ sequence counts once, not once per rune).
func ClusterCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Clusters splits s into its extended grapheme clusters, in order.
func Clusters(s string) []string {
	clusters := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}

// Width estimates the monospace display width of s in cells, used by the reference compositor
// and as render.WrapLines's measure when no external glyph shaper is injected. This is only an
// approximation of proportional-font glyph advances; a real shaper overrides it.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// RuneWidth is Width for a single rune, for measuring incrementally.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}
