// Package analysis implements the semantic layer over a parsed Script: style resolution, per-
// event text analysis, overlap detection, and the linter rule set (spec.md §4.3-§4.5).
package analysis

import (
	"strings"

	"github.com/assforge/asstk/ast"
	"github.com/assforge/asstk/issues"
	"github.com/assforge/asstk/span"
)

// StyleAnalysisOption is a bitset flag controlling which checks the resolver performs, per
// spec.md §6.
type StyleAnalysisOption int

const (
	Inheritance StyleAnalysisOption = 1 << iota
	Conflicts
	Performance
	Validation
	StrictValidation
)

// PerformanceThresholds configures the resolver's Performance-flagged checks, defaults from
// spec.md §6.
type PerformanceThresholds struct {
	LargeFont    float64
	LargeOutline float64
	LargeShadow  float64
	Scaling      float64
}

// DefaultPerformanceThresholds are the spec.md §6 defaults: {50.0, 4.0, 4.0, 200.0}.
func DefaultPerformanceThresholds() PerformanceThresholds {
	return PerformanceThresholds{LargeFont: 50.0, LargeOutline: 4.0, LargeShadow: 4.0, Scaling: 200.0}
}

// A ResolvedStyle is a Style with every field numerically evaluated and v4++ margin rules
// applied (spec.md §3).
type ResolvedStyle struct {
	Name            string
	Fontname        string
	Fontsize        float64
	PrimaryColour   ast.Color
	SecondaryColour ast.Color
	OutlineColour   ast.Color
	BackColour      ast.Color
	Bold            bool
	Italic          bool
	Underline       bool
	StrikeOut       bool
	ScaleX          float64
	ScaleY          float64
	Spacing         float64
	Angle           float64
	BorderStyle     int
	Outline         float64
	Shadow          float64
	Alignment       int
	MarginL         int
	MarginR         int
	MarginT         int
	MarginB         int
	Encoding        int
}

// DefaultResolvedStyle is returned when a renderer references an unknown style name
// (spec.md §4.7 failure model: "Unknown style name: fall back to Default").
func DefaultResolvedStyle() *ResolvedStyle {
	return &ResolvedStyle{
		Name:          "Default",
		Fontname:      "Arial",
		Fontsize:      20,
		PrimaryColour: ast.Opaque(255, 255, 255),
		OutlineColour: ast.Opaque(0, 0, 0),
		BackColour:    ast.Opaque(0, 0, 0),
		ScaleX:        100,
		ScaleY:        100,
		BorderStyle:   1,
		Outline:       2,
		Shadow:        2,
		Alignment:     2,
		MarginL:       10,
		MarginR:       10,
		MarginT:       10,
		MarginB:       10,
	}
}

// ResolveStyles resolves every style in the script's Styles section, following §4.3: parent
// inheritance (DFS with cycle detection), numeric/color parsing, the v4++ margin rule, and
// validation issue emission. Returns resolved styles keyed by name; duplicate names report a
// DuplicateName conflict and the first definition wins; a later duplicate is not resolved from
// its own fields, and its place in the Entries-order slice holds the first definition's result.
func ResolveStyles(script *ast.Script, opts StyleAnalysisOption, thresholds PerformanceThresholds, collector *issues.Collector) (byName map[string]*ResolvedStyle, all []*ResolvedStyle) {
	byName = map[string]*ResolvedStyle{}
	styles := script.Styles()
	if styles == nil {
		return byName, nil
	}

	seenNames := map[string]bool{}
	resolving := map[string]bool{}
	memo := map[string]*ResolvedStyle{}
	firstByName := map[string]*ast.Style{}
	for _, raw := range styles.Entries {
		if name := raw.Name.String(script.Source); firstByName[name] == nil {
			firstByName[name] = raw
		}
	}

	var resolve func(name string) *ResolvedStyle
	resolve = func(name string) *ResolvedStyle {
		if r, ok := memo[name]; ok {
			return r
		}
		raw, ok := firstByName[name]
		if !ok {
			return nil
		}
		if resolving[name] {
			collector.Addf(issues.Warning, issues.Analysis, 0, "circular style inheritance detected at %q", name)
			return nil
		}
		resolving[name] = true
		defer delete(resolving, name)

		r := resolveOne(script.Source, raw)
		if raw.HasParent {
			parentName := raw.Parent.String(script.Source)
			if parentName != "" {
				if parent := resolve(parentName); parent != nil {
					fillFromParent(script.Source, raw, r, parent)
				}
			}
		}
		applyValidation(r, opts, thresholds, collector)
		memo[name] = r
		return r
	}

	for _, raw := range styles.Entries {
		name := raw.Name.String(script.Source)
		if seenNames[name] {
			collector.Addf(issues.Warning, issues.Analysis, 0, "duplicate style name %q", name)
		}
		seenNames[name] = true

		r := resolve(name)
		if r == nil {
			continue
		}
		all = append(all, r)
		if _, exists := byName[name]; !exists {
			byName[name] = r
		}
	}
	return byName, all
}

func resolveOne(source []byte, s *ast.Style) *ResolvedStyle {
	r := &ResolvedStyle{Name: s.Name.String(source)}
	r.Fontname = s.Fontname.String(source)
	r.Fontsize = parseFloatField(source, s.Fontsize, 20)
	r.PrimaryColour = parseColorField(source, s.PrimaryColour, ast.Opaque(255, 255, 255))
	r.SecondaryColour = parseColorField(source, s.SecondaryColour, ast.Opaque(255, 0, 0))
	r.OutlineColour = parseColorField(source, s.OutlineColour, ast.Opaque(0, 0, 0))
	r.BackColour = parseColorField(source, s.BackColour, ast.Opaque(0, 0, 0))
	r.Bold = parseBoolField(source, s.Bold)
	r.Italic = parseBoolField(source, s.Italic)
	r.Underline = parseBoolField(source, s.Underline)
	r.StrikeOut = parseBoolField(source, s.StrikeOut)
	r.ScaleX = parseFloatField(source, s.ScaleX, 100)
	r.ScaleY = parseFloatField(source, s.ScaleY, 100)
	r.Spacing = parseFloatField(source, s.Spacing, 0)
	r.Angle = parseFloatField(source, s.Angle, 0)
	r.BorderStyle = int(parseFloatField(source, s.BorderStyle, 1))
	r.Outline = parseFloatField(source, s.Outline, 2)
	r.Shadow = parseFloatField(source, s.Shadow, 2)
	r.Alignment = int(parseFloatField(source, s.Alignment, 2))
	r.Encoding = int(parseFloatField(source, s.Encoding, 0))

	marginL := parseFloatField(source, s.MarginL, 10)
	marginR := parseFloatField(source, s.MarginR, 10)
	marginV := parseFloatField(source, s.MarginV, 10)
	r.MarginL = int(marginL)
	r.MarginR = int(marginR)

	marginT, marginB := marginV, marginV
	if s.HasMarginT {
		marginT = parseFloatField(source, s.MarginT, marginV)
	}
	if s.HasMarginB {
		marginB = parseFloatField(source, s.MarginB, marginV)
	}
	r.MarginT = int(marginT)
	r.MarginB = int(marginB)
	return r
}

// fillFromParent fills each field on r from parent whose raw span on the child's own Style node
// is empty (after trimming) — an empty span is a clean "unspecified" sentinel available before
// resolveOne's numeric/color defaulting ever runs, so inheritance is checked per field rather
// than by an all-or-nothing proxy like "is Fontname empty on the resolved style".
func fillFromParent(source []byte, raw *ast.Style, r, parent *ResolvedStyle) {
	unspecified := func(s span.Span) bool {
		return strings.TrimSpace(s.String(source)) == ""
	}
	if unspecified(raw.Fontname) {
		r.Fontname = parent.Fontname
	}
	if unspecified(raw.Fontsize) {
		r.Fontsize = parent.Fontsize
	}
	if unspecified(raw.PrimaryColour) {
		r.PrimaryColour = parent.PrimaryColour
	}
	if unspecified(raw.SecondaryColour) {
		r.SecondaryColour = parent.SecondaryColour
	}
	if unspecified(raw.OutlineColour) {
		r.OutlineColour = parent.OutlineColour
	}
	if unspecified(raw.BackColour) {
		r.BackColour = parent.BackColour
	}
	if unspecified(raw.Bold) {
		r.Bold = parent.Bold
	}
	if unspecified(raw.Italic) {
		r.Italic = parent.Italic
	}
	if unspecified(raw.Underline) {
		r.Underline = parent.Underline
	}
	if unspecified(raw.StrikeOut) {
		r.StrikeOut = parent.StrikeOut
	}
	if unspecified(raw.ScaleX) {
		r.ScaleX = parent.ScaleX
	}
	if unspecified(raw.ScaleY) {
		r.ScaleY = parent.ScaleY
	}
	if unspecified(raw.Spacing) {
		r.Spacing = parent.Spacing
	}
	if unspecified(raw.Angle) {
		r.Angle = parent.Angle
	}
	if unspecified(raw.BorderStyle) {
		r.BorderStyle = parent.BorderStyle
	}
	if unspecified(raw.Outline) {
		r.Outline = parent.Outline
	}
	if unspecified(raw.Shadow) {
		r.Shadow = parent.Shadow
	}
	if unspecified(raw.Alignment) {
		r.Alignment = parent.Alignment
	}
	if unspecified(raw.MarginL) {
		r.MarginL = parent.MarginL
	}
	if unspecified(raw.MarginR) {
		r.MarginR = parent.MarginR
	}
	if unspecified(raw.Encoding) {
		r.Encoding = parent.Encoding
	}
	// MarginT/MarginB are only genuinely unspecified when there's no v4++ override and MarginV
	// itself is empty; resolveOne has already defaulted marginV to 10 in that case, so check the
	// raw span rather than the resolved field.
	if !raw.HasMarginT && unspecified(raw.MarginV) {
		r.MarginT = parent.MarginT
	}
	if !raw.HasMarginB && unspecified(raw.MarginV) {
		r.MarginB = parent.MarginB
	}
}

func applyValidation(r *ResolvedStyle, opts StyleAnalysisOption, th PerformanceThresholds, collector *issues.Collector) {
	if opts&Validation == 0 && opts&StrictValidation == 0 {
		return
	}
	if r.Fontsize <= 0 {
		collector.Addf(issues.Error, issues.Validation, 0, "style %q has non-positive font size %.1f", r.Name, r.Fontsize)
	}
	if opts&Performance == 0 {
		return
	}
	if r.Fontsize > th.LargeFont {
		collector.Addf(issues.Warning, issues.Validation, 0, "style %q has unusually large font size %.1f", r.Name, r.Fontsize)
	}
	if r.Outline > th.LargeOutline {
		collector.Addf(issues.Info, issues.Validation, 0, "style %q has unusually heavy outline %.1f", r.Name, r.Outline)
	}
	if r.Shadow > th.LargeShadow {
		collector.Addf(issues.Info, issues.Validation, 0, "style %q has unusually heavy shadow %.1f", r.Name, r.Shadow)
	}
	if r.ScaleX > th.Scaling || r.ScaleY > th.Scaling {
		collector.Addf(issues.Info, issues.Validation, 0, "style %q has extreme scaling (%.0f%%, %.0f%%)", r.Name, r.ScaleX, r.ScaleY)
	}
}

func parseFloatField(source []byte, s span.Span, fallback float64) float64 {
	text := strings.TrimSpace(s.String(source))
	if text == "" {
		return fallback
	}
	f, ok := ast.ParseLooseFloat(text)
	if !ok {
		return fallback
	}
	return f
}

func parseBoolField(source []byte, s span.Span) bool {
	text := strings.TrimSpace(s.String(source))
	switch text {
	case "-1", "1":
		return true
	default:
		return false
	}
}

func parseColorField(source []byte, s span.Span, fallback ast.Color) ast.Color {
	text := strings.TrimSpace(s.String(source))
	if text == "" {
		return fallback
	}
	c, ok := ast.ParseColor(text)
	if !ok {
		return fallback
	}
	return c
}
