package analysis

import (
	"fmt"
	"strings"

	"github.com/assforge/asstk/ast"
	"github.com/assforge/asstk/issues"
)

// A LintIssue is one linter finding: severity/category plus the rule that produced it and an
// optional suggested fix (spec.md §4.5).
type LintIssue struct {
	Severity    issues.Severity
	Category    issues.Category
	RuleID      string
	Message     string
	Description string
	Suggestion  string
}

// A ScriptAnalysis bundles everything a lint Rule needs: the parsed script, resolved styles, and
// per-event dialogue info, computed once and shared across rules.
type ScriptAnalysis struct {
	Script   *ast.Script
	Styles   map[string]*ResolvedStyle
	Dialogue []DialogueInfo
}

// Analyze resolves styles and analyzes every event, assembling a ScriptAnalysis ready for
// linting or rendering.
func Analyze(script *ast.Script, opts StyleAnalysisOption, thresholds PerformanceThresholds, collector *issues.Collector) *ScriptAnalysis {
	byName, _ := ResolveStyles(script, opts, thresholds, collector)
	return &ScriptAnalysis{
		Script:   script,
		Styles:   byName,
		Dialogue: AnalyzeEvents(script),
	}
}

// A Rule is a single lint check over a ScriptAnalysis (spec.md §4.5).
type Rule interface {
	ID() string
	Name() string
	Description() string
	DefaultSeverity() issues.Severity
	Category() issues.Category
	Check(a *ScriptAnalysis) []LintIssue
}

// LintConfig controls which rules run, spec.md §6: enablement map, minimum severity, max issue
// count (truncate on reach).
type LintConfig struct {
	Enabled     map[string]bool
	MinSeverity issues.Severity
	MaxIssues   int
}

// DefaultLintConfig enables every built-in rule with no minimum severity and no issue cap.
func DefaultLintConfig() LintConfig {
	return LintConfig{Enabled: nil, MinSeverity: issues.Info, MaxIssues: -1}
}

func (c LintConfig) ruleEnabled(id string) bool {
	if c.Enabled == nil {
		return true
	}
	enabled, ok := c.Enabled[id]
	return !ok || enabled
}

// BuiltinRules returns the rule set from spec.md §4.5: accessibility, encoding, performance,
// timing, style.
func BuiltinRules() []Rule {
	return []Rule{
		accessibilityRule{},
		encodingRule{},
		performanceRule{},
		timingRule{},
		styleRule{},
	}
}

// Lint runs the given rules (registration order; BuiltinRules() if nil) over a ScriptAnalysis,
// filtering by config and truncating at MaxIssues.
func Lint(a *ScriptAnalysis, rules []Rule, cfg LintConfig) []LintIssue {
	if rules == nil {
		rules = BuiltinRules()
	}
	var out []LintIssue
	for _, r := range rules {
		if !cfg.ruleEnabled(r.ID()) {
			continue
		}
		for _, li := range r.Check(a) {
			if li.Severity < cfg.MinSeverity {
				continue
			}
			out = append(out, li)
			if cfg.MaxIssues >= 0 && len(out) >= cfg.MaxIssues {
				return out
			}
		}
	}
	return out
}

// --- accessibility ---

type accessibilityRule struct{}

func (accessibilityRule) ID() string                        { return "accessibility" }
func (accessibilityRule) Name() string                      { return "Accessibility" }
func (accessibilityRule) Description() string                { return "Duration, reading speed, and text length limits for readability." }
func (accessibilityRule) DefaultSeverity() issues.Severity   { return issues.Hint }
func (accessibilityRule) Category() issues.Category          { return issues.Validation }

func (r accessibilityRule) Check(a *ScriptAnalysis) []LintIssue {
	var out []LintIssue
	for _, d := range a.Dialogue {
		if d.Event.Kind != ast.EventDialogue {
			continue
		}
		dur := d.DurationCs()
		if dur < 50 {
			out = append(out, r.issue(d, "event duration is below 500ms, hard to read"))
		}
		if dur > 0 {
			cps := float64(d.Text.CleanedLength) / (float64(dur) / 100)
			if cps > 20 {
				out = append(out, r.issue(d, fmt.Sprintf("reading speed %.1f chars/s exceeds 20", cps)))
			}
		}
		if d.Text.CleanedLength > 200 {
			out = append(out, r.issue(d, "cleaned text exceeds 200 characters"))
		}
	}
	return out
}

func (r accessibilityRule) issue(d DialogueInfo, msg string) LintIssue {
	return LintIssue{Severity: r.DefaultSeverity(), Category: r.Category(), RuleID: r.ID(),
		Message: fmt.Sprintf("event %d: %s", d.EventIndex, msg)}
}

// --- encoding ---

type encodingRule struct{}

func (encodingRule) ID() string                      { return "encoding" }
func (encodingRule) Name() string                    { return "Encoding" }
func (encodingRule) Description() string              { return "Control characters and the Unicode replacement character." }
func (encodingRule) DefaultSeverity() issues.Severity { return issues.Warning }
func (encodingRule) Category() issues.Category        { return issues.Encoding }

func (r encodingRule) Check(a *ScriptAnalysis) []LintIssue {
	var out []LintIssue
	events := a.Script.Events()
	if events != nil {
		for i, ev := range events.Entries {
			text := ev.Text.String(a.Script.Source)
			if hasBadControlChars(text) {
				out = append(out, LintIssue{Severity: issues.Warning, Category: issues.Encoding, RuleID: r.ID(),
					Message: fmt.Sprintf("event %d: contains a disallowed control character", i)})
			}
			if strings.ContainsRune(text, '�') {
				out = append(out, LintIssue{Severity: issues.Warning, Category: issues.Encoding, RuleID: r.ID(),
					Message: fmt.Sprintf("event %d: contains the Unicode replacement character", i)})
			}
			if ratio, excessive := multiByteDensity(text); excessive {
				out = append(out, LintIssue{Severity: issues.Hint, Category: issues.Encoding, RuleID: r.ID(),
					Message: fmt.Sprintf("event %d: %.0f%% of characters are multi-byte, unusually dense for subtitle text", i, ratio*100)})
			}
		}
	}
	if si := a.Script.ScriptInfo(); si != nil {
		for _, kv := range si.Entries {
			if hasBadControlChars(kv.Value.String(a.Script.Source)) {
				out = append(out, LintIssue{Severity: issues.Hint, Category: issues.Encoding, RuleID: r.ID(),
					Message: fmt.Sprintf("Script Info key %q contains a control character", kv.Key.String(a.Script.Source))})
			}
		}
	}
	return out
}

func hasBadControlChars(s string) bool {
	for _, r := range s {
		if r < 0x20 && r != '\n' && r != '\r' && r != '\t' {
			return true
		}
	}
	return false
}

// multiByteDensityThreshold is the fraction of multi-byte (non-ASCII) runes, over a minimum
// sample length, above which event text is flagged as unusually dense — more often a sign of a
// mojibake-style encoding mismatch than a deliberately non-Latin script.
const (
	multiByteDensityThreshold = 0.8
	multiByteDensityMinRunes  = 8
)

// multiByteDensity reports the fraction of s's runes that are multi-byte in UTF-8 and whether
// that fraction exceeds multiByteDensityThreshold over at least multiByteDensityMinRunes runes.
func multiByteDensity(s string) (ratio float64, excessive bool) {
	total, multiByte := 0, 0
	for _, r := range s {
		total++
		if r >= 0x80 {
			multiByte++
		}
	}
	if total < multiByteDensityMinRunes {
		return 0, false
	}
	ratio = float64(multiByte) / float64(total)
	return ratio, ratio > multiByteDensityThreshold
}

// --- performance ---

type performanceRule struct{}

func (performanceRule) ID() string                      { return "performance" }
func (performanceRule) Name() string                    { return "Performance" }
func (performanceRule) Description() string              { return "Event count and per-event complexity thresholds." }
func (performanceRule) DefaultSeverity() issues.Severity { return issues.Hint }
func (performanceRule) Category() issues.Category        { return issues.Validation }

func (r performanceRule) Check(a *ScriptAnalysis) []LintIssue {
	var out []LintIssue
	events := a.Script.Events()
	if events != nil && len(events.Entries) > 1000 {
		out = append(out, LintIssue{Severity: r.DefaultSeverity(), Category: r.Category(), RuleID: r.ID(),
			Message: fmt.Sprintf("script has %d events, exceeding the 1000-event performance threshold", len(events.Entries))})
	}
	for _, d := range a.Dialogue {
		if d.Text.CleanedLength > 500 {
			out = append(out, LintIssue{Severity: r.DefaultSeverity(), Category: r.Category(), RuleID: r.ID(),
				Message: fmt.Sprintf("event %d: cleaned text exceeds 500 characters", d.EventIndex)})
		}
		if len(d.Text.OverrideSpans) > 20 {
			out = append(out, LintIssue{Severity: r.DefaultSeverity(), Category: r.Category(), RuleID: r.ID(),
				Message: fmt.Sprintf("event %d: has more than 20 override-tag blocks", d.EventIndex)})
		}
	}
	return out
}

// --- timing ---

type timingRule struct{}

func (timingRule) ID() string                      { return "timing" }
func (timingRule) Name() string                    { return "Timing" }
func (timingRule) Description() string              { return "Non-negative duration and end strictly after start." }
func (timingRule) DefaultSeverity() issues.Severity { return issues.Error }
func (timingRule) Category() issues.Category        { return issues.Validation }

func (r timingRule) Check(a *ScriptAnalysis) []LintIssue {
	var out []LintIssue
	for _, d := range a.Dialogue {
		if d.EndCs <= d.StartCs {
			out = append(out, LintIssue{Severity: r.DefaultSeverity(), Category: r.Category(), RuleID: r.ID(),
				Message: fmt.Sprintf("event %d: end time does not come after start time", d.EventIndex)})
		}
	}
	return out
}

// --- style ---

type styleRule struct{}

func (styleRule) ID() string                      { return "style" }
func (styleRule) Name() string                    { return "Style reference" }
func (styleRule) Description() string              { return "Referenced style names must exist." }
func (styleRule) DefaultSeverity() issues.Severity { return issues.Warning }
func (styleRule) Category() issues.Category        { return issues.Validation }

func (r styleRule) Check(a *ScriptAnalysis) []LintIssue {
	var out []LintIssue
	events := a.Script.Events()
	if events == nil {
		return nil
	}
	for i, ev := range events.Entries {
		name := ev.Style.String(a.Script.Source)
		if name == "" {
			continue
		}
		if _, ok := a.Styles[name]; !ok {
			out = append(out, LintIssue{Severity: r.DefaultSeverity(), Category: r.Category(), RuleID: r.ID(),
				Message: fmt.Sprintf("event %d references undefined style %q", i, name)})
		}
	}
	return out
}
