// Package config loads the option structs spec.md §6 names (AnalysisOptions, LintConfig,
// StyleAnalysisOptions) from a TOML or YAML document, the way cmd/mdcat wires flag-sourced
// RendererOptions into renderer.New but sourced from a config file instead of the command line:
// one struct of plain settings, decoded once, then translated into the concrete option values
// the analysis package's exported functions already accept.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/assforge/asstk/analysis"
	"github.com/assforge/asstk/issues"
)

// AnalysisOptions are the top-level toggles spec.md §6 lists, with defaults {true, true, false,
// 1000, true}.
type AnalysisOptions struct {
	UnicodeLinebreaks  bool `toml:"unicode_linebreaks" yaml:"unicode_linebreaks"`
	PerformanceHints   bool `toml:"performance_hints" yaml:"performance_hints"`
	StrictCompliance   bool `toml:"strict_compliance" yaml:"strict_compliance"`
	MaxEventsThreshold int  `toml:"max_events_threshold" yaml:"max_events_threshold"`
	BidiAnalysis       bool `toml:"bidi_analysis" yaml:"bidi_analysis"`
}

// DefaultAnalysisOptions are spec.md §6's stated defaults.
func DefaultAnalysisOptions() AnalysisOptions {
	return AnalysisOptions{
		UnicodeLinebreaks:  true,
		PerformanceHints:   true,
		StrictCompliance:   false,
		MaxEventsThreshold: 1000,
		BidiAnalysis:       true,
	}
}

// StyleAnalysisFlags is the TOML/YAML-friendly form of analysis.StyleAnalysisOption: a struct of
// named booleans rather than a bitset, decoded and then folded into the bitset via Flags.
type StyleAnalysisFlags struct {
	Inheritance      bool `toml:"inheritance" yaml:"inheritance"`
	Conflicts        bool `toml:"conflicts" yaml:"conflicts"`
	Performance      bool `toml:"performance" yaml:"performance"`
	Validation       bool `toml:"validation" yaml:"validation"`
	StrictValidation bool `toml:"strict_validation" yaml:"strict_validation"`
}

// Flags folds f into the bitset analysis.ResolveStyles and analysis.Analyze accept.
func (f StyleAnalysisFlags) Flags() analysis.StyleAnalysisOption {
	var opt analysis.StyleAnalysisOption
	if f.Inheritance {
		opt |= analysis.Inheritance
	}
	if f.Conflicts {
		opt |= analysis.Conflicts
	}
	if f.Performance {
		opt |= analysis.Performance
	}
	if f.Validation {
		opt |= analysis.Validation
	}
	if f.StrictValidation {
		opt |= analysis.StrictValidation
	}
	return opt
}

// DefaultStyleAnalysisFlags enables every flag except StrictValidation, matching
// analysis.Inheritance|Conflicts|Performance|Validation as the practical default profile.
func DefaultStyleAnalysisFlags() StyleAnalysisFlags {
	return StyleAnalysisFlags{Inheritance: true, Conflicts: true, Performance: true, Validation: true}
}

// LintConfig is the TOML/YAML-friendly form of analysis.LintConfig: MinSeverity is spelled out
// as a string (one of "info", "hint", "warning", "error", "critical") since issues.Severity has
// no text marshaler of its own.
type LintConfig struct {
	Enabled     map[string]bool `toml:"enabled" yaml:"enabled"`
	MinSeverity string          `toml:"min_severity" yaml:"min_severity"`
	MaxIssues   int             `toml:"max_issues" yaml:"max_issues"`
}

// Config is the full decoded document: analysis options, style analysis flags, performance
// thresholds, and lint configuration, every field defaulted per spec.md §6 before decoding so a
// partial file only overrides what it names.
type Config struct {
	Analysis     AnalysisOptions                `toml:"analysis" yaml:"analysis"`
	Style        StyleAnalysisFlags             `toml:"style" yaml:"style"`
	Thresholds   analysis.PerformanceThresholds `toml:"-" yaml:"-"`
	ThresholdsIn thresholdsIn                   `toml:"thresholds" yaml:"thresholds"`
	Lint         LintConfig                     `toml:"lint" yaml:"lint"`
}

// thresholdsIn mirrors analysis.PerformanceThresholds with struct tags, since that type lives in
// a package this one must not force a tag dependency onto.
type thresholdsIn struct {
	LargeFont    float64 `toml:"large_font" yaml:"large_font"`
	LargeOutline float64 `toml:"large_outline" yaml:"large_outline"`
	LargeShadow  float64 `toml:"large_shadow" yaml:"large_shadow"`
	Scaling      float64 `toml:"scaling" yaml:"scaling"`
}

// Default returns a Config populated entirely with spec.md §6's defaults.
func Default() Config {
	th := analysis.DefaultPerformanceThresholds()
	cfg := Config{
		Analysis: DefaultAnalysisOptions(),
		Style:    DefaultStyleAnalysisFlags(),
		ThresholdsIn: thresholdsIn{
			LargeFont:    th.LargeFont,
			LargeOutline: th.LargeOutline,
			LargeShadow:  th.LargeShadow,
			Scaling:      th.Scaling,
		},
		Lint: LintConfig{MinSeverity: "info", MaxIssues: -1},
	}
	cfg.finish()
	return cfg
}

// finish fills c.Thresholds from the ThresholdsIn shadow field; Default calls it on the defaults
// and Load/LoadBytes call it after decoding.
func (c *Config) finish() {
	c.Thresholds = analysis.PerformanceThresholds{
		LargeFont:    c.ThresholdsIn.LargeFont,
		LargeOutline: c.ThresholdsIn.LargeOutline,
		LargeShadow:  c.ThresholdsIn.LargeShadow,
		Scaling:      c.ThresholdsIn.Scaling,
	}
}

// ToLintConfig translates the decoded LintConfig into analysis.LintConfig, mapping MinSeverity's
// string spelling to an issues.Severity (defaulting to Info for an unrecognized or empty string).
func (c LintConfig) ToLintConfig() analysis.LintConfig {
	return analysis.LintConfig{
		Enabled:     c.Enabled,
		MinSeverity: severityFromString(c.MinSeverity),
		MaxIssues:   c.MaxIssues,
	}
}

func severityFromString(s string) issues.Severity {
	switch s {
	case "hint":
		return issues.Hint
	case "warning":
		return issues.Warning
	case "error":
		return issues.Error
	case "critical":
		return issues.Critical
	default:
		return issues.Info
	}
}

// Load reads and decodes a config file at path. The format is chosen by extension: ".yaml" or
// ".yml" decodes as YAML, anything else as TOML.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return LoadBytes(data, formatForPath(path))
}

// Format selects which decoder LoadBytes uses.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func formatForPath(path string) Format {
	if len(path) >= 5 && (path[len(path)-5:] == ".yaml") {
		return FormatYAML
	}
	if len(path) >= 4 && path[len(path)-4:] == ".yml" {
		return FormatYAML
	}
	return FormatTOML
}

// LoadBytes decodes data in the given format over Default(), so an empty or partial document
// still yields spec.md §6's full default set for anything it doesn't mention.
func LoadBytes(data []byte, format Format) (Config, error) {
	cfg := Default()
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, err
	}
	cfg.finish()
	return cfg, nil
}
