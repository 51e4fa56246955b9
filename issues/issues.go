// Package issues implements the unified error taxonomy and issue collector described in
// spec.md §7. Recoverable conditions are recorded as Issues and accumulated in a Collector;
// only unrecoverable conditions (Resource, Security, Internal) short-circuit their caller by
// also being returned as a Go error wrapping the offending Issue.
package issues

import (
	"errors"
	"fmt"
)

// A Category classifies the kind of condition an Issue reports.
type Category int

const (
	Parsing Category = iota
	Format
	Encoding
	Analysis
	Validation
	Resource
	Security
	Plugin
	Configuration
	Internal
)

func (c Category) String() string {
	switch c {
	case Parsing:
		return "parsing"
	case Format:
		return "format"
	case Encoding:
		return "encoding"
	case Analysis:
		return "analysis"
	case Validation:
		return "validation"
	case Resource:
		return "resource"
	case Security:
		return "security"
	case Plugin:
		return "plugin"
	case Configuration:
		return "configuration"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// Recoverable reports whether a condition in this category allows processing to continue, per
// the table in spec.md §7. Resource, Security, and Internal are never recoverable. Encoding is
// partially recoverable; callers of Encoding issues should inspect the specific condition.
func (c Category) Recoverable() bool {
	switch c {
	case Resource, Security, Internal:
		return false
	default:
		return true
	}
}

// A Severity orders the user-visible importance of an Issue. The scale is
// Info < Hint < Warning < Error < Critical, matching spec.md §7.
type Severity int

const (
	Info Severity = iota
	Hint
	Warning
	Error
	Critical
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Hint:
		return "hint"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Critical:
		return "critical"
	default:
		return "unknown"
	}
}

// An Issue is a single recoverable or unrecoverable condition surfaced anywhere in the
// tokenizer, parser, analyzer, or render pipeline.
type Issue struct {
	Severity   Severity
	Category   Category
	Message    string
	Line       int
	Column     int
	HasColumn  bool
	Suggestion string
}

func (i *Issue) Error() string {
	if i.Line > 0 {
		if i.HasColumn {
			return fmt.Sprintf("%s:%d:%d: %s", i.Severity, i.Line, i.Column, i.Message)
		}
		return fmt.Sprintf("%s:%d: %s", i.Severity, i.Line, i.Message)
	}
	return fmt.Sprintf("%s: %s", i.Severity, i.Message)
}

// New constructs an Issue with no line information.
func New(severity Severity, category Category, message string) *Issue {
	return &Issue{Severity: severity, Category: category, Message: message}
}

// AtLine constructs an Issue anchored to a source line.
func AtLine(severity Severity, category Category, line int, message string) *Issue {
	return &Issue{Severity: severity, Category: category, Line: line, Message: message}
}

// WithColumn returns a copy of the Issue with column information attached.
func (i *Issue) WithColumn(column int) *Issue {
	cp := *i
	cp.Column = column
	cp.HasColumn = true
	return &cp
}

// WithSuggestion returns a copy of the Issue with a suggested fix attached.
func (i *Issue) WithSuggestion(suggestion string) *Issue {
	cp := *i
	cp.Suggestion = suggestion
	return &cp
}

// A Collector accumulates Issues in the order they are discovered. Parse issues are appended in
// source order; analysis issues within a single rule are in event order; across rules they are
// in rule-registration order (spec.md §5).
type Collector struct {
	issues []*Issue
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends an Issue to the collector.
func (c *Collector) Add(issue *Issue) {
	c.issues = append(c.issues, issue)
}

// Addf constructs and appends an Issue in one call.
func (c *Collector) Addf(severity Severity, category Category, line int, format string, args ...any) *Issue {
	issue := AtLine(severity, category, line, fmt.Sprintf(format, args...))
	c.Add(issue)
	return issue
}

// All returns every accumulated Issue, in insertion order.
func (c *Collector) All() []*Issue {
	return c.issues
}

// Len returns the number of accumulated issues.
func (c *Collector) Len() int {
	return len(c.issues)
}

// MinSeverity returns only the issues at or above the given severity.
func (c *Collector) MinSeverity(min Severity) []*Issue {
	var out []*Issue
	for _, issue := range c.issues {
		if issue.Severity >= min {
			out = append(out, issue)
		}
	}
	return out
}

// HasErrors reports whether any collected issue is at Error severity or above.
func (c *Collector) HasErrors() bool {
	for _, issue := range c.issues {
		if issue.Severity >= Error {
			return true
		}
	}
	return false
}

// Truncate drops any issue beyond max, matching the linter's max_issues configuration knob.
func (c *Collector) Truncate(max int) {
	if max >= 0 && len(c.issues) > max {
		c.issues = c.issues[:max]
	}
}

// Merge appends another Collector's issues to this one, preserving order.
func (c *Collector) Merge(other *Collector) {
	c.issues = append(c.issues, other.issues...)
}

// Fatal wraps an unrecoverable Issue (Resource, Security, or Internal category) as a Go error.
// Callers of the parser/analyzer short-circuit on a non-nil return from functions documented to
// return one.
func Fatal(issue *Issue) error {
	return fmt.Errorf("%w", fatalError{issue})
}

type fatalError struct {
	issue *Issue
}

func (f fatalError) Error() string {
	return f.issue.Error()
}

func (f fatalError) Unwrap() error {
	return nil
}

// AsIssue extracts the underlying Issue from an error produced by Fatal, if any.
func AsIssue(err error) (*Issue, bool) {
	var fe fatalError
	if !errors.As(err, &fe) {
		return nil, false
	}
	return fe.issue, true
}
