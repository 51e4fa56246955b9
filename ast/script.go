// Package ast defines the immutable, zero-copy abstract syntax tree produced by package parser.
// Every node holds span.Span values that borrow byte ranges from a Script's Source; no node
// copies source text into an owned string. See spec.md §3 for the full data model.
package ast

import "github.com/assforge/asstk/issues"

// A SectionKind identifies which tagged-union variant a Section is.
type SectionKind int

const (
	KindScriptInfo SectionKind = iota
	KindStyles
	KindEvents
	KindFonts
	KindGraphics
)

func (k SectionKind) String() string {
	switch k {
	case KindScriptInfo:
		return "Script Info"
	case KindStyles:
		return "Styles"
	case KindEvents:
		return "Events"
	case KindFonts:
		return "Fonts"
	case KindGraphics:
		return "Graphics"
	default:
		return "unknown"
	}
}

// A Section is one of ScriptInfo, Styles, Events, Fonts, or Graphics. At most one of each kind
// is meaningful in a Script; the parser preserves every one it finds in source order regardless.
type Section interface {
	Kind() SectionKind
}

// A Script is the root value produced by the parser: the original source, its detected version,
// an ordered list of sections, and every issue accumulated while parsing it. A Script is treated
// as immutable by every downstream consumer (analysis, render); the editor layer never mutates
// one in place; it always produces a new Script or a Delta (spec.md §3 invariants).
type Script struct {
	Source   []byte
	Version  Version
	Sections []Section
	Issues   *issues.Collector
}

// ScriptInfo returns the first ScriptInfo section, if any.
func (s *Script) ScriptInfo() *ScriptInfo {
	for _, sec := range s.Sections {
		if si, ok := sec.(*ScriptInfo); ok {
			return si
		}
	}
	return nil
}

// Styles returns the first Styles section, if any.
func (s *Script) Styles() *Styles {
	for _, sec := range s.Sections {
		if st, ok := sec.(*Styles); ok {
			return st
		}
	}
	return nil
}

// Events returns the first Events section, if any.
func (s *Script) Events() *Events {
	for _, sec := range s.Sections {
		if ev, ok := sec.(*Events); ok {
			return ev
		}
	}
	return nil
}

// Fonts returns the first Fonts section, if any.
func (s *Script) Fonts() *Fonts {
	for _, sec := range s.Sections {
		if f, ok := sec.(*Fonts); ok {
			return f
		}
	}
	return nil
}

// Graphics returns the first Graphics section, if any.
func (s *Script) Graphics() *Graphics {
	for _, sec := range s.Sections {
		if g, ok := sec.(*Graphics); ok {
			return g
		}
	}
	return nil
}

// Title returns the ScriptInfo section's Title value, or "" if there is none.
func (s *Script) Title() string {
	si := s.ScriptInfo()
	if si == nil {
		return ""
	}
	v, _ := si.Get(s.Source, "Title")
	return v
}
