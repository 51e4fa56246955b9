package parser

import (
	"github.com/assforge/asstk/ast"
	"github.com/assforge/asstk/span"
)

// A ChangeKind classifies one item in a Delta.
type ChangeKind int

const (
	Added ChangeKind = iota
	Removed
	Replaced
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Replaced:
		return "replaced"
	default:
		return "unknown"
	}
}

// A SectionChange identifies one added/removed/replaced section by kind and position in the
// new Script's Sections list.
type SectionChange struct {
	Change ChangeKind
	Kind   ast.SectionKind
	Index  int
}

// An EventChange identifies one added/removed/replaced event within the Events section by its
// position in the new Events.Entries list.
type EventChange struct {
	Change ChangeKind
	Index  int
}

// A Delta describes the effect of one apply_change call: which edit was made (in old-document
// byte coordinates) and which sections it added, removed, or replaced, by identity
// (spec.md §3, §4.2, §6). ApplyChange fills Sections only; Events is always left empty.
type Delta struct {
	EditRange   span.Span // the replaced range, in the OLD document's coordinates
	SizeDelta   int       // len(replacement) - EditRange.Len()
	Sections    []SectionChange
	Events      []EventChange
}

// AdjustRange maps a span from the old document's coordinates to the new document's
// coordinates, following the three rules in spec.md §4.2:
//   - the change is entirely before old (old starts at or after EditRange.End): shift by SizeDelta.
//   - the change is entirely after old (old ends at or before EditRange.Start): unchanged.
//   - otherwise (overlapping): start clamps to min(old.Start, EditRange.Start); end shifts by SizeDelta.
func (d Delta) AdjustRange(old span.Span) span.Span {
	switch {
	case old.Start >= d.EditRange.End:
		return span.New(old.Start+d.SizeDelta, old.End+d.SizeDelta)
	case old.End <= d.EditRange.Start:
		return old
	default:
		start := old.Start
		if d.EditRange.Start < start {
			start = d.EditRange.Start
		}
		return span.New(start, old.End+d.SizeDelta)
	}
}

// ApplyChange re-parses only the section containing editRange (in script.Source's coordinates),
// producing a new Script and a Delta describing what changed. If editRange does not fall inside
// any existing section's span, it falls back to a full re-parse, reporting the whole document as
// replaced section-by-section.
func ApplyChange(script *ast.Script, editRange span.Span, replacement string) (*ast.Script, Delta) {
	oldSource := script.Source
	newSource := make([]byte, 0, len(oldSource)-editRange.Len()+len(replacement))
	newSource = append(newSource, oldSource[:editRange.Start]...)
	newSource = append(newSource, replacement...)
	newSource = append(newSource, oldSource[editRange.End:]...)

	delta := Delta{EditRange: editRange, SizeDelta: len(replacement) - editRange.Len()}

	targetIdx := containingSectionIndex(script, editRange)
	if targetIdx < 0 {
		return reparseWhole(script, newSource, delta)
	}

	return reparseSection(script, newSource, delta, targetIdx)
}

// containingSectionIndex returns the index of the section whose span contains editRange, or -1.
func containingSectionIndex(script *ast.Script, editRange span.Span) int {
	for i, sec := range script.Sections {
		sp := sectionSpan(sec)
		if sp.Start <= editRange.Start && editRange.End <= sp.End {
			return i
		}
	}
	return -1
}

func sectionSpan(sec ast.Section) span.Span {
	switch s := sec.(type) {
	case *ast.ScriptInfo:
		return s.SectionSpan
	case *ast.Styles:
		return s.SectionSpan
	case *ast.Events:
		return s.SectionSpan
	case *ast.Fonts:
		return s.SectionSpan
	case *ast.Graphics:
		return s.SectionSpan
	default:
		return span.Span{}
	}
}

func reparseWhole(script *ast.Script, newSource []byte, delta Delta) (*ast.Script, Delta) {
	newScript := Parse(newSource)
	for i, sec := range script.Sections {
		if i < len(newScript.Sections) {
			delta.Sections = append(delta.Sections, SectionChange{Change: Replaced, Kind: sec.Kind(), Index: i})
		} else {
			delta.Sections = append(delta.Sections, SectionChange{Change: Removed, Kind: sec.Kind(), Index: i})
		}
	}
	for i := len(script.Sections); i < len(newScript.Sections); i++ {
		delta.Sections = append(delta.Sections, SectionChange{Change: Added, Kind: newScript.Sections[i].Kind(), Index: i})
	}
	return newScript, delta
}

// reparseSection re-tokenizes and re-parses only the section at targetIdx, using the header
// line and content found at its (delta-adjusted) position in newSource, and splices the result
// into a copy of the other sections (with their spans adjusted).
func reparseSection(script *ast.Script, newSource []byte, delta Delta, targetIdx int) (*ast.Script, Delta) {
	oldSpan := sectionSpan(script.Sections[targetIdx])
	newSpanApprox := delta.AdjustRange(oldSpan)

	sliceStart := newSpanApprox.Start
	sliceEnd := len(newSource)
	if targetIdx+1 < len(script.Sections) {
		nextOld := sectionSpan(script.Sections[targetIdx+1])
		sliceEnd = delta.AdjustRange(nextOld).Start
	}
	if sliceEnd > len(newSource) {
		sliceEnd = len(newSource)
	}
	if sliceStart > sliceEnd {
		sliceStart = sliceEnd
	}

	excerptScript := Parse(newSource[sliceStart:sliceEnd])

	newSections := make([]ast.Section, 0, len(script.Sections)+len(excerptScript.Sections))
	for i, sec := range script.Sections {
		switch {
		case i < targetIdx:
			newSections = append(newSections, shiftSection(sec, 0))
		case i == targetIdx:
			for _, rs := range excerptScript.Sections {
				newSections = append(newSections, shiftSection(rs, sliceStart))
			}
			delta.Sections = append(delta.Sections, SectionChange{Change: Replaced, Kind: sec.Kind(), Index: i})
		default:
			newSections = append(newSections, shiftSection(sec, delta.SizeDelta))
		}
	}

	newScript := &ast.Script{
		Source:   newSource,
		Version:  script.Version,
		Sections: newSections,
		Issues:   excerptScript.Issues,
	}
	return newScript, delta
}

// shiftSection returns a copy of sec with every span shifted by offset. offset is 0 for
// sections entirely before the edit (their absolute byte positions in newSource did not move),
// or the raw byte offset at which a freshly-parsed excerpt needs to be re-based, or a uniform
// sizeDelta shift for sections entirely after the edit.
func shiftSection(sec ast.Section, offset int) ast.Section {
	if offset == 0 {
		return sec
	}
	shift := func(s span.Span) span.Span {
		if s.Start == 0 && s.End == 0 {
			return s
		}
		return span.New(s.Start+offset, s.End+offset)
	}
	switch s := sec.(type) {
	case *ast.ScriptInfo:
		cp := *s
		cp.SectionSpan = shift(s.SectionSpan)
		cp.Entries = make([]ast.KV, len(s.Entries))
		for i, e := range s.Entries {
			cp.Entries[i] = ast.KV{Key: shift(e.Key), Value: shift(e.Value)}
		}
		return &cp
	case *ast.Styles:
		cp := *s
		cp.SectionSpan = shift(s.SectionSpan)
		cp.Entries = make([]*ast.Style, len(s.Entries))
		for i, e := range s.Entries {
			ecp := *e
			ecp.Name = shift(e.Name)
			ecp.Fontname = shift(e.Fontname)
			ecp.Fontsize = shift(e.Fontsize)
			ecp.PrimaryColour = shift(e.PrimaryColour)
			ecp.SecondaryColour = shift(e.SecondaryColour)
			ecp.OutlineColour = shift(e.OutlineColour)
			ecp.BackColour = shift(e.BackColour)
			ecp.Bold = shift(e.Bold)
			ecp.Italic = shift(e.Italic)
			ecp.Underline = shift(e.Underline)
			ecp.StrikeOut = shift(e.StrikeOut)
			ecp.ScaleX = shift(e.ScaleX)
			ecp.ScaleY = shift(e.ScaleY)
			ecp.Spacing = shift(e.Spacing)
			ecp.Angle = shift(e.Angle)
			ecp.BorderStyle = shift(e.BorderStyle)
			ecp.Outline = shift(e.Outline)
			ecp.Shadow = shift(e.Shadow)
			ecp.Alignment = shift(e.Alignment)
			ecp.MarginL = shift(e.MarginL)
			ecp.MarginR = shift(e.MarginR)
			ecp.MarginV = shift(e.MarginV)
			ecp.Encoding = shift(e.Encoding)
			if e.HasMarginT {
				ecp.MarginT = shift(e.MarginT)
			}
			if e.HasMarginB {
				ecp.MarginB = shift(e.MarginB)
			}
			ecp.RelativeTo = shift(e.RelativeTo)
			if e.HasParent {
				ecp.Parent = shift(e.Parent)
			}
			raw := make([]span.Span, len(e.Raw))
			for j, r := range e.Raw {
				raw[j] = shift(r)
			}
			ecp.Raw = raw
			cp.Entries[i] = &ecp
		}
		return &cp
	case *ast.Events:
		cp := *s
		cp.SectionSpan = shift(s.SectionSpan)
		cp.Entries = make([]*ast.Event, len(s.Entries))
		for i, e := range s.Entries {
			ecp := *e
			ecp.Layer = shift(e.Layer)
			ecp.Start = shift(e.Start)
			ecp.End = shift(e.End)
			ecp.Style = shift(e.Style)
			ecp.Name = shift(e.Name)
			ecp.MarginL = shift(e.MarginL)
			ecp.MarginR = shift(e.MarginR)
			ecp.MarginV = shift(e.MarginV)
			ecp.Effect = shift(e.Effect)
			ecp.Text = shift(e.Text)
			cp.Entries[i] = &ecp
		}
		return &cp
	case *ast.Fonts:
		cp := *s
		cp.SectionSpan = shift(s.SectionSpan)
		cp.Files = shiftEmbeddedFiles(s.Files, shift)
		return &cp
	case *ast.Graphics:
		cp := *s
		cp.SectionSpan = shift(s.SectionSpan)
		cp.Files = shiftEmbeddedFiles(s.Files, shift)
		return &cp
	default:
		return sec
	}
}

func shiftEmbeddedFiles(files []*ast.EmbeddedFile, shift func(span.Span) span.Span) []*ast.EmbeddedFile {
	out := make([]*ast.EmbeddedFile, len(files))
	for i, f := range files {
		fcp := *f
		fcp.Filename = shift(f.Filename)
		lines := make([]span.Span, len(f.DataLines))
		for j, l := range f.DataLines {
			lines[j] = shift(l)
		}
		fcp.DataLines = lines
		out[i] = &fcp
	}
	return out
}
