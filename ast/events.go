package ast

import "github.com/assforge/asstk/span"

// An EventKind distinguishes the line type a "Dialogue:"/"Comment:"/etc. line declares.
// Picture, Sound, Movie, and Command are legacy SSA event types kept for round-tripping; modern
// scripts use only Dialogue and Comment.
type EventKind int

const (
	EventDialogue EventKind = iota
	EventComment
	EventPicture
	EventSound
	EventMovie
	EventCommand
)

func (k EventKind) String() string {
	switch k {
	case EventDialogue:
		return "Dialogue"
	case EventComment:
		return "Comment"
	case EventPicture:
		return "Picture"
	case EventSound:
		return "Sound"
	case EventMovie:
		return "Movie"
	case EventCommand:
		return "Command"
	default:
		return "unknown"
	}
}

// ParseEventKind maps a line's leading keyword to an EventKind.
func ParseEventKind(keyword string) (EventKind, bool) {
	switch keyword {
	case "Dialogue":
		return EventDialogue, true
	case "Comment":
		return EventComment, true
	case "Picture":
		return EventPicture, true
	case "Sound":
		return EventSound, true
	case "Movie":
		return EventMovie, true
	case "Command":
		return EventCommand, true
	default:
		return 0, false
	}
}

// An Event is one Dialogue/Comment/... line. Text is everything after the ninth comma (spec.md
// §8) and still contains any override blocks ({...}) unparsed; package analysis and package
// render are responsible for segmenting it.
type Event struct {
	Kind    EventKind
	Layer   span.Span
	Start   span.Span
	End     span.Span
	Style   span.Span
	Name    span.Span
	MarginL span.Span
	MarginR span.Span
	MarginV span.Span
	Effect  span.Span
	Text    span.Span
}

// Events is the [Events] section: an ordered format-line declaration plus the events declared
// against it, in source order. Source order is significant: render draw order and overlap
// detection both depend on it (spec.md §5).
type Events struct {
	SectionSpan span.Span
	FormatLine  []string
	Entries     []*Event
}

func (*Events) Kind() SectionKind {
	return KindEvents
}

// DefaultEventFormat is the field order assumed when an [Events] block has no Format line.
var DefaultEventFormat = []string{
	"Layer", "Start", "End", "Style", "Name",
	"MarginL", "MarginR", "MarginV", "Effect", "Text",
}
