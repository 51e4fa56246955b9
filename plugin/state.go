package plugin

import "github.com/assforge/asstk/ast"

// A Trilean distinguishes "not touched by this override block" from an explicit on/off, the way
// a style's v4++ margin Has-flags distinguish absent from present.
type Trilean int8

const (
	Inherit Trilean = iota
	Off
	On
)

// A Point is an x,y coordinate in PlayRes space.
type Point struct {
	X, Y float64
}

// MoveArgs is \move(x1,y1,x2,y2[,t1,t2]).
type MoveArgs struct {
	From, To   Point
	HasTiming  bool
	T1, T2     int // centiseconds, event-relative
}

// FadeArgs is \fad(t_in, t_out).
type FadeArgs struct {
	FadeInCs, FadeOutCs int
}

// FadeExArgs is \fade(a1, a2, a3, t1, t2, t3, t4).
type FadeExArgs struct {
	A1, A2, A3             uint8
	T1, T2, T3, T4         int
}

// ClipArgs is \clip(...) / \iclip(...); either a rectangle (Rect set) or a drawing-mode vector
// clip path (Path set), per ASS's two clip forms.
type ClipArgs struct {
	Inverse     bool
	HasRect     bool
	X1, Y1, X2, Y2 float64
	Path        string
}

// KaraokeMark is a single \k/\K/\kf/\ko/\kt boundary: duration in centiseconds and the sweep
// style the tag name implies.
type KaraokeMark struct {
	DurationCs int
	Style      KaraokeStyle
}

type KaraokeStyle int

const (
	KaraokeInstant KaraokeStyle = iota // \k, \kt: color flips at the boundary
	KaraokeSweep                       // \kf / \K: sweep fill left-to-right over the duration
	KaraokeOutline                     // \ko: sweeps the outline instead of the fill
)

// An AnimationState is the mutable cumulative override-tag state threaded through one run of
// text as the render pipeline walks override blocks, per spec.md §4.6's
// "apply(args, &mut animation_state)". It starts as a copy of the active ResolvedStyle's visual
// fields (converted by the render package) and is mutated in place by each tag handler's Apply.
type AnimationState struct {
	Bold, Italic, Underline, StrikeOut Trilean

	Fontname    string
	HasFontname bool
	Fontsize    float64
	HasFontsize bool

	PrimaryColour, SecondaryColour, OutlineColour, BackColour ast.Color
	HasPrimaryColour, HasSecondaryColour, HasOutlineColour, HasBackColour bool

	ScaleX, ScaleY float64
	HasScaleX, HasScaleY bool
	Spacing     float64
	HasSpacing  bool
	Angle       float64 // \fr / \frz, degrees about z
	HasAngle    bool
	AngleX, AngleY float64 // \frx, \fry
	HasAngleX, HasAngleY bool

	Outline, Shadow, Blur float64
	HasOutline, HasShadow, HasBlur bool

	Alignment    int
	HasAlignment bool
	WrapStyle    int
	HasWrapStyle bool

	Pos        *Point
	Move       *MoveArgs
	Origin     *Point
	Fade       *FadeArgs
	FadeEx     *FadeExArgs
	Clip       *ClipArgs
	Reset      string
	HasReset   bool
	Karaoke    []KaraokeMark
	DrawingMode int
	HasDrawingMode bool
}
