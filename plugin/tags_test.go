package plugin

import (
	"testing"

	"github.com/assforge/asstk/ast"
)

func TestPosHandlerRoundTrip(t *testing.T) {
	h := posHandler{}
	args, err := h.ParseArgs("(100,200)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var state AnimationState
	res := h.Apply(args, &state)
	if res.Kind != Processed {
		t.Fatalf("expected Processed, got %+v", res)
	}
	if state.Pos == nil || state.Pos.X != 100 || state.Pos.Y != 200 {
		t.Fatalf("got %+v", state.Pos)
	}
}

func TestMoveHandlerWithTiming(t *testing.T) {
	h := moveHandler{}
	args, err := h.ParseArgs("(0,0,100,100,50,150)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := args.(MoveArgs)
	if !m.HasTiming || m.T1 != 50 || m.T2 != 150 {
		t.Fatalf("got %+v", m)
	}
	if err := h.Validate(args); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestMoveHandlerRejectsBackwardsTiming(t *testing.T) {
	h := moveHandler{}
	args, _ := h.ParseArgs("(0,0,10,10,200,100)")
	if err := h.Validate(args); err == nil {
		t.Fatal("expected a validation error for t2 < t1")
	}
}

func TestToggleHandlerParsesZeroAndOne(t *testing.T) {
	h := toggleHandler{name: "b", field: toggleBold}
	on, _ := h.ParseArgs("1")
	off, _ := h.ParseArgs("0")
	if on.(Trilean) != On || off.(Trilean) != Off {
		t.Fatalf("got on=%v off=%v", on, off)
	}
	var state AnimationState
	h.Apply(on, &state)
	if state.Bold != On {
		t.Fatalf("expected Bold=On, got %v", state.Bold)
	}
}

func TestColorHandlerPreservesExistingAlpha(t *testing.T) {
	h := colorHandler{name: "c", slot: slotPrimary}
	state := AnimationState{PrimaryColour: ast.Color{R: 1, G: 2, B: 3, A: 42}, HasPrimaryColour: true}
	args, err := h.ParseArgs("&H0000FF&")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h.Apply(args, &state)
	if state.PrimaryColour.A != 42 {
		t.Fatalf("expected alpha to be preserved at 42, got %d", state.PrimaryColour.A)
	}
	if state.PrimaryColour.R != 0xFF {
		t.Fatalf("expected red channel 0xFF, got %x", state.PrimaryColour.R)
	}
}

func TestAlphaHandlerTargetsSingleSlot(t *testing.T) {
	h := alphaHandler{name: "1a", slots: []colorSlot{slotPrimary}}
	var state AnimationState
	state.PrimaryColour = ast.Color{R: 10, G: 20, B: 30, A: 255}
	state.SecondaryColour = ast.Color{R: 1, G: 1, B: 1, A: 255}
	args, err := h.ParseArgs("&H80&")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h.Apply(args, &state)
	if state.PrimaryColour.A != 255-0x80 {
		t.Fatalf("got %d", state.PrimaryColour.A)
	}
	if state.SecondaryColour.A != 255 {
		t.Fatalf("expected secondary colour untouched, got %d", state.SecondaryColour.A)
	}
}

func TestAlphaHandlerAllFour(t *testing.T) {
	h := alphaHandler{name: "alpha"}
	var state AnimationState
	state.PrimaryColour = ast.Color{A: 255}
	state.SecondaryColour = ast.Color{A: 255}
	state.OutlineColour = ast.Color{A: 255}
	state.BackColour = ast.Color{A: 255}
	args, _ := h.ParseArgs("&HFF&")
	h.Apply(args, &state)
	if state.PrimaryColour.A != 0 || state.SecondaryColour.A != 0 || state.OutlineColour.A != 0 || state.BackColour.A != 0 {
		t.Fatalf("expected all four alphas zeroed, got %+v", state)
	}
}

func TestTransformHandlerFourArgForm(t *testing.T) {
	h := transformHandler{}
	args, err := h.ParseArgs(`(100,200,2,\fscx120\fscy120)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tr := args.(TransformArgs)
	if !tr.HasTiming || tr.T1 != 100 || tr.T2 != 200 || tr.Accel != 2 {
		t.Fatalf("got %+v", tr)
	}
	if tr.Tags != `\fscx120\fscy120` {
		t.Fatalf("got tags %q", tr.Tags)
	}
}

func TestTransformHandlerBareTagsForm(t *testing.T) {
	h := transformHandler{}
	args, err := h.ParseArgs(`(\alpha&HFF&)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tr := args.(TransformArgs)
	if tr.HasTiming {
		t.Fatal("expected no explicit timing")
	}
	if tr.Accel != 1 {
		t.Fatalf("expected default accel 1, got %v", tr.Accel)
	}
}

func TestClipHandlerRectangleForm(t *testing.T) {
	h := clipHandler{}
	args, err := h.ParseArgs("(0,0,100,100)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := args.(ClipArgs)
	if !c.HasRect || c.X2 != 100 || c.Y2 != 100 {
		t.Fatalf("got %+v", c)
	}
}

func TestClipHandlerDrawingForm(t *testing.T) {
	h := clipHandler{inverse: true}
	args, err := h.ParseArgs("(m 0 0 l 100 0 100 100 0 100)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := args.(ClipArgs)
	if c.HasRect {
		t.Fatal("expected a drawing-path clip, not a rectangle")
	}
	if !c.Inverse {
		t.Fatal("expected Inverse to be true for iclip")
	}
}

func TestFadHandlerAppliesDurations(t *testing.T) {
	h := fadHandler{}
	args, err := h.ParseArgs("(200,300)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var state AnimationState
	h.Apply(args, &state)
	if state.Fade == nil || state.Fade.FadeInCs != 200 || state.Fade.FadeOutCs != 300 {
		t.Fatalf("got %+v", state.Fade)
	}
}

func TestFadeHandlerRejectsDecreasingTimestamps(t *testing.T) {
	h := fadeHandler{}
	args, _ := h.ParseArgs("(255,0,255,100,50,200,300)")
	if err := h.Validate(args); err == nil {
		t.Fatal("expected a validation error for decreasing timestamps")
	}
}

func TestAlignLegacyMapping(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 3, 5: 7, 6: 8, 7: 9, 9: 4, 10: 5, 11: 6}
	for legacy, want := range cases {
		if got := legacyAlignToAn(legacy); got != want {
			t.Fatalf("legacyAlignToAn(%d) = %d, want %d", legacy, got, want)
		}
	}
}

func TestAnHandlerRejectsOutOfRange(t *testing.T) {
	h := anHandler{}
	args, _ := h.ParseArgs("12")
	var state AnimationState
	res := h.Apply(args, &state)
	if res.Kind != Failed {
		t.Fatalf("expected Failed, got %+v", res)
	}
}
