package render

import (
	"testing"

	"github.com/assforge/asstk/plugin"
)

func testRegistry(t *testing.T) *plugin.Registry {
	t.Helper()
	reg := plugin.NewRegistry()
	if err := plugin.RegisterDefaults(reg); err != nil {
		t.Fatalf("RegisterDefaults: %v", err)
	}
	return reg
}

func TestSplitOverrideTags(t *testing.T) {
	got := splitOverrideTags(`\b1\pos(10,20)\fscx120`)
	want := []string{`\b1`, `\pos(10,20)`, `\fscx120`}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitOverrideTagsIgnoresBackslashInsideParens(t *testing.T) {
	got := splitOverrideTags(`\t(0,100,\fscx120\fscy120)`)
	want := []string{`\t(0,100,\fscx120\fscy120)`}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSplitTagNameArgsLongestPrefixMatch(t *testing.T) {
	reg := testRegistry(t)
	names := sortedTagNames(reg)
	name, args, ok := splitTagNameArgs("fscx120", names)
	if !ok || name != "fscx" || args != "120" {
		t.Fatalf("got name=%q args=%q ok=%v, want fscx/120/true", name, args, ok)
	}
	name2, args2, ok2 := splitTagNameArgs("an5", names)
	if !ok2 || name2 != "an" || args2 != "5" {
		t.Fatalf("got name=%q args=%q ok=%v, want an/5/true", name2, args2, ok2)
	}
}

func TestApplyOverrideBlockAppliesBoldAndPos(t *testing.T) {
	reg := testRegistry(t)
	var state plugin.AnimationState
	outcomes := applyOverrideBlock(reg, `\b1\pos(10,20)`, &state)
	if len(outcomes) != 2 {
		t.Fatalf("got %d outcomes, want 2", len(outcomes))
	}
	for _, o := range outcomes {
		if o.Kind != OutcomeApplied {
			t.Errorf("tag %q: got %v, want OutcomeApplied (%s)", o.Tag, o.Kind, o.Message)
		}
	}
	if state.Bold != plugin.On {
		t.Fatalf("Bold = %v, want On", state.Bold)
	}
	if state.Pos == nil || state.Pos.X != 10 || state.Pos.Y != 20 {
		t.Fatalf("Pos = %+v", state.Pos)
	}
}

func TestApplyOverrideBlockUnknownTag(t *testing.T) {
	reg := testRegistry(t)
	var state plugin.AnimationState
	outcomes := applyOverrideBlock(reg, `\zzz99`, &state)
	if len(outcomes) != 1 || outcomes[0].Kind != OutcomeUnknown {
		t.Fatalf("got %+v, want one OutcomeUnknown", outcomes)
	}
}

func TestApplyOverrideBlockCapturingTransformsSurfacesT(t *testing.T) {
	reg := testRegistry(t)
	var state plugin.AnimationState
	outcomes, transforms := applyOverrideBlockCapturingTransforms(reg, `\t(0,100,\fscx120)`, &state, nil)
	if len(outcomes) != 1 || outcomes[0].Kind != OutcomeApplied {
		t.Fatalf("got %+v", outcomes)
	}
	if len(transforms) != 1 {
		t.Fatalf("got %d transforms, want 1", len(transforms))
	}
	if transforms[0].Tags != `\fscx120` {
		t.Fatalf("got Tags=%q, want \\fscx120", transforms[0].Tags)
	}
	// \t's Apply is a deliberate no-op: the cumulative state itself must be untouched.
	if state.HasScaleX {
		t.Fatalf("expected \\t not to mutate state directly, got ScaleX=%v", state.ScaleX)
	}
}

func TestApplyOverrideBlockCapturingTransformsHonorsInlineReset(t *testing.T) {
	reg := testRegistry(t)
	state := plugin.AnimationState{Bold: plugin.On}
	resetCalls := 0
	resetFn := func(name string) plugin.AnimationState {
		resetCalls++
		return plugin.AnimationState{Italic: plugin.On}
	}
	_, _ = applyOverrideBlockCapturingTransforms(reg, `\r\b1`, &state, resetFn)
	if resetCalls != 1 {
		t.Fatalf("resetFn called %d times, want 1", resetCalls)
	}
	if state.Italic != plugin.On {
		t.Fatalf("expected reset baseline to carry through, Italic=%v", state.Italic)
	}
	if state.Bold != plugin.On {
		t.Fatalf("expected \\b1 after \\r to apply on top of the reset baseline, Bold=%v", state.Bold)
	}
}
