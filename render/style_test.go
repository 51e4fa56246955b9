package render

import (
	"testing"

	"github.com/alecthomas/chroma"

	"github.com/assforge/asstk/analysis"
	"github.com/assforge/asstk/plugin"
)

func TestStateFromResolvedStyle(t *testing.T) {
	s := analysis.DefaultResolvedStyle()
	st := stateFromResolvedStyle(s)
	if st.Fontname != s.Fontname {
		t.Errorf("Fontname = %q, want %q", st.Fontname, s.Fontname)
	}
	if st.Fontsize != s.Fontsize {
		t.Errorf("Fontsize = %v, want %v", st.Fontsize, s.Fontsize)
	}
	if st.Bold != chroma.No {
		t.Errorf("expected default Bold = No, got %v", st.Bold)
	}
	if st.PrimaryAlpha != s.PrimaryColour.A {
		t.Errorf("PrimaryAlpha = %v, want %v", st.PrimaryAlpha, s.PrimaryColour.A)
	}
}

func TestApplyAnimationStateRespectsHasFlags(t *testing.T) {
	base := stateFromResolvedStyle(analysis.DefaultResolvedStyle())
	st := &plugin.AnimationState{
		Fontsize:    40,
		HasFontsize: true,
	}
	out := applyAnimationState(base, st)
	if out.Fontsize != 40 {
		t.Fatalf("Fontsize = %v, want 40", out.Fontsize)
	}
	if out.Fontname != base.Fontname {
		t.Fatalf("untouched Fontname changed: got %q, want %q", out.Fontname, base.Fontname)
	}
	if out.Bold != base.Bold {
		t.Fatalf("untouched Bold changed: got %v, want %v", out.Bold, base.Bold)
	}
}

func TestApplyAnimationStateToggles(t *testing.T) {
	base := stateFromResolvedStyle(analysis.DefaultResolvedStyle())
	st := &plugin.AnimationState{Bold: plugin.On}
	out := applyAnimationState(base, st)
	if out.Bold != chroma.Yes {
		t.Fatalf("Bold = %v, want Yes", out.Bold)
	}

	inherit := &plugin.AnimationState{Bold: plugin.Inherit}
	out2 := applyAnimationState(out, inherit)
	if out2.Bold != chroma.Yes {
		t.Fatalf("Inherit changed Bold to %v, want it left at Yes", out2.Bold)
	}
}

func TestColourRGBA(t *testing.T) {
	c := colourFromRGB(10, 20, 30)
	rgba := colourRGBA(c, 255)
	if rgba.R != 10 || rgba.G != 20 || rgba.B != 30 || rgba.A != 255 {
		t.Fatalf("got %+v", rgba)
	}
}
