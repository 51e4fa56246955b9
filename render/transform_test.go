package render

import (
	"testing"

	"github.com/assforge/asstk/issues"
	"github.com/assforge/asstk/plugin"
)

func TestBuildAnimationTracksDiffsChangedFields(t *testing.T) {
	reg := testRegistry(t)
	base := plugin.AnimationState{
		Fontsize: 20, HasFontsize: true,
		ScaleX: 100, HasScaleX: true,
	}
	tr := plugin.TransformArgs{Tags: `\fscx120\fs30`, Accel: 1}
	tracks := buildAnimationTracks(reg, base, tr, 0, 100, nil)

	byProp := map[string]AnimationTrack{}
	for _, tr := range tracks {
		byProp[tr.Property] = tr
	}
	fsTrack, ok := byProp["fontsize"]
	if !ok {
		t.Fatalf("expected a fontsize track, got %+v", tracks)
	}
	if fsTrack.StartValue.(float64) != 20 || fsTrack.EndValue.(float64) != 30 {
		t.Fatalf("got fontsize track %+v", fsTrack)
	}
	scaleTrack, ok := byProp["scalex"]
	if !ok {
		t.Fatalf("expected a scalex track, got %+v", tracks)
	}
	if scaleTrack.StartValue.(float64) != 100 || scaleTrack.EndValue.(float64) != 120 {
		t.Fatalf("got scalex track %+v", scaleTrack)
	}
}

func TestBuildAnimationTracksSkipsUnchangedFields(t *testing.T) {
	reg := testRegistry(t)
	base := plugin.AnimationState{Fontsize: 20, HasFontsize: true}
	tr := plugin.TransformArgs{Tags: `\fs20`, Accel: 1}
	tracks := buildAnimationTracks(reg, base, tr, 0, 100, nil)
	if len(tracks) != 0 {
		t.Fatalf("got %d tracks for a no-op transform, want 0", len(tracks))
	}
}

func TestBuildAnimationTracksNonPositiveAccelEmitsInfoAndTreatsAsLinear(t *testing.T) {
	reg := testRegistry(t)
	base := plugin.AnimationState{Fontsize: 20, HasFontsize: true}
	tr := plugin.TransformArgs{Tags: `\fs40`, Accel: 0}
	collector := issues.NewCollector()
	tracks := buildAnimationTracks(reg, base, tr, 0, 100, collector)

	if len(tracks) != 1 || tracks[0].Accel != 1 {
		t.Fatalf("expected one track clamped to Accel=1, got %+v", tracks)
	}

	found := false
	for _, iss := range collector.All() {
		if iss.Severity == issues.Info && iss.Category == issues.Plugin {
			found = true
		}
	}
	if !found {
		t.Fatal("expected an Info issue for the non-positive acceleration")
	}
}

func TestApplyTrackValueWritesBackToStyleState(t *testing.T) {
	track := AnimationTrack{
		Property:   "fontsize",
		T1:         0,
		T2:         100,
		Kind:       Linear,
		StartValue: 20.0,
		EndValue:   40.0,
	}
	state := styleState{Fontsize: 20}
	applyTrackValue(&state, track, 50)
	if state.Fontsize != 30 {
		t.Fatalf("Fontsize = %v, want 30", state.Fontsize)
	}
}

func TestApplyTrackValueColor(t *testing.T) {
	track := AnimationTrack{
		Property:   "primarycolour",
		T1:         0,
		T2:         100,
		Kind:       Linear,
		StartValue: RGBA{R: 0, G: 0, B: 0, A: 0},
		EndValue:   RGBA{R: 255, G: 255, B: 255, A: 255},
	}
	state := styleState{}
	applyTrackValue(&state, track, 100)
	if state.PrimaryColour.Red() != 255 || state.PrimaryAlpha != 255 {
		t.Fatalf("got PrimaryColour=%v PrimaryAlpha=%v", state.PrimaryColour, state.PrimaryAlpha)
	}
}
