package render

import "github.com/assforge/asstk/plugin"

// clampFadeDurations clamps fade-in/fade-out centisecond durations so they never overlap and
// never exceed the event's own duration, per the Open Question decision recorded in DESIGN.md
// for \fad: both durations are measured from the event's own start and end, clamped to the
// event's duration.
func clampFadeDurations(fadeInCs, fadeOutCs, durationCs int) (in, out int) {
	if fadeInCs < 0 {
		fadeInCs = 0
	}
	if fadeOutCs < 0 {
		fadeOutCs = 0
	}
	if fadeInCs > durationCs {
		fadeInCs = durationCs
	}
	if fadeOutCs > durationCs {
		fadeOutCs = durationCs
	}
	if fadeInCs+fadeOutCs > durationCs {
		// Scale both down proportionally so they meet instead of overlapping.
		total := fadeInCs + fadeOutCs
		fadeInCs = fadeInCs * durationCs / total
		fadeOutCs = durationCs - fadeInCs
	}
	return fadeInCs, fadeOutCs
}

// FadeAlpha returns the [0,1] opacity multiplier \fad(...) applies at tCs centiseconds into an
// event of durationCs total length: linear ramp up over the fade-in window, full opacity in the
// middle, linear ramp down over the fade-out window.
func FadeAlpha(f *plugin.FadeArgs, durationCs, tCs int) float64 {
	if f == nil {
		return 1
	}
	in, out := clampFadeDurations(f.FadeInCs, f.FadeOutCs, durationCs)
	fadeOutStart := durationCs - out
	switch {
	case in > 0 && tCs < in:
		return float64(tCs) / float64(in)
	case out > 0 && tCs > fadeOutStart:
		return float64(durationCs-tCs) / float64(out)
	default:
		return 1
	}
}

// storedAlphaToOpacity converts a raw ASS alpha byte (0 = fully opaque, 255 = fully transparent)
// to an opacity fraction in [0,1].
func storedAlphaToOpacity(a uint8) float64 {
	return 1 - float64(a)/255
}

// FadeExAlpha returns the opacity multiplier \fade(a1,a2,a3,t1,t2,t3,t4)'s three-plateau
// envelope applies at tCs.
func FadeExAlpha(f *plugin.FadeExArgs, tCs int) float64 {
	if f == nil {
		return 1
	}
	switch {
	case tCs <= f.T1:
		return storedAlphaToOpacity(f.A1)
	case tCs <= f.T2:
		return lerpOpacity(f.A1, f.A2, progress(tCs, f.T1, f.T2))
	case tCs <= f.T3:
		return storedAlphaToOpacity(f.A2)
	case tCs <= f.T4:
		return lerpOpacity(f.A2, f.A3, progress(tCs, f.T3, f.T4))
	default:
		return storedAlphaToOpacity(f.A3)
	}
}

func lerpOpacity(a, b uint8, p float64) float64 {
	oa, ob := storedAlphaToOpacity(a), storedAlphaToOpacity(b)
	return oa + (ob-oa)*p
}
