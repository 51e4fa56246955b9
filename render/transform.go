package render

import (
	"github.com/assforge/asstk/issues"
	"github.com/assforge/asstk/plugin"
)

// buildAnimationTracks computes the AnimationTracks a \t(...) block produces: it re-applies
// tr.Tags through the same tag-walk override blocks use (the registry's Apply methods have no
// notion of "animate this"), diffs the resulting target AnimationState against base field by
// field, and emits one track per field that actually changed. This is necessary because
// transformHandler.Apply deliberately leaves AnimationState untouched — \t's effect depends on
// the render timestamp, which only this package, not the plugin layer, knows about.
//
// t1, t2 are already resolved to event-relative centiseconds: callers pass tr.T1/tr.T2 directly
// when tr.HasTiming, or 0/eventDurationCs when it is not (spec.md §6 Open Question: an untimed
// \t spans the whole event, clamped to its duration).
func buildAnimationTracks(reg *plugin.Registry, base plugin.AnimationState, tr plugin.TransformArgs, t1, t2 int, collector *issues.Collector) []AnimationTrack {
	if reg == nil {
		reg = plugin.DefaultRegistry
	}
	target := base
	applyOverrideBlock(reg, tr.Tags, &target)

	accel := tr.Accel
	if accel <= 0 {
		if collector != nil {
			collector.Addf(issues.Info, issues.Plugin, 0,
				"\\t acceleration %.2f is non-positive, treating as linear (accel=1)", tr.Accel)
		}
		accel = 1
	}
	mk := func(prop string, start, end any) AnimationTrack {
		return AnimationTrack{
			Property:   prop,
			T1:         t1,
			T2:         t2,
			Accel:      accel,
			Kind:       Accelerating,
			StartValue: start,
			EndValue:   end,
		}
	}

	var tracks []AnimationTrack
	if target.HasFontsize && target.Fontsize != base.Fontsize {
		tracks = append(tracks, mk("fontsize", base.Fontsize, target.Fontsize))
	}
	if target.HasScaleX && target.ScaleX != base.ScaleX {
		tracks = append(tracks, mk("scalex", base.ScaleX, target.ScaleX))
	}
	if target.HasScaleY && target.ScaleY != base.ScaleY {
		tracks = append(tracks, mk("scaley", base.ScaleY, target.ScaleY))
	}
	if target.HasSpacing && target.Spacing != base.Spacing {
		tracks = append(tracks, mk("spacing", base.Spacing, target.Spacing))
	}
	if target.HasAngle && target.Angle != base.Angle {
		tracks = append(tracks, mk("angle", base.Angle, target.Angle))
	}
	if target.HasOutline && target.Outline != base.Outline {
		tracks = append(tracks, mk("outline", base.Outline, target.Outline))
	}
	if target.HasShadow && target.Shadow != base.Shadow {
		tracks = append(tracks, mk("shadow", base.Shadow, target.Shadow))
	}
	if target.HasBlur && target.Blur != base.Blur {
		tracks = append(tracks, mk("blur", base.Blur, target.Blur))
	}
	if target.HasPrimaryColour && target.PrimaryColour != base.PrimaryColour {
		tracks = append(tracks, mk("primarycolour", rgbaFromColor(base.PrimaryColour), rgbaFromColor(target.PrimaryColour)))
	}
	if target.HasSecondaryColour && target.SecondaryColour != base.SecondaryColour {
		tracks = append(tracks, mk("secondarycolour", rgbaFromColor(base.SecondaryColour), rgbaFromColor(target.SecondaryColour)))
	}
	if target.HasOutlineColour && target.OutlineColour != base.OutlineColour {
		tracks = append(tracks, mk("outlinecolour", rgbaFromColor(base.OutlineColour), rgbaFromColor(target.OutlineColour)))
	}
	if target.HasBackColour && target.BackColour != base.BackColour {
		tracks = append(tracks, mk("backcolour", rgbaFromColor(base.BackColour), rgbaFromColor(target.BackColour)))
	}
	return tracks
}

// applyTrackValue writes track's value at tCs back into the styleState field it targets. Tracks
// whose Property names a field styleState doesn't carry a direct animatable counterpart for
// (there are none today; new tag families should extend this switch alongside
// buildAnimationTracks) are silently skipped.
func applyTrackValue(state *styleState, track AnimationTrack, tCs int) {
	v := track.Evaluate(tCs)
	switch track.Property {
	case "fontsize":
		state.Fontsize = v.(float64)
	case "scalex":
		state.ScaleX = v.(float64)
	case "scaley":
		state.ScaleY = v.(float64)
	case "spacing":
		state.Spacing = v.(float64)
	case "angle":
		state.Angle = v.(float64)
	case "outline":
		state.Outline = v.(float64)
	case "shadow":
		state.Shadow = v.(float64)
	case "blur":
		state.Blur = v.(float64)
	case "primarycolour":
		c := v.(RGBA)
		state.PrimaryColour = colourFromRGB(c.R, c.G, c.B)
		state.PrimaryAlpha = c.A
	case "secondarycolour":
		c := v.(RGBA)
		state.SecondaryColour = colourFromRGB(c.R, c.G, c.B)
		state.SecondaryAlpha = c.A
	case "outlinecolour":
		c := v.(RGBA)
		state.OutlineColour = colourFromRGB(c.R, c.G, c.B)
		state.OutlineAlpha = c.A
	case "backcolour":
		c := v.(RGBA)
		state.BackColour = colourFromRGB(c.R, c.G, c.B)
		state.BackAlpha = c.A
	}
}
