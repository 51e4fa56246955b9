package render

import (
	"github.com/assforge/asstk/analysis"
	"github.com/assforge/asstk/plugin"
)

func pluginTriFromBool(b bool) plugin.Trilean {
	if b {
		return plugin.On
	}
	return plugin.Off
}

// animationStateFromResolvedStyle seeds a plugin.AnimationState from a resolved style with
// every Has-flag set, so the tag-walk's cumulative state starts out indistinguishable from "an
// override block set every one of these fields to the style's own value" — the baseline both
// \t(...)'s diffing and \r's reset target against.
func animationStateFromResolvedStyle(s *analysis.ResolvedStyle) plugin.AnimationState {
	return plugin.AnimationState{
		Bold:      pluginTriFromBool(s.Bold),
		Italic:    pluginTriFromBool(s.Italic),
		Underline: pluginTriFromBool(s.Underline),
		StrikeOut: pluginTriFromBool(s.StrikeOut),

		Fontname: s.Fontname, HasFontname: true,
		Fontsize: s.Fontsize, HasFontsize: true,

		PrimaryColour: s.PrimaryColour, HasPrimaryColour: true,
		SecondaryColour: s.SecondaryColour, HasSecondaryColour: true,
		OutlineColour: s.OutlineColour, HasOutlineColour: true,
		BackColour: s.BackColour, HasBackColour: true,

		ScaleX: s.ScaleX, HasScaleX: true,
		ScaleY: s.ScaleY, HasScaleY: true,
		Spacing: s.Spacing, HasSpacing: true,
		Angle: s.Angle, HasAngle: true,

		Outline: s.Outline, HasOutline: true,
		Shadow: s.Shadow, HasShadow: true,

		Alignment: s.Alignment, HasAlignment: true,
	}
}
