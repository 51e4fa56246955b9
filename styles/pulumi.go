package styles

import (
	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/styles"
)

// Pulumi is the teacher's own muted theme, kept as the "legacy" alternate to ASSTK (see
// cmd/assdump's --theme flag) but with its token assignments re-threaded to this domain rather
// than left as the undifferentiated "everything Name*-shaped is the same grey" carryover: unlike
// the teacher's original, where Name/NameAttribute/NameClass/NameConstant/NameDecorator/
// NameException/NameFunction/NameOther/NameTag all resolved to one flat "#d7d7d7", here each one
// is given a distinct role reading an ASS script asks for — section headers, actor names, style
// names, builtin vs. plugin-contributed tag names, and unknown-name fallbacks no longer collapse
// into a single color.
var Pulumi = styles.Register(chroma.MustNewStyle("pulumi", chroma.StyleEntries{
	chroma.Text:                "#d7d7d7", // plain dialogue text outside any override block
	chroma.Error:               "#d75f5f", // Critical severity
	chroma.Comment:             "#afafaf", // Comment-kind events and ; line comments
	chroma.Keyword:             "#af87af", // builtin override tag names (\pos, \an, \t, ...)
	chroma.NameDecorator:       "#d7afff", // plugin-registered (non-builtin) tag names
	chroma.Operator:            "#5fafd7", // ':' and '.' separators inside H:MM:SS.cc timestamps
	chroma.Punctuation:         "#8a8a8a", // comma field separators and {}/() delimiters
	chroma.NameFunction:        "#d787af", // section headers ([Script Info], [V4+ Styles], ...)
	chroma.NameClass:           "#87afd7", // style names
	chroma.NameTag:             "#afd787", // actor/speaker names
	chroma.NameAttribute:       "#d7d7af", // margin/field override names (\bord, \shad, \blur)
	chroma.NameConstant:        "#d7d7d7", // script-info keys (Title, PlayResX, WrapStyle, ...)
	chroma.NameException:       "#d75f5f", // unresolved/unknown style or section names
	chroma.NameOther:           "#00d7af", // drawing command letters (m, l, b, s, c, n)
	chroma.Name:                "#d7d7d7",
	chroma.LiteralNumber:       "#87ffaf", // numeric tag arguments
	chroma.Literal:             "#00d7af", // drawing command coordinates
	chroma.LiteralDate:         "#5fafd7", // H:MM:SS.cc timestamps specifically
	chroma.LiteralString:       "#ffaf5f", // event text runs
	chroma.LiteralStringEscape: "#5f5f87", // \N, \n, \h escapes
	chroma.GenericDeleted:      "#d75f5f", // Error severity
	chroma.GenericEmph:         "italic",  // karaoke (\k/\K/\kf/\ko/\kt) highlighted runs
	chroma.GenericHeading:      "#d787af bold",
	chroma.GenericInserted:     "#5f875f", // Info severity
	chroma.GenericStrong:       "bold",    // Warning severity
	chroma.GenericSubheading:   "#d787af", // Hint severity
	chroma.GenericUnderline:    "underline", // \u underline override in effect
	chroma.Background:          "bg:#121212",
}))
