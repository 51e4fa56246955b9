package styles

import (
	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/styles"
)

// ASSTK is the reference color theme for tools that syntax-highlight ASS source and dump/issue
// output (cmd/assdump), registered the same way Pulumi is. Token types are repurposed from
// chroma's syntax-highlighting vocabulary to this domain's own: section headers as NameFunction,
// override tag names as Keyword, style/event names as NameConstant, numeric tag arguments and
// timestamps as LiteralNumber, event text as LiteralString, and the five issue severities spread
// across the remaining Generic/Error slots from least to most severe.
var ASSTK = styles.Register(chroma.MustNewStyle("asstk", chroma.StyleEntries{
	chroma.Text:              "#e0e0e0",
	chroma.Background:        "bg:#101014",
	chroma.Comment:           "#6a6a7a",
	chroma.NameFunction:      "#7fd7ff bold", // section headers
	chroma.Keyword:           "#d7af5f",      // override tag names
	chroma.NameConstant:      "#af87ff",      // style and event names
	chroma.LiteralNumber:     "#87d787",      // numeric tag args and timestamps
	chroma.LiteralString:     "#ffd787",      // event text
	chroma.Punctuation:       "#808080",
	chroma.GenericInserted:   "#5fd75f", // Info
	chroma.GenericSubheading: "#87afd7", // Hint
	chroma.GenericStrong:     "#d7af00", // Warning
	chroma.GenericDeleted:    "#d75f5f", // Error
	chroma.Error:             "#ff0000 bold", // Critical
}))
