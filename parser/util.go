package parser

import "github.com/assforge/asstk/span"

func makeSectionSpan(start, end int) span.Span {
	return span.New(start, end)
}
