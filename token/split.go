package token

import "bytes"

// SplitLimit splits s on sep into at most n parts, the way strings.SplitN does, except that when
// fewer than n-1 separators are present it still returns every part found (never pads with
// empty strings). Separators after the (n-1)th are left inside the final part, so a final
// field that embeds commas (as dialogue text does) survives intact.
func SplitLimit(s []byte, sep byte, n int) [][]byte {
	if n <= 1 {
		return [][]byte{s}
	}

	parts := make([][]byte, 0, n)
	start := 0
	count := 1
	for i := 0; i < len(s); i++ {
		if s[i] == sep && count < n {
			parts = append(parts, s[start:i])
			start = i + 1
			count++
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// TrimASCIISpace trims leading and trailing ASCII spaces and tabs, matching the tokenizer's
// whitespace rule (spec.md §4.1: "Whitespace trimming is ASCII space/tab only").
func TrimASCIISpace(b []byte) []byte {
	return bytes.Trim(b, " \t")
}

// SplitBalancedArgs splits a tag argument list on top-level commas, treating '(' / ')' as
// nesting delimiters so that a nested tag invocation's own comma-separated arguments (as in
// \t(0,1000,\fs60) or \move(x1,y1,x2,y2,t1,t2)) are not split prematurely.
func SplitBalancedArgs(s []byte) [][]byte {
	var parts [][]byte
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
