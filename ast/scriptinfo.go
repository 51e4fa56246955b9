package ast

import "github.com/assforge/asstk/span"

// A KV is one "Key: Value" entry.
type KV struct {
	Key   span.Span
	Value span.Span
}

// ScriptInfo is the [Script Info] section: an ordered mapping from key span to value span. Key
// lookups are case-sensitive on the key as written, per spec.md §3.
type ScriptInfo struct {
	SectionSpan span.Span
	Entries     []KV
}

func (*ScriptInfo) Kind() SectionKind {
	return KindScriptInfo
}

// Get returns the value of the first entry whose key matches exactly, case-sensitively.
func (si *ScriptInfo) Get(source []byte, key string) (string, bool) {
	for _, e := range si.Entries {
		if e.Key.String(source) == key {
			return e.Value.String(source), true
		}
	}
	return "", false
}

// PlayResX returns the declared PlayResX, or the fallback of 384 used by every common renderer
// when the key is absent or unparsable.
func (si *ScriptInfo) PlayResX(source []byte) float64 {
	if v, ok := si.Get(source, "PlayResX"); ok {
		if f, ok := parseFloatLoose(v); ok {
			return f
		}
	}
	return 384
}

// PlayResY returns the declared PlayResY, or the fallback of 288.
func (si *ScriptInfo) PlayResY(source []byte) float64 {
	if v, ok := si.Get(source, "PlayResY"); ok {
		if f, ok := parseFloatLoose(v); ok {
			return f
		}
	}
	return 288
}

// WrapStyle returns the declared WrapStyle (0-3), defaulting to 0 (smart wrapping) when absent or
// unparsable.
func (si *ScriptInfo) WrapStyle(source []byte) int {
	if v, ok := si.Get(source, "WrapStyle"); ok {
		switch v {
		case "0", "1", "2", "3":
			return int(v[0] - '0')
		}
	}
	return 0
}
