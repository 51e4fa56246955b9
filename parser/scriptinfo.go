package parser

import (
	"github.com/assforge/asstk/ast"
	"github.com/assforge/asstk/issues"
	"github.com/assforge/asstk/token"
)

// parseScriptInfo consumes key-value lines until the next section header or EOF.
// ScriptType updates the detected Version per spec.md §4.2.
func parseScriptInfo(source []byte, tok *token.Tokenizer, collector *issues.Collector) (*ast.ScriptInfo, ast.Version) {
	start := tok.Offset()
	si := &ast.ScriptInfo{}
	version := ast.VersionUnknown

	tok.SetContext(token.FieldValue)
	for !tok.AtEOF() {
		save := *tok
		t, ok := tok.Next()
		if !ok {
			break
		}
		if t.Kind == token.KindSectionHeader {
			*tok = save
			break
		}
		if t.Kind != token.KindKeyValue {
			continue
		}
		si.Entries = append(si.Entries, ast.KV{Key: t.Key, Value: t.Value})
		if t.Key.String(source) == "ScriptType" {
			version = ast.ParseVersion(t.Value.String(source))
		}
	}
	si.SectionSpan = makeSectionSpan(start, tok.Offset())
	return si, version
}
