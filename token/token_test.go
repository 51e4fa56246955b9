package token

import (
	"testing"

	"github.com/assforge/asstk/issues"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, source string) ([]Token, *issues.Collector) {
	t.Helper()
	c := issues.NewCollector()
	tok := New([]byte(source), c)
	var out []Token
	for {
		tk, ok := tok.Next()
		if !ok {
			break
		}
		out = append(out, tk)
	}
	return out, c
}

func TestTokenizeSectionHeader(t *testing.T) {
	tokens, c := scanAll(t, "[Script Info]\n")
	require.Len(t, tokens, 1)
	assert.Equal(t, KindSectionHeader, tokens[0].Kind)
	assert.Equal(t, 0, c.Len())
}

func TestTokenizeUnclosedSectionHeader(t *testing.T) {
	tokens, c := scanAll(t, "[Script Info\n")
	require.Len(t, tokens, 1)
	assert.Equal(t, KindSectionHeader, tokens[0].Kind)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, issues.Warning, c.All()[0].Severity)
}

func TestTokenizeKeyValue(t *testing.T) {
	source := "Title: Hello World\n"
	c := issues.NewCollector()
	tok := New([]byte(source), c)
	tk, ok := tok.Next()
	require.True(t, ok)
	assert.Equal(t, KindKeyValue, tk.Kind)
	assert.Equal(t, "Title", tk.Key.String([]byte(source)))
	assert.Equal(t, "Hello World", tk.Value.String([]byte(source)))
}

func TestTokenizeCommentAndEmpty(t *testing.T) {
	tokens, _ := scanAll(t, "; a comment\n\n# also a comment\n")
	require.Len(t, tokens, 3)
	assert.Equal(t, KindComment, tokens[0].Kind)
	assert.Equal(t, KindEmpty, tokens[1].Kind)
	assert.Equal(t, KindComment, tokens[2].Kind)
}

func TestTokenizeRawOutsideFieldValueContext(t *testing.T) {
	c := issues.NewCollector()
	tok := New([]byte("Style: a,b,c\n"), c)
	tok.SetContext(Document)
	tk, ok := tok.Next()
	require.True(t, ok)
	// Document context still treats ':' as entering field-value mode per spec.md §4.1.
	assert.Equal(t, KindKeyValue, tk.Kind)

	c2 := issues.NewCollector()
	tok2 := New([]byte("Style: a,b,c\n"), c2)
	tok2.SetContext(StyleOverride)
	tk2, ok := tok2.Next()
	require.True(t, ok)
	assert.Equal(t, KindRaw, tk2.Kind)
}

func TestCRLFLineTermination(t *testing.T) {
	tokens, _ := scanAll(t, "Title: Hi\r\nScriptType: v4.00+\r\n")
	require.Len(t, tokens, 2)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestSplitLimit(t *testing.T) {
	parts := SplitLimit([]byte("a,b,c,d,e"), ',', 3)
	require.Len(t, parts, 3)
	assert.Equal(t, "a", string(parts[0]))
	assert.Equal(t, "b", string(parts[1]))
	assert.Equal(t, "c,d,e", string(parts[2]))
}

func TestSplitLimitFewerSeparators(t *testing.T) {
	parts := SplitLimit([]byte("a,b"), ',', 10)
	require.Len(t, parts, 2)
}

func TestSplitBalancedArgs(t *testing.T) {
	parts := SplitBalancedArgs([]byte("0,1000,\\fs60"))
	require.Len(t, parts, 3)
	assert.Equal(t, "\\fs60", string(parts[2]))

	parts2 := SplitBalancedArgs([]byte("x1,y1,x2,y2,t1,t2"))
	require.Len(t, parts2, 6)
}
