package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpanValue(t *testing.T) {
	source := []byte("Title: Hello")
	s := New(7, 12)
	assert.Equal(t, "Hello", s.String(source))
	assert.Equal(t, 5, s.Len())
}

func TestSpanOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Span
		overlaps bool
	}{
		{"disjoint", New(0, 5), New(5, 10), false},
		{"touching-end", New(0, 5), New(4, 10), true},
		{"contained", New(0, 10), New(3, 4), true},
		{"reversed-disjoint", New(10, 20), New(0, 5), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlaps, c.a.Overlaps(c.b))
		})
	}
}

func TestSpanValid(t *testing.T) {
	assert.True(t, New(0, 10).Valid(10))
	assert.False(t, New(0, 11).Valid(10))
	assert.False(t, New(-1, 5).Valid(10))
	assert.False(t, New(5, 2).Valid(10))
}

func TestLineIndex(t *testing.T) {
	source := []byte("ab\ncd\n\nef")
	idx := NewLineIndex(source)
	require.Equal(t, 4, idx.LineCount())

	cases := []struct {
		offset int
		want   Pos
	}{
		{0, Pos{1, 1, 0}},
		{2, Pos{1, 3, 2}},
		{3, Pos{2, 1, 3}},
		{6, Pos{3, 1, 6}},
		{7, Pos{4, 1, 7}},
		{8, Pos{4, 2, 8}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, idx.Pos(c.offset))
	}
}
