package issues

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorOrderAndTruncate(t *testing.T) {
	c := NewCollector()
	c.Addf(Warning, Parsing, 1, "first")
	c.Addf(Error, Format, 2, "second")
	c.Addf(Info, Analysis, 3, "third")

	require.Len(t, c.All(), 3)
	assert.Equal(t, "first", c.All()[0].Message)
	assert.True(t, c.HasErrors())

	c.Truncate(2)
	assert.Len(t, c.All(), 2)
}

func TestCollectorMinSeverity(t *testing.T) {
	c := NewCollector()
	c.Add(New(Info, Parsing, "info"))
	c.Add(New(Warning, Parsing, "warn"))
	c.Add(New(Error, Parsing, "err"))

	got := c.MinSeverity(Warning)
	require.Len(t, got, 2)
	assert.Equal(t, "warn", got[0].Message)
	assert.Equal(t, "err", got[1].Message)
}

func TestCategoryRecoverable(t *testing.T) {
	assert.True(t, Parsing.Recoverable())
	assert.True(t, Plugin.Recoverable())
	assert.False(t, Resource.Recoverable())
	assert.False(t, Security.Recoverable())
	assert.False(t, Internal.Recoverable())
}

func TestFatalRoundTrip(t *testing.T) {
	issue := AtLine(Critical, Security, 0, "input exceeds size limit")
	err := Fatal(issue)

	var target error = err
	require.Error(t, target)

	got, ok := AsIssue(err)
	require.True(t, ok)
	assert.Equal(t, issue, got)

	assert.True(t, errors.Is(err, err))
}

func TestIssueFormatting(t *testing.T) {
	issue := AtLine(Warning, Parsing, 5, "unknown section").WithColumn(3).WithSuggestion("did you mean [Events]?")
	assert.Equal(t, "warning:5:3: unknown section", issue.Error())
	assert.Equal(t, "did you mean [Events]?", issue.Suggestion)
}
