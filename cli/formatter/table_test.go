package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTableDialect(t *testing.T) {
	dialect, ok := ParseTableDialect("Markdown")
	require.True(t, ok)
	assert.Equal(t, MarkdownTableDialect, dialect)
	assert.Equal(t, "markdown", dialect.String())

	_, ok = ParseTableDialect("jira")
	assert.False(t, ok)
}

func TestRenderTableMarkdown(t *testing.T) {
	out := RenderTable([]string{"key", "token"},
		[][]string{{"project_name", "butler"}, {"author_name", "Butler Team"}},
		Opts{TableDialect: MarkdownTableDialect})

	assert.Contains(t, strings.ToLower(out), "| key | token |")
	assert.Contains(t, out, "| project_name | butler |")
	assert.Contains(t, out, "| author_name | Butler Team |")
}

func TestRenderTableDefault(t *testing.T) {
	out := RenderTable([]string{"key", "token"},
		[][]string{{"project_name", "butler"}}, Opts{})

	assert.Contains(t, strings.ToLower(out), "key")
	assert.Contains(t, out, "project_name")
	assert.Contains(t, out, "butler")
	assert.NotContains(t, out, "|")

	out = RenderTable([]string{"key"}, [][]string{{"project_name"}}, Opts{Graphics: true})
	assert.Contains(t, out, "|")
}

func TestRenderTableColumnWidth(t *testing.T) {
	out := RenderTable([]string{"value"}, [][]string{{"abcdefgh"}},
		Opts{ColumnWidthMax: 4})
	assert.Contains(t, out, "abcd")
	assert.NotContains(t, out, "abcdefgh")
}
