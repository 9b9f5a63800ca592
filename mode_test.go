package skylight

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	m := New()
	assert.Equal(t, DefaultIndentWidth, m.IndentWidth())
}

func TestWithIndentWidth(t *testing.T) {
	assert.Equal(t, 2, New(WithIndentWidth(2)).IndentWidth())
	// Non-positive widths are ignored; the boundary validates them.
	assert.Equal(t, DefaultIndentWidth, New(WithIndentWidth(0)).IndentWidth())
	assert.Equal(t, DefaultIndentWidth, New(WithIndentWidth(-3)).IndentWidth())
}

func TestValidateIndentWidth(t *testing.T) {
	assert.NoError(t, ValidateIndentWidth(1))
	assert.NoError(t, ValidateIndentWidth(8))
	assert.Error(t, ValidateIndentWidth(0))
	assert.Error(t, ValidateIndentWidth(-1))
}

func TestMode_Reindent(t *testing.T) {
	m := New(WithIndentWidth(2))
	got, err := m.Reindent(context.Background(), []byte("def f():\n      pass\n"))
	require.NoError(t, err)
	assert.Equal(t, "def f():\n  pass\n", string(got))
}

func TestMode_LineIndentUsesConfiguredWidth(t *testing.T) {
	src := "def f():\n    pass\n"
	tree := parseTest(t, src)

	m := New(WithIndentWidth(8))
	assert.Equal(t, 8, m.LineIndent(tree, []byte(src), 1))
}

func TestWithBlocks_RestrictsNavigation(t *testing.T) {
	src := "" +
		"def a():\n" +
		"    pass\n" +
		"\n" +
		"for x in xs:\n" +
		"    pass\n"
	tree := parseTest(t, src)

	// Only for loops are blocks: the def is invisible to navigation.
	m := New(WithBlocks("for_statement"))
	got := m.Advance(tree, 0, 1)
	endFor := uint32(len(src) - 1)
	assert.Equal(t, endFor, got)
}

func TestWithRules_ReplacesTable(t *testing.T) {
	src := "def f():\n    pass\n"
	tree := parseTest(t, src)

	flat := []Rule{{
		Name:   "flatten",
		Match:  func(node, parent *Node) bool { return true },
		Anchor: AnchorColumnZero,
	}}
	m := New(WithRules(flat))
	assert.Equal(t, 0, m.LineIndent(tree, []byte(src), 1))
}
