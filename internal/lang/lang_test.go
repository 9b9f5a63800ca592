package lang

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ProducesModuleRoot(t *testing.T) {
	t.Parallel()
	tree, err := Parse(context.Background(), []byte("x = 1\n"))
	require.NoError(t, err)
	defer tree.Close()

	root := tree.RootNode()
	require.NotNil(t, root)
	assert.Equal(t, "module", root.Type())
	assert.False(t, root.HasError())
}

func TestParse_EmptySource(t *testing.T) {
	t.Parallel()
	tree, err := Parse(context.Background(), nil)
	require.NoError(t, err)
	defer tree.Close()

	assert.Equal(t, "module", tree.RootNode().Type())
}

func TestIsStarlarkFile(t *testing.T) {
	t.Parallel()
	cases := []struct {
		path string
		want bool
	}{
		{"rules.bzl", true},
		{"defs.star", true},
		{"pkg/BUILD", true},
		{"pkg/BUILD.bazel", true},
		{"WORKSPACE", true},
		{"lib.sky", true},
		{"main.go", false},
		{"build", false},
		{"README.md", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsStarlarkFile(tc.path), tc.path)
	}
}
