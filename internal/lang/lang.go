// Package lang wires the external tree-sitter grammar used for Starlark
// source. Starlark's surface syntax is a subset of Python's, so the Python
// grammar serves; skylight never defines a grammar of its own.
package lang

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

var (
	language *sitter.Language
	langOnce sync.Once
)

// Starlark returns the tree-sitter language for Starlark source.
// Lazily initialized; safe for concurrent use.
func Starlark() *sitter.Language {
	langOnce.Do(func() {
		language = python.GetLanguage()
	})
	return language
}

// Parse parses src into a concrete syntax tree. The caller owns the
// returned tree and should Close it when done.
func Parse(ctx context.Context, src []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(Starlark())
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse starlark: %w", err)
	}
	return tree, nil
}

// starlarkExts are file extensions recognized as Starlark.
var starlarkExts = map[string]bool{
	".star":  true,
	".bzl":   true,
	".bazel": true,
	".sky":   true,
}

// starlarkNames are exact basenames recognized as Starlark regardless of
// extension.
var starlarkNames = map[string]bool{
	"BUILD":     true,
	"WORKSPACE": true,
}

// IsStarlarkFile reports whether path names a Starlark source file, by
// extension (.star, .bzl, .bazel, .sky) or by well-known basename (BUILD,
// WORKSPACE).
func IsStarlarkFile(path string) bool {
	base := filepath.Base(path)
	if starlarkNames[base] {
		return true
	}
	return starlarkExts[strings.ToLower(filepath.Ext(base))]
}
