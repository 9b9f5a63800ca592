package skylight

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/martinbaillie/skylight/internal/lang"
)

// Mode bundles a parser, an indenter, and a navigator behind one handle,
// the shape a host editor holds per buffer type. A Mode carries only
// configuration; every query takes the tree and source explicitly, so one
// Mode serves any number of buffers.
type Mode struct {
	cfg       Config
	indenter  *Indenter
	navigator *Navigator
}

// Option configures a Mode.
type Option func(*Mode)

// WithIndentWidth sets the columns per nesting level. Non-positive widths
// are rejected by [ValidateIndentWidth] at the configuration boundary;
// passing one here leaves the default in place.
func WithIndentWidth(width int) Option {
	return func(m *Mode) {
		if width > 0 {
			m.cfg.IndentWidth = width
		}
	}
}

// WithBlocks replaces the set of node types the navigator treats as blocks.
func WithBlocks(types ...string) Option {
	return func(m *Mode) {
		blocks := make(map[string]bool, len(types))
		for _, t := range types {
			blocks[t] = true
		}
		m.navigator.Blocks = blocks
	}
}

// WithRules replaces the indentation rule table.
func WithRules(rules []Rule) Option {
	return func(m *Mode) {
		m.indenter.Rules = rules
	}
}

// New creates a Mode with the Starlark rule table, the default block set,
// and an indent width of [DefaultIndentWidth].
func New(opts ...Option) *Mode {
	m := &Mode{
		cfg:       Config{IndentWidth: DefaultIndentWidth},
		indenter:  NewIndenter(),
		navigator: NewNavigator(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ValidateIndentWidth rejects non-positive indent widths. Called at every
// configuration boundary (flags, config file) so the engines can assume a
// valid value.
func ValidateIndentWidth(width int) error {
	if width <= 0 {
		return fmt.Errorf("indent width must be a positive integer, got %d", width)
	}
	return nil
}

// IndentWidth returns the configured columns per nesting level.
func (m *Mode) IndentWidth() int {
	return m.cfg.IndentWidth
}

// Parse parses src as Starlark. The returned tree is owned by the caller,
// who should Close it when done.
func (m *Mode) Parse(ctx context.Context, src []byte) (*sitter.Tree, error) {
	return lang.Parse(ctx, src)
}

// LineIndent computes the target indentation column for row of src.
func (m *Mode) LineIndent(tree *sitter.Tree, src []byte, row uint32) int {
	return m.indenter.LineIndent(tree, src, row, m.cfg)
}

// Reindent parses src and rewrites every line to its computed indentation.
func (m *Mode) Reindent(ctx context.Context, src []byte) ([]byte, error) {
	tree, err := m.Parse(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("reindent: %w", err)
	}
	defer tree.Close()
	return m.indenter.Reindent(tree, src, m.cfg), nil
}

// Advance moves point forward past count blocks. See [Navigator.Advance].
func (m *Mode) Advance(tree *sitter.Tree, point uint32, count int) uint32 {
	return m.navigator.Advance(tree, point, count)
}

// Retreat moves point backward past count blocks. See [Navigator.Retreat].
func (m *Mode) Retreat(tree *sitter.Tree, point uint32, count int) uint32 {
	return m.navigator.Retreat(tree, point, count)
}

// Outline returns the function definitions of tree in source order.
func (m *Mode) Outline(tree *sitter.Tree, src []byte) []Function {
	return Outline(tree, src)
}

// Folds returns the foldable regions of tree in source order.
func (m *Mode) Folds(tree *sitter.Tree) []FoldRegion {
	return Folds(tree)
}
