package skylight

import (
	"bytes"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// DefaultIndentWidth is the number of columns per nesting level unless the
// host configures otherwise.
const DefaultIndentWidth = 4

// Config carries the indentation settings threaded through every
// computation. There is no ambient global: hosts pass a Config per call (or
// per Mode) so that tests and concurrent buffers can disagree about width.
type Config struct {
	// IndentWidth is the number of columns per nesting level. Must be
	// positive; validation happens at the configuration boundary, the
	// engine assumes a valid value.
	IndentWidth int
}

// Anchor names the reference column an indentation offset is added to.
type Anchor uint8

const (
	// AnchorColumnZero pins the line to the left margin.
	AnchorColumnZero Anchor = iota
	// AnchorSelfLineStart keeps the column the node's own line already has.
	AnchorSelfLineStart
	// AnchorParentLineStart uses the indentation of the line the node's
	// parent starts on. Block wrappers are transparent: a statement inside
	// a block anchors on the block's header line.
	AnchorParentLineStart
)

// Rule is one entry of an ordered indentation rule table. Match is a
// predicate over the node a line begins and that node's parent; the first
// matching rule decides the line's column as
//
//	anchor column + Offset × Config.IndentWidth.
type Rule struct {
	Name   string
	Match  func(node, parent *sitter.Node) bool
	Anchor Anchor
	Offset int
}

// StarlarkRules is the ordered indentation rule table for Starlark.
// Evaluation is strictly top to bottom with first match winning: this is a
// priority list, not a constraint system. The predicates are written to be
// disjoint (continuation only matches named nodes, so closing delimiter
// tokens fall through to their own rule), but order still decides when a
// construct plays two structural roles at once.
//
// Nested block headers (a def/if/for that is itself inside a block) anchor
// on their own line: a header keeps whatever column it already has and is
// never re-derived from its container. Reindentation therefore corrects
// bodies, continuations, and closing delimiters, but deliberately leaves a
// misplaced nested header where it stands — headers are the fixed reference
// points everything else hangs off.
var StarlarkRules = []Rule{
	{
		Name: "top-level",
		Match: func(node, parent *sitter.Node) bool {
			return parent == nil || parent.Type() == nodeModule
		},
		Anchor: AnchorColumnZero,
	},
	{
		Name: "clause-header",
		Match: func(node, parent *sitter.Node) bool {
			return node != nil && clauseTypes[node.Type()]
		},
		Anchor: AnchorParentLineStart,
	},
	{
		Name: "block-header",
		Match: func(node, parent *sitter.Node) bool {
			return node != nil && blockHeaderTypes[node.Type()]
		},
		Anchor: AnchorSelfLineStart,
	},
	{
		Name: "block-body",
		Match: func(node, parent *sitter.Node) bool {
			if node != nil && node.Type() == nodeBlock {
				return true
			}
			return parent != nil && parent.Type() == nodeBlock
		},
		Anchor: AnchorParentLineStart,
		Offset: 1,
	},
	{
		Name: "continuation",
		Match: func(node, parent *sitter.Node) bool {
			return node != nil && node.IsNamed() &&
				parent != nil && continuationParents[parent.Type()]
		},
		Anchor: AnchorParentLineStart,
		Offset: 1,
	},
	{
		Name: "closing-delimiter",
		Match: func(node, parent *sitter.Node) bool {
			return node != nil && closingDelimiters[node.Type()]
		},
		Anchor: AnchorParentLineStart,
	},
	{
		Name:   "default",
		Match:  func(node, parent *sitter.Node) bool { return true },
		Anchor: AnchorParentLineStart,
	},
}

// Indenter evaluates an ordered rule table over nodes of a syntax tree.
// The zero value is not useful; use [NewIndenter] for the Starlark table.
type Indenter struct {
	Rules []Rule
}

// NewIndenter returns an Indenter loaded with [StarlarkRules].
func NewIndenter() *Indenter {
	return &Indenter{Rules: StarlarkRules}
}

// NodeIndent computes the indentation column for the line that node begins.
// node should already be promoted to the statement level (see LineIndent).
//
// A nil node is the blank-line case: there is nothing parseable at point
// yet, so the default rule applies against enclosing, the innermost node
// covering the line. A nil enclosing (malformed chain, no root) degrades to
// column 0 rather than failing.
func (in *Indenter) NodeIndent(node, enclosing *sitter.Node, src []byte, cfg Config) int {
	return in.nodeIndent(node, enclosing, src, cfg, nil)
}

// nodeIndent is NodeIndent with an optional corrected-column overlay, used
// by Reindent so anchors resolve against already-rewritten lines.
func (in *Indenter) nodeIndent(node, enclosing *sitter.Node, src []byte, cfg Config, corrected []int) int {
	if node == nil {
		if enclosing == nil || enclosing.Type() == nodeModule {
			return 0
		}
		return anchorLineIndent(enclosing, src, corrected)
	}
	parent := node.Parent()
	for _, rule := range in.Rules {
		if rule.Match(node, parent) {
			return in.anchorColumn(rule.Anchor, node, src, corrected) + rule.Offset*cfg.IndentWidth
		}
	}
	return 0
}

// anchorColumn resolves a rule's anchor to a concrete column.
func (in *Indenter) anchorColumn(anchor Anchor, node *sitter.Node, src []byte, corrected []int) int {
	switch anchor {
	case AnchorSelfLineStart:
		return anchorLineIndent(node, src, corrected)
	case AnchorParentLineStart:
		return anchorLineIndent(anchorParent(node), src, corrected)
	default:
		return 0
	}
}

// anchorLineIndent returns the indentation column of the line node starts
// on, preferring the corrected overlay for rows Reindent has already
// rewritten. Rows not yet processed (including the node's own row under
// AnchorSelfLineStart) fall back to the original source.
func anchorLineIndent(node *sitter.Node, src []byte, corrected []int) int {
	if node == nil {
		return 0
	}
	row := node.StartPoint().Row
	if corrected != nil && int(row) < len(corrected) && corrected[row] >= 0 {
		return corrected[row]
	}
	return lineIndentColumn(src, row)
}

// anchorParent returns the parent used for AnchorParentLineStart. Block
// wrapper nodes are skipped: the body of an if statement anchors on the if
// header's line, not on the block node, whose start is the first body
// statement itself.
func anchorParent(node *sitter.Node) *sitter.Node {
	if node == nil {
		return nil
	}
	parent := node.Parent()
	if parent != nil && parent.Type() == nodeBlock {
		parent = parent.Parent()
	}
	return parent
}

// LineIndent computes the target indentation column for row of src.
// Returns 0 when the tree is absent.
func (in *Indenter) LineIndent(tree *sitter.Tree, src []byte, row uint32, cfg Config) int {
	return in.lineIndent(tree, src, row, cfg, nil)
}

func (in *Indenter) lineIndent(tree *sitter.Tree, src []byte, row uint32, cfg Config, corrected []int) int {
	if tree == nil {
		return 0
	}
	root := tree.RootNode()
	if root == nil {
		return 0
	}
	offset, ok := firstContentOffset(src, row)
	if !ok {
		return in.nodeIndent(nil, namedNodeAt(root, offset), src, cfg, corrected)
	}
	node := promote(leafAt(root, offset))
	return in.nodeIndent(node, nil, src, cfg, corrected)
}

// Reindent rewrites the leading whitespace of every non-blank line of src to
// the column the rule table computes, using tree as the single parse of src.
// Blank lines pass through untouched.
//
// Lines are rewritten top to bottom and anchors resolve against the columns
// already emitted, not the stale input columns, so a misindented opener
// drags its continuation and closing-delimiter lines along in the same
// pass. Output is a fixed point: reindenting it again changes nothing.
// Interactive hosts reindenting during edits should reparse and call
// LineIndent per line instead; Reindent is the whole-buffer batch form.
func (in *Indenter) Reindent(tree *sitter.Tree, src []byte, cfg Config) []byte {
	lines := bytes.Split(src, []byte{'\n'})
	corrected := make([]int, len(lines))
	for i := range corrected {
		corrected[i] = -1
	}
	var out bytes.Buffer
	out.Grow(len(src))
	for row, line := range lines {
		if row > 0 {
			out.WriteByte('\n')
		}
		content := bytes.TrimLeft(line, " \t")
		if len(content) == 0 {
			out.Write(line)
			continue
		}
		col := in.lineIndent(tree, src, uint32(row), cfg, corrected)
		corrected[row] = col
		out.WriteString(strings.Repeat(" ", col))
		out.Write(content)
	}
	return out.Bytes()
}
