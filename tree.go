package skylight

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Shared read-only tree queries used by the indentation engine and the
// navigator. None of these mutate the tree; they return nodes owned by it.

// namedNodeAt returns the innermost named node whose byte span contains
// point, descending from root. Returns root itself when no named child
// covers the point (e.g. a blank line at module level).
func namedNodeAt(root *sitter.Node, point uint32) *sitter.Node {
	if root == nil {
		return nil
	}
	node := root
	for {
		var next *sitter.Node
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			if child.StartByte() <= point && point < child.EndByte() {
				next = child
				break
			}
		}
		if next == nil {
			return node
		}
		node = next
	}
}

// leafAt returns the innermost node, named or anonymous, whose byte span
// contains point. Anonymous tokens matter here: a closing bracket is an
// anonymous leaf, and the indentation rules need to see it rather than the
// collection node that contains it.
func leafAt(root *sitter.Node, point uint32) *sitter.Node {
	if root == nil {
		return nil
	}
	node := root
	for {
		var next *sitter.Node
		for i := 0; i < int(node.ChildCount()); i++ {
			child := node.Child(i)
			if child.StartByte() <= point && point < child.EndByte() {
				next = child
				break
			}
		}
		if next == nil {
			return node
		}
		node = next
	}
}

// promote climbs from a leaf to the highest ancestor that starts at the same
// byte. Rule predicates want the statement a line begins, not the token: for
// a line reading "pass" the parser's innermost node is the pass keyword, but
// the node the rule table should see is the enclosing statement. Climbing
// stops at block and module wrappers so that a statement keeps its block as
// parent.
func promote(node *sitter.Node) *sitter.Node {
	if node == nil {
		return nil
	}
	for {
		parent := node.Parent()
		if parent == nil {
			return node
		}
		if parent.StartByte() != node.StartByte() {
			return node
		}
		if t := parent.Type(); t == nodeBlock || t == nodeModule {
			return node
		}
		node = parent
	}
}

// enclosingOfKind walks the ancestor chain from node (inclusive) and returns
// the nearest node whose type is in kinds, or nil.
func enclosingOfKind(node *sitter.Node, kinds map[string]bool) *sitter.Node {
	for n := node; n != nil; n = n.Parent() {
		if kinds[n.Type()] {
			return n
		}
	}
	return nil
}

// rowStart returns the byte offset of the first character of row.
// Rows past the end of src map to len(src).
func rowStart(src []byte, row uint32) uint32 {
	var offset uint32
	for r := uint32(0); r < row; r++ {
		advanced := false
		for int(offset) < len(src) {
			if src[offset] == '\n' {
				offset++
				advanced = true
				break
			}
			offset++
		}
		if !advanced {
			return uint32(len(src))
		}
	}
	return offset
}

// lineIndentColumn returns the column of the first non-whitespace character
// on row, i.e. the row's current indentation. Blank rows report 0.
func lineIndentColumn(src []byte, row uint32) int {
	offset := rowStart(src, row)
	col := 0
	for int(offset) < len(src) && src[offset] != '\n' {
		if src[offset] != ' ' && src[offset] != '\t' {
			return col
		}
		col++
		offset++
	}
	return 0
}

// firstContentOffset returns the byte offset of the first non-whitespace
// character on row. ok is false for blank or whitespace-only rows.
func firstContentOffset(src []byte, row uint32) (offset uint32, ok bool) {
	offset = rowStart(src, row)
	for int(offset) < len(src) && src[offset] != '\n' {
		if src[offset] != ' ' && src[offset] != '\t' {
			return offset, true
		}
		offset++
	}
	return offset, false
}

// nodeLineIndent returns the indentation column of the line on which node
// starts. Nil nodes report 0.
func nodeLineIndent(node *sitter.Node, src []byte) int {
	if node == nil {
		return 0
	}
	return lineIndentColumn(src, node.StartPoint().Row)
}
