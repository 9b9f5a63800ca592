package skylight

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Navigator moves a byte offset over whole block constructs. A block — an
// if statement with all of its clauses, a for loop, a function definition —
// is one atomic unit of motion, never its individual tokens or body
// statements.
type Navigator struct {
	// Blocks is the set of node types treated as navigable blocks.
	Blocks map[string]bool
}

// NewNavigator returns a Navigator over [DefaultBlocks].
func NewNavigator() *Navigator {
	return &Navigator{Blocks: DefaultBlocks()}
}

// Advance moves point forward past count blocks and returns the new point.
// A negative count delegates to [Navigator.Retreat] with the negated
// magnitude. When no further block exists the point is returned unchanged;
// search exhaustion is not an error.
func (nav *Navigator) Advance(tree *sitter.Tree, point uint32, count int) uint32 {
	if count < 0 {
		return nav.Retreat(tree, point, -count)
	}
	for i := 0; i < count; i++ {
		next := nav.advanceOnce(tree, point)
		if next == point {
			break
		}
		point = next
	}
	return point
}

// Retreat moves point backward past count blocks and returns the new point.
// The exact dual of [Navigator.Advance].
func (nav *Navigator) Retreat(tree *sitter.Tree, point uint32, count int) uint32 {
	if count < 0 {
		return nav.Advance(tree, point, -count)
	}
	for i := 0; i < count; i++ {
		prev := nav.retreatOnce(tree, point)
		if prev == point {
			break
		}
		point = prev
	}
	return point
}

// advanceOnce performs a single forward step: if the innermost enclosing
// block starts at or after point, the whole block is ahead and point jumps
// past it; otherwise the next block in document order is the target.
func (nav *Navigator) advanceOnce(tree *sitter.Tree, point uint32) uint32 {
	root := rootOf(tree)
	if root == nil {
		return point
	}
	at := namedNodeAt(root, point)
	if block := enclosingOfKind(at, nav.Blocks); block != nil && block.StartByte() >= point {
		return block.EndByte()
	}
	if block := nextBlock(root, point, nav.Blocks); block != nil {
		return block.EndByte()
	}
	return point
}

// retreatOnce performs a single backward step: jump to the start of the
// innermost enclosing block, or failing that to the start of the previous
// block in document order. The probe position is point-1 so that standing
// just past a block's end still counts as being inside it.
func (nav *Navigator) retreatOnce(tree *sitter.Tree, point uint32) uint32 {
	root := rootOf(tree)
	if root == nil {
		return point
	}
	probe := point
	if probe > 0 {
		probe--
	}
	at := namedNodeAt(root, probe)
	if block := enclosingOfKind(at, nav.Blocks); block != nil && block.StartByte() < point {
		return block.StartByte()
	}
	if block := prevBlock(root, point, nav.Blocks); block != nil {
		return block.StartByte()
	}
	return point
}

func rootOf(tree *sitter.Tree) *sitter.Node {
	if tree == nil {
		return nil
	}
	return tree.RootNode()
}

// nextBlock returns the first block in document order starting at or after
// point. Subtrees ending before point are pruned, so the search is bounded
// by the distance to the next block, not the tree size.
func nextBlock(node *sitter.Node, point uint32, kinds map[string]bool) *sitter.Node {
	if node.EndByte() <= point {
		return nil
	}
	if kinds[node.Type()] && node.StartByte() >= point {
		return node
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.EndByte() <= point {
			continue
		}
		if found := nextBlock(child, point, kinds); found != nil {
			return found
		}
	}
	return nil
}

// prevBlock returns the last block in document order ending at or before
// point. Mirror of nextBlock, scanning children right to left.
func prevBlock(node *sitter.Node, point uint32, kinds map[string]bool) *sitter.Node {
	if node.StartByte() >= point {
		return nil
	}
	if kinds[node.Type()] && node.EndByte() <= point {
		return node
	}
	for i := int(node.NamedChildCount()) - 1; i >= 0; i-- {
		child := node.NamedChild(i)
		if child.StartByte() >= point {
			continue
		}
		if found := prevBlock(child, point, kinds); found != nil {
			return found
		}
	}
	return nil
}
