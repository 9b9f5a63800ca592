package skylight

import (
	"regexp"

	sitter "github.com/smacker/go-tree-sitter"
)

// FoldRegion is a collapsible span of source: everything between the colon
// that ends a block header line and the end of the block.
type FoldRegion struct {
	StartByte uint32
	EndByte   uint32
	StartLine uint32
	EndLine   uint32
}

// blockHeaderPattern recognizes a block header line textually: optional
// leading whitespace, one of the block keywords, and a colon ending the
// header, possibly trailed by a comment. Hosts that fold by line rather
// than by tree use this via [IsBlockHeader].
var blockHeaderPattern = regexp.MustCompile(`^[ \t]*(?:def|if|elif|else|for)\b.*:[ \t]*(?:#.*)?$`)

// IsBlockHeader reports whether a single line of text reads as a block
// header.
func IsBlockHeader(line string) bool {
	return blockHeaderPattern.MatchString(line)
}

// Folds computes the foldable regions of tree: one per block construct and
// one per elif/else clause, each starting after the header's colon.
// Regions are returned in source order and may nest. Headerless or
// malformed constructs (mid-edit trees) contribute nothing.
func Folds(tree *sitter.Tree) []FoldRegion {
	root := rootOf(tree)
	if root == nil {
		return nil
	}
	var regions []FoldRegion
	collectFolds(root, &regions)
	return regions
}

func collectFolds(node *sitter.Node, regions *[]FoldRegion) {
	t := node.Type()
	if blockHeaderTypes[t] || clauseTypes[t] {
		if colon := headerColon(node); colon != nil {
			*regions = append(*regions, FoldRegion{
				StartByte: colon.EndByte(),
				EndByte:   node.EndByte(),
				StartLine: colon.EndPoint().Row,
				EndLine:   node.EndPoint().Row,
			})
		}
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		collectFolds(node.NamedChild(i), regions)
	}
}

// headerColon returns the anonymous ":" token ending node's header line,
// or nil when the construct has no colon yet.
func headerColon(node *sitter.Node) *sitter.Node {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == ":" {
			return child
		}
	}
	return nil
}
