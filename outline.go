package skylight

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Function is one entry of a file's function outline, in source order.
type Function struct {
	Name      string
	Container string // name of the enclosing function for nested defs
	StartLine uint32
	StartCol  uint32
	EndLine   uint32
	EndCol    uint32
}

// Outline walks tree for function definitions and returns them in source
// order with their declared names, the go-to-function index a host editor
// surfaces as a menu or a picker.
func Outline(tree *sitter.Tree, src []byte) []Function {
	root := rootOf(tree)
	if root == nil {
		return nil
	}
	var fns []Function
	collectFunctions(root, src, "", &fns)
	return fns
}

func collectFunctions(node *sitter.Node, src []byte, container string, fns *[]Function) {
	inner := container
	if node.Type() == "function_definition" {
		name := ""
		if nameNode := node.ChildByFieldName("name"); nameNode != nil {
			name = nameNode.Content(src)
		}
		*fns = append(*fns, Function{
			Name:      name,
			Container: container,
			StartLine: node.StartPoint().Row,
			StartCol:  node.StartPoint().Column,
			EndLine:   node.EndPoint().Row,
			EndCol:    node.EndPoint().Column,
		})
		inner = name
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		collectFunctions(node.NamedChild(i), src, inner, fns)
	}
}
