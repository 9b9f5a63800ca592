package skylight

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/martinbaillie/skylight/internal/store"
)

// Aliases for the tree-sitter handle types appearing in skylight's API, so
// hosts can write rule predicates and block sets without importing the
// parser package themselves.

type Node = sitter.Node
type Tree = sitter.Tree

// Public type aliases for internal store types used in the Indexer API.
// These are Go type aliases (=) — identical to the internal types at compile
// time, so external consumers never import internal packages.

type Store = store.Store
type IndexedFile = store.File
type IndexedFunction = store.Function
type LocatedFunction = store.LocatedFunction
