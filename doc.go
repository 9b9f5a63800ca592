// Package skylight provides editor-support services for the Starlark
// configuration language, computed over a tree-sitter concrete syntax tree:
// indentation, block-structured navigation, function outlines, and fold
// regions.
//
// The package does not define a grammar and does not own a buffer. The host
// editor (or the bundled CLI) parses source text into a tree, keeps the tree
// current across edits, and asks skylight pure questions about it: "what
// column should this line have", "where does the next block end", "what
// functions does this file define". Every answer is a value; nothing here
// mutates the tree.
//
// # Indentation
//
// Indentation is driven by an ordered rule table. Each [Rule] pairs a
// predicate over (node, parent) with an anchor and an offset multiplier;
// rules are evaluated top to bottom and the first match wins. The final
// column is the anchor's line-start column plus the multiplier times the
// configured indent width. [StarlarkRules] is the default table; it is plain
// data, so individual rules can be tested, reordered, or replaced without
// touching the traversal code.
//
// # Navigation
//
// [Navigator.Advance] and [Navigator.Retreat] move a byte offset over one
// whole block construct (an if, a for, or a function definition) at a time.
// An entire if/elif/else chain is a single unit. The two operations are
// exact duals: a negative count for one delegates to the other.
//
// # Usage
//
// Create a [Mode], parse, and query:
//
//	m := skylight.New(skylight.WithIndentWidth(4))
//	tree, err := m.Parse(ctx, src)
//	if err != nil { ... }
//	defer tree.Close()
//
//	col := m.LineIndent(tree, src, 12)
//	next := m.Advance(tree, point, 1)
//	fns := m.Outline(tree, src)
//
// # CLI
//
// The skylight command wraps the library for shell use: "skylight fmt"
// reindents files, "skylight outline" lists function definitions,
// "skylight nav" computes block motion, and "skylight index"/"skylight
// lookup" maintain a SQLite index of function definitions across a
// directory tree for cross-file go-to-function.
package skylight
