package skylight

// Node type vocabulary of the Starlark grammar. Starlark's surface syntax is
// a subset of Python's, so the type tags here are those emitted by the
// tree-sitter Python grammar. The vocabulary is a fixed external contract:
// changing grammars means swapping these tables, not subclassing anything.

const (
	nodeModule = "module"
	nodeBlock  = "block"
)

// blockHeaderTypes are constructs whose header line owns the column of the
// block it introduces. Headers are never indented relative to their
// container by the rule table; they keep the column their line already has.
var blockHeaderTypes = map[string]bool{
	"function_definition": true,
	"if_statement":        true,
	"for_statement":       true,
}

// clauseTypes are continuation headers of a compound statement. An elif or
// else line aligns with the if (or for) that owns it.
var clauseTypes = map[string]bool{
	"elif_clause": true,
	"else_clause": true,
}

// continuationParents are multi-line constructs whose interior lines indent
// one level past the line the construct starts on: split expressions and
// assignments, call arguments, collection literals, comprehensions, lambda
// bodies, keyword arguments.
var continuationParents = map[string]bool{
	"binary_operator":          true,
	"boolean_operator":         true,
	"comparison_operator":      true,
	"assignment":               true,
	"augmented_assignment":     true,
	"parenthesized_expression": true,
	"argument_list":            true,
	"call":                     true,
	"list":                     true,
	"tuple":                    true,
	"dictionary":               true,
	"set":                      true,
	"pair":                     true,
	"list_comprehension":       true,
	"dictionary_comprehension": true,
	"set_comprehension":        true,
	"generator_expression":     true,
	"lambda":                   true,
	"keyword_argument":         true,
}

// closingDelimiters dedent to the column of the line that opened them.
var closingDelimiters = map[string]bool{
	")": true,
	"]": true,
	"}": true,
}

// DefaultBlocks returns the node types the navigator treats as atomic
// blocks: conditionals, loops, and function definitions. Callers may extend
// the returned set before handing it to a [Navigator].
func DefaultBlocks() map[string]bool {
	return map[string]bool{
		"if_statement":        true,
		"for_statement":       true,
		"function_definition": true,
	}
}
