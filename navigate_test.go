package skylight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvance_WholeIfElseIsOneBlock(t *testing.T) {
	src := "if a:\n    x()\nelse:\n    y()\n"
	tree := parseTest(t, src)
	nav := NewNavigator()

	got := nav.Advance(tree, 0, 1)
	// One step lands past the entire if/else chain, not after x().
	want := uint32(strings.Index(src, "y()") + len("y()"))
	assert.Equal(t, want, got)
}

func TestAdvance_NoBlockLeavesPointUnchanged(t *testing.T) {
	src := "x = 1\ny = 2\n"
	tree := parseTest(t, src)
	nav := NewNavigator()

	assert.Equal(t, uint32(0), nav.Advance(tree, 0, 1))
	assert.Equal(t, uint32(3), nav.Advance(tree, 3, 5))
}

func TestAdvance_SuccessiveBlocks(t *testing.T) {
	src := "" +
		"def a():\n" +
		"    pass\n" +
		"\n" +
		"def b():\n" +
		"    pass\n"
	tree := parseTest(t, src)
	nav := NewNavigator()

	endA := uint32(strings.Index(src, "pass") + len("pass"))
	endB := uint32(strings.LastIndex(src, "pass") + len("pass"))

	p := nav.Advance(tree, 0, 1)
	assert.Equal(t, endA, p)

	p = nav.Advance(tree, p, 1)
	assert.Equal(t, endB, p)

	// Exhausted: no further block, point stays put.
	assert.Equal(t, endB, nav.Advance(tree, p, 1))
}

func TestAdvance_MultiStepEqualsRepeatedSingleSteps(t *testing.T) {
	src := "" +
		"def a():\n" +
		"    pass\n" +
		"\n" +
		"def b():\n" +
		"    pass\n" +
		"\n" +
		"def c():\n" +
		"    pass\n"
	tree := parseTest(t, src)
	nav := NewNavigator()

	single := nav.Advance(tree, nav.Advance(tree, 0, 1), 1)
	assert.Equal(t, single, nav.Advance(tree, 0, 2))

	// Overshooting the last block stops at the last reachable boundary.
	assert.Equal(t, nav.Advance(tree, 0, 3), nav.Advance(tree, 0, 99))
}

func TestAdvance_FromInsideBlockFindsNextBlock(t *testing.T) {
	src := "" +
		"def a():\n" +
		"    pass\n" +
		"\n" +
		"def b():\n" +
		"    pass\n"
	tree := parseTest(t, src)
	nav := NewNavigator()

	// Point strictly inside def a's body: the enclosing block started
	// before point, so the step targets the next block in document order.
	inside := uint32(strings.Index(src, "pass"))
	endB := uint32(strings.LastIndex(src, "pass") + len("pass"))
	assert.Equal(t, endB, nav.Advance(tree, inside, 1))
}

func TestRetreat_ToEnclosingBlockStart(t *testing.T) {
	src := "def a():\n    pass\nx = 1\n"
	tree := parseTest(t, src)
	nav := NewNavigator()

	inside := uint32(strings.Index(src, "pass"))
	assert.Equal(t, uint32(0), nav.Retreat(tree, inside, 1))

	// Standing just past the block's end still counts as inside it.
	end := uint32(strings.Index(src, "pass") + len("pass"))
	assert.Equal(t, uint32(0), nav.Retreat(tree, end, 1))
}

func TestRetreat_NoPreviousBlock(t *testing.T) {
	src := "x = 1\ndef a():\n    pass\n"
	tree := parseTest(t, src)
	nav := NewNavigator()

	assert.Equal(t, uint32(0), nav.Retreat(tree, 0, 1))
	assert.Equal(t, uint32(2), nav.Retreat(tree, 2, 1))
}

func TestRetreat_ToPreviousBlockStart(t *testing.T) {
	src := "" +
		"def a():\n" +
		"    pass\n" +
		"\n" +
		"x = 1\n"
	tree := parseTest(t, src)
	nav := NewNavigator()

	atX := uint32(strings.Index(src, "x = 1"))
	assert.Equal(t, uint32(0), nav.Retreat(tree, atX, 1))
}

func TestAdvanceRetreat_NegativeCountSymmetry(t *testing.T) {
	src := "" +
		"def a():\n" +
		"    pass\n" +
		"\n" +
		"def b():\n" +
		"    pass\n" +
		"\n" +
		"def c():\n" +
		"    pass\n"
	tree := parseTest(t, src)
	nav := NewNavigator()

	points := []uint32{0, 5, 12, uint32(len(src) / 2), uint32(len(src) - 1)}
	for _, p := range points {
		for count := 0; count <= 4; count++ {
			assert.Equal(t, nav.Retreat(tree, p, count), nav.Advance(tree, p, -count),
				"advance(p, -n) must equal retreat(p, n) at point %d count %d", p, count)
			assert.Equal(t, nav.Advance(tree, p, count), nav.Retreat(tree, p, -count),
				"retreat(p, -n) must equal advance(p, n) at point %d count %d", p, count)
		}
	}
}

func TestNavigator_NilTree(t *testing.T) {
	nav := NewNavigator()
	assert.Equal(t, uint32(7), nav.Advance(nil, 7, 1))
	assert.Equal(t, uint32(7), nav.Retreat(nil, 7, 1))
}

func TestNavigator_CustomBlocks(t *testing.T) {
	src := "def a():\n    pass\n"
	tree := parseTest(t, src)

	// A navigator with an empty block set never moves.
	nav := &Navigator{Blocks: map[string]bool{}}
	assert.Equal(t, uint32(0), nav.Advance(tree, 0, 1))
	require.NotNil(t, tree.RootNode())
}
