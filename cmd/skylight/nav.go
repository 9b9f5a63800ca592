package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagPoint    uint32
	flagCount    int
	flagBackward bool
)

var navCmd = &cobra.Command{
	Use:   "nav <file>",
	Short: "Compute block-wise cursor motion",
	Long:  "Moves a byte offset forward (or backward with --backward) over whole if/for/def blocks and prints the landing position. A point with no further block is reported unchanged.",
	Args:  cobra.ExactArgs(1),
	RunE:  runNav,
}

func init() {
	navCmd.Flags().Uint32Var(&flagPoint, "point", 0, "starting byte offset")
	navCmd.Flags().IntVar(&flagCount, "count", 1, "number of blocks to move over; negative reverses direction")
	navCmd.Flags().BoolVar(&flagBackward, "backward", false, "move toward the start of the buffer")
}

// navResult is the JSON shape of a navigation answer. Line and column are
// 0-based and derived from the landing byte offset.
type navResult struct {
	Point uint32 `json:"point"`
	Line  uint32 `json:"line"`
	Col   uint32 `json:"col"`
	Moved bool   `json:"moved"`
}

func runNav(cmd *cobra.Command, args []string) error {
	mode, err := newMode()
	if err != nil {
		return err
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	tree, err := mode.Parse(context.Background(), src)
	if err != nil {
		return err
	}
	defer tree.Close()

	var landed uint32
	if flagBackward {
		landed = mode.Retreat(tree, flagPoint, flagCount)
	} else {
		landed = mode.Advance(tree, flagPoint, flagCount)
	}

	line, col := position(src, landed)
	result := navResult{Point: landed, Line: line, Col: col, Moved: landed != flagPoint}

	if flagFormat == "json" {
		return emitJSON(result)
	}
	fmt.Printf("%d (line %d, col %d)\n", result.Point, result.Line+1, result.Col)
	return nil
}

// position converts a byte offset to a 0-based line and column.
func position(src []byte, offset uint32) (line, col uint32) {
	if int(offset) > len(src) {
		offset = uint32(len(src))
	}
	for _, b := range src[:offset] {
		if b == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return line, col
}
