package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var foldCmd = &cobra.Command{
	Use:   "fold <file>",
	Short: "List the foldable regions of a Starlark file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFold,
}

// foldEntry is the JSON shape of one fold region. Lines are 0-based.
type foldEntry struct {
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line"`
	EndLine   uint32 `json:"end_line"`
}

func runFold(cmd *cobra.Command, args []string) error {
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

	entries := []foldEntry{}
	for _, r := range mode.Folds(tree) {
		entries = append(entries, foldEntry{
			StartByte: r.StartByte,
			EndByte:   r.EndByte,
			StartLine: r.StartLine,
			EndLine:   r.EndLine,
		})
	}

	if flagFormat == "json" {
		return emitJSON(entries)
	}
	lineColor := color.New(color.FgYellow)
	for _, e := range entries {
		fmt.Printf("%s\n", lineColor.Sprintf("lines %d-%d", e.StartLine+1, e.EndLine+1))
	}
	return nil
}
