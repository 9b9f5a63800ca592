package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var outlineCmd = &cobra.Command{
	Use:   "outline <file>",
	Short: "List the function definitions of a Starlark file",
	Args:  cobra.ExactArgs(1),
	RunE:  runOutline,
}

// outlineEntry is the JSON shape of one outline row. Lines are 0-based.
type outlineEntry struct {
	Name      string `json:"name"`
	Container string `json:"container,omitempty"`
	StartLine uint32 `json:"start_line"`
	EndLine   uint32 `json:"end_line"`
}

func runOutline(cmd *cobra.Command, args []string) error {
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

	entries := []outlineEntry{}
	for _, fn := range mode.Outline(tree, src) {
		entries = append(entries, outlineEntry{
			Name:      fn.Name,
			Container: fn.Container,
			StartLine: fn.StartLine,
			EndLine:   fn.EndLine,
		})
	}

	if flagFormat == "json" {
		return emitJSON(entries)
	}
	nameColor := color.New(color.FgCyan, color.Bold)
	lineColor := color.New(color.FgYellow)
	for _, e := range entries {
		qualified := e.Name
		if e.Container != "" {
			qualified = e.Container + "." + e.Name
		}
		fmt.Printf("%s %s\n", lineColor.Sprintf("%5d", e.StartLine+1), nameColor.Sprint(qualified))
	}
	return nil
}
