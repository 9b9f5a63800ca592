package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var flagWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Reindent Starlark files",
	Long:  "Recomputes the indentation of every line from the syntax tree. Reads stdin when no files are given; with --write, files are rewritten in place.",
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().BoolVar(&flagWrite, "write", false, "rewrite files in place instead of printing to stdout")
}

func runFmt(cmd *cobra.Command, args []string) error {
	mode, err := newMode()
	if err != nil {
		return err
	}
	ctx := context.Background()

	if len(args) == 0 {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		out, err := mode.Reindent(ctx, src)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	}

	changed := 0
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		out, err := mode.Reindent(ctx, src)
		if err != nil {
			return fmt.Errorf("reindenting %s: %w", path, err)
		}
		if bytes.Equal(src, out) {
			continue
		}
		changed++
		if flagWrite {
			if err := os.WriteFile(path, out, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Fprintf(os.Stderr, "reindented %s\n", path)
			continue
		}
		if _, err := os.Stdout.Write(out); err != nil {
			return err
		}
	}
	if flagWrite {
		fmt.Fprintf(os.Stderr, "%d file(s) changed\n", changed)
	}
	return nil
}
