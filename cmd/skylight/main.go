package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/martinbaillie/skylight"
)

var (
	flagFormat      string
	flagIndentWidth int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "skylight",
	Short:         "Starlark editor support: indentation, navigation, outlines",
	Long:          "Skylight parses Starlark with tree-sitter and computes indentation, block navigation, function outlines, fold regions, and a cross-file function index.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFormat(flagFormat)
	},
	// No Run — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format: json|text")
	rootCmd.PersistentFlags().IntVar(&flagIndentWidth, "indent-width", 0, "columns per nesting level (default: config file, then 4)")

	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(outlineCmd)
	rootCmd.AddCommand(navCmd)
	rootCmd.AddCommand(foldCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(lookupCmd)
}

func validateFormat(format string) error {
	switch format {
	case "json", "text":
		return nil
	}
	return fmt.Errorf("invalid --format %q: must be json or text", format)
}

// newMode builds a Mode from the --indent-width flag, falling back to any
// .skylight.yaml discovered upward from the working directory.
func newMode() (*skylight.Mode, error) {
	width := flagIndentWidth
	if width == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting cwd: %w", err)
		}
		cfg, err := skylight.LoadConfig(cwd)
		if err != nil {
			return nil, err
		}
		width = cfg.IndentWidth
	}
	if width == 0 {
		return skylight.New(), nil
	}
	if err := skylight.ValidateIndentWidth(width); err != nil {
		return nil, err
	}
	return skylight.New(skylight.WithIndentWidth(width)), nil
}

// emitJSON writes v to stdout as indented JSON.
func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
