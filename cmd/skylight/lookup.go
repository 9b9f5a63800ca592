package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/martinbaillie/skylight"
)

var flagPrefix bool

var lookupCmd = &cobra.Command{
	Use:   "lookup <name>",
	Short: "Find a function definition in the index",
	Long:  "Queries the SQLite function index built by 'skylight index'. With --prefix the name matches any function starting with it.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

func init() {
	lookupCmd.Flags().StringVar(&flagDB, "db", "", "database path (default: .skylight/index.db under the working directory)")
	lookupCmd.Flags().BoolVar(&flagPrefix, "prefix", false, "match any function whose name starts with <name>")
}

// lookupEntry is the JSON shape of one lookup hit. Lines are 0-based.
type lookupEntry struct {
	Name      string `json:"name"`
	Container string `json:"container,omitempty"`
	Path      string `json:"path"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
}

func runLookup(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting cwd: %w", err)
	}
	dbPath := resolveDBPath(cwd)
	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("no index at %s: run 'skylight index' first", dbPath)
	}

	ix, err := skylight.NewIndexer(dbPath, nil)
	if err != nil {
		return err
	}
	defer ix.Close()

	var fns []*skylight.LocatedFunction
	if flagPrefix {
		fns, err = ix.Search(args[0])
	} else {
		fns, err = ix.Lookup(args[0])
	}
	if err != nil {
		return err
	}

	entries := []lookupEntry{}
	for _, fn := range fns {
		entries = append(entries, lookupEntry{
			Name:      fn.Name,
			Container: fn.Container,
			Path:      fn.Path,
			StartLine: fn.StartLine,
			EndLine:   fn.EndLine,
		})
	}

	if flagFormat == "json" {
		return emitJSON(entries)
	}
	pathColor := color.New(color.FgGreen)
	nameColor := color.New(color.FgCyan, color.Bold)
	for _, e := range entries {
		rel := e.Path
		if r, err := filepath.Rel(cwd, e.Path); err == nil {
			rel = r
		}
		fmt.Printf("%s %s:%d\n", nameColor.Sprint(e.Name), pathColor.Sprint(rel), e.StartLine+1)
	}
	return nil
}
