package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/martinbaillie/skylight"
)

var flagDB string

var indexCmd = &cobra.Command{
	Use:   "index [path]",
	Short: "Build the cross-file function index",
	Long:  "Walks a directory tree, parses every Starlark file, and records its function definitions in a SQLite database. Unchanged files are skipped on re-runs.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runIndex,
}

func init() {
	indexCmd.Flags().StringVar(&flagDB, "db", "", "database path (default: .skylight/index.db under the target)")
}

func runIndex(cmd *cobra.Command, args []string) error {
	start := time.Now()

	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("resolving target: %w", err)
	}

	dbPath := resolveDBPath(target)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dbPath), err)
	}

	mode, err := newMode()
	if err != nil {
		return err
	}
	ix, err := skylight.NewIndexer(dbPath, mode)
	if err != nil {
		return err
	}
	defer ix.Close()

	if err := ix.IndexDirectory(context.Background(), target); err != nil {
		return err
	}

	files, err := ix.Store().Files()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "indexed %d file(s) in %s (db: %s)\n",
		len(files), time.Since(start).Round(time.Millisecond), dbPath)
	return nil
}

// resolveDBPath returns the --db flag, or the default index location under
// root.
func resolveDBPath(root string) string {
	if flagDB != "" {
		return flagDB
	}
	return filepath.Join(root, ".skylight", "index.db")
}
