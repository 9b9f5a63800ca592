package skylight

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/martinbaillie/skylight/internal/lang"
	"github.com/martinbaillie/skylight/internal/store"
)

// Indexer maintains the cross-file function index: a SQLite database of
// every function definition under a directory tree, for go-to-function
// across files. Unchanged files (same content hash) are skipped.
type Indexer struct {
	store *store.Store
	mode  *Mode
}

// NewIndexer creates an Indexer backed by a SQLite database at dbPath.
func NewIndexer(dbPath string, mode *Mode, opts ...Option) (*Indexer, error) {
	s, err := store.NewStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("skylight: create store: %w", err)
	}
	if err := s.Migrate(); err != nil {
		s.Close()
		return nil, fmt.Errorf("skylight: migrate: %w", err)
	}
	if mode == nil {
		mode = New(opts...)
	}
	return &Indexer{store: s, mode: mode}, nil
}

// Close releases the Indexer's database resources.
func (ix *Indexer) Close() error {
	return ix.store.Close()
}

// Store returns the underlying Store for direct access.
func (ix *Indexer) Store() *Store {
	return ix.store
}

// IndexFiles indexes the given Starlark file paths. Non-Starlark paths are
// skipped. Errors on individual files are collected; processing continues,
// and the first error is wrapped in the returned summary.
func (ix *Indexer) IndexFiles(ctx context.Context, paths []string) error {
	var errs []error
	for _, path := range paths {
		if err := ix.indexFile(ctx, path); err != nil {
			errs = append(errs, fmt.Errorf("index %s: %w", path, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("indexing had %d error(s): %w", len(errs), errs[0])
	}
	return nil
}

func (ix *Indexer) indexFile(ctx context.Context, path string) error {
	if !lang.IsStarlarkFile(path) {
		return nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	hash := fmt.Sprintf("%x", sha256.Sum256(content))

	existing, err := ix.store.FileByPath(path)
	if err != nil {
		return fmt.Errorf("lookup file: %w", err)
	}
	if existing != nil && existing.Hash == hash {
		return nil // unchanged
	}
	if existing != nil {
		if err := ix.store.DeleteFileData(existing.ID); err != nil {
			return fmt.Errorf("delete old data: %w", err)
		}
	}

	tree, err := ix.mode.Parse(ctx, content)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	defer tree.Close()

	lineCount := bytes.Count(content, []byte{'\n'}) + 1
	fileID, err := ix.store.InsertFile(&store.File{
		Path:        path,
		Hash:        hash,
		LineCount:   lineCount,
		LastIndexed: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("insert file: %w", err)
	}

	for _, fn := range Outline(tree, content) {
		_, err := ix.store.InsertFunction(&store.Function{
			FileID:    fileID,
			Name:      fn.Name,
			Container: fn.Container,
			StartLine: int(fn.StartLine),
			StartCol:  int(fn.StartCol),
			EndLine:   int(fn.EndLine),
			EndCol:    int(fn.EndCol),
		})
		if err != nil {
			return fmt.Errorf("insert function %s: %w", fn.Name, err)
		}
	}
	return nil
}

// skipDirs are directories excluded from indexing.
var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"__pycache__":  true,
}

// IndexDirectory walks root and indexes every Starlark file found, skipping
// hidden directories and the usual dependency caches.
func (ix *Indexer) IndexDirectory(ctx context.Context, root string) error {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if strings.HasPrefix(name, ".") && path != root {
				return filepath.SkipDir
			}
			if skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}
		if lang.IsStarlarkFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory: %w", err)
	}
	return ix.IndexFiles(ctx, paths)
}

// Lookup returns every indexed function named exactly name.
func (ix *Indexer) Lookup(name string) ([]*LocatedFunction, error) {
	return ix.store.FunctionsByName(name)
}

// Search returns every indexed function whose name starts with prefix.
func (ix *Indexer) Search(prefix string) ([]*LocatedFunction, error) {
	return ix.store.SearchFunctions(prefix)
}
