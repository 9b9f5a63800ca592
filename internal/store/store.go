// Package store is the SQLite data access layer for skylight's cross-file
// function index: which files have been indexed (with content hashes for
// change detection) and which function definitions each one contains.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store is the SQLite data access layer for the function index.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database at dbPath with WAL mode enabled.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use in transactions.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Migrate creates the tables and indexes. Idempotent.
func (s *Store) Migrate() error {
	_, err := s.db.Exec(schemaDDL)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS files (
  id              INTEGER PRIMARY KEY,
  path            TEXT NOT NULL UNIQUE,
  hash            TEXT,
  line_count      INTEGER,
  last_indexed    TIMESTAMP
);

CREATE TABLE IF NOT EXISTS functions (
  id              INTEGER PRIMARY KEY,
  file_id         INTEGER NOT NULL REFERENCES files(id) ON DELETE CASCADE,
  name            TEXT NOT NULL,
  container       TEXT,
  start_line      INTEGER,
  start_col       INTEGER,
  end_line        INTEGER,
  end_col         INTEGER
);

CREATE INDEX IF NOT EXISTS idx_functions_name ON functions(name);
CREATE INDEX IF NOT EXISTS idx_functions_file ON functions(file_id);
`

// --- File operations ---

func (s *Store) InsertFile(f *File) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO files (path, hash, line_count, last_indexed) VALUES (?, ?, ?, ?)",
		f.Path, f.Hash, f.LineCount, f.LastIndexed,
	)
	if err != nil {
		return 0, fmt.Errorf("insert file: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	f.ID = id
	return id, nil
}

// FileByPath returns the indexed file record for path, or nil if the path
// has never been indexed.
func (s *Store) FileByPath(path string) (*File, error) {
	f := &File{}
	err := s.db.QueryRow(
		"SELECT id, path, hash, line_count, last_indexed FROM files WHERE path = ?", path,
	).Scan(&f.ID, &f.Path, &f.Hash, &f.LineCount, &f.LastIndexed)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("file by path: %w", err)
	}
	return f, nil
}

// Files returns every indexed file ordered by path.
func (s *Store) Files() ([]*File, error) {
	rows, err := s.db.Query(
		"SELECT id, path, hash, line_count, last_indexed FROM files ORDER BY path",
	)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()
	var files []*File
	for rows.Next() {
		f := &File{}
		if err := rows.Scan(&f.ID, &f.Path, &f.Hash, &f.LineCount, &f.LastIndexed); err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// DeleteFileData removes a file record and all of its functions.
func (s *Store) DeleteFileData(fileID int64) error {
	if _, err := s.db.Exec("DELETE FROM functions WHERE file_id = ?", fileID); err != nil {
		return fmt.Errorf("delete functions: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM files WHERE id = ?", fileID); err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

// --- Function operations ---

func (s *Store) InsertFunction(fn *Function) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO functions (file_id, name, container, start_line, start_col, end_line, end_col)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		fn.FileID, fn.Name, fn.Container, fn.StartLine, fn.StartCol, fn.EndLine, fn.EndCol,
	)
	if err != nil {
		return 0, fmt.Errorf("insert function: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	fn.ID = id
	return id, nil
}

// FunctionsByFile returns a file's functions in source order.
func (s *Store) FunctionsByFile(fileID int64) ([]*Function, error) {
	return s.queryFunctions(
		`SELECT id, file_id, name, container, start_line, start_col, end_line, end_col
		 FROM functions WHERE file_id = ? ORDER BY start_line, start_col`, fileID,
	)
}

func (s *Store) queryFunctions(query string, args ...any) ([]*Function, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query functions: %w", err)
	}
	defer rows.Close()
	var fns []*Function
	for rows.Next() {
		fn := &Function{}
		if err := rows.Scan(
			&fn.ID, &fn.FileID, &fn.Name, &fn.Container,
			&fn.StartLine, &fn.StartCol, &fn.EndLine, &fn.EndCol,
		); err != nil {
			return nil, fmt.Errorf("scan function: %w", err)
		}
		fns = append(fns, fn)
	}
	return fns, rows.Err()
}

// FunctionsByName returns every indexed function with exactly the given
// name, joined with its file path, ordered by path then position.
func (s *Store) FunctionsByName(name string) ([]*LocatedFunction, error) {
	return s.queryLocated(
		locatedSelect+" WHERE fn.name = ? ORDER BY f.path, fn.start_line", name,
	)
}

// SearchFunctions returns every indexed function whose name starts with
// prefix, joined with its file path.
func (s *Store) SearchFunctions(prefix string) ([]*LocatedFunction, error) {
	return s.queryLocated(
		locatedSelect+" WHERE fn.name LIKE ? ORDER BY f.path, fn.start_line",
		prefix+"%",
	)
}

const locatedSelect = `
SELECT fn.id, fn.file_id, fn.name, fn.container,
       fn.start_line, fn.start_col, fn.end_line, fn.end_col, f.path
FROM functions fn JOIN files f ON f.id = fn.file_id`

func (s *Store) queryLocated(query string, args ...any) ([]*LocatedFunction, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query located functions: %w", err)
	}
	defer rows.Close()
	var fns []*LocatedFunction
	for rows.Next() {
		fn := &LocatedFunction{}
		if err := rows.Scan(
			&fn.ID, &fn.FileID, &fn.Name, &fn.Container,
			&fn.StartLine, &fn.StartCol, &fn.EndLine, &fn.EndCol, &fn.Path,
		); err != nil {
			return nil, fmt.Errorf("scan located function: %w", err)
		}
		fns = append(fns, fn)
	}
	return fns, rows.Err()
}
