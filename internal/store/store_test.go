package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Migrate())
	t.Cleanup(func() { s.Close() })
	return s
}

func TestInsertFile_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	id, err := s.InsertFile(&File{
		Path: "/repo/rules.bzl", Hash: "abc", LineCount: 10, LastIndexed: time.Now(),
	})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	f, err := s.FileByPath("/repo/rules.bzl")
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, id, f.ID)
	assert.Equal(t, "abc", f.Hash)
	assert.Equal(t, 10, f.LineCount)
}

func TestFileByPath_Missing(t *testing.T) {
	s := newTestStore(t)

	f, err := s.FileByPath("/nope.bzl")
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestFunctionsByName_JoinsPath(t *testing.T) {
	s := newTestStore(t)

	fid, err := s.InsertFile(&File{Path: "/repo/defs.bzl", Hash: "h", LastIndexed: time.Now()})
	require.NoError(t, err)

	_, err = s.InsertFunction(&Function{
		FileID: fid, Name: "my_rule", StartLine: 3, EndLine: 9,
	})
	require.NoError(t, err)
	_, err = s.InsertFunction(&Function{
		FileID: fid, Name: "helper", Container: "my_rule", StartLine: 5, EndLine: 7,
	})
	require.NoError(t, err)

	fns, err := s.FunctionsByName("my_rule")
	require.NoError(t, err)
	require.Len(t, fns, 1)
	assert.Equal(t, "/repo/defs.bzl", fns[0].Path)
	assert.Equal(t, 3, fns[0].StartLine)

	fns, err = s.FunctionsByName("absent")
	require.NoError(t, err)
	assert.Empty(t, fns)
}

func TestSearchFunctions_Prefix(t *testing.T) {
	s := newTestStore(t)

	fid, err := s.InsertFile(&File{Path: "/repo/a.bzl", Hash: "h", LastIndexed: time.Now()})
	require.NoError(t, err)
	for _, name := range []string{"load_deps", "load_tools", "run"} {
		_, err := s.InsertFunction(&Function{FileID: fid, Name: name})
		require.NoError(t, err)
	}

	fns, err := s.SearchFunctions("load_")
	require.NoError(t, err)
	require.Len(t, fns, 2)
	assert.Equal(t, "load_deps", fns[0].Name)
	assert.Equal(t, "load_tools", fns[1].Name)
}

func TestDeleteFileData_RemovesFunctions(t *testing.T) {
	s := newTestStore(t)

	fid, err := s.InsertFile(&File{Path: "/repo/a.bzl", Hash: "h", LastIndexed: time.Now()})
	require.NoError(t, err)
	_, err = s.InsertFunction(&Function{FileID: fid, Name: "gone"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteFileData(fid))

	f, err := s.FileByPath("/repo/a.bzl")
	require.NoError(t, err)
	assert.Nil(t, f)

	fns, err := s.FunctionsByName("gone")
	require.NoError(t, err)
	assert.Empty(t, fns)
}

func TestFiles_OrderedByPath(t *testing.T) {
	s := newTestStore(t)

	for _, p := range []string{"/repo/b.bzl", "/repo/a.bzl"} {
		_, err := s.InsertFile(&File{Path: p, Hash: "h", LastIndexed: time.Now()})
		require.NoError(t, err)
	}

	files, err := s.Files()
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "/repo/a.bzl", files[0].Path)
	assert.Equal(t, "/repo/b.bzl", files[1].Path)
}
