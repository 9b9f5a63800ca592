package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFormat(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validateFormat("json"))
	assert.NoError(t, validateFormat("text"))
	assert.Error(t, validateFormat("yaml"))
	assert.Error(t, validateFormat(""))
}

func TestPosition(t *testing.T) {
	t.Parallel()
	src := []byte("abc\ndef\n")

	line, col := position(src, 0)
	assert.Equal(t, uint32(0), line)
	assert.Equal(t, uint32(0), col)

	line, col = position(src, 5)
	assert.Equal(t, uint32(1), line)
	assert.Equal(t, uint32(1), col)

	// Offsets past the end clamp to the final position.
	line, col = position(src, 99)
	assert.Equal(t, uint32(2), line)
	assert.Equal(t, uint32(0), col)
}

func TestResolveDBPath(t *testing.T) {
	old := flagDB
	defer func() { flagDB = old }()

	flagDB = ""
	assert.Equal(t, filepath.Join("/repo", ".skylight", "index.db"), resolveDBPath("/repo"))

	flagDB = "/tmp/custom.db"
	assert.Equal(t, "/tmp/custom.db", resolveDBPath("/repo"))
}
