package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomicCreatesAndReplaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")

	require.NoError(t, WriteFileAtomic(Default, path, []byte("one"), 0o644))
	data, err := ReadFile(Default, path)
	require.NoError(t, err)
	assert.Equal(t, "one", string(data))

	require.NoError(t, WriteFileAtomic(Default, path, []byte("two"), 0o644))
	data, err = ReadFile(Default, path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	// No temporary file is left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "data.bin", entries[0].Name())
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(Default, filepath.Join(t.TempDir(), "missing"))
	assert.True(t, os.IsNotExist(err))
}
