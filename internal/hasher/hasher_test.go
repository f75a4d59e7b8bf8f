package hasher

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentHash(t *testing.T) {
	data := []byte("company-stamp-clean.png")

	full := ContentHash(data, 0)
	assert.Len(t, full, 16)
	assert.Equal(t, full[:8], ContentHash(data, 8))
	assert.Equal(t, full, ContentHash(data, 64))
	assert.NotEqual(t, full, ContentHash([]byte("company-signature-clean.png"), 0))

	// xxhash64 of the empty input.
	assert.Equal(t, "ef46db3751d8e999", ContentHash(nil, 16))
}

func TestReaderAndFileMatch(t *testing.T) {
	data := bytes.Repeat([]byte{0x89, 'P', 'N', 'G'}, 10000)

	fromReader, err := ContentHashReader(bytes.NewReader(data), 16)
	require.NoError(t, err)
	assert.Equal(t, ContentHash(data, 16), fromReader)

	path := filepath.Join(t.TempDir(), "asset.png")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	fromFile, size, err := FileHash(path, 16)
	require.NoError(t, err)
	assert.Equal(t, fromReader, fromFile)
	assert.Equal(t, int64(len(data)), size)

	empty := filepath.Join(t.TempDir(), "empty.png")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	fromFile, size, err = FileHash(empty, 0)
	require.NoError(t, err)
	assert.Equal(t, ContentHash(nil, 0), fromFile)
	assert.Zero(t, size)

	_, _, err = FileHash(filepath.Join(t.TempDir(), "missing"), 16)
	assert.Error(t, err)
}
