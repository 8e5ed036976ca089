package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveStreamToFile(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "sub", "out.bin")
	err := SaveStreamToFile(dst, bytes.NewReader([]byte("hello world")))
	require.NoError(t, err)
	raw, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello world"), raw)

	// no temp leftovers in the target dir
	ents, err := os.ReadDir(filepath.Dir(dst))
	require.NoError(t, err)
	assert.Len(t, ents, 1)
}
