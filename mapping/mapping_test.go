package mapping

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "measurements.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestOpen(t *testing.T) {
	content := "Hamburg;12.0\nBulawayo;8.9\n"
	m, err := Open(writeFile(t, content))
	require.NoError(t, err)

	assert.Equal(t, len(content), m.Len())
	assert.Equal(t, content, string(m.Bytes()))

	assert.NoError(t, m.Close())
	assert.Nil(t, m.Bytes())
	assert.NoError(t, m.Close())
}

func TestOpenEmpty(t *testing.T) {
	m, err := Open(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
	assert.NoError(t, m.Close())
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIO))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var me *Error
	require.True(t, errors.As(err, &me))
	assert.Equal(t, "open", me.Op)
}
