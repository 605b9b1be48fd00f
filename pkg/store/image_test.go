package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageStorePut(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "graphs")
	s, err := NewImageStore(dir)
	require.NoError(t, err)

	digest, path, err := s.Put([]byte("first image"))
	require.NoError(t, err)
	assert.Len(t, digest, 64)
	assert.Equal(t, filepath.Join(dir, digest+".png"), path)

	again, samePath, err := s.Put([]byte("first image"))
	require.NoError(t, err)
	assert.Equal(t, digest, again)
	assert.Equal(t, path, samePath)

	other, _, err := s.Put([]byte("second image"))
	require.NoError(t, err)
	assert.NotEqual(t, digest, other)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	data, err := s.Get(digest)
	require.NoError(t, err)
	assert.Equal(t, "first image", string(data))
}

func TestImageStoreGetErrors(t *testing.T) {
	s, err := NewImageStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Get("../../etc/passwd")
	assert.ErrorIs(t, err, ErrInvalidDigest)

	_, err = s.Get(strings.Repeat("a", 64))
	assert.ErrorIs(t, err, ErrNotFound)
}
