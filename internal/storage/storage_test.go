package storage

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoStore_Unit(t *testing.T) {
	memFs := afero.NewMemMapFs()
	store := NewAferoStore(memFs)
	ctx := context.Background()

	filePath := "avatars/user_1/portrait.png"
	fileContent := "\x89PNG fake image bytes"

	t.Run("Save", func(t *testing.T) {
		contentReader := bytes.NewReader([]byte(fileContent))
		bytesWritten, err := store.Save(ctx, filePath, contentReader)

		require.NoError(t, err)
		assert.Equal(t, int64(len(fileContent)), bytesWritten)

		// Verify the file was actually written using afero's helpers
		exists, err := afero.Exists(memFs, filePath)
		require.NoError(t, err)
		assert.True(t, exists, "file should exist after saving")

		// Verify content
		readBytes, err := afero.ReadFile(memFs, filePath)
		require.NoError(t, err)
		assert.Equal(t, fileContent, string(readBytes))
	})

	t.Run("Open", func(t *testing.T) {
		file, err := store.Open(ctx, filePath)
		require.NoError(t, err)
		defer file.Close()

		readBytes, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, fileContent, string(readBytes))
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Delete(ctx, filePath)
		require.NoError(t, err)

		// Verify the file was actually deleted
		exists, err := afero.Exists(memFs, filePath)
		require.NoError(t, err)
		assert.False(t, exists, "file should not exist after deleting")
	})

	t.Run("Open non-existent file", func(t *testing.T) {
		_, err := store.Open(ctx, "avatars/nobody/none.png")
		assert.Error(t, err, "opening a non-existent file should return an error")
	})
}

func TestNew_Backends(t *testing.T) {
	mem, err := New("memory", "")
	require.NoError(t, err)
	_, err = mem.Save(context.Background(), "a/b.png", bytes.NewReader([]byte("x")))
	require.NoError(t, err)

	dir := t.TempDir()
	disk, err := New("disk", dir)
	require.NoError(t, err)
	n, err := disk.Save(context.Background(), "avatars/u/p.png", bytes.NewReader([]byte("abc")))
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	rc, err := disk.Open(context.Background(), "avatars/u/p.png")
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}
