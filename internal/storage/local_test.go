package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaki95/playlist-library/config"
)

func newTestStorage(t *testing.T) (*LocalFileStorage, string, string) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "data")
	outputDir := filepath.Join(root, "output")

	s, err := NewLocalFileStorage(dataDir, outputDir)
	require.NoError(t, err)
	return s, dataDir, outputDir
}

func TestLocalFileStorageReadWrite(t *testing.T) {
	s, dataDir, outputDir := newTestStorage(t)
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "2000s.csv"), []byte("Yellow,Coldplay,2000,82,yellow.wav\n"), 0644))

	assert.True(t, s.FileExists("2000s.csv"))
	assert.False(t, s.FileExists("missing.csv"))

	r, err := s.GetReader("2000s.csv")
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "Yellow,Coldplay,2000,82,yellow.wav\n", string(data))

	w, err := s.GetWriter("sorted/2000s.csv")
	require.NoError(t, err)
	_, err = w.Write([]byte("out"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	written, err := os.ReadFile(filepath.Join(outputDir, "sorted", "2000s.csv"))
	require.NoError(t, err)
	assert.Equal(t, "out", string(written))
}

func TestLocalFileStorageAbsolutePath(t *testing.T) {
	s, _, _ := newTestStorage(t)
	path := filepath.Join(t.TempDir(), "elsewhere.csv")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	assert.True(t, s.FileExists(path))
	r, err := s.GetReader(path)
	require.NoError(t, err)
	r.Close()
}

func TestLocalFileStorageListFiles(t *testing.T) {
	s, dataDir, _ := newTestStorage(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "rock", "nested"), 0755))
	for _, name := range []string{"rock/classic.csv", "rock/grunge.csv", "rock/notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, name), []byte(""), 0644))
	}

	files, err := s.ListFiles("rock", "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join("rock", "classic.csv"),
		filepath.Join("rock", "grunge.csv"),
		filepath.Join("rock", "notes.txt"),
	}, files)

	files, err = s.ListFiles("rock", "g")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("rock", "grunge.csv")}, files)

	_, err = s.ListFiles("missing", "")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	root := t.TempDir()

	s, err := New(context.Background(), config.StorageConfig{
		Type:      "local",
		DataDir:   filepath.Join(root, "data"),
		OutputDir: filepath.Join(root, "output"),
	})
	require.NoError(t, err)
	assert.IsType(t, &LocalFileStorage{}, s)
	assert.NoError(t, s.Close())

	_, err = New(context.Background(), config.StorageConfig{Type: "ftp"})
	assert.ErrorContains(t, err, "unsupported storage type")

	_, err = New(context.Background(), config.StorageConfig{Type: "gcs"})
	assert.ErrorContains(t, err, "requires a bucket")
}
