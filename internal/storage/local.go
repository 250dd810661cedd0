package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalFileStorage implements the Storage interface for local filesystem.
// Sources are read from dataDir and exports are written to outputDir.
type LocalFileStorage struct {
	dataDir   string
	outputDir string
}

// NewLocalFileStorage creates a new local file storage instance
func NewLocalFileStorage(dataDir, outputDir string) (*LocalFileStorage, error) {
	// Ensure directories exist
	for _, dir := range []string{dataDir, outputDir} {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return &LocalFileStorage{
		dataDir:   dataDir,
		outputDir: outputDir,
	}, nil
}

func resolve(base, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(base, name)
}

// GetReader opens name inside the data directory
func (s *LocalFileStorage) GetReader(name string) (io.ReadCloser, error) {
	return os.Open(resolve(s.dataDir, name))
}

// GetWriter creates name inside the output directory
func (s *LocalFileStorage) GetWriter(name string) (io.WriteCloser, error) {
	path := resolve(s.outputDir, name)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return os.Create(path)
}

// FileExists checks if a file exists in the data directory
func (s *LocalFileStorage) FileExists(name string) bool {
	info, err := os.Stat(resolve(s.dataDir, name))
	return err == nil && !info.IsDir()
}

// ListFiles lists files under dir (relative to the data directory) whose
// name starts with pattern. The returned names can be passed to GetReader.
func (s *LocalFileStorage) ListFiles(dir string, pattern string) ([]string, error) {
	files, err := os.ReadDir(resolve(s.dataDir, dir))
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var results []string
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		// Match pattern (simple prefix for now)
		if pattern != "" && !strings.HasPrefix(file.Name(), pattern) {
			continue
		}

		results = append(results, filepath.Join(dir, file.Name()))
	}

	return results, nil
}

// Close is a no-op for local storage
func (s *LocalFileStorage) Close() error {
	return nil
}
