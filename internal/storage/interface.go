package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/jaki95/playlist-library/config"
)

// Storage defines the interface for reading playlist sources and writing
// exported playlists.
type Storage interface {
	GetReader(name string) (io.ReadCloser, error)

	GetWriter(name string) (io.WriteCloser, error)

	FileExists(name string) bool

	ListFiles(dir string, pattern string) ([]string, error)

	Close() error
}

// New returns the storage backend selected by cfg.Type.
func New(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalFileStorage(cfg.DataDir, cfg.OutputDir)
	case "gcs":
		if cfg.Bucket == "" {
			return nil, fmt.Errorf("gcs storage requires a bucket")
		}
		return NewGCSStorage(ctx, cfg.Bucket, cfg.ObjectPrefix, cfg.CredentialsFile)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
