package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GCSStorage implements the Storage interface for Google Cloud Storage
type GCSStorage struct {
	client       *storage.Client
	bucket       string
	objectPrefix string
	ctx          context.Context
}

// NewGCSStorage creates a new GCSStorage instance
func NewGCSStorage(ctx context.Context, bucketName, objectPrefix, credentialsFile string) (*GCSStorage, error) {
	var client *storage.Client
	var err error

	// Create a client
	if credentialsFile != "" {
		client, err = storage.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	} else {
		// Use application default credentials
		client, err = storage.NewClient(ctx)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSStorage{
		client:       client,
		bucket:       bucketName,
		objectPrefix: strings.Trim(objectPrefix, "/"),
		ctx:          ctx,
	}, nil
}

func (s *GCSStorage) objectName(name string) string {
	name = strings.TrimPrefix(name, "/")
	if s.objectPrefix != "" {
		return s.objectPrefix + "/" + name
	}
	return name
}

// GetReader returns a reader for an object
func (s *GCSStorage) GetReader(name string) (io.ReadCloser, error) {
	r, err := s.client.Bucket(s.bucket).Object(s.objectName(name)).NewReader(s.ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open gs://%s/%s: %w", s.bucket, s.objectName(name), err)
	}
	return r, nil
}

// GetWriter returns a writer for an object. The object is committed on Close.
func (s *GCSStorage) GetWriter(name string) (io.WriteCloser, error) {
	return s.client.Bucket(s.bucket).Object(s.objectName(name)).NewWriter(s.ctx), nil
}

// FileExists checks if an object exists
func (s *GCSStorage) FileExists(name string) bool {
	_, err := s.client.Bucket(s.bucket).Object(s.objectName(name)).Attrs(s.ctx)
	return err == nil
}

// ListFiles lists objects under dir whose base name starts with pattern.
// Returned names are relative to the object prefix.
func (s *GCSStorage) ListFiles(dir string, pattern string) ([]string, error) {
	prefix := s.objectName(dir)
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	it := s.client.Bucket(s.bucket).Objects(s.ctx, &storage.Query{
		Prefix: prefix,
	})

	var results []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing objects: %w", err)
		}

		// Skip directories (objects ending with /)
		if strings.HasSuffix(attrs.Name, "/") {
			continue
		}

		// Match pattern (simple prefix for now)
		if pattern != "" && !strings.HasPrefix(path.Base(attrs.Name), pattern) {
			continue
		}

		name := attrs.Name
		if s.objectPrefix != "" {
			name = strings.TrimPrefix(name, s.objectPrefix+"/")
		}
		results = append(results, name)
	}

	return results, nil
}

// Close closes the GCS client
func (s *GCSStorage) Close() error {
	return s.client.Close()
}
