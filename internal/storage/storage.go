package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage is the object-store abstraction project images go through.
type Storage interface {
	// Save stores an object at the given key and returns nil on success.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Get retrieves an object.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes an object. Used for best-effort cleanup when a batch
	// upload fails halfway.
	Delete(ctx context.Context, key string) error

	// URL returns the public URL for a stored object.
	URL(key string) string
}

// Config holds storage configuration.
type Config struct {
	Type       string // local, s3
	BasePath   string // for local storage
	BaseURL    string // public URL base
	Bucket     string // for S3/R2
	Region     string // for S3
	AccessKey  string // for S3/R2
	SecretKey  string // for S3/R2
	Endpoint   string // for R2 or custom S3
	PublicRead bool   // make objects public on upload
}

// NewStorage creates a storage backend from configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
