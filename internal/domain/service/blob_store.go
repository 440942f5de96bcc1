package service

import (
	"context"

	"canteen/internal/errors"
)

// ErrBlobNotFound is returned by Read when no object exists under the key.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore stores uploaded files and returns a retrievable URL.
type BlobStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (url string, err error)

	// Read returns the object stored under key with its content type.
	Read(ctx context.Context, key string) (data []byte, contentType string, err error)
}
