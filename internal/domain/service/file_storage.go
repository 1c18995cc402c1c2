package service

import (
	"context"
	"io"
)

// FileStorage stores uploaded binaries and returns a URL clients can fetch them from.
type FileStorage interface {
	// Put writes size bytes from r under key and returns the public URL of the object.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)

	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error
}
