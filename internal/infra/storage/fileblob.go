package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"jobtrack/internal/errors"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

const defaultUploadDir = "./data/uploads"

// FileBlobStore keeps objects on the local filesystem through a gocloud bucket.
// It is the development backend.
type FileBlobStore struct {
	bucket *blob.Bucket
	dir    string
}

// LocalRoot returns the directory the file provider writes objects to.
func LocalRoot(dir, bucket string) string {
	if strings.TrimSpace(dir) == "" {
		dir = defaultUploadDir
	}

	return filepath.Join(dir, bucket)
}

// NewFileBlobStore opens dir/bucket, creating it when missing.
func NewFileBlobStore(ctx context.Context, dir, bucket string) (*FileBlobStore, error) {
	root := LocalRoot(dir, bucket)

	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, errors.Wrapf(err, "failed to create upload directory %s", root)
	}

	b, err := fileblob.OpenBucket(root, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file bucket")
	}

	return &FileBlobStore{bucket: b, dir: root}, nil
}

// EnsureBucket is a no-op: the directory is created on open.
func (f *FileBlobStore) EnsureBucket(ctx context.Context) error {
	return nil
}

func (f *FileBlobStore) Put(ctx context.Context, key string, r io.Reader, _ int64, contentType string) error {
	w, err := f.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.WithStack(err)
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return errors.WithStack(err)
	}

	return errors.WithStack(w.Close())
}

func (f *FileBlobStore) Delete(ctx context.Context, key string) error {
	return errors.WithStack(f.bucket.Delete(ctx, key))
}

// BaseURL points at the bucket directory itself.
func (f *FileBlobStore) BaseURL() string {
	abs, err := filepath.Abs(f.dir)
	if err != nil {
		abs = f.dir
	}

	return "file://" + filepath.ToSlash(abs)
}

// Dir returns the directory objects are written to.
func (f *FileBlobStore) Dir() string {
	return f.dir
}

func (f *FileBlobStore) Close() error {
	return errors.WithStack(f.bucket.Close())
}
