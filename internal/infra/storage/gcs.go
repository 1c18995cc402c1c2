package storage

import (
	"context"
	"io"
	"strings"

	"jobtrack/config"
	"jobtrack/internal/errors"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const gcsPublicHost = "https://storage.googleapis.com"

// GCSStore writes objects to a Google Cloud Storage bucket.
type GCSStore struct {
	client    *storage.Client
	bucket    string
	projectID string
}

// NewGCSStore constructs a GCS client from config. Without a credentials file,
// Application Default Credentials are used.
func NewGCSStore(ctx context.Context, cfg config.GCSStorageConfig, bucket string) (*GCSStore, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, errors.New("gcs bucket is required")
	}

	var opts []option.ClientOption
	if strings.TrimSpace(cfg.CredentialsFile) != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gcs client")
	}

	return &GCSStore{
		client:    client,
		bucket:    bucket,
		projectID: cfg.ProjectID,
	}, nil
}

// EnsureBucket creates the bucket when it does not exist and a project ID is configured.
func (g *GCSStore) EnsureBucket(ctx context.Context) error {
	_, err := g.client.Bucket(g.bucket).Attrs(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrBucketNotExist) {
		return errors.WithStack(err)
	}
	if strings.TrimSpace(g.projectID) == "" {
		return errors.New("gcs project id is required to create bucket")
	}

	return errors.WithStack(g.client.Bucket(g.bucket).Create(ctx, g.projectID, nil))
}

func (g *GCSStore) Put(ctx context.Context, key string, r io.Reader, _ int64, contentType string) error {
	writer := g.client.Bucket(g.bucket).Object(key).NewWriter(ctx)
	if strings.TrimSpace(contentType) != "" {
		writer.ContentType = contentType
	}

	if _, err := io.Copy(writer, r); err != nil {
		_ = writer.Close()
		return errors.WithStack(err)
	}

	return errors.WithStack(writer.Close())
}

func (g *GCSStore) Delete(ctx context.Context, key string) error {
	return errors.WithStack(g.client.Bucket(g.bucket).Object(key).Delete(ctx))
}

func (g *GCSStore) BaseURL() string {
	return gcsPublicHost + "/" + g.bucket
}

func (g *GCSStore) Close() error {
	return errors.WithStack(g.client.Close())
}
