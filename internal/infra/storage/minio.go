package storage

import (
	"context"
	"io"
	"strings"

	"jobtrack/config"
	"jobtrack/internal/errors"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore writes objects to a MinIO or other S3-compatible server.
type MinioStore struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

// NewMinioStore constructs a MinIO client from config.
func NewMinioStore(cfg config.MinioStorageConfig, bucket string) (*MinioStore, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, errors.New("minio endpoint is required")
	}
	if strings.TrimSpace(cfg.AccessKey) == "" || strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, errors.New("minio access key and secret key are required")
	}
	if strings.TrimSpace(bucket) == "" {
		return nil, errors.New("minio bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create minio client")
	}

	return &MinioStore{
		client:   client,
		bucket:   bucket,
		endpoint: cfg.Endpoint,
		useSSL:   cfg.UseSSL,
	}, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (m *MinioStore) EnsureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return errors.WithStack(err)
	}
	if exists {
		return nil
	}

	return errors.WithStack(m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}))
}

func (m *MinioStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})

	return errors.WithStack(err)
}

func (m *MinioStore) Delete(ctx context.Context, key string) error {
	return errors.WithStack(m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}))
}

// BaseURL is the path-style bucket URL on the configured endpoint.
func (m *MinioStore) BaseURL() string {
	scheme := "http"
	if m.useSSL {
		scheme = "https"
	}

	return scheme + "://" + m.endpoint + "/" + m.bucket
}

// Close is a no-op: the MinIO client holds no long-lived connections of its own.
func (m *MinioStore) Close() error {
	return nil
}
