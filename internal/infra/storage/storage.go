// Package storage provides the object stores resumes are uploaded to.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"jobtrack/config"
	"jobtrack/internal/domain/constants"
	"jobtrack/internal/domain/lifecycle"
	"jobtrack/internal/domain/service"
	"jobtrack/internal/errors"

	"go.uber.org/fx"
)

// ObjectStore is the backend-specific part of a FileStorage.
type ObjectStore interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	// BaseURL is the URL prefix objects are reachable under when no public base URL is configured.
	BaseURL() string
	Close() error
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New builds the object store selected by storage.provider and registers its lifecycle hooks.
func New(params Params) (service.FileStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil {
		return nil, errors.New("storage configuration is missing")
	}

	store, err := newObjectStore(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	fs := NewFileStorage(store, cfg.PublicBaseURL)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := store.EnsureBucket(ctx); err != nil {
				return errors.Wrap(err, "failed to prepare upload bucket")
			}
			params.Logger.Info("Object storage ready",
				slog.String("provider", providerName(cfg.Provider)),
				slog.String("bucket", cfg.Bucket),
			)

			return nil
		},
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return fs, nil
}

func newObjectStore(ctx context.Context, cfg *config.StorageConfig) (ObjectStore, error) {
	switch providerName(cfg.Provider) {
	case constants.StorageProviderFile:
		return NewFileBlobStore(ctx, cfg.File.Dir, cfg.Bucket)
	case constants.StorageProviderMinio:
		return NewMinioStore(cfg.Minio, cfg.Bucket)
	case constants.StorageProviderGCS:
		return NewGCSStore(ctx, cfg.GCS, cfg.Bucket)
	default:
		return nil, errors.Errorf("unknown storage provider %q", cfg.Provider)
	}
}

// ServesLocally reports whether objects are kept on the local filesystem and
// must be served by the API itself.
func ServesLocally(cfg *config.StorageConfig) bool {
	return cfg != nil && providerName(cfg.Provider) == constants.StorageProviderFile
}

func providerName(provider string) string {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider == "" {
		return constants.StorageProviderFile
	}

	return provider
}

// FileStorage turns an ObjectStore into a service.FileStorage that hands out URLs.
type FileStorage struct {
	store   ObjectStore
	baseURL string
}

// NewFileStorage wraps store. An empty publicBaseURL falls back to the store's own URL.
func NewFileStorage(store ObjectStore, publicBaseURL string) *FileStorage {
	baseURL := strings.TrimSpace(publicBaseURL)
	if baseURL == "" {
		baseURL = store.BaseURL()
	}

	return &FileStorage{
		store:   store,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Put uploads the object and returns the URL it can be fetched from.
func (s *FileStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", errors.New("object key is required")
	}

	if err := s.store.Put(ctx, key, r, size, contentType); err != nil {
		return "", errors.Wrapf(err, "failed to store object %s", key)
	}

	return s.URL(key), nil
}

// Delete removes the object stored under key.
func (s *FileStorage) Delete(ctx context.Context, key string) error {
	return errors.Wrapf(s.store.Delete(ctx, key), "failed to delete object %s", key)
}

// URL returns the public URL of key. Each path segment is escaped.
func (s *FileStorage) URL(key string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return s.baseURL + "/" + strings.Join(segments, "/")
}
