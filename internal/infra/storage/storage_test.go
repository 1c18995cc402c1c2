package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jobtrack/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_PutAndDelete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewFileBlobStore(ctx, dir, "resumes")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	fs := NewFileStorage(store, "http://localhost:8000/files/")

	body := "%PDF-1.4 resume"
	link, err := fs.Put(ctx, "user-1/AdaLovelace-Engineer.pdf", strings.NewReader(body), int64(len(body)), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/files/user-1/AdaLovelace-Engineer.pdf", link)

	written, err := os.ReadFile(filepath.Join(dir, "resumes", "user-1", "AdaLovelace-Engineer.pdf"))
	require.NoError(t, err)
	assert.Equal(t, body, string(written))

	require.NoError(t, fs.Delete(ctx, "user-1/AdaLovelace-Engineer.pdf"))
	_, err = os.Stat(filepath.Join(dir, "resumes", "user-1", "AdaLovelace-Engineer.pdf"))
	assert.True(t, os.IsNotExist(err))
}

func TestFileStorage_RejectsEmptyKey(t *testing.T) {
	store, err := NewFileBlobStore(context.Background(), t.TempDir(), "resumes")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, err = NewFileStorage(store, "").Put(context.Background(), " ", strings.NewReader("x"), 1, "")
	assert.Error(t, err)
}

func TestFileStorage_URL(t *testing.T) {
	store, err := NewFileBlobStore(context.Background(), t.TempDir(), "resumes")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	t.Run("escapes segments", func(t *testing.T) {
		fs := NewFileStorage(store, "https://cdn.example.com")
		assert.Equal(t, "https://cdn.example.com/u1/Ada%20Lovelace-Data%20Engineer.pdf", fs.URL("u1/Ada Lovelace-Data Engineer.pdf"))
	})

	t.Run("falls back to store url", func(t *testing.T) {
		fs := NewFileStorage(store, "")
		assert.True(t, strings.HasPrefix(fs.URL("a.pdf"), "file://"))
		assert.True(t, strings.HasSuffix(fs.URL("a.pdf"), "/resumes/a.pdf"))
	})
}

func TestMinioStore_Validation(t *testing.T) {
	_, err := NewMinioStore(config.MinioStorageConfig{}, "resumes")
	assert.Error(t, err)

	_, err = NewMinioStore(config.MinioStorageConfig{Endpoint: "localhost:9000"}, "resumes")
	assert.Error(t, err)

	_, err = NewMinioStore(config.MinioStorageConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"}, "")
	assert.Error(t, err)

	store, err := NewMinioStore(config.MinioStorageConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b", UseSSL: true}, "resumes")
	require.NoError(t, err)
	assert.Equal(t, "https://localhost:9000/resumes", store.BaseURL())
}

func TestNewObjectStore_UnknownProvider(t *testing.T) {
	_, err := newObjectStore(context.Background(), &config.StorageConfig{Provider: "ftp"})
	assert.ErrorContains(t, err, "unknown storage provider")
}

func TestProviderName(t *testing.T) {
	assert.Equal(t, "file", providerName(""))
	assert.Equal(t, "minio", providerName(" MinIO "))
	assert.Equal(t, "gcs", providerName("gcs"))
}

func TestServesLocally(t *testing.T) {
	assert.True(t, ServesLocally(&config.StorageConfig{}))
	assert.True(t, ServesLocally(&config.StorageConfig{Provider: " File "}))
	assert.False(t, ServesLocally(&config.StorageConfig{Provider: "minio"}))
	assert.False(t, ServesLocally(nil))
}

func TestLocalRoot(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "uploads", "resumes"), LocalRoot("", "resumes"))
	assert.Equal(t, filepath.Join("/srv", "resumes"), LocalRoot("/srv", "resumes"))
}
