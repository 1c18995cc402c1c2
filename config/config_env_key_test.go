package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"connectTimeout": "10s",
			"maxPoolSize":    50,
		},
		"pubsub": map[string]any{
			"topicId": "",
			"rabbitmq": map[string]any{
				"url": "",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"storage": map[string]any{
			"maxUploadSize": "",
			"publicBaseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_CONNECTTIMEOUT", want: "mongo.connectTimeout"},
		{envKey: "MONGO_MAXPOOLSIZE", want: "mongo.maxPoolSize"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "PUBSUB_RABBITMQ_URL", want: "pubsub.rabbitmq.url"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "STORAGE_PUBLICBASEURL", want: "storage.publicBaseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.False(t, cfg.Cookies.Access.HTTPOnly)
	assert.True(t, cfg.Cookies.Refresh.HTTPOnly)
	assert.Equal(t, defaultMaxUploadSize, cfg.Storage.MaxUploadSize)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth: &AuthConfig{BcryptCost: 12, AccessTokenTTL: time.Minute},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	applyDefaults(cfg)

	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Minute, cfg.Auth.AccessTokenTTL)
}

func TestIsProduction(t *testing.T) {
	cfg := &Config{}
	cfg.Env.Env = "Production"
	assert.True(t, cfg.IsProduction())

	cfg.Env.Env = "development"
	assert.False(t, cfg.IsProduction())
}

func TestStorageConfig_MaxUploadBytes(t *testing.T) {
	cfg := &StorageConfig{MaxUploadSize: defaultMaxUploadSize}
	size, err := cfg.MaxUploadBytes()
	require.NoError(t, err)
	assert.Equal(t, int64(5*1024*1024), size)

	cfg.MaxUploadSize = "5MB"
	size, err = cfg.MaxUploadBytes()
	require.NoError(t, err)
	assert.Equal(t, int64(5_000_000), size)

	cfg.MaxUploadSize = "lots"
	_, err = cfg.MaxUploadBytes()
	assert.Error(t, err)

	cfg.MaxUploadSize = "0"
	_, err = cfg.MaxUploadBytes()
	assert.Error(t, err)
}
