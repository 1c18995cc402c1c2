package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultWorkerPort         = 8081
	defaultMaxRequestBodySize = "16KB"
	defaultMaxUploadSize      = "5MiB"
	defaultBcryptCost         = 10
	defaultAccessTokenTTL     = time.Hour
	defaultRefreshTokenTTL    = 7 * 24 * time.Hour

	// EnvProduction is the env.env value that hides stack traces from error responses.
	EnvProduction = "production"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Worker serves the event push endpoint
	Worker struct {
		Port int `json:"port" yaml:"port"`
	} `json:"worker" yaml:"worker"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Cookies controls the attributes of the accessToken and refreshToken cookies
	Cookies *CookiesConfig `json:"cookies" yaml:"cookies"`

	// RateLimit throttles the unauthenticated auth endpoints per client IP
	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// Storage configuration for resume uploads
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MongoConfig defines the document database connection
type MongoConfig struct {
	URI            string        `json:"uri" yaml:"uri"`
	Database       string        `json:"database" yaml:"database"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
	MaxPoolSize    uint64        `json:"maxPoolSize" yaml:"maxPoolSize"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost      int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL  time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	RefreshTokenTTL time.Duration `json:"refreshTokenTTL" yaml:"refreshTokenTTL"`
}

// CookiesConfig holds one CookieConfig per issued token
type CookiesConfig struct {
	Access  CookieConfig `json:"access" yaml:"access"`
	Refresh CookieConfig `json:"refresh" yaml:"refresh"`
}

// CookieConfig mirrors the attributes of http.Cookie that vary per deployment
type CookieConfig struct {
	HTTPOnly bool          `json:"httpOnly" yaml:"httpOnly"`
	Secure   bool          `json:"secure" yaml:"secure"`
	SameSite string        `json:"sameSite" yaml:"sameSite"`
	MaxAge   time.Duration `json:"maxAge" yaml:"maxAge"`
}

// RateLimitConfig defines the token bucket applied to auth endpoints
type RateLimitConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled"`
	RPS     float64       `json:"rps" yaml:"rps"`
	Burst   int           `json:"burst" yaml:"burst"`
	TTL     time.Duration `json:"ttl" yaml:"ttl"`
}

// StorageConfig defines where uploaded resumes are written
type StorageConfig struct {
	// Provider type: "file", "minio" or "gcs"
	Provider string `json:"provider" yaml:"provider"`

	Bucket        string `json:"bucket" yaml:"bucket"`
	MaxUploadSize string `json:"maxUploadSize" yaml:"maxUploadSize"`

	// PublicBaseURL overrides the URL prefix returned for stored objects
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	File  FileStorageConfig  `json:"file" yaml:"file"`
	Minio MinioStorageConfig `json:"minio" yaml:"minio"`
	GCS   GCSStorageConfig   `json:"gcs" yaml:"gcs"`
}

// MaxUploadBytes parses MaxUploadSize into a byte count. "MiB"/"KiB" are
// binary units, "MB"/"KB" decimal ones.
func (s *StorageConfig) MaxUploadBytes() (int64, error) {
	size, err := bytes.Parse(s.MaxUploadSize)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid storage.maxUploadSize %q", s.MaxUploadSize)
	}
	if size <= 0 {
		return 0, errors.Errorf("storage.maxUploadSize must be positive, got %q", s.MaxUploadSize)
	}

	return size, nil
}

type FileStorageConfig struct {
	Dir string `json:"dir" yaml:"dir"`
}

type MinioStorageConfig struct {
	Endpoint  string `json:"endpoint" yaml:"endpoint"`
	AccessKey string `json:"accessKey" yaml:"accessKey"`
	SecretKey string `json:"secretKey" yaml:"secretKey"`
	UseSSL    bool   `json:"useSSL" yaml:"useSSL"`
}

type GCSStorageConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsFile string `json:"credentialsFile" yaml:"credentialsFile"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "rabbitmq". Empty disables publishing.
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	RabbitMQ RabbitMQConfig `json:"rabbitmq" yaml:"rabbitmq"`
}

type RabbitMQConfig struct {
	URL   string `json:"url" yaml:"url"`
	Queue string `json:"queue" yaml:"queue"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: MONGO_CONNECTTIMEOUT -> mongo.connectTimeout (not mongo.connecttimeout)
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	loadDotEnv()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env.Env, EnvProduction)
}

// loadDotEnv reads a local .env file into the process environment outside production.
// Variables that are already set win over the file.
func loadDotEnv() {
	if strings.EqualFold(os.Getenv("ENV_ENV"), EnvProduction) {
		return
	}
	_ = godotenv.Load()
}

func applyDefaults(cfg *Config) {
	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = defaultWorkerPort
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.AccessTokenTTL == 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Auth.RefreshTokenTTL == 0 {
		cfg.Auth.RefreshTokenTTL = defaultRefreshTokenTTL
	}

	if cfg.Cookies == nil {
		cfg.Cookies = DefaultCookies()
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if strings.TrimSpace(cfg.Storage.MaxUploadSize) == "" {
		cfg.Storage.MaxUploadSize = defaultMaxUploadSize
	}
}

// DefaultCookies returns the cookie attributes used when none are configured.
func DefaultCookies() *CookiesConfig {
	return &CookiesConfig{
		Access: CookieConfig{
			HTTPOnly: false,
			Secure:   true,
			SameSite: "Lax",
			MaxAge:   defaultAccessTokenTTL,
		},
		Refresh: CookieConfig{
			HTTPOnly: true,
			Secure:   true,
			SameSite: "Lax",
			MaxAge:   defaultRefreshTokenTTL,
		},
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
