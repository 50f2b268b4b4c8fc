package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"file-relay/pkg/constants"
	"file-relay/pkg/logger"

	"github.com/joho/godotenv"
)

var ErrMissingAPIKey = errors.New("AUTH_API_KEY must be set")

type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Upload   UploadConfig
	Snapshot SnapshotConfig
	Log      logger.Config
	Drive    DriveConfig
}

type ServerConfig struct {
	Port      string
	Host      string
	Domain    string
	PublicDir string
	// upload requests per minute per client IP, 0 disables the limiter
	RateLimitPerMinute int
}

type AuthConfig struct {
	APIKey        string
	ProtectDelete bool
}

type UploadConfig struct {
	TempDir         string
	MaxFileSize     int64 // bytes
	Host            string
	HostTimeout     time.Duration
	FileIOExpires   string
	TempMaxAge      time.Duration
	CleanupSchedule string
}

type SnapshotConfig struct {
	Driver   string // file, redis, sql, none
	Path     string
	Interval time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisKey      string

	SQLDialect string // sqlite, postgres
	SQLDSN     string
}

type DriveConfig struct {
	Backend       string // mega, s3
	MegaEmail     string
	MegaPassword  string
	S3Bucket      string
	S3Region      string
	S3AccessKey   string
	S3SecretKey   string
	S3EndpointURL string
}

// LoadEnvFile reads a .env file into the process environment when present.
// Variables already set in the environment win.
func LoadEnvFile(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
		}
	}
}

func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:               getEnv("SERVER_PORT", "1134"),
			Host:               getEnv("SERVER_HOST", "0.0.0.0"),
			Domain:             getEnv("PUBLIC_DOMAIN", "localhost:1134"),
			PublicDir:          getEnv("PUBLIC_DIR", "public"),
			RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 30),
		},
		Auth: AuthConfig{
			APIKey:        getEnv("AUTH_API_KEY", ""),
			ProtectDelete: getEnvAsBool("AUTH_PROTECT_DELETE", true),
		},
		Upload: UploadConfig{
			TempDir:         getEnv("UPLOAD_TEMP_DIR", "temp"),
			MaxFileSize:     getEnvAsInt64("UPLOAD_MAX_FILE_SIZE", constants.MaxUploadSize),
			Host:            strings.ToLower(getEnv("UPLOAD_HOST", constants.HostCatbox)),
			HostTimeout:     getEnvAsDuration("UPLOAD_HOST_TIMEOUT", 10*time.Minute),
			FileIOExpires:   getEnv("FILEIO_EXPIRES", "1y"),
			TempMaxAge:      getEnvAsDuration("UPLOAD_TEMP_MAX_AGE", 24*time.Hour),
			CleanupSchedule: getEnv("UPLOAD_CLEANUP_SCHEDULE", "0 */5 * * * *"),
		},
		Snapshot: SnapshotConfig{
			Driver:        strings.ToLower(getEnv("SNAPSHOT_DRIVER", "file")),
			Path:          getEnv("SNAPSHOT_PATH", filepath.Join("data", "files.json")),
			Interval:      getEnvAsDuration("SNAPSHOT_INTERVAL", 60*time.Second),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
			RedisKey:      getEnv("REDIS_SNAPSHOT_KEY", "file-relay:files"),
			SQLDialect:    strings.ToLower(getEnv("SNAPSHOT_SQL_DIALECT", "sqlite")),
			SQLDSN:        getEnv("SNAPSHOT_SQL_DSN", filepath.Join("data", "files.db")),
		},
		Log: logger.Config{
			Level:      getEnv("LOG_LEVEL", "info"),
			Path:       getEnv("LOG_PATH", ""),
			MaxSizeMB:  getEnvAsInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
			MaxAgeDays: getEnvAsInt("LOG_MAX_AGE_DAYS", 7),
			Compress:   getEnvAsBool("LOG_COMPRESS", false),
		},
		Drive: DriveConfig{
			Backend:       strings.ToLower(getEnv("DRIVE_BACKEND", "mega")),
			MegaEmail:     os.Getenv("MEGA_EMAIL"),
			MegaPassword:  os.Getenv("MEGA_PASSWORD"),
			S3Bucket:      os.Getenv("S3_BUCKET"),
			S3Region:      getEnv("S3_REGION", "us-east-1"),
			S3AccessKey:   os.Getenv("S3_ACCESS_KEY_ID"),
			S3SecretKey:   os.Getenv("S3_SECRET_ACCESS_KEY"),
			S3EndpointURL: os.Getenv("S3_ENDPOINT_URL"),
		},
	}
}

// Validate checks what the HTTP server cannot run without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.APIKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// EnsureDirs creates the temp and snapshot directories.
func (c *Config) EnsureDirs() error {
	if err := os.MkdirAll(c.Upload.TempDir, 0o755); err != nil {
		return err
	}
	if c.Snapshot.Driver == "file" {
		if dir := filepath.Dir(c.Snapshot.Path); dir != "" {
			return os.MkdirAll(dir, 0o755)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	return int(getEnvAsInt64(key, int64(defaultValue)))
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvAsDuration accepts Go durations ("90s") or a bare number of seconds.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
