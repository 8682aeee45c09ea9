package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Provider exposes configuration values to the rest of the application.
// Packages depend on this interface rather than on *Config so tests can
// supply their own values.
type Provider interface {
	GetDBURL() string
	GetDBNs() string
	GetDBDb() string
	GetDBUser() string
	GetDBPass() string
	GetDBQueryTimeout() time.Duration
	GetDBExecuteTimeout() time.Duration

	GetServerAddr() string
	GetSessionSecret() string

	GetStorageBackend() string
	GetStorageDir() string
	GetAvatarMaxBytes() int64

	GetRedisAddr() string
	GetRedisPassword() string
	GetRedisDB() int
	GetCacheTTL() time.Duration

	GetViewTTL() time.Duration
	GetUploadRateLimit() float64
}

// Config holds all configuration for the application.
type Config struct {
	DBUrl            string
	DBNs             string
	DBDb             string
	DBUser           string
	DBPass           string
	DBQueryTimeout   time.Duration
	DBExecuteTimeout time.Duration

	ServerAddr    string
	SessionSecret string

	StorageBackend string
	StorageDir     string
	AvatarMaxBytes int64

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	ViewTTL         time.Duration
	UploadRateLimit float64
}

var _ Provider = (*Config)(nil)

// New loads configuration from environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := Load()
	if cfg.DBUrl == "" || cfg.DBNs == "" || cfg.DBDb == "" {
		log.Fatal("Required environment variables SURREAL_URL, SURREAL_NS, or SURREAL_DB are not set.")
	}
	return cfg
}

// Load reads the environment without loading .env or enforcing required keys.
func Load() *Config {
	return &Config{
		DBUrl:            os.Getenv("SURREAL_URL"),
		DBUser:           os.Getenv("SURREAL_USER"),
		DBPass:           os.Getenv("SURREAL_PASS"),
		DBNs:             os.Getenv("SURREAL_NS"),
		DBDb:             os.Getenv("SURREAL_DB"),
		DBQueryTimeout:   getDuration("DB_QUERY_TIMEOUT", 5*time.Second),
		DBExecuteTimeout: getDuration("DB_EXECUTE_TIMEOUT", 10*time.Second),

		ServerAddr:    getString("SERVER_ADDR", ":8080"),
		SessionSecret: getString("SESSION_SECRET", "change-me-in-production"),

		StorageBackend: getString("STORAGE_BACKEND", "disk"),
		StorageDir:     getString("STORAGE_DIR", "storage"),
		AvatarMaxBytes: getInt64("AVATAR_MAX_BYTES", 5<<20),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       int(getInt64("REDIS_DB", 0)),
		CacheTTL:      getDuration("CACHE_TTL", 10*time.Minute),

		ViewTTL:         getDuration("VIEW_TTL", time.Hour),
		UploadRateLimit: getFloat("UPLOAD_RATE_LIMIT", 10),
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid duration for %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func getInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("invalid integer for %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid number for %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return f
}

func (c *Config) GetDBURL() string { return c.DBUrl }
func (c *Config) GetDBNs() string { return c.DBNs }
func (c *Config) GetDBDb() string { return c.DBDb }
func (c *Config) GetDBUser() string { return c.DBUser }
func (c *Config) GetDBPass() string { return c.DBPass }
func (c *Config) GetDBQueryTimeout() time.Duration { return c.DBQueryTimeout }
func (c *Config) GetDBExecuteTimeout() time.Duration { return c.DBExecuteTimeout }
func (c *Config) GetServerAddr() string { return c.ServerAddr }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetStorageBackend() string { return c.StorageBackend }
func (c *Config) GetStorageDir() string { return c.StorageDir }
func (c *Config) GetAvatarMaxBytes() int64 { return c.AvatarMaxBytes }
func (c *Config) GetRedisAddr() string { return c.RedisAddr }
func (c *Config) GetRedisPassword() string { return c.RedisPassword }
func (c *Config) GetRedisDB() int { return c.RedisDB }
func (c *Config) GetCacheTTL() time.Duration { return c.CacheTTL }
func (c *Config) GetViewTTL() time.Duration { return c.ViewTTL }
func (c *Config) GetUploadRateLimit() float64 { return c.UploadRateLimit }
