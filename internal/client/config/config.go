package config

import (
	"os"
	"time"
)

const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Config holds runtime settings for the ecocollect CLI.
type Config struct {
	// ServerURL is the backend base URL, e.g. http://127.0.0.1:8000.
	ServerURL string

	// StorageBackend selects where the credential lives: sqlite, memory or redis.
	StorageBackend string
	// StorageNamespace prefixes keys in shared backends (memory, redis).
	StorageNamespace string
	// StorageSecret, when set, seals stored values with AES-GCM.
	StorageSecret string
	DatabaseDSN   string
	RedisAddr     string
	RedisPassword string

	// Platform picks the photo attachment strategy: web, android or ios.
	Platform string

	LogBackend string
	LogLevel   string

	// OTPResendInterval is the minimum delay between two OTP requests.
	OTPResendInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8000"
	c.StorageBackend = StorageSQLite
	c.StorageNamespace = "ecocollect"
	c.DatabaseDSN = "data/ecocollect.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.Platform = "android"
	c.LogBackend = "slog"
	c.LogLevel = "info"
	c.OTPResendInterval = 2 * time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays the
// environment, JSON (if present) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	args := os.Args[1:]

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, args)
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
