package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/ecocollect/internal/flagx"
	"github.com/joho/godotenv"
)

const envPrefix = "ECOCOLLECT_"

// parseEnv loads a dotenv file (-e/-env, falling back to ./.env when it
// exists) and then overlays every ECOCOLLECT_* variable that is set.
// Variables already present in the process environment win over the file.
func parseEnv(cfg *Config, args []string) {
	if f := flagx.EnvFileFlag(args); f != "" {
		if err := godotenv.Load(f); err != nil {
			panic(err)
		}
	} else {
		_ = godotenv.Load()
	}

	setString(&cfg.ServerURL, "SERVER_URL")
	setString(&cfg.StorageBackend, "STORAGE_BACKEND")
	setString(&cfg.StorageNamespace, "STORAGE_NAMESPACE")
	setString(&cfg.StorageSecret, "STORAGE_SECRET")
	setString(&cfg.DatabaseDSN, "DATABASE_DSN")
	setString(&cfg.RedisAddr, "REDIS_ADDR")
	setString(&cfg.RedisPassword, "REDIS_PASSWORD")
	setString(&cfg.Platform, "PLATFORM")
	setString(&cfg.LogBackend, "LOG_BACKEND")
	setString(&cfg.LogLevel, "LOG_LEVEL")

	if v := os.Getenv(envPrefix + "OTP_RESEND_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.OTPResendInterval = d
	}
}

func setString(dst *string, name string) {
	if v, ok := os.LookupEnv(envPrefix + name); ok {
		*dst = v
	}
}
