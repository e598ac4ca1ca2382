package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/ecocollect/internal/flagx"
	"github.com/dmitrijs2005/ecocollect/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "empty" so a partial file only
// overrides what it names.
type JsonConfig struct {
	ServerURL         *string         `json:"server_url"`
	DatabaseDSN       *string         `json:"database_dsn"`
	StorageBackend    *string         `json:"storage_backend"`
	StorageNamespace  *string         `json:"storage_namespace"`
	StorageSecret     *string         `json:"storage_secret"`
	RedisAddr         *string         `json:"redis_addr"`
	RedisPassword     *string         `json:"redis_password"`
	Platform          *string         `json:"platform"`
	LogBackend        *string         `json:"log_backend"`
	LogLevel          *string         `json:"log_level"`
	OTPResendInterval *timex.Duration `json:"otp_resend_interval"`
}

// parseJson overlays cfg with values loaded from the JSON file named by
// -c/-config. Without the flag nothing happens. Read or decode errors
// panic; the caller is main, where a broken config file is fatal anyway.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.ServerURL, jc.ServerURL)
	overlay(&cfg.DatabaseDSN, jc.DatabaseDSN)
	overlay(&cfg.StorageBackend, jc.StorageBackend)
	overlay(&cfg.StorageNamespace, jc.StorageNamespace)
	overlay(&cfg.StorageSecret, jc.StorageSecret)
	overlay(&cfg.RedisAddr, jc.RedisAddr)
	overlay(&cfg.RedisPassword, jc.RedisPassword)
	overlay(&cfg.Platform, jc.Platform)
	overlay(&cfg.LogBackend, jc.LogBackend)
	overlay(&cfg.LogLevel, jc.LogLevel)

	if jc.OTPResendInterval != nil {
		cfg.OTPResendInterval = jc.OTPResendInterval.Duration
	}
}

func overlay(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
