// Package config loads runtime configuration for the ecocollect CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: an optional dotenv file (-e/-env, or ./.env) is loaded
//     first, then ECOCOLLECT_* variables are read (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL
//	-d string   SQLite database path
//	-s string   storage backend: sqlite, memory, redis
//	-p string   platform: web, android, ios
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "server_url": "http://127.0.0.1:8000",
//	  "database_dsn": "data/ecocollect.db",
//	  "storage_backend": "sqlite",
//	  "storage_namespace": "ecocollect",
//	  "storage_secret": "",
//	  "redis_addr": "127.0.0.1:6379",
//	  "redis_password": "",
//	  "platform": "android",
//	  "log_backend": "slog",
//	  "log_level": "info",
//	  "otp_resend_interval": "2m"
//	}
package config
