package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/ecocollect/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   backend base URL
//	-d string   SQLite database path
//	-s string   storage backend
//	-p string   platform
//	-l string   log level
//
// args is filtered with flagx.FilterArgs first so subcommand names and
// flags owned by other loaders do not interfere.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-s", "-p", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "backend base URL")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "SQLite database path")
	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "storage backend: sqlite, memory, redis")
	fs.StringVar(&cfg.Platform, "p", cfg.Platform, "platform: web, android, ios")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
