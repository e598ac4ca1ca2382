// Package storage is the key/value adapter every other component uses to
// persist client state. The backend is chosen once at startup; callers only
// ever see the Storage interface.
package storage

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/ecocollect/internal/client/config"
	"github.com/dmitrijs2005/ecocollect/internal/common"
	"github.com/dmitrijs2005/ecocollect/internal/logging"
)

// Storage is an asynchronous-looking key/value store.
type Storage interface {
	// Get returns ("", false, nil) for a missing key.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set overwrites unconditionally.
	Set(ctx context.Context, key, value string) error
	// Remove is idempotent.
	Remove(ctx context.Context, key string) error
	Close() error
}

// New builds the backend selected by cfg.StorageBackend and wraps it in a
// Sealed store when cfg.StorageSecret is set.
func New(ctx context.Context, cfg *config.Config, log logging.Logger) (Storage, error) {
	var (
		s   Storage
		err error
	)

	switch cfg.StorageBackend {
	case config.StorageMemory:
		s = NewMemory(cfg.StorageNamespace)
	case config.StorageSQLite, "":
		s, err = OpenSQLite(ctx, cfg.DatabaseDSN, cfg.StorageNamespace)
	case config.StorageRedis:
		s, err = OpenRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.StorageNamespace)
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownBackend, cfg.StorageBackend)
	}
	if err != nil {
		return nil, err
	}

	log.Debug(ctx, "storage opened", "backend", cfg.StorageBackend, "namespace", cfg.StorageNamespace)

	if cfg.StorageSecret == "" {
		return s, nil
	}

	sealed, err := NewSealed(ctx, s, []byte(cfg.StorageSecret))
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	return sealed, nil
}
