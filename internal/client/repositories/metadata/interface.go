// Package metadata is the SQLite key/value repository behind the local
// storage backend. Every repository is bound to one namespace so several
// profiles can share a database file.
package metadata

import "context"

type Repository interface {
	// Get returns ("", false, nil) when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
