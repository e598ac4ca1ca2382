// Package common defines shared constants and sentinel errors used across
// the ecocollect client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrorNotFound = errors.New("not found")

	// Local data errors (sealed storage).
	ErrCorruptedValue = errors.New("corrupted stored value")
	ErrReservedKey    = errors.New("reserved storage key")

	// Configuration errors.
	ErrUnknownBackend  = errors.New("unknown storage backend")
	ErrUnknownPlatform = errors.New("unknown platform")
)
