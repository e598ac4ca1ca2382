package storage

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/dmitrijs2005/ecocollect/internal/common"
	"github.com/dmitrijs2005/ecocollect/internal/cryptox"
)

// SaltKey holds the per-store argon2 salt. It is written in clear.
const SaltKey = "__seal_salt"

const saltSize = 16

// Sealed encrypts values with AES-GCM before they reach the inner store.
// Keys stay in clear so Remove and Get need no decryption.
type Sealed struct {
	inner Storage
	key   []byte
}

// NewSealed loads the store salt, creating it on first use, and derives the
// sealing key from secret.
func NewSealed(ctx context.Context, inner Storage, secret []byte) (*Sealed, error) {
	encoded, ok, err := inner.Get(ctx, SaltKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load seal salt: %w", err)
	}

	var salt []byte
	if ok {
		salt, err = base64.StdEncoding.DecodeString(encoded)
		if err != nil || len(salt) != saltSize {
			return nil, fmt.Errorf("seal salt: %w", common.ErrCorruptedValue)
		}
	} else {
		salt = common.GenerateRandByteArray(saltSize)
		if err := inner.Set(ctx, SaltKey, base64.StdEncoding.EncodeToString(salt)); err != nil {
			return nil, fmt.Errorf("failed to store seal salt: %w", err)
		}
	}

	return &Sealed{inner: inner, key: cryptox.DeriveKey(secret, salt)}, nil
}

// reserved guards the clear-text salt; sealing over it would make every
// other value unreadable.
func reserved(key string) error {
	if key == SaltKey {
		return fmt.Errorf("%s: %w", key, common.ErrReservedKey)
	}
	return nil
}

func (s *Sealed) Get(ctx context.Context, key string) (string, bool, error) {
	if err := reserved(key); err != nil {
		return "", false, err
	}
	encoded, ok, err := s.inner.Get(ctx, key)
	if err != nil || !ok {
		return "", ok, err
	}

	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", key, common.ErrCorruptedValue)
	}
	plain, err := cryptox.Open(sealed, s.key)
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", key, common.ErrCorruptedValue)
	}
	return string(plain), true, nil
}

func (s *Sealed) Set(ctx context.Context, key, value string) error {
	if err := reserved(key); err != nil {
		return err
	}
	sealed, err := cryptox.Seal([]byte(value), s.key)
	if err != nil {
		return err
	}
	return s.inner.Set(ctx, key, base64.StdEncoding.EncodeToString(sealed))
}

func (s *Sealed) Remove(ctx context.Context, key string) error {
	if err := reserved(key); err != nil {
		return err
	}
	return s.inner.Remove(ctx, key)
}

func (s *Sealed) Close() error {
	common.WipeByteArray(s.key)
	return s.inner.Close()
}
