package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/ecocollect/internal/common"
)

func TestSealed_ValuesAreNotStoredInClear(t *testing.T) {
	ctx := context.Background()
	inner := NewMemory("t")
	s, err := NewSealed(ctx, inner, []byte("pw"))
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, common.CredentialKey, "tok-1"))

	raw, ok, err := inner.Get(ctx, common.CredentialKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotContains(t, raw, "tok-1")

	_, ok, err = inner.Get(ctx, SaltKey)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSealed_ReopenWithSameSecret(t *testing.T) {
	ctx := context.Background()
	inner := NewMemory("t")

	s1, err := NewSealed(ctx, inner, []byte("pw"))
	require.NoError(t, err)
	require.NoError(t, s1.Set(ctx, "k", "v"))

	s2, err := NewSealed(ctx, inner, []byte("pw"))
	require.NoError(t, err)
	got, ok, err := s2.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestSealed_WrongSecretIsAnError(t *testing.T) {
	ctx := context.Background()
	inner := NewMemory("t")

	s1, err := NewSealed(ctx, inner, []byte("pw"))
	require.NoError(t, err)
	require.NoError(t, s1.Set(ctx, "k", "v"))

	s2, err := NewSealed(ctx, inner, []byte("other"))
	require.NoError(t, err)
	_, ok, err := s2.Get(ctx, "k")
	require.ErrorIs(t, err, common.ErrCorruptedValue)
	assert.False(t, ok)
}

func TestSealed_GarbageValue(t *testing.T) {
	ctx := context.Background()
	inner := NewMemory("t")
	s, err := NewSealed(ctx, inner, []byte("pw"))
	require.NoError(t, err)

	require.NoError(t, inner.Set(ctx, "k", "%%% not base64"))
	_, _, err = s.Get(ctx, "k")
	require.ErrorIs(t, err, common.ErrCorruptedValue)
}

func TestSealed_CorruptedSalt(t *testing.T) {
	ctx := context.Background()
	inner := NewMemory("t")
	require.NoError(t, inner.Set(ctx, SaltKey, "c2hvcnQ="))

	_, err := NewSealed(ctx, inner, []byte("pw"))
	require.ErrorIs(t, err, common.ErrCorruptedValue)
}

func TestSealed_SaltKeyIsReserved(t *testing.T) {
	ctx := context.Background()
	inner := NewMemory("t")
	s, err := NewSealed(ctx, inner, []byte("pw"))
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, common.CredentialKey, "tok-1"))

	salt, _, err := inner.Get(ctx, SaltKey)
	require.NoError(t, err)

	assert.ErrorIs(t, s.Set(ctx, SaltKey, "overwrite"), common.ErrReservedKey)
	assert.ErrorIs(t, s.Remove(ctx, SaltKey), common.ErrReservedKey)
	_, _, err = s.Get(ctx, SaltKey)
	assert.ErrorIs(t, err, common.ErrReservedKey)

	after, ok, err := inner.Get(ctx, SaltKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, salt, after)

	v, ok, err := s.Get(ctx, common.CredentialKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-1", v)
}
