package tokenstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"homevest-listings/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "tokens.json")
	store := NewFileStore(path)

	_, err := store.Get(ctx, "auth_token")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "auth_token", "abc"))
	require.NoError(t, store.Set(ctx, "refresh", "def"))

	got, err := NewFileStore(path).Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, store.Delete(ctx, "auth_token"))
	require.NoError(t, store.Delete(ctx, "auth_token"))
	_, err = store.Get(ctx, "auth_token")
	require.ErrorIs(t, err, ErrNotFound)

	got, err = store.Get(ctx, "refresh")
	require.NoError(t, err)
	assert.Equal(t, "def", got)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path).Get(context.Background(), "auth_token")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(context.Background(), config.TokenStoreConfig{Driver: "etcd"})
	require.Error(t, err)

	store, err := New(context.Background(), config.TokenStoreConfig{Driver: "file", Path: filepath.Join(t.TempDir(), "t.json")})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)
}

func TestNewRedisStore_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedisStore(ctx, config.RedisConfig{Host: "127.0.0.1", Port: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to Redis")
}
