package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"college-portal/internal/common/config"
	"college-portal/internal/common/logger"
)

// ==========================
// Shared behaviour
// ==========================

func backends(t *testing.T) map[string]Storage {
	t.Helper()

	fs, err := NewFileStorage(filepath.Join(t.TempDir(), "nested", "store.json"), 0)
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return map[string]Storage{
		"memory": NewMemoryStorage(0),
		"file":   fs,
		"redis":  NewRedisStorage(client, "portal:"),
	}
}

func TestStorage_GetSetRemove(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, found, err := s.GetItem(ctx, "college_application_drafts")
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, s.SetItem(ctx, "college_application_drafts", `{"a":1}`))
			v, found, err := s.GetItem(ctx, "college_application_drafts")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, `{"a":1}`, v)

			require.NoError(t, s.SetItem(ctx, "college_application_drafts", `{}`))
			v, _, _ = s.GetItem(ctx, "college_application_drafts")
			assert.Equal(t, `{}`, v)

			require.NoError(t, s.RemoveItem(ctx, "college_application_drafts"))
			require.NoError(t, s.RemoveItem(ctx, "college_application_drafts"))
			_, found, err = s.GetItem(ctx, "college_application_drafts")
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestStorage_KeysByPrefix(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.SetItem(ctx, "video_notes_video2", "[]"))
			require.NoError(t, s.SetItem(ctx, "video_notes_video1", "[]"))
			require.NoError(t, s.SetItem(ctx, "college_application_drafts", "{}"))

			keys, err := s.Keys(ctx, "video_notes_")
			require.NoError(t, err)
			assert.Equal(t, []string{"video_notes_video1", "video_notes_video2"}, keys)

			all, err := s.Keys(ctx, "")
			require.NoError(t, err)
			assert.Len(t, all, 3)
		})
	}
}

// ==========================
// Memory
// ==========================

func TestMemoryStorage_Quota(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage(10)

	require.NoError(t, s.SetItem(ctx, "k", "12345"))
	assert.ErrorIs(t, s.SetItem(ctx, "other", "123456"), ErrQuotaExceeded)
	// Overwriting an item only counts the new value.
	require.NoError(t, s.SetItem(ctx, "k", "123456789"))
}

func TestMemoryStorage_Closed(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage(0)
	require.NoError(t, s.Close())

	_, _, err := s.GetItem(ctx, "k")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, s.SetItem(ctx, "k", "v"), ErrClosed)
}

// ==========================
// File
// ==========================

func TestFileStorage_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	first, err := NewFileStorage(path, 0)
	require.NoError(t, err)
	require.NoError(t, first.SetItem(ctx, "k", "v"))

	second, err := NewFileStorage(path, 0)
	require.NoError(t, err)
	v, found, err := second.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", v)
}

func TestFileStorage_CorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	s, err := NewFileStorage(path, 0)
	require.NoError(t, err)

	_, _, err = s.GetItem(ctx, "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode storage file")
	assert.Error(t, s.SetItem(ctx, "k", "v"))
}

func TestFileStorage_Quota(t *testing.T) {
	s, err := NewFileStorage(filepath.Join(t.TempDir(), "store.json"), 4)
	require.NoError(t, err)
	assert.ErrorIs(t, s.SetItem(context.Background(), "key", "value"), ErrQuotaExceeded)
}

// ==========================
// Redis
// ==========================

func TestRedisStorage_UsesKeyPrefix(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	s := NewRedisStorage(client, "portal:")
	require.NoError(t, s.SetItem(ctx, "video_notes_video1", "[]"))

	assert.True(t, mr.Exists("portal:video_notes_video1"))
	assert.False(t, mr.Exists("video_notes_video1"))
}

func TestRedisStorage_ServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	s := NewRedisStorage(client, "")
	_, _, err := s.GetItem(context.Background(), "k")
	assert.Error(t, err)
}

// ==========================
// Open
// ==========================

func TestOpen_LocalDrivers(t *testing.T) {
	ctx := context.Background()
	log := logger.NewTestLogger(t)

	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.StorageDriverMemory}}
	b, err := Open(ctx, cfg, log)
	require.NoError(t, err)
	assert.Equal(t, "memory", b.Driver())
	assert.NoError(t, b.Ping(ctx))
	assert.NoError(t, b.Close())

	cfg = &config.Config{Storage: config.StorageConfig{
		Driver:   config.StorageDriverFile,
		FilePath: filepath.Join(t.TempDir(), "data", "local-storage.json"),
	}}
	b, err = Open(ctx, cfg, log)
	require.NoError(t, err)
	require.NoError(t, b.SetItem(ctx, "k", "v"))
	assert.FileExists(t, cfg.Storage.FilePath)
}

func TestOpen_Redis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	cfg := &config.Config{
		Storage:  config.StorageConfig{Driver: config.StorageDriverRedis, KeyPrefix: "cp:"},
		Database: config.DatabaseConfig{Redis: config.RedisConfig{Address: mr.Addr()}},
	}
	b, err := Open(ctx, cfg, logger.NewTestLogger(t))
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, b.Ping(ctx))
	require.NoError(t, b.SetItem(ctx, "k", "v"))
	assert.True(t, mr.Exists("cp:k"))
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "indexeddb"}}
	_, err := Open(context.Background(), cfg, logger.NewNoOpLogger())
	assert.Error(t, err)
}
