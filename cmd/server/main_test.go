package main

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordduel/internal/factory"
	"github.com/mcoot/wordduel/internal/testutil"
)

func TestFactoryConfigDefaults(t *testing.T) {
	t.Setenv("LEXICON_PATH", "")
	t.Setenv("STORAGE_TYPE", "")

	cfg, err := factoryConfig(testutil.NopLogger())
	require.NoError(t, err)

	assert.Equal(t, "data/words.txt", cfg.LexiconPath)
	assert.Empty(t, cfg.StorageType)
	assert.Nil(t, cfg.RedisConfig)
	assert.Nil(t, cfg.SQLiteConfig)
}

func TestFactoryConfigRedis(t *testing.T) {
	t.Setenv("STORAGE_TYPE", factory.StorageTypeRedis)
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("MATCH_TTL", "48h")

	cfg, err := factoryConfig(testutil.NopLogger())
	require.NoError(t, err)

	require.NotNil(t, cfg.RedisConfig)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisConfig.URL)
	assert.Equal(t, 48*time.Hour, cfg.RedisConfig.MatchTTL)
}

func TestFactoryConfigRedisErrors(t *testing.T) {
	t.Setenv("STORAGE_TYPE", factory.StorageTypeRedis)
	t.Setenv("REDIS_URL", "")
	_, err := factoryConfig(testutil.NopLogger())
	assert.Error(t, err)

	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("MATCH_TTL", "soon")
	_, err = factoryConfig(testutil.NopLogger())
	assert.Error(t, err)
}

func TestFactoryConfigSQLite(t *testing.T) {
	t.Setenv("STORAGE_TYPE", factory.StorageTypeSQLite)
	t.Setenv("SQLITE_PATH", "/tmp/wordduel-test.db")

	cfg, err := factoryConfig(testutil.NopLogger())
	require.NoError(t, err)

	require.NotNil(t, cfg.SQLiteConfig)
	assert.Equal(t, "/tmp/wordduel-test.db", cfg.SQLiteConfig.Path)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("loud"))
}

func TestRunReturnsExitCodeOnBadConfig(t *testing.T) {
	t.Setenv("STORAGE_TYPE", factory.StorageTypeRedis)
	t.Setenv("REDIS_URL", "")

	var logs bytes.Buffer
	assert.Equal(t, 1, run(&logs))
	assert.Contains(t, logs.String(), "invalid configuration")
}

func TestRunClosesAppOnStartupFailure(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STORAGE_TYPE", factory.StorageTypeSQLite)
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "wordduel.db"))
	t.Setenv("LEXICON_PATH", filepath.Join(dir, "missing.txt"))
	t.Setenv("PORT", "not-a-port")

	var logs bytes.Buffer
	assert.Equal(t, 1, run(&logs))
	assert.Contains(t, logs.String(), "invalid PORT")
	assert.NotContains(t, logs.String(), "failed to close application")
}
