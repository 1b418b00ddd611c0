package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ProsperityMC/bubblesort/internal/bubble"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadConfig(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		conf, err := loadConfig(writeConfig(t, `shuffle: uniform
seed: 42
debug: true
server:
  listen: ":9000"
  cacheTtl: 30s
`))
		require.NoError(t, err)
		require.Equal(t, bubble.ShuffleUniform, conf.Shuffle)
		require.NotNil(t, conf.Seed)
		require.Equal(t, int64(42), *conf.Seed)
		require.True(t, conf.Debug)
		require.Equal(t, ":9000", conf.Server.Listen)
		require.Equal(t, 30*time.Second, conf.Server.CacheTtl)
		// unset keys keep their defaults
		require.Equal(t, DefaultConfig().MaxItems, conf.MaxItems)
		require.Equal(t, DefaultConfig().Server.MaxItems, conf.Server.MaxItems)
	})

	t.Run("empty file", func(t *testing.T) {
		conf, err := loadConfig(writeConfig(t, ""))
		require.NoError(t, err)
		require.Equal(t, DefaultConfig(), conf)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad shuffle", func(t *testing.T) {
		_, err := loadConfig(writeConfig(t, "shuffle: bogo\n"))
		require.ErrorIs(t, err, bubble.ErrUnknownShuffle)
	})

	t.Run("non-positive limits", func(t *testing.T) {
		_, err := loadConfig(writeConfig(t, "maxItems: 0\n"))
		require.ErrorIs(t, err, bubble.ErrInvalidSize)

		_, err = loadConfig(writeConfig(t, "server:\n  maxItems: -5\n"))
		require.ErrorIs(t, err, bubble.ErrInvalidSize)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := loadConfig(writeConfig(t, "maxItems: [1\n"))
		require.Error(t, err)
	})
}
