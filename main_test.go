package main

import (
	"strings"
	"testing"

	"github.com/ProsperityMC/bubblesort/internal/bubble"
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func parseArgs(t *testing.T, args ...string) (*cli, *kong.Context, error) {
	t.Helper()
	var flags cli
	parser, err := newParser(&flags, kong.Exit(func(int) {
		t.Fatal("parser tried to exit")
	}))
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	return &flags, ctx, err
}

func TestCLI(t *testing.T) {
	t.Run("run with count", func(t *testing.T) {
		flags, ctx, err := parseArgs(t, "10", "--shuffle", "uniform", "--seed", "3")
		require.NoError(t, err)
		require.Equal(t, "run <items>", ctx.Command())
		require.Equal(t, "10", flags.Run.Items)
		require.Equal(t, bubble.ShuffleUniform, flags.Run.Shuffle)
		require.NotNil(t, flags.Run.Seed)
		require.Equal(t, int64(3), *flags.Run.Seed)
	})

	t.Run("run without count", func(t *testing.T) {
		flags, ctx, err := parseArgs(t, "--debug")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(ctx.Command(), "run"))
		require.Empty(t, flags.Run.Items)
		require.Nil(t, flags.Run.Seed)
		require.Empty(t, flags.Run.Shuffle)
		require.True(t, flags.Run.Debug)
	})

	t.Run("unknown shuffle", func(t *testing.T) {
		_, _, err := parseArgs(t, "5", "--shuffle", "bogus")
		require.ErrorContains(t, err, "unknown shuffle mode")
	})

	t.Run("bad seed", func(t *testing.T) {
		_, _, err := parseArgs(t, "5", "--seed", "x")
		require.Error(t, err)
	})

	t.Run("serve", func(t *testing.T) {
		flags, ctx, err := parseArgs(t, "serve", "--listen", ":9999")
		require.NoError(t, err)
		require.Equal(t, "serve", ctx.Command())
		require.Equal(t, ":9999", flags.Serve.Listen)
	})
}

func TestSetup(t *testing.T) {
	path := writeConfig(t, "logLevel: warn\nseed: 8\n")

	t.Run("config level", func(t *testing.T) {
		flags, _, err := parseArgs(t, "--conf", path, "3")
		require.NoError(t, err)
		conf, logger, err := setup(flags)
		require.NoError(t, err)
		require.Equal(t, "warn", conf.LogLevel)
		require.Equal(t, log.WarnLevel, logger.GetLevel())
		require.Equal(t, int64(8), *conf.Seed)
	})

	t.Run("flag overrides config", func(t *testing.T) {
		flags, _, err := parseArgs(t, "--conf", path, "--log-level", "debug", "3")
		require.NoError(t, err)
		conf, logger, err := setup(flags)
		require.NoError(t, err)
		require.Equal(t, "debug", conf.LogLevel)
		require.Equal(t, log.DebugLevel, logger.GetLevel())
	})

	t.Run("bad level", func(t *testing.T) {
		flags, _, err := parseArgs(t, "--conf", path, "--log-level", "loud", "3")
		require.NoError(t, err)
		_, _, err = setup(flags)
		require.Error(t, err)
	})
}
