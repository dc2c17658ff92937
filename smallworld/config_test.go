package smallworld_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smallworld/smallworld"
)

func TestDefaultConfig(t *testing.T) {
	cfg := smallworld.DefaultConfig()
	assert.Equal(t, 60, cfg.Nodes)
	assert.Equal(t, 2, cfg.Hops)
	assert.InDelta(t, 0.059, cfg.Fraction, 1e-12)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Equal(t, 0, cfg.Source)
	assert.Equal(t, smallworld.OppositeTarget, cfg.Target)
	assert.Equal(t, 30, cfg.ResolvedTarget())
	require.NoError(t, cfg.Validate())
}

func TestConfig_ResolvedTarget(t *testing.T) {
	cfg := smallworld.DefaultConfig()
	cfg.Nodes, cfg.Source = 11, 7
	assert.Equal(t, 1, cfg.ResolvedTarget(), "(7 + 11/2) mod 11")

	cfg.Target = 4
	assert.Equal(t, 4, cfg.ResolvedTarget())
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*smallworld.Config)
	}{
		{"too few nodes", func(c *smallworld.Config) { c.Nodes = 2 }},
		{"zero hops", func(c *smallworld.Config) { c.Hops = 0 }},
		{"negative fraction", func(c *smallworld.Config) { c.Fraction = -0.1 }},
		{"fraction above one", func(c *smallworld.Config) { c.Fraction = 1.01 }},
		{"NaN fraction", func(c *smallworld.Config) { c.Fraction = math.NaN() }},
		{"source out of range", func(c *smallworld.Config) { c.Source = 60 }},
		{"negative source", func(c *smallworld.Config) { c.Source = -1 }},
		{"target out of range", func(c *smallworld.Config) { c.Target = 60 }},
		{"negative target", func(c *smallworld.Config) { c.Target = -2 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := smallworld.DefaultConfig()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), smallworld.ErrInvalidConfig)
		})
	}
}

func TestParseConfig(t *testing.T) {
	t.Run("empty input keeps defaults", func(t *testing.T) {
		cfg, err := smallworld.ParseConfig([]byte("  \n"))
		require.NoError(t, err)
		assert.Equal(t, smallworld.DefaultConfig(), cfg)
	})

	t.Run("partial override", func(t *testing.T) {
		cfg, err := smallworld.ParseConfig([]byte("nodes: 100\nseed: 7\nfraction: 0.2\n"))
		require.NoError(t, err)
		want := smallworld.DefaultConfig()
		want.Nodes, want.Seed, want.Fraction = 100, 7, 0.2
		assert.Equal(t, want, cfg)
		assert.Equal(t, 50, cfg.ResolvedTarget())
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := smallworld.ParseConfig([]byte("nodes: 10\nrewire: 0.3\n"))
		require.ErrorIs(t, err, smallworld.ErrInvalidConfig)
	})

	t.Run("out of range value", func(t *testing.T) {
		_, err := smallworld.ParseConfig([]byte("fraction: 2\n"))
		require.ErrorIs(t, err, smallworld.ErrInvalidConfig)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := smallworld.ParseConfig([]byte("nodes: [1, 2\n"))
		require.ErrorIs(t, err, smallworld.ErrInvalidConfig)
	})
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ring.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nodes: 24\nhops: 3\ntarget: 5\n"), 0o600))

	cfg, err := smallworld.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.Nodes)
	assert.Equal(t, 3, cfg.Hops)
	assert.Equal(t, 5, cfg.ResolvedTarget())

	_, err = smallworld.LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
