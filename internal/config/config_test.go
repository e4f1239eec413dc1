package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/gils/internal/config"
	"github.com/katalvlaran/gils/rvnd"
	"github.com/katalvlaran/gils/tour"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every GILS_* key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		config.EnvInstance, config.EnvVariant, config.EnvSeed, config.EnvRestarts,
		config.EnvIterations, config.EnvTimeLimit, config.EnvConstruction,
		config.EnvRandomStart, config.EnvStartVertex, config.EnvNeighborhoods,
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := config.FromEnv()
	require.NoError(t, err)
	require.Equal(t, config.VariantTSP, c.Variant)
	require.Equal(t, 10, c.Restarts)
	require.Equal(t, "greedy", c.Construction)

	opts, err := c.SearchOptions()
	require.NoError(t, err)
	require.Equal(t, rvnd.Default(), opts.Neighborhoods)
	require.Equal(t, tour.ConstructGreedy, opts.Construction)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvVariant, "MLP")
	t.Setenv(config.EnvSeed, "42")
	t.Setenv(config.EnvRestarts, "3")
	t.Setenv(config.EnvIterations, "25")
	t.Setenv(config.EnvTimeLimit, "1.5s")
	t.Setenv(config.EnvConstruction, "insertion")
	t.Setenv(config.EnvRandomStart, "true")
	t.Setenv(config.EnvNeighborhoods, "swap,revert")

	c, err := config.FromEnv()
	require.NoError(t, err)
	require.Equal(t, config.VariantMLP, c.Variant)

	opts, err := c.SearchOptions()
	require.NoError(t, err)
	require.Equal(t, int64(42), opts.Seed)
	require.Equal(t, 3, opts.MaxRestarts)
	require.Equal(t, 25, opts.MaxIterations)
	require.Equal(t, 1500*time.Millisecond, opts.TimeLimit)
	require.Equal(t, tour.ConstructInsertion, opts.Construction)
	require.True(t, opts.RandomStart)
	require.Equal(t, []rvnd.Neighborhood{rvnd.Swap, rvnd.Revert}, opts.Neighborhoods)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{config.EnvSeed, "abc"},
		{config.EnvRestarts, "many"},
		{config.EnvTimeLimit, "soon"},
		{config.EnvRandomStart, "maybe"},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)
			c, err := config.FromEnv()
			require.ErrorIs(t, err, config.ErrInvalid)
			require.Zero(t, c)
		})
	}
}

func TestFromEnv_VariantCheckedByValidate(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvVariant, "vrp")

	c, err := config.FromEnv()
	require.NoError(t, err)
	require.ErrorIs(t, c.Validate(), config.ErrInvalid)

	c.Variant = "MLP"
	require.NoError(t, c.Validate())
}

func TestSearchOptions_Invalid(t *testing.T) {
	clearEnv(t)
	c, err := config.FromEnv()
	require.NoError(t, err)

	bad := c
	bad.Construction = "random"
	_, err = bad.SearchOptions()
	require.ErrorIs(t, err, config.ErrInvalid)

	bad = c
	bad.Neighborhoods = "swap,3-opt"
	_, err = bad.SearchOptions()
	require.ErrorIs(t, err, config.ErrInvalid)

	bad = c
	bad.Restarts = 0
	_, err = bad.SearchOptions()
	require.ErrorIs(t, err, config.ErrInvalid)
	require.ErrorIs(t, err, tour.ErrInvalidInput)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(config.EnvInstance)
	os.Unsetenv(config.EnvRestarts)

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("GILS_INSTANCE=data/berlin52.tsp\nGILS_RESTARTS=4\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv(config.EnvInstance)
		os.Unsetenv(config.EnvRestarts)
	})

	c, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "data/berlin52.tsp", c.Instance)
	require.Equal(t, 4, c.Restarts)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	clearEnv(t)

	c, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	require.Equal(t, config.VariantTSP, c.Variant)
}

func TestGet(t *testing.T) {
	t.Setenv("GILS_TEST_KEY", "  ")
	require.Equal(t, "x", config.Get("GILS_TEST_KEY", "x"))
	t.Setenv("GILS_TEST_KEY", "y")
	require.Equal(t, "y", config.Get("GILS_TEST_KEY", "x"))
}
