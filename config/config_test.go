package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	require.NoError(t, c.Load(nil))
	want := Default()
	assert.Equal(t, want.Weights, c.Weights)
	assert.Equal(t, want.GCUpperBound, c.GCUpperBound)
	assert.True(t, c.EnableFoundationRescue, "EnableFoundationRescue should default to true")
}

func TestLoadFlagsOverrideDefaults(t *testing.T) {
	var c Config
	require.NoError(t, c.Load([]string{"--greed=100", "--no-foundation-rescue"}))
	assert.Equal(t, 100, c.Weights.Greed)
	assert.False(t, c.EnableFoundationRescue, "EnableFoundationRescue should be false after --no-foundation-rescue")
}

func TestLoadYAMLOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solver.yaml")
	contents := "greed: 7\ngc_upper_bound: 500\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	var c Config
	require.NoError(t, c.Load([]string{"--config", path}))
	assert.Equal(t, 7, c.Weights.Greed)
	assert.Equal(t, 500, c.GCUpperBound)
	// Untouched fields keep their defaults.
	assert.Equal(t, Default().Weights.Penalty, c.Weights.Penalty)
}

func TestLoadFlagsWinOverYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("greed: 7\n"), 0o644))

	var c Config
	require.NoError(t, c.Load([]string{"--config", path, "--greed", "99"}))
	assert.Equal(t, 99, c.Weights.Greed, "flag should win over YAML's 7")
}
