package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.ProjectRoot)
	assert.Equal(t, "target/validation", cfg.OutputDir)
	assert.Equal(t, "target/classes", cfg.BuildOutputDir)
	assert.True(t, cfg.SeedTerminology)
	assert.True(t, cfg.ValidateClasses)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"project_root": "/work/plugin",
		"generation": "v1",
		"validate_classes": false
	}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/work/plugin", cfg.ProjectRoot)
	assert.Equal(t, "v1", cfg.Generation)
	assert.False(t, cfg.ValidateClasses)
	// Untouched keys keep their defaults.
	assert.Equal(t, "target/validation", cfg.OutputDir)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output_dir": "from-file"}`), 0o644))
	t.Setenv("CAREPROC_OUTPUT_DIR", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.OutputDir)
}

func TestLoad_MissingFileIgnored(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, "target/validation", cfg.OutputDir)
}

func TestLoad_RejectsUnknownGeneration(t *testing.T) {
	t.Setenv("CAREPROC_GENERATION", "v3")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
