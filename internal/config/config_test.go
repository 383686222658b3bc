package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) string {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadConfig_CreatesDefault(t *testing.T) {
	dir := setup(t)

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, filepath.Join(dir, "handrank", "config.toml"), GetConfigFilePath())

	data, err := os.ReadFile(GetConfigFilePath())
	require.NoError(t, err)
	assert.Contains(t, string(data), `input_path = "poker.txt"`)
	assert.Contains(t, string(data), `output_path = "csis.txt"`)
}

func TestLoadConfig_File(t *testing.T) {
	setup(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(GetConfigFilePath()), 0755))
	require.NoError(t, os.WriteFile(GetConfigFilePath(), []byte("input_path = \"hands.txt\"\ndetail = true\n"), 0644))

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "hands.txt", c.InputPath)
	assert.True(t, c.Detail)

	// missing keys keep their defaults
	assert.Equal(t, "csis.txt", c.OutputPath)
	assert.Equal(t, "auto", c.Color)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	setup(t)
	t.Setenv("HANDRANK_OUTPUT_PATH", "/tmp/out.txt")
	t.Setenv("HANDRANK_LOG_LEVEL", "debug")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out.txt", c.OutputPath)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "poker.txt", c.InputPath)
}

func TestLoadConfig_Invalid(t *testing.T) {
	setup(t)
	t.Setenv("HANDRANK_COLOR", "rainbow")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_BadFile(t *testing.T) {
	setup(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(GetConfigFilePath()), 0755))
	require.NoError(t, os.WriteFile(GetConfigFilePath(), []byte("input_path = [\n"), 0644))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestSet(t *testing.T) {
	setup(t)

	require.NoError(t, Set("input_path", "other.txt"))
	require.NoError(t, Set("detail", "true"))

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "other.txt", c.InputPath)
	assert.True(t, c.Detail)

	assert.Error(t, Set("nope", "x"))
	assert.Error(t, Set("detail", "maybe"))
	assert.Error(t, Set("log_level", "loud"))
	assert.Error(t, Set("color", "rainbow"))
}

func TestSet_RepairsInvalidFile(t *testing.T) {
	setup(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(GetConfigFilePath()), 0755))
	require.NoError(t, os.WriteFile(GetConfigFilePath(), []byte("log_level = \"verbose\"\ncolor = \"rainbow\"\n"), 0644))

	_, err := LoadConfig()
	require.Error(t, err)

	require.NoError(t, Set("log_level", "warn"))
	_, err = LoadConfig()
	require.Error(t, err)

	require.NoError(t, Set("color", "never"))
	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "never", c.Color)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{"color", "detail", "input_path", "log_level", "output_path"}, Keys())
}
