package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultName, cfg.Name)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)
	data := `name: ops
divider: "."
max_depth: 4
aliases:
  st: service status
logging:
  level: debug
  json: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ops", cfg.Name)
	assert.Equal(t, ".", cfg.Divider)
	assert.Equal(t, DefaultPrompt, cfg.Prompt, "unset keys keep their default")
	assert.Equal(t, 4, cfg.MaxDepth)
	assert.Equal(t, map[string]string{"st": "service status"}, cfg.Aliases)
	assert.Equal(t, LoggingConfig{Level: "debug", JSON: true}, cfg.Logging)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("name: [unterminated"), 0644))
	_, err := Load(bad)
	assert.ErrorContains(t, err, "failed to parse config")

	space := filepath.Join(dir, "space.yaml")
	require.NoError(t, os.WriteFile(space, []byte(`divider: " "`), 0644))
	_, err = Load(space)
	assert.ErrorContains(t, err, "divider must not be a space")

	name := filepath.Join(dir, "name.yaml")
	require.NoError(t, os.WriteFile(name, []byte(`name: "my cli"`), 0644))
	_, err = Load(name)
	assert.ErrorContains(t, err, "name must not contain whitespace")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvDivider, ":")
	t.Setenv(EnvLogLevel, "info")
	t.Setenv(EnvPrompt, "> ")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":", cfg.Divider)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "> ", cfg.Prompt)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigDir, ConfigFile)
	cfg := DefaultConfig()
	cfg.Aliases["up"] = "service start"

	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestResolveConfigPath(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	want := filepath.Join(root, ConfigDir, ConfigFile)
	require.NoError(t, DefaultConfig().Save(want))

	origGetwd := getwd
	defer func() { getwd = origGetwd }()
	getwd = func() (string, error) { return nested, nil }

	assert.Equal(t, want, ResolveConfigPath())

	getwd = func() (string, error) { return "", errors.New("no cwd") }
	assert.Equal(t, "", ResolveConfigPath())
}

func TestResolveConfigPath_NotFound(t *testing.T) {
	origStat := stat
	defer func() { stat = origStat }()
	stat = func(string) (os.FileInfo, error) { return nil, fs.ErrNotExist }

	assert.Equal(t, "", ResolveConfigPath())
}
