package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "data/neos.csv", cfg.Data.NEOPath)
	assert.Equal(t, "data/cad.json", cfg.Data.CADPath)
	assert.Equal(t, 10, cfg.Query.Limit)
	assert.False(t, cfg.Log.JSON)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[data]
neo_path = "/srv/neo/neos.csv"
cad_path = "/srv/neo/cad.json"

[query]
limit = 25
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/neo/neos.csv", cfg.Data.NEOPath)
	assert.Equal(t, "/srv/neo/cad.json", cfg.Data.CADPath)
	assert.Equal(t, 25, cfg.Query.Limit)
	assert.False(t, cfg.Log.JSON, "unset keys fall back to defaults")
}

func TestLoadFromFilePartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\njson = true\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, "data/neos.csv", cfg.Data.NEOPath, "defaults survive partial configs")
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Data.NEOPath = "/var/data/neos.csv"
	cfg.Query.Limit = 0

	require.NoError(t, Save(cfg, path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/data/neos.csv", loaded.Data.NEOPath)
	assert.Equal(t, 0, loaded.Query.Limit)
}

func TestSaveCreatesBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, Save(Default(), path))
	require.NoError(t, Save(Default(), path))

	_, err := os.Stat(path + ".bak")
	assert.NoError(t, err, "second save backs up the first")
}

func TestReset(t *testing.T) {
	Reset()
	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	Reset()
}
