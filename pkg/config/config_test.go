package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.MassChange.MinChanges)
	assert.True(t, cfg.Age.UTC)
	assert.Contains(t, cfg.Age.ExcludedColumns, "revision")
	assert.Contains(t, cfg.Age.ExcludedColumns, "message")
	assert.Equal(t, "path", cfg.HotSpot.By)
	assert.Equal(t, []string{"revision"}, cfg.HotSpot.CountOneChangePer)
	assert.Equal(t, "revision", cfg.CoChange.On)
	assert.Equal(t, 8, cfg.Components.Clusters)
	require.NoError(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codemetrics.yaml")
	content := `
mass_change:
  min_changes: 5
components:
  clusters: 3
  stop_words:
    - code_maat
co_change:
  on: day
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.MassChange.MinChanges)
	assert.Equal(t, 3, cfg.Components.Clusters)
	assert.Equal(t, []string{"code_maat"}, cfg.Components.StopWords)
	assert.Equal(t, "day", cfg.CoChange.On)
	// Untouched sections keep defaults.
	assert.Equal(t, "path", cfg.HotSpot.By)
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codemetrics.toml")
	content := "[hot_spot]\nby = \"component\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "component", cfg.HotSpot.By)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codemetrics.yaml")
	require.NoError(t, os.WriteFile(path, []byte("components:\n  clusters: -1\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clusters")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.Chdir(t.TempDir()))

	cfg := LoadOrDefault()
	assert.Equal(t, DefaultConfig(), cfg)
}
