package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	svc := NewConfigService()

	cfg := &Config{
		Version:        1,
		RecentSearches: []string{"camry", "tesla"},
		Favorites:      []string{"1", "4"},
		UISettings: UISettings{
			ViewMode:       "list",
			PageSize:       6,
			AutosaveOnExit: true,
		},
	}
	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "config.toml")

	svc := NewConfigService()
	require.NoError(t, svc.SaveToPath(DefaultConfig(), path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestLoadFromMissingPathFails(t *testing.T) {
	svc := NewConfigService()
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadRepairsHandEditedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	raw := `
version = 1
recent_searches = ["a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"]

[ui]
view_mode = "mosaic"
page_size = -3
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	svc := NewConfigService()
	cfg, err := svc.LoadFromPath(path)
	require.NoError(t, err)

	assert.Len(t, cfg.RecentSearches, MaxRecentSearches)
	assert.Equal(t, "grid", cfg.UISettings.ViewMode)
	assert.Equal(t, 12, cfg.UISettings.PageSize)
	assert.NotNil(t, cfg.Favorites)
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [broken"), 0644))

	svc := NewConfigService()
	_, err := svc.LoadFromPath(path)
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "grid", cfg.UISettings.ViewMode)
	assert.Equal(t, 12, cfg.UISettings.PageSize)
	assert.True(t, cfg.UISettings.AutosaveOnExit)
	assert.Empty(t, cfg.RecentSearches)
	assert.Empty(t, cfg.Favorites)
}
