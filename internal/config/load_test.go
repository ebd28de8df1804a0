package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeProject(t, `
site:
  title: Jaded Evangelist
  title_alt: jaded
  description: Blog of a jaded evangelist
  base_url: https://blog.example.net
  language: en
manifest:
  background_color: "#e0e0e0"
  theme_color: "#c62828"
output:
  directory: ./dist
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Jaded Evangelist", cfg.Site.Title)
	assert.Equal(t, "https://blog.example.net", cfg.Site.BaseURL)
	assert.Equal(t, "./dist", cfg.Output.Directory)
	// Manifest fields fall back to site metadata.
	assert.Equal(t, "Jaded Evangelist", cfg.Manifest.Name)
	assert.Equal(t, "jaded", cfg.Manifest.ShortName)
	assert.Equal(t, "/", cfg.Manifest.StartURL)
}

func TestLoadDefaults(t *testing.T) {
	path := writeProject(t, "site:\n  title: Minimal\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Site.Language)
	assert.Equal(t, "Minimal", cfg.Site.TitleAlt)
	assert.Equal(t, "./public", cfg.Output.Directory)
	assert.Equal(t, "minimal-ui", cfg.Manifest.Display)
	assert.Equal(t, "static/favicon.png", cfg.Manifest.Icon)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeProject(t, "site: [not a mapping")
	_, err := Load(path)
	require.Error(t, err)
}

func TestInit(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, Init("blog.yaml", false))
	cfg, err := Load("blog.yaml")
	require.NoError(t, err)
	assert.Equal(t, "My Blog", cfg.Site.Title)
	_, err = os.Stat(".env.example")
	assert.NoError(t, err, "scaffold should include .env.example")

	// Second init without force must refuse to clobber.
	require.Error(t, Init("blog.yaml", false))
	require.NoError(t, Init("blog.yaml", true))
}
