package commands

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"git.home.luguber.info/inful/blogforge/internal/config"
	"git.home.luguber.info/inful/blogforge/internal/manifest"
	"git.home.luguber.info/inful/blogforge/internal/plugins"
	"git.home.luguber.info/inful/blogforge/internal/site"
)

// chdir changes into dir for the duration of the test, restoring afterwards.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore cwd: %v", err)
		}
	})
}

func setupProject(t *testing.T) string {
	t.Helper()
	chdir(t, t.TempDir())
	if err := config.Init("blog.yaml", false); err != nil {
		t.Fatalf("init project: %v", err)
	}
	return "blog.yaml"
}

func TestRunBuildWritesArtifactAndManifest(t *testing.T) {
	cfgPath := setupProject(t)

	res, err := RunBuild(cfgPath, "out")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if res.ArtifactPath != filepath.Join("out", site.ArtifactName) {
		t.Fatalf("unexpected artifact path %s", res.ArtifactPath)
	}
	if _, err := os.Stat(res.ArtifactPath); err != nil {
		t.Fatalf("artifact missing: %v", err)
	}

	data, err := os.ReadFile(filepath.Join("out", manifest.FileName))
	if err != nil {
		t.Fatalf("manifest missing: %v", err)
	}
	m, err := manifest.FromJSON(data)
	if err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	if m.ConfigHash != res.ConfigHash {
		t.Errorf("manifest hash %s does not match result %s", m.ConfigHash, res.ConfigHash)
	}
	if len(m.Plugins) != len(res.Plugins) {
		t.Errorf("manifest records %d plugins, result has %d", len(m.Plugins), len(res.Plugins))
	}
}

func TestRunBuildHonorsAnalyzeToggle(t *testing.T) {
	cfgPath := setupProject(t)

	t.Setenv(config.EnvAnalyzeBundle, "1")
	on, err := RunBuild(cfgPath, "out")
	if err != nil {
		t.Fatalf("build with toggle: %v", err)
	}
	found := false
	for _, id := range plugins.Identifiers(on.Plugins) {
		if id == plugins.NameBundleAnalyzer {
			found = true
		}
	}
	if !found {
		t.Fatal("analyzer entry missing despite toggle")
	}
}

func TestRunBuildMissingProject(t *testing.T) {
	chdir(t, t.TempDir())
	if _, err := RunBuild("absent.yaml", ""); err == nil {
		t.Fatal("expected error for missing project file")
	}
}

func TestParseLogLevel(t *testing.T) {
	if got := parseLogLevel(false, config.Environ{}); got != slog.LevelInfo {
		t.Errorf("default level = %v", got)
	}
	if got := parseLogLevel(true, config.Environ{}); got != slog.LevelDebug {
		t.Errorf("verbose level = %v", got)
	}
	if got := parseLogLevel(true, config.Environ{config.EnvLogLevel: "error"}); got != slog.LevelError {
		t.Errorf("env override should beat verbose, got %v", got)
	}
	if got := parseLogLevel(false, config.Environ{config.EnvLogLevel: "WARN"}); got != slog.LevelWarn {
		t.Errorf("level names should be case-insensitive, got %v", got)
	}
}
