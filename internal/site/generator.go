package site

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/blogforge/internal/config"
	"git.home.luguber.info/inful/blogforge/internal/plugins"
)

// ArtifactName is the file the external site runtime picks up.
const ArtifactName = "site-config.yaml"

// Generator composes the configuration artifact from a loaded project file
// and a fixed environment snapshot.
type Generator struct {
	config    *config.Config
	env       config.Environ
	outputDir string
}

// Result describes one emission.
type Result struct {
	ArtifactPath string
	Plugins      []plugins.Entry
	ConfigHash   string
}

// NewGenerator creates a generator writing into outputDir. An empty outputDir
// falls back to the configured output directory.
func NewGenerator(cfg *config.Config, env config.Environ, outputDir string) *Generator {
	if outputDir == "" {
		outputDir = cfg.Output.Directory
	}
	return &Generator{config: cfg, env: env, outputDir: outputDir}
}

// Emit assembles the configuration object and writes it for the runtime.
// Emission is deterministic: a fixed (config, environment) pair produces
// byte-identical output.
func (g *Generator) Emit() (*Result, error) {
	// Phase 1: site metadata, verbatim from the project file.
	root := map[string]any{
		"siteMetadata": map[string]any{
			"title":       g.config.Site.Title,
			"titleAlt":    g.config.Site.TitleAlt,
			"description": g.config.Site.Description,
			"url":         g.config.Site.BaseURL,
			"lang":        g.config.Site.Language,
		},
	}

	// Phase 2: ordered plugin list from the environment snapshot.
	list := plugins.Assemble(g.config, g.env)
	root["plugins"] = list

	data, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("marshal site configuration: %w", err)
	}

	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	artifactPath := filepath.Join(g.outputDir, ArtifactName)
	if err := os.WriteFile(artifactPath, data, 0644); err != nil {
		return nil, fmt.Errorf("write site configuration: %w", err)
	}

	slog.Info("Generated site configuration", "path", artifactPath, "plugins", len(list))
	return &Result{
		ArtifactPath: artifactPath,
		Plugins:      list,
		ConfigHash:   g.config.Snapshot(g.env),
	}, nil
}
