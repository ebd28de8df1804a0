package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and normalizes the project file. The returned Config is treated
// as read-only for the remainder of the process.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project file %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse project file %s: %w", path, err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills zero values with canonical defaults so later stages
// never need to re-check for emptiness.
func applyDefaults(cfg *Config) {
	if cfg.Site.Language == "" {
		cfg.Site.Language = "en"
	}
	if cfg.Site.TitleAlt == "" {
		cfg.Site.TitleAlt = cfg.Site.Title
	}
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = "./public"
	}
	if cfg.Manifest.Name == "" {
		cfg.Manifest.Name = cfg.Site.Title
	}
	if cfg.Manifest.ShortName == "" {
		cfg.Manifest.ShortName = cfg.Site.TitleAlt
	}
	if cfg.Manifest.StartURL == "" {
		cfg.Manifest.StartURL = "/"
	}
	if cfg.Manifest.Display == "" {
		cfg.Manifest.Display = "minimal-ui"
	}
	if cfg.Manifest.Icon == "" {
		cfg.Manifest.Icon = "static/favicon.png"
	}
}

const starterConfig = `# blogforge project file
site:
  title: My Blog
  title_alt: blog
  description: Personal blog
  base_url: https://example.com
  language: en

manifest:
  background_color: "#ffffff"
  theme_color: "#3498db"

output:
  directory: ./public
`

const starterEnv = `# Copy to .env and fill in. Values here are defaults only;
# variables already present in the environment win.
GOOGLE_ANALYTICS_ID=
# Set to any non-empty value to include the bundle analyzer in the plugin list.
ANALYZE_BUNDLE=
`

// Init scaffolds a starter blog.yaml plus an .env.example next to it.
// Refuses to overwrite an existing project file unless force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file %s already exists (use --force to overwrite)", path)
	}
	if err := os.WriteFile(path, []byte(starterConfig), 0644); err != nil {
		return fmt.Errorf("write project file: %w", err)
	}
	if err := os.WriteFile(".env.example", []byte(starterEnv), 0644); err != nil {
		return fmt.Errorf("write .env.example: %w", err)
	}
	return nil
}
