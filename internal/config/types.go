package config

// SiteMetadata holds the site-level descriptors handed to the site runtime.
// It is populated once when the project file is loaded and never mutated;
// every plugin needing site context reads from the same value.
type SiteMetadata struct {
	Title       string `yaml:"title"`
	TitleAlt    string `yaml:"title_alt,omitempty"`
	Description string `yaml:"description,omitempty"`
	BaseURL     string `yaml:"base_url,omitempty"`
	Language    string `yaml:"language,omitempty"`
}

// ManifestConfig parameterizes the web-app manifest plugin. Fields left empty
// fall back to the site metadata during emission.
type ManifestConfig struct {
	Name            string `yaml:"name,omitempty"`
	ShortName       string `yaml:"short_name,omitempty"`
	StartURL        string `yaml:"start_url,omitempty"`
	BackgroundColor string `yaml:"background_color,omitempty"`
	ThemeColor      string `yaml:"theme_color,omitempty"`
	Display         string `yaml:"display,omitempty"`
	Icon            string `yaml:"icon,omitempty"`
}

// OutputConfig controls where the composed artifact is written.
type OutputConfig struct {
	Directory string `yaml:"directory,omitempty"`
}

// Config is the root of the blog.yaml project file.
type Config struct {
	Site     SiteMetadata   `yaml:"site"`
	Manifest ManifestConfig `yaml:"manifest,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
}
