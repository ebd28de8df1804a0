package plugins

import "gopkg.in/yaml.v3"

// Plugin identifiers known to the site runtime. Resolution happens entirely
// on the runtime side; blogforge performs no validation of these names.
const (
	NameAnalytics      = "analytics"
	NameSitemap        = "sitemap"
	NameFeed           = "feed"
	NameManifest       = "manifest"
	NameOffline        = "offline"
	NameBundleAnalyzer = "bundle-analyzer"
)

// Entry is one unit of plugin configuration: an identifier the runtime
// resolves, plus optional plugin-defined options. An entry without options
// requests the plugin's default behavior.
type Entry struct {
	Resolve string         `yaml:"resolve" json:"resolve"`
	Options map[string]any `yaml:"options,omitempty" json:"options,omitempty"`
}

// Bare returns an entry selecting a plugin with default configuration.
func Bare(name string) Entry { return Entry{Resolve: name} }

// WithOptions returns an entry carrying plugin-defined options.
func WithOptions(name string, opts map[string]any) Entry {
	return Entry{Resolve: name, Options: opts}
}

// MarshalYAML renders bare entries as a plain scalar and configured entries
// as a {resolve, options} mapping, matching what the runtime's plugin
// resolver accepts.
func (e Entry) MarshalYAML() (any, error) {
	if len(e.Options) == 0 {
		return e.Resolve, nil
	}
	return struct {
		Resolve string         `yaml:"resolve"`
		Options map[string]any `yaml:"options"`
	}{e.Resolve, e.Options}, nil
}

// UnmarshalYAML accepts both forms produced by MarshalYAML.
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		e.Options = nil
		return value.Decode(&e.Resolve)
	}
	var full struct {
		Resolve string         `yaml:"resolve"`
		Options map[string]any `yaml:"options"`
	}
	if err := value.Decode(&full); err != nil {
		return err
	}
	e.Resolve = full.Resolve
	e.Options = full.Options
	return nil
}
