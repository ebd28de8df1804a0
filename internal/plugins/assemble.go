package plugins

import (
	"git.home.luguber.info/inful/blogforge/internal/config"
)

// conditional pairs an entry with an explicit inclusion flag. Disabled pairs
// are filtered out after assembly; entries are never reordered, only removed.
type conditional struct {
	enabled bool
	entry   Entry
}

// Assemble produces the ordered plugin list for one build from the project
// configuration and the environment snapshot. The transformation is pure and
// synchronous: a fixed (cfg, env) pair always yields the same list.
//
// Order is significant. The offline entry must stay after the manifest entry
// because offline caching consumes the manifest the earlier plugin generates.
// The bundle analyzer, when enabled, slots in immediately before that
// terminal pair.
func Assemble(cfg *config.Config, env config.Environ) []Entry {
	candidates := []conditional{
		// Analytics is always present; with no tracking id configured the
		// plugin is inert on the runtime side rather than omitted here.
		{true, WithOptions(NameAnalytics, map[string]any{
			"tracking_id": env.Get(config.EnvTrackingID),
		})},
		{true, Bare(NameSitemap)},
		{true, Bare(NameFeed)},
		{env.Enabled(config.EnvAnalyzeBundle), WithOptions(NameBundleAnalyzer, map[string]any{
			"analyzer_mode": "static",
			"open_analyzer": false,
			"report_path":   "bundle-report.html",
		})},
		{true, WithOptions(NameManifest, manifestOptions(cfg))},
		{true, Bare(NameOffline)},
	}

	list := make([]Entry, 0, len(candidates))
	for _, c := range candidates {
		if !c.enabled {
			continue
		}
		list = append(list, c.entry)
	}
	return list
}

func manifestOptions(cfg *config.Config) map[string]any {
	return map[string]any{
		"name":             cfg.Manifest.Name,
		"short_name":       cfg.Manifest.ShortName,
		"description":      cfg.Site.Description,
		"start_url":        cfg.Manifest.StartURL,
		"background_color": cfg.Manifest.BackgroundColor,
		"theme_color":      cfg.Manifest.ThemeColor,
		"display":          cfg.Manifest.Display,
		"icon":             cfg.Manifest.Icon,
		"lang":             cfg.Site.Language,
	}
}

// Identifiers returns the resolve names of list in order, for build records
// and CLI output.
func Identifiers(list []Entry) []string {
	ids := make([]string, len(list))
	for i, e := range list {
		ids[i] = e.Resolve
	}
	return ids
}
