package config

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// buildEnvKeys are the environment inputs that participate in the snapshot
// hash. Unrelated environment noise must not change the hash.
var buildEnvKeys = []string{EnvTrackingID, EnvAnalyzeBundle}

// Snapshot computes a stable hash of the build-affecting inputs: normalized
// project fields plus the well-known environment keys. Two invocations with
// identical inputs produce identical hashes, which is what the build manifest
// records to make repeat emissions comparable. Callers should pass a Config
// that has been through Load (defaults applied) for canonical values.
func (c *Config) Snapshot(env Environ) string {
	if c == nil {
		return ""
	}
	h := sha256.New()
	w := func(parts ...string) {
		h.Write([]byte(strings.Join(parts, "=")))
		h.Write([]byte{0})
	}
	w("site.title", c.Site.Title)
	w("site.title_alt", c.Site.TitleAlt)
	w("site.description", c.Site.Description)
	w("site.base_url", c.Site.BaseURL)
	w("site.language", c.Site.Language)
	w("manifest.name", c.Manifest.Name)
	w("manifest.short_name", c.Manifest.ShortName)
	w("manifest.start_url", c.Manifest.StartURL)
	w("manifest.background_color", c.Manifest.BackgroundColor)
	w("manifest.theme_color", c.Manifest.ThemeColor)
	w("manifest.display", c.Manifest.Display)
	w("manifest.icon", c.Manifest.Icon)
	w("output.directory", c.Output.Directory)
	for _, key := range buildEnvKeys {
		w("env."+key, env.Get(key))
	}
	return hex.EncodeToString(h.Sum(nil))
}
