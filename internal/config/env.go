package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables consumed at build time. Missing values degrade the
// corresponding feature rather than failing the build.
const (
	// EnvTrackingID carries the analytics tracking identifier. When absent
	// the analytics plugin entry is still emitted, with an empty tracking id.
	EnvTrackingID = "GOOGLE_ANALYTICS_ID"
	// EnvAnalyzeBundle toggles the bundle-analyzer plugin entry.
	EnvAnalyzeBundle = "ANALYZE_BUNDLE"
	// EnvLogLevel overrides the CLI log level (debug|info|warn|error).
	EnvLogLevel = "BLOGFORGE_LOG_LEVEL"
)

// envFiles are tried in order; between the files, earlier ones win.
var envFiles = []string{".env", ".env.local"}

// fileDefaults reads the env files in the current directory without touching
// the process environment. A missing file is not an error; the build proceeds
// with whatever defaults exist.
func fileDefaults() map[string]string {
	defaults := make(map[string]string)
	for _, path := range envFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		values, err := godotenv.Read(path)
		if err != nil {
			slog.Warn("Skipping unreadable env file", "file", path, "error", err)
			continue
		}
		for k, v := range values {
			if _, ok := defaults[k]; !ok {
				defaults[k] = v
			}
		}
		slog.Debug("Loaded environment defaults", "file", path)
	}
	return defaults
}

// Environ is an immutable snapshot of the environment one composition run
// reads from. Configuration construction reads exclusively from the snapshot
// so that a fixed snapshot always yields the same plugin list.
type Environ map[string]string

// SnapshotEnviron captures the current process environment only, with no
// env-file overlay.
func SnapshotEnviron() Environ {
	env := make(Environ, len(os.Environ()))
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}

// LoadEnviron builds the snapshot for one composition run: env-file defaults
// overlaid with the process environment, which always wins. The files are
// re-read on every call and the process environment is never mutated, so
// watch-mode rebuilds observe .env edits without a restart.
func LoadEnviron() Environ {
	env := Environ(fileDefaults())
	for k, v := range SnapshotEnviron() {
		env[k] = v
	}
	return env
}

// Get returns the value for key, or "" when unset.
func (e Environ) Get(key string) string { return e[key] }

// Has reports whether key is present in the snapshot, even if empty.
func (e Environ) Has(key string) bool {
	_, ok := e[key]
	return ok
}

// Enabled reports whether key holds an active toggle. The rule is explicit
// rather than borrowed from any language's truthiness coercion: unset or
// blank means disabled, anything else means enabled.
func (e Environ) Enabled(key string) bool {
	return strings.TrimSpace(e[key]) != ""
}
