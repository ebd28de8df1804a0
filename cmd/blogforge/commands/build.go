package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/blogforge/internal/config"
	"git.home.luguber.info/inful/blogforge/internal/manifest"
	"git.home.luguber.info/inful/blogforge/internal/plugins"
	"git.home.luguber.info/inful/blogforge/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output string `short:"o" help:"Output directory for the composed artifact (defaults to output.directory from the project file)"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	_, err := RunBuild(root.Config, b.Output)
	return err
}

// RunBuild performs one composition run: snapshot the environment with its
// env-file defaults, load the project file, emit the artifact and record a
// build manifest next to it.
func RunBuild(configPath, outputDir string) (*site.Result, error) {
	// Friendly user-facing message on stdout; diagnostics go to the logger.
	fmt.Println("Composing site configuration")
	start := time.Now()

	env := config.LoadEnviron()

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}

	res, err := site.NewGenerator(cfg, env, outputDir).Emit()
	if err != nil {
		return nil, fmt.Errorf("emit configuration: %w", err)
	}

	m := manifest.New(res.ConfigHash, plugins.Identifiers(res.Plugins), res.ArtifactPath)
	m.Duration = time.Since(start).Milliseconds()
	if _, err := m.Write(filepath.Dir(res.ArtifactPath)); err != nil {
		return nil, err
	}

	slog.Info("Build complete",
		"build_id", m.ID,
		"artifact", res.ArtifactPath,
		"plugins", len(res.Plugins),
		"duration_ms", m.Duration)
	fmt.Printf("Wrote %s\n", res.ArtifactPath)
	return res, nil
}
