package commands

import (
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/blogforge/internal/config"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to the
// root config path.
type CLI struct {
	Config  string           `short:"c" help:"Project file path" default:"blog.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build   BuildCmd   `cmd:"" help:"Compose the site configuration artifact from the project file and environment"`
	Plugins PluginsCmd `cmd:"" help:"Print the resolved plugin sequence without writing anything"`
	Init    InitCmd    `cmd:"" help:"Initialize a new project file"`
	Watch   WatchCmd   `cmd:"" help:"Recompose the artifact whenever the project file or env files change"`
}

// AfterApply runs after flag parsing; sets up logging once.
func (c *CLI) AfterApply() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(c.Verbose, config.LoadEnviron()),
	}))
	slog.SetDefault(logger)
	return nil
}

// parseLogLevel resolves the effective log level from the environment
// snapshot. BLOGFORGE_LOG_LEVEL takes precedence over the --verbose flag.
func parseLogLevel(verbose bool, env config.Environ) slog.Level {
	switch strings.ToLower(env.Get(config.EnvLogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
