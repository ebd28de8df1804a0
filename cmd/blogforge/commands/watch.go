package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/blogforge/internal/watch"
)

// WatchCmd implements the 'watch' command: an initial build followed by a
// rebuild whenever the project file or the env files change.
type WatchCmd struct {
	Output string `short:"o" help:"Output directory for the composed artifact"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if _, err := RunBuild(root.Config, w.Output); err != nil {
		return err
	}

	// Each rebuild takes a fresh snapshot via LoadEnviron, so .env edits
	// take effect without restarting.
	watcher, err := watch.NewWatcher(root.Config, func(ctx context.Context) error {
		_, err := RunBuild(root.Config, w.Output)
		return err
	})
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Start(sigctx); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer func() {
		if err := watcher.Stop(); err != nil {
			slog.Error("Error stopping watcher", "error", err)
		}
	}()

	fmt.Println("Watching for changes (ctrl-c to stop)")
	<-sigctx.Done()
	return nil
}
