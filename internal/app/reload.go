package app

import (
	"context"
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/go4d/pkg/config"
	"github.com/philipparndt/go4d/pkg/watcher"
)

// setupConfigWatcher reloads the config file whenever it changes
func (app *App) setupConfigWatcher() error {
	fw, err := watcher.NewFileWatcher(300 * time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Runs on a timer goroutine; only hands the result to the main loop
	callback := func(changedFile string) {
		fmt.Printf("\nFile changed: %s\n", changedFile)
		cfg, err := config.Load(changedFile)

		app.Config.mu.Lock()
		defer app.Config.mu.Unlock()
		app.Config.pending, app.Config.loadErr = cfg, err
	}

	fw.OnError(func(err error) {
		app.Config.mu.Lock()
		defer app.Config.mu.Unlock()
		app.Config.loadErr = fmt.Errorf("watcher: %w", err)
	})

	if err := fw.Watch(app.Config.path, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch config: %w", err)
	}

	fw.Start(context.Background())
	app.Config.fileWatcher = fw
	fmt.Printf("Watching file for changes: %s\n", app.Config.path)

	return nil
}

// applyPendingConfig applies a reloaded config between frames. Angles and the
// current shape are kept; rates, style and free rotation follow the file.
func (app *App) applyPendingConfig() {
	app.Config.mu.Lock()
	cfg, err := app.Config.pending, app.Config.loadErr
	app.Config.pending, app.Config.loadErr = nil, nil
	app.Config.mu.Unlock()

	if err != nil {
		fmt.Printf("Warning: config reload failed: %v\n", err)
		app.showMessage("Reload failed: "+err.Error(), rl.Red)
		return
	}
	if cfg == nil {
		return
	}

	app.State.SetRates(cfg.ApplyRates(app.State.Rates()))
	app.State.SetFreeRotation(cfg.FreeRotation)
	if pal, err := cfg.Style.Palette(); err == nil {
		app.applyPalette(pal)
	}

	fmt.Printf("Reloaded config: %s\n", cfg.Summary())
	app.showMessage("Config reloaded", rl.Lime)
}

func (app *App) showMessage(text string, color rl.Color) {
	app.UI.message = text
	app.UI.messageColor = color
	app.UI.messageUntil = time.Now().Add(3 * time.Second)
}
