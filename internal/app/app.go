package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/go4d/pkg/animation"
	"github.com/philipparndt/go4d/pkg/config"
)

const panelWidth = 220

type App struct {
	State  *animation.State
	Panel  PanelState
	Style  StyleState
	Config ConfigWatchState
	UI     UIState
}

// Run opens the viewer window and blocks until it is closed. configPath may be
// empty; when set, the file is watched and reloaded on change.
func Run(cfg *config.Config, configPath string) error {
	pal, err := cfg.Style.Palette()
	if err != nil {
		return fmt.Errorf("invalid style: %w", err)
	}

	opts := cfg.Options(cfg.Rand())
	opts.Viewport.Width -= panelWidth
	if opts.Viewport.Width <= 0 {
		opts.Viewport.Width = float64(cfg.Window.Width)
	}

	app := &App{
		State:  animation.New(opts),
		Panel:  PanelState{hoveredKnob: -1, activeKnob: -1},
		Config: ConfigWatchState{path: configPath},
		UI:     UIState{showHelp: true},
	}
	app.applyPalette(pal)

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "go4d")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	app.UI.font = rl.GetFontDefault()

	fmt.Printf("Starting viewer: %s\n", cfg.Summary())

	if configPath != "" {
		if err := app.setupConfigWatcher(); err != nil {
			fmt.Printf("Warning: Failed to set up config watching: %v\n", err)
			fmt.Println("Hot reload will not be available")
		} else {
			defer app.Config.fileWatcher.Close()
		}
	}

	// Main loop
	for !rl.WindowShouldClose() {
		// Apply reloaded config (must be on main thread)
		app.applyPendingConfig()

		// Update
		app.handleResize()
		app.layoutPanel()
		app.handleInput()
		frame := app.State.Advance()

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(app.Style.background)

		app.drawFrame(frame)
		app.drawUI()

		rl.EndDrawing()
	}

	return nil
}

// handleResize keeps the state viewport in sync with the drawing area
func (app *App) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	width := float64(rl.GetScreenWidth() - panelWidth)
	height := float64(rl.GetScreenHeight())
	app.State.Dispatch(animation.Resize{Width: width, Height: height})
}

// applyPalette converts config colours to raylib colours
func (app *App) applyPalette(pal config.Palette) {
	app.Style = StyleState{
		background:   rl.NewColor(pal.Background.R, pal.Background.G, pal.Background.B, pal.Background.A),
		edge:         rl.NewColor(pal.Edge.R, pal.Edge.G, pal.Edge.B, pal.Edge.A),
		vertex:       rl.NewColor(pal.Vertex.R, pal.Vertex.G, pal.Vertex.B, pal.Vertex.A),
		vertexRadius: float32(pal.VertexRadius),
	}
}
