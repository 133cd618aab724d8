package app

import (
	"sync"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/go4d/pkg/config"
	"github.com/philipparndt/go4d/pkg/rotor"
	"github.com/philipparndt/go4d/pkg/watcher"
)

// PanelState holds the control panel layout and hover state
type PanelState struct {
	bounds       rl.Rectangle                 // Whole panel on the right side
	knobs        [rotor.PlaneCount]rl.Vector2 // Knob centers
	changeShape  rl.Rectangle
	freeze       rl.Rectangle
	hoveredKnob  int // -1=none, otherwise a rotor.Plane
	activeKnob   int // Knob being dragged with the left button, -1=none
	dragStartY   float32
	dragStartVal float64
}

// StyleState holds the resolved draw colours
type StyleState struct {
	background   rl.Color
	edge         rl.Color
	vertex       rl.Color
	vertexRadius float32
}

// ConfigWatchState holds config file watching and reload state
type ConfigWatchState struct {
	path        string               // Config file, empty when running on defaults
	fileWatcher *watcher.FileWatcher // File watcher for hot reload
	mu          sync.Mutex           // Guards pending and loadErr
	pending     *config.Config       // Config loaded on the watcher goroutine
	loadErr     error                // Last reload failure
}

// UIState holds UI-related state
type UIState struct {
	font         rl.Font
	message      string    // Status line shown at the bottom
	messageColor rl.Color  // Colour of the status line
	messageUntil time.Time // When the status line disappears
	showHelp     bool
}
