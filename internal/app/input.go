package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/go4d/pkg/animation"
	"github.com/philipparndt/go4d/pkg/rotor"
)

// knobDragRange is the vertical drag distance in pixels that sweeps a knob
// across its full rate range
const knobDragRange = 200

var keyBindings = []struct {
	raylib int32
	key    animation.Key
}{
	{rl.KeySpace, animation.KeySpace},
	{rl.KeyF, animation.KeyF},
	{rl.KeyBackspace, animation.KeyBackspace},
	{rl.KeyHome, animation.KeyHome},
}

// handleInput translates raylib input into animation events
func (app *App) handleInput() {
	mouse := rl.GetMousePosition()
	plane, overKnob := app.knobAt(mouse)
	if overKnob {
		app.Panel.hoveredKnob = int(plane)
	} else {
		app.Panel.hoveredKnob = -1
	}

	// Keyboard shortcuts
	for _, k := range keyBindings {
		if rl.IsKeyPressed(k.raylib) {
			app.State.Dispatch(animation.KeyPress{Key: k.key})
		}
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.UI.showHelp = !app.UI.showHelp
	}

	// Right drag rotates; the state tracks the gesture
	if rl.IsMouseButtonPressed(rl.MouseRightButton) && !app.inPanel(mouse) {
		app.State.Dispatch(animation.PointerDown{Button: animation.ButtonSecondary, X: float64(mouse.X), Y: float64(mouse.Y)})
	}
	if rl.IsMouseButtonReleased(rl.MouseRightButton) {
		app.State.Dispatch(animation.PointerUp{Button: animation.ButtonSecondary})
	}
	if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
		app.State.Dispatch(animation.PointerMove{X: float64(mouse.X), Y: float64(mouse.Y)})
	}

	// Middle click on a knob resets it
	if rl.IsMouseButtonPressed(rl.MouseMiddleButton) {
		app.State.Dispatch(animation.PointerDown{
			Button:      animation.ButtonMiddle,
			X:           float64(mouse.X),
			Y:           float64(mouse.Y),
			OverControl: overKnob,
			Plane:       plane,
		})
	}

	// Wheel zooms, or fine-tunes the knob under the pointer
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.State.Dispatch(animation.Wheel{Delta: float64(wheel), OverControl: overKnob, Plane: plane})
	}

	app.handlePanelClicks(mouse, plane, overKnob)
}

// handlePanelClicks handles left button presses on buttons and knob drags
func (app *App) handlePanelClicks(mouse rl.Vector2, plane rotor.Plane, overKnob bool) {
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		switch {
		case overKnob:
			app.Panel.activeKnob = int(plane)
			app.Panel.dragStartY = mouse.Y
			app.Panel.dragStartVal = app.State.Rates()[plane]
		case rl.CheckCollisionPointRec(mouse, app.Panel.changeShape):
			app.State.Dispatch(animation.NextShape{})
		case rl.CheckCollisionPointRec(mouse, app.Panel.freeze):
			app.State.Dispatch(animation.ToggleFreeRotation{})
		}
	}

	if app.Panel.activeKnob >= 0 {
		if rl.IsMouseButtonDown(rl.MouseLeftButton) {
			// Dragging up increases the rate
			span := animation.MaxRate - animation.MinRate
			value := app.Panel.dragStartVal + float64(app.Panel.dragStartY-mouse.Y)/knobDragRange*span
			app.State.Dispatch(animation.SliderSet{Plane: rotor.Plane(app.Panel.activeKnob), Value: value})
		} else {
			app.Panel.activeKnob = -1
		}
	}
}

// knobAt returns the knob under the pointer
func (app *App) knobAt(point rl.Vector2) (rotor.Plane, bool) {
	for _, p := range rotor.Planes() {
		if rl.CheckCollisionPointCircle(point, app.Panel.knobs[p], knobRadius) {
			return p, true
		}
	}
	return 0, false
}

func (app *App) inPanel(point rl.Vector2) bool {
	return rl.CheckCollisionPointRec(point, app.Panel.bounds)
}
