package app

import (
	"fmt"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/go4d/pkg/animation"
	"github.com/philipparndt/go4d/pkg/geometry"
	"github.com/philipparndt/go4d/pkg/projection"
	"github.com/philipparndt/go4d/pkg/rotor"
	"github.com/philipparndt/go4d/version"
)

const (
	knobRadius  = 22
	knobSpacing = 70
	gizmoLength = 40
)

var (
	panelColor  = rl.NewColor(25, 28, 36, 255)
	accentColor = rl.NewColor(100, 200, 255, 255)
	axisColors  = [4]rl.Color{rl.Red, rl.Green, rl.Blue, rl.Magenta}
	axisNames   = [4]string{"X", "Y", "Z", "W"}
)

// layoutPanel places the panel widgets for the current screen size
func (app *App) layoutPanel() {
	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())

	x := screenWidth - panelWidth
	app.Panel.bounds = rl.Rectangle{X: x, Y: 0, Width: panelWidth, Height: screenHeight}

	top := float32(60)
	for _, p := range rotor.Planes() {
		col := float32(int(p) % 2)
		row := float32(int(p) / 2)
		app.Panel.knobs[p] = rl.Vector2{
			X: x + panelWidth/4 + col*panelWidth/2,
			Y: top + knobRadius + row*knobSpacing,
		}
	}

	buttonY := top + 3*knobSpacing + 10
	app.Panel.changeShape = rl.Rectangle{X: x + 15, Y: buttonY, Width: panelWidth - 30, Height: 30}
	app.Panel.freeze = rl.Rectangle{X: x + 15, Y: buttonY + 40, Width: panelWidth - 30, Height: 30}
}

// drawUI draws the user interface
func (app *App) drawUI() {
	fontSize12 := float32(12)
	fontSize14 := float32(14)
	fontSize18 := float32(18)

	rl.DrawRectangleRec(app.Panel.bounds, panelColor)

	// === SHAPE ===
	name := app.State.ShapeName()
	nameWidth := rl.MeasureTextEx(app.UI.font, name, fontSize18, 1).X
	nameX := app.Panel.bounds.X + (panelWidth-nameWidth)/2
	rl.DrawTextEx(app.UI.font, name, rl.Vector2{X: nameX, Y: 20}, fontSize18, 1, rl.Yellow)

	// === KNOBS ===
	rates := app.State.Rates()
	for _, p := range rotor.Planes() {
		app.drawKnob(p, rates[p])
	}

	// === BUTTONS ===
	app.drawButton(app.Panel.changeShape, "Change Shape")
	if app.State.FreeRotation() {
		app.drawButton(app.Panel.freeze, "Freeze")
	} else {
		app.drawButton(app.Panel.freeze, "Rotate")
	}

	app.drawAxisGizmo()

	// === HELP ===
	if app.UI.showHelp {
		y := float32(10)
		lineHeight := float32(20)
		for _, line := range []string{
			"Right Drag: Rotate XY/XZ",
			"Mouse Wheel: Zoom | on knob: fine tune",
			"Left Drag knob: set rate | Middle: reset",
			"Space: Next shape | F: Freeze",
			"Backspace: Stop all | Home: Reset view",
			"H: Toggle help",
		} {
			rl.DrawTextEx(app.UI.font, line, rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
			y += lineHeight
		}
	}

	// Status message above the version line
	if app.UI.message != "" && time.Now().Before(app.UI.messageUntil) {
		y := float32(rl.GetScreenHeight()) - 55
		rl.DrawTextEx(app.UI.font, app.UI.message, rl.Vector2{X: 10, Y: y}, fontSize14, 1, app.UI.messageColor)
	}

	// Version, zoom and FPS in bottom-left corner
	bottomY := float32(rl.GetScreenHeight()) - 30
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: 10, Y: bottomY}, fontSize12, 1, rl.Gray)

	statusText := fmt.Sprintf("Zoom: %.2f  FPS: %d", app.State.Zoom(), rl.GetFPS())
	versionWidth := rl.MeasureTextEx(app.UI.font, versionText, fontSize12, 1).X
	rl.DrawTextEx(app.UI.font, statusText, rl.Vector2{X: 10 + versionWidth + 15, Y: bottomY}, fontSize12, 1, rl.Lime)
}

// drawKnob draws a rate knob with its indicator, plane name and value.
// The indicator points straight up at zero and sweeps ±135° to the limits.
func (app *App) drawKnob(p rotor.Plane, rate float64) {
	center := app.Panel.knobs[p]
	hovered := app.Panel.hoveredKnob == int(p) || app.Panel.activeKnob == int(p)

	ring := rl.Gray
	if hovered {
		ring = accentColor
	}
	rl.DrawCircleV(center, knobRadius, rl.NewColor(45, 50, 62, 255))
	rl.DrawCircleLines(int32(center.X), int32(center.Y), knobRadius, ring)

	angle := animation.KnobAngle(rate) * math.Pi / 180
	tip := rl.Vector2{
		X: center.X + float32(math.Sin(angle))*(knobRadius-4),
		Y: center.Y - float32(math.Cos(angle))*(knobRadius-4),
	}
	rl.DrawLineEx(center, tip, 3, rl.Yellow)

	label := Label{
		Text:       fmt.Sprintf("%s %+.3f", p, rate),
		ScreenPos:  rl.Vector2{X: center.X, Y: center.Y + knobRadius + 6},
		BaseColor:  rl.LightGray,
		HoverColor: accentColor,
		IsHovered:  hovered,
	}
	label.Draw(app.UI.font, 10, 2)
}

// drawButton draws a panel button, highlighted under the pointer
func (app *App) drawButton(rect rl.Rectangle, text string) {
	bg := rl.NewColor(45, 50, 62, 255)
	if rl.CheckCollisionPointRec(rl.GetMousePosition(), rect) {
		bg = rl.NewColor(65, 72, 90, 255)
	}
	rl.DrawRectangleRec(rect, bg)
	rl.DrawRectangleLinesEx(rect, 1, rl.Gray)

	size := rl.MeasureTextEx(app.UI.font, text, 14, 1)
	pos := rl.Vector2{X: rect.X + (rect.Width-size.X)/2, Y: rect.Y + (rect.Height-size.Y)/2}
	rl.DrawTextEx(app.UI.font, text, pos, 14, 1, rl.White)
}

// drawAxisGizmo draws the four rotated unit axes through the same pipeline
// as the shape, at the bottom of the panel
func (app *App) drawAxisGizmo() {
	origin := rl.Vector2{
		X: app.Panel.bounds.X + panelWidth/2,
		Y: app.Panel.bounds.Height - 90,
	}

	basis := []geometry.Vector4{
		geometry.NewVector4(1, 0, 0, 0),
		geometry.NewVector4(0, 1, 0, 0),
		geometry.NewVector4(0, 0, 1, 0),
		geometry.NewVector4(0, 0, 0, 1),
	}
	rotated := rotor.Rotate(basis, app.State.Angles())
	projected := projection.New().Project(rotated)

	// Undo the distance falloff so a unit axis in the screen plane is gizmoLength long
	scale := float32(projection.Distance * projection.Distance * gizmoLength)

	for i, p := range projected {
		if !p.IsFinite() {
			continue
		}
		tip := rl.Vector2{X: origin.X + float32(p.X)*scale, Y: origin.Y + float32(p.Y)*scale}
		rl.DrawLineEx(origin, tip, 2, axisColors[i])
		rl.DrawTextEx(app.UI.font, axisNames[i], rl.Vector2{X: tip.X + 3, Y: tip.Y - 6}, 12, 1, axisColors[i])
	}
	rl.DrawCircleV(origin, 3, rl.White)
}
