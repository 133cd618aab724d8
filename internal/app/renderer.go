package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/go4d/pkg/animation"
	"github.com/philipparndt/go4d/pkg/geometry"
)

const edgeThickness = 1.5

// drawFrame draws the wireframe: edges first, vertex dots on top.
// Points at the projection singularity are not drawn.
func (app *App) drawFrame(frame animation.Frame) {
	for _, seg := range frame.Segments {
		if !seg.From.IsFinite() || !seg.To.IsFinite() {
			continue
		}
		rl.DrawLineEx(toRL(seg.From), toRL(seg.To), edgeThickness, app.Style.edge)
	}

	if app.Style.vertexRadius <= 0 {
		return
	}
	for _, p := range frame.Points {
		if !p.IsFinite() {
			continue
		}
		rl.DrawCircleV(toRL(p), app.Style.vertexRadius, app.Style.vertex)
	}
}

func toRL(p geometry.Vector2) rl.Vector2 {
	return rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
}
