package projection

import (
	"math"

	"github.com/philipparndt/go4d/pkg/geometry"
)

// Viewport is the size of the draw target in pixels
type Viewport struct {
	Width  float64
	Height float64
}

// Scale returns the pixel scale for a zoom factor: a third of the shorter
// viewport side, times zoom
func (v Viewport) Scale(zoom float64) float64 {
	return math.Min(v.Width, v.Height) / 3 * zoom
}

// Center returns the screen center
func (v Viewport) Center() geometry.Vector2 {
	return geometry.NewVector2(v.Width/2, v.Height/2)
}

// ToScreen scales projected points and moves the origin to the viewport center
func (v Viewport) ToScreen(points []geometry.Vector2, scale float64) []geometry.Vector2 {
	out := make([]geometry.Vector2, len(points))
	for i, p := range points {
		out[i] = geometry.NewVector2(p.X*scale+v.Width/2, p.Y*scale+v.Height/2)
	}
	return out
}
