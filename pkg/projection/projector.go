// Package projection maps rotated 4D vertices down to the screen in two
// perspective stages, 4D→3D then 3D→2D, followed by viewport scaling.
//
// Both stages divide by (Distance − dropped coordinate). When that coordinate
// equals Distance the factor is infinite and the result carries ±Inf or NaN.
// That singularity is not special-cased: the values flow through unchanged and
// draw adapters skip points that fail geometry.Vector2.IsFinite.
package projection

import "github.com/philipparndt/go4d/pkg/geometry"

// Distance is the perspective distance used by both projection stages
const Distance = 4.0

// Projector performs the two perspective stages
type Projector struct {
	Distance float64
}

// New creates a projector with the default perspective distance
func New() Projector {
	return Projector{Distance: Distance}
}

// To3D projects 4D vertices along W
func (p Projector) To3D(vertices []geometry.Vector4) []geometry.Vector3 {
	out := make([]geometry.Vector3, len(vertices))
	for i, v := range vertices {
		f := 1 / (p.Distance - v.W)
		out[i] = geometry.NewVector3(v.X*f, v.Y*f, v.Z*f)
	}
	return out
}

// To2D projects 3D vertices along Z
func (p Projector) To2D(vertices []geometry.Vector3) []geometry.Vector2 {
	out := make([]geometry.Vector2, len(vertices))
	for i, v := range vertices {
		f := 1 / (p.Distance - v.Z)
		out[i] = geometry.NewVector2(v.X*f, v.Y*f)
	}
	return out
}

// Project runs both stages
func (p Projector) Project(vertices []geometry.Vector4) []geometry.Vector2 {
	return p.To2D(p.To3D(vertices))
}
