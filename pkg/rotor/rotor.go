// Package rotor rotates 4D vertex sets through the six coordinate planes.
//
// Vertices are treated as row vectors: each plane step computes v·M for the
// plane's Givens matrix M, which is the same as Mᵀ·v. Steps run in the fixed
// order XY, XZ, XW, YZ, YW, ZW and each one builds on the previous result.
// Plane rotations do not commute, so the order is part of the visible behavior.
package rotor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/go4d/pkg/geometry"
)

// PlaneMatrix returns the 4×4 rotation by angle within plane p. The two axes
// outside the plane are left fixed.
func PlaneMatrix(p Plane, angle float64) mgl64.Mat4 {
	m := mgl64.Ident4()
	a, b := p.Axes()
	c, s := math.Cos(angle), math.Sin(angle)
	m.Set(a, a, c)
	m.Set(a, b, -s)
	m.Set(b, a, s)
	m.Set(b, b, c)
	return m
}

// Apply rotates a single vertex within one plane
func Apply(v geometry.Vector4, p Plane, angle float64) geometry.Vector4 {
	if angle == 0 {
		return v
	}
	return step(v, PlaneMatrix(p, angle).Transpose())
}

// Rotate returns a new vertex slice rotated by all six plane angles.
// The input slice is never modified.
func Rotate(vertices []geometry.Vector4, angles Angles) []geometry.Vector4 {
	rotated := make([]geometry.Vector4, len(vertices))
	copy(rotated, vertices)

	for _, p := range Planes() {
		// v·M per vertex, expressed as Mᵀ·v for mgl64
		m := PlaneMatrix(p, angles[p]).Transpose()
		for i := range rotated {
			rotated[i] = step(rotated[i], m)
		}
	}

	return rotated
}

func step(v geometry.Vector4, m mgl64.Mat4) geometry.Vector4 {
	r := m.Mul4x1(mgl64.Vec4(v.Array()))
	return geometry.NewVector4(r.X(), r.Y(), r.Z(), r.W())
}
