package geometry

import "math"

// BoundingBox4 represents an axis-aligned bounding box in 4D
type BoundingBox4 struct {
	Min Vector4
	Max Vector4
}

// NewBoundingBox4 creates an empty bounding box
func NewBoundingBox4() BoundingBox4 {
	return BoundingBox4{
		Min: Vector4{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64, W: math.MaxFloat64},
		Max: Vector4{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64, W: -math.MaxFloat64},
	}
}

// Extend expands the bounding box to include a point
func (b *BoundingBox4) Extend(point Vector4) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Size returns the extent of the bounding box along each axis
func (b BoundingBox4) Size() Vector4 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox4) Center() Vector4 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox4) Diagonal() float64 {
	return b.Size().Length()
}
