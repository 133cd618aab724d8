package geometry

import "math"

// Vector4 represents a point in 4D space
type Vector4 struct {
	X, Y, Z, W float64
}

// NewVector4 creates a new 4D vector
func NewVector4(x, y, z, w float64) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Add returns the sum of two vectors
func (v Vector4) Add(other Vector4) Vector4 {
	return Vector4{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
		W: v.W + other.W,
	}
}

// Sub returns the difference between two vectors
func (v Vector4) Sub(other Vector4) Vector4 {
	return Vector4{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
		W: v.W - other.W,
	}
}

// Mul multiplies the vector by a scalar
func (v Vector4) Mul(scalar float64) Vector4 {
	return Vector4{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
		W: v.W * scalar,
	}
}

// Dot returns the dot product of two vectors
func (v Vector4) Dot(other Vector4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Length returns the magnitude of the vector
func (v Vector4) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Distance returns the distance between two points
func (v Vector4) Distance(other Vector4) float64 {
	return v.Sub(other).Length()
}

// Coord returns the coordinate at index 0..3 (X, Y, Z, W)
func (v Vector4) Coord(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		return v.W
	}
}

// Array returns the coordinates as a fixed-size array
func (v Vector4) Array() [4]float64 {
	return [4]float64{v.X, v.Y, v.Z, v.W}
}

// Vector4FromArray builds a vector from a coordinate array
func Vector4FromArray(a [4]float64) Vector4 {
	return Vector4{X: a[0], Y: a[1], Z: a[2], W: a[3]}
}

// Min returns a vector with the minimum components of two vectors
func (v Vector4) Min(other Vector4) Vector4 {
	return Vector4{
		X: math.Min(v.X, other.X),
		Y: math.Min(v.Y, other.Y),
		Z: math.Min(v.Z, other.Z),
		W: math.Min(v.W, other.W),
	}
}

// Max returns a vector with the maximum components of two vectors
func (v Vector4) Max(other Vector4) Vector4 {
	return Vector4{
		X: math.Max(v.X, other.X),
		Y: math.Max(v.Y, other.Y),
		Z: math.Max(v.Z, other.Z),
		W: math.Max(v.W, other.W),
	}
}

// Vector3 represents a 3D point, the output of the first projection stage
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vector2 represents a 2D point on the projection plane or the screen
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a new 2D vector
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
// Points at the projection singularity fail this check.
func (v Vector2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
