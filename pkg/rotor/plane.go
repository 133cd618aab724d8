package rotor

import (
	"fmt"
	"strings"
)

// Plane is one of the six coordinate planes of 4D space. The numeric order is
// also the order in which Rotate applies the plane rotations.
type Plane int

const (
	XY Plane = iota
	XZ
	XW
	YZ
	YW
	ZW
)

// PlaneCount is the number of rotation planes in 4D
const PlaneCount = 6

// Angles holds one angle in radians per plane, indexed by Plane
type Angles [PlaneCount]float64

var planeNames = [PlaneCount]string{"XY", "XZ", "XW", "YZ", "YW", "ZW"}

// planeAxes lists the two coordinate indices (0=X .. 3=W) spanned by each plane
var planeAxes = [PlaneCount][2]int{
	XY: {0, 1},
	XZ: {0, 2},
	XW: {0, 3},
	YZ: {1, 2},
	YW: {1, 3},
	ZW: {2, 3},
}

// Planes returns all planes in application order
func Planes() []Plane {
	return []Plane{XY, XZ, XW, YZ, YW, ZW}
}

// Valid reports whether p names one of the six planes
func (p Plane) Valid() bool {
	return p >= 0 && p < PlaneCount
}

// Axes returns the coordinate indices spanned by the plane
func (p Plane) Axes() (int, int) {
	a := planeAxes[p]
	return a[0], a[1]
}

// String returns the plane name, e.g. "XW"
func (p Plane) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Plane(%d)", int(p))
	}
	return planeNames[p]
}

// ParsePlane resolves a plane name such as "xy" or "ZW"
func ParsePlane(name string) (Plane, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range planeNames {
		if n == upper {
			return Plane(i), nil
		}
	}
	return 0, fmt.Errorf("unknown rotation plane %q (expected one of %s)", name, strings.Join(planeNames[:], ", "))
}
