package polytope

import (
	"math"

	"github.com/philipparndt/go4d/pkg/geometry"
)

const (
	fiveCellRadius     = 1.5
	twentyFourCellEdge = math.Sqrt2
	distanceTolerance  = 0.01
)

// hypercubeVertices returns all 16 sign combinations of (±1, ±1, ±1, ±1)
func hypercubeVertices() []geometry.Vector4 {
	vertices := make([]geometry.Vector4, 0, 16)
	signs := []float64{-1, 1}
	for _, x := range signs {
		for _, y := range signs {
			for _, z := range signs {
				for _, w := range signs {
					vertices = append(vertices, geometry.NewVector4(x, y, z, w))
				}
			}
		}
	}
	return vertices
}

// fiveCellVertices returns the fixed 4-simplex construction: one vertex below
// the w=0 hyperplane and four arranged around it above.
func fiveCellVertices() []geometry.Vector4 {
	r := fiveCellRadius
	return []geometry.Vector4{
		geometry.NewVector4(0, 0, 0, -r/4),
		geometry.NewVector4(r, 0, 0, r/4),
		geometry.NewVector4(-r/3, r*0.94, 0, r/4),
		geometry.NewVector4(-r/3, -r*0.47, r*0.82, r/4),
		geometry.NewVector4(-r/3, -r*0.47, -r*0.82, r/4),
	}
}

// axisVertices returns ±r on each of the four axes, positive first
func axisVertices(r float64) []geometry.Vector4 {
	vertices := make([]geometry.Vector4, 0, 8)
	for axis := 0; axis < 4; axis++ {
		for _, sign := range []float64{1, -1} {
			var coords [4]float64
			coords[axis] = sign * r
			vertices = append(vertices, geometry.Vector4FromArray(coords))
		}
	}
	return vertices
}

// twentyFourCellVertices returns the permutations of (±1, ±1, 0, 0)
func twentyFourCellVertices() []geometry.Vector4 {
	vertices := make([]geometry.Vector4, 0, 24)
	signs := []float64{-1, 1}
	for _, x := range signs {
		for _, y := range signs {
			vertices = append(vertices,
				geometry.NewVector4(x, y, 0, 0),
				geometry.NewVector4(x, 0, y, 0),
				geometry.NewVector4(x, 0, 0, y),
				geometry.NewVector4(0, x, y, 0),
				geometry.NewVector4(0, x, 0, y),
				geometry.NewVector4(0, 0, x, y),
			)
		}
	}
	return vertices
}
