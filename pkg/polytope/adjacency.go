package polytope

import (
	"github.com/philipparndt/go4d/pkg/geometry"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Predicate decides whether two vertices are joined by an edge
type Predicate func(a, b geometry.Vector4) bool

// DeriveEdges checks every unordered vertex pair against the predicate.
// The result is ordered by (I, J) with I < J.
func DeriveEdges(vertices []geometry.Vector4, adjacent Predicate) []Edge {
	edges := make([]Edge, 0)
	for i := 0; i < len(vertices); i++ {
		for j := i + 1; j < len(vertices); j++ {
			if adjacent(vertices[i], vertices[j]) {
				edges = append(edges, Edge{I: i, J: j})
			}
		}
	}
	return edges
}

// everyPair connects all vertices (complete graph)
func everyPair(_, _ geometry.Vector4) bool {
	return true
}

// differInOneCoordinate connects vertices whose coordinates differ in exactly
// one position
func differInOneCoordinate(a, b geometry.Vector4) bool {
	diff := 0
	for k := 0; k < 4; k++ {
		if a.Coord(k) != b.Coord(k) {
			diff++
		}
	}
	return diff == 1
}

// atDistance connects vertices whose Euclidean distance is within tolerance of
// length. The bound is inclusive; catalog distances never sit on it.
func atDistance(length, tolerance float64) Predicate {
	return func(a, b geometry.Vector4) bool {
		pa, pb := a.Array(), b.Array()
		return scalar.EqualWithinAbs(floats.Distance(pa[:], pb[:], 2), length, tolerance)
	}
}

// shareZeros connects vertices that have exactly count positions where both
// coordinates are zero
func shareZeros(count int) Predicate {
	return func(a, b geometry.Vector4) bool {
		same := 0
		for k := 0; k < 4; k++ {
			if a.Coord(k) == 0 && b.Coord(k) == 0 {
				same++
			}
		}
		return same == count
	}
}
