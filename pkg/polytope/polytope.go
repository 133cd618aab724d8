// Package polytope generates the fixed catalog of 4D shapes the viewer can
// display. Every generator builds its vertex list and then derives the edge
// list from the vertex geometry with a shape-specific adjacency predicate.
package polytope

import (
	"fmt"
	"strings"

	"github.com/philipparndt/go4d/pkg/geometry"
)

// Shape identifies one of the catalog shapes
type Shape int

const (
	Hypercube Shape = iota
	FiveCell
	SixteenCell
	TwentyFourCell
	EightCell
)

// Count is the number of shapes in the catalog
const Count = 5

var shapeNames = [Count]string{
	Hypercube:      "Hypercube",
	FiveCell:       "5-cell",
	SixteenCell:    "16-cell",
	TwentyFourCell: "24-cell",
	EightCell:      "8-cell",
}

var shapeAliases = map[string]Shape{
	"hypercube": Hypercube,
	"tesseract": Hypercube,
	"5-cell":    FiveCell,
	"5cell":     FiveCell,
	"simplex":   FiveCell,
	"16-cell":   SixteenCell,
	"16cell":    SixteenCell,
	"24-cell":   TwentyFourCell,
	"24cell":    TwentyFourCell,
	"8-cell":    EightCell,
	"8cell":     EightCell,
}

// Wrap maps any integer onto a valid catalog id, cycling in both directions
func Wrap(id int) Shape {
	return Shape(((id % Count) + Count) % Count)
}

// Next returns the shape after s, wrapping to the first after the last
func (s Shape) Next() Shape {
	return Wrap(int(s) + 1)
}

// String returns the display name of the shape
func (s Shape) String() string {
	return shapeNames[Wrap(int(s))]
}

// Shapes lists all catalog ids in order
func Shapes() []Shape {
	shapes := make([]Shape, Count)
	for i := range shapes {
		shapes[i] = Shape(i)
	}
	return shapes
}

// ParseShape resolves a shape name or alias, ignoring case
func ParseShape(name string) (Shape, error) {
	shape, ok := shapeAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown shape %q (expected one of %s)", name, strings.Join(shapeNames[:], ", "))
	}
	return shape, nil
}

// Edge connects two vertices by index. I is always less than J.
type Edge struct {
	I, J int
}

// Polytope is a generated shape. It is never modified after Generate returns it;
// a shape change replaces the whole value.
type Polytope struct {
	Name     string
	Vertices []geometry.Vector4
	Edges    []Edge
}

// VertexCount returns the number of vertices
func (p *Polytope) VertexCount() int {
	return len(p.Vertices)
}

// EdgeCount returns the number of edges
func (p *Polytope) EdgeCount() int {
	return len(p.Edges)
}

// Degrees returns the number of edges incident to each vertex
func (p *Polytope) Degrees() []int {
	degrees := make([]int, len(p.Vertices))
	for _, e := range p.Edges {
		degrees[e.I]++
		degrees[e.J]++
	}
	return degrees
}

// Generate builds the polytope for a shape id. Ids outside the catalog wrap.
func Generate(shape Shape) *Polytope {
	shape = Wrap(int(shape))

	var vertices []geometry.Vector4
	var adjacent Predicate

	switch shape {
	case Hypercube:
		vertices, adjacent = hypercubeVertices(), differInOneCoordinate
	case FiveCell:
		vertices, adjacent = fiveCellVertices(), everyPair
	case SixteenCell:
		vertices, adjacent = axisVertices(1.0), everyPair
	case TwentyFourCell:
		vertices, adjacent = twentyFourCellVertices(), atDistance(twentyFourCellEdge, distanceTolerance)
	case EightCell:
		vertices, adjacent = axisVertices(1.5), shareZeros(3)
	}

	return &Polytope{
		Name:     shape.String(),
		Vertices: vertices,
		Edges:    DeriveEdges(vertices, adjacent),
	}
}
