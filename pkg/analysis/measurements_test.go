package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/go4d/pkg/geometry"
	"github.com/philipparndt/go4d/pkg/polytope"
	"github.com/philipparndt/go4d/pkg/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzePolytope_Catalog(t *testing.T) {
	tests := []struct {
		shape     polytope.Shape
		vertices  int
		edges     int
		minDegree int
		maxDegree int
	}{
		{polytope.Hypercube, 16, 32, 4, 4},
		{polytope.FiveCell, 5, 10, 4, 4},
		{polytope.SixteenCell, 8, 28, 7, 7},
		{polytope.TwentyFourCell, 24, 96, 8, 8},
		{polytope.EightCell, 8, 4, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			result := AnalyzePolytope(polytope.Generate(tt.shape))
			assert.Equal(t, tt.shape.String(), result.Name)
			assert.Equal(t, tt.vertices, result.VertexCount)
			assert.Equal(t, tt.edges, result.EdgeCount)
			assert.Equal(t, tt.minDegree, result.MinDegree)
			assert.Equal(t, tt.maxDegree, result.MaxDegree)
			assert.Len(t, result.AllEdges, tt.edges)
			assert.True(t, result.ProjectionSafe(projection.Distance))
		})
	}
}

func TestAnalyzePolytope_Hypercube(t *testing.T) {
	result := AnalyzePolytope(polytope.Generate(polytope.Hypercube))

	assert.InDelta(t, 2.0, result.MinEdgeLength, 1e-12)
	assert.InDelta(t, 2.0, result.MaxEdgeLength, 1e-12)
	assert.InDelta(t, 2.0, result.AvgEdgeLength, 1e-12)
	assert.InDelta(t, 2.0, result.MaxRadius, 1e-12)
	assert.Equal(t, geometry.NewVector4(-1, -1, -1, -1), result.BoundingBox.Min)
	assert.Equal(t, geometry.NewVector4(1, 1, 1, 1), result.BoundingBox.Max)
	assert.Equal(t, geometry.NewVector4(2, 2, 2, 2), result.Dimensions)
}

func TestAnalyzePolytope_TwentyFourCellEdgeLength(t *testing.T) {
	result := AnalyzePolytope(polytope.Generate(polytope.TwentyFourCell))
	assert.InDelta(t, math.Sqrt2, result.MinEdgeLength, 0.01)
	assert.InDelta(t, math.Sqrt2, result.MaxEdgeLength, 0.01)
}

func TestAnalyzePolytope_EightCellOppositePairs(t *testing.T) {
	result := AnalyzePolytope(polytope.Generate(polytope.EightCell))
	for _, e := range result.AllEdges {
		assert.InDelta(t, 3.0, e.Length, 1e-12)
		assert.Equal(t, e.Start.Mul(-1), e.End)
	}
}

func TestAnalyzePolytope_Empty(t *testing.T) {
	result := AnalyzePolytope(&polytope.Polytope{Name: "empty"})
	assert.Zero(t, result.VertexCount)
	assert.Zero(t, result.EdgeCount)
	assert.Zero(t, result.MaxRadius)
	assert.Zero(t, result.AvgEdgeLength)
}

func TestAnalyzeCatalog(t *testing.T) {
	results := AnalyzeCatalog()
	require.Len(t, results, polytope.Count)
	assert.Equal(t, "Hypercube", results[0].Name)
	assert.Equal(t, "8-cell", results[4].Name)
}

func TestFindEdges(t *testing.T) {
	result := AnalyzePolytope(polytope.Generate(polytope.FiveCell))

	longest := FindLongestEdges(result, 3)
	require.Len(t, longest, 3)
	assert.GreaterOrEqual(t, longest[0].Length, longest[1].Length)
	assert.GreaterOrEqual(t, longest[1].Length, longest[2].Length)
	assert.InDelta(t, result.MaxEdgeLength, longest[0].Length, 1e-12)

	shortest := FindShortestEdges(result, 100)
	require.Len(t, shortest, 10)
	assert.InDelta(t, result.MinEdgeLength, shortest[0].Length, 1e-12)

	assert.Empty(t, FindShortestEdges(result, -1))

	all := FindEdgesByLength(result, 0, math.Inf(1))
	assert.Len(t, all, 10)
	assert.Empty(t, FindEdgesByLength(result, 100, 200))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "1.500000 units", FormatMeasurement(1.5, ""))
	assert.Equal(t, "2.000000 mm", FormatMeasurement(2, "mm"))
	assert.Equal(t, "(1.000000, -2.000000, 0.500000, 0.000000)", FormatVector(geometry.NewVector4(1, -2, 0.5, 0)))
}
