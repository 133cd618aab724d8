package analysis

import (
	"fmt"
	"sort"

	"github.com/philipparndt/go4d/pkg/geometry"
	"github.com/philipparndt/go4d/pkg/polytope"
	"gonum.org/v1/gonum/floats"
)

// EdgeInfo contains information about an edge of a polytope
type EdgeInfo struct {
	Start  geometry.Vector4
	End    geometry.Vector4
	Length float64
	Edge   polytope.Edge
}

// MeasurementResult contains the statistics of a polytope
type MeasurementResult struct {
	Name          string
	BoundingBox   geometry.BoundingBox4
	Dimensions    geometry.Vector4
	VertexCount   int
	EdgeCount     int
	MinDegree     int
	MaxDegree     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	MaxRadius     float64 // largest vertex distance from the origin
	AllEdges      []EdgeInfo
}

// AnalyzePolytope performs comprehensive analysis on a polytope
func AnalyzePolytope(p *polytope.Polytope) *MeasurementResult {
	result := &MeasurementResult{
		Name:        p.Name,
		BoundingBox: geometry.NewBoundingBox4(),
		VertexCount: p.VertexCount(),
		EdgeCount:   p.EdgeCount(),
		AllEdges:    make([]EdgeInfo, 0, p.EdgeCount()),
	}

	radii := make([]float64, len(p.Vertices))
	for i, v := range p.Vertices {
		result.BoundingBox.Extend(v)
		radii[i] = v.Length()
	}
	if len(radii) > 0 {
		result.MaxRadius = floats.Max(radii)
		result.Dimensions = result.BoundingBox.Size()
	}

	degrees := p.Degrees()
	if len(degrees) > 0 {
		result.MinDegree, result.MaxDegree = degrees[0], degrees[0]
		for _, d := range degrees[1:] {
			result.MinDegree = min(result.MinDegree, d)
			result.MaxDegree = max(result.MaxDegree, d)
		}
	}

	lengths := make([]float64, len(p.Edges))
	for i, e := range p.Edges {
		start, end := p.Vertices[e.I], p.Vertices[e.J]
		lengths[i] = start.Distance(end)
		result.AllEdges = append(result.AllEdges, EdgeInfo{
			Start:  start,
			End:    end,
			Length: lengths[i],
			Edge:   e,
		})
	}

	if len(lengths) > 0 {
		result.MinEdgeLength = floats.Min(lengths)
		result.MaxEdgeLength = floats.Max(lengths)
		result.AvgEdgeLength = floats.Sum(lengths) / float64(len(lengths))
	}

	return result
}

// AnalyzeCatalog analyzes every catalog shape in order
func AnalyzeCatalog() []*MeasurementResult {
	results := make([]*MeasurementResult, 0, polytope.Count)
	for _, shape := range polytope.Shapes() {
		results = append(results, AnalyzePolytope(polytope.Generate(shape)))
	}
	return results
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// FindShortestEdges returns the N shortest edges
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

func sortedEdges(result *MeasurementResult, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i], edges[j])
	})

	count = max(0, min(count, len(edges)))
	return edges[:count]
}

// ProjectionSafe reports whether no vertex can reach the perspective
// singularity at the given distance under any rotation
func (r *MeasurementResult) ProjectionSafe(distance float64) bool {
	return r.MaxRadius < distance
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 4D vector
func FormatVector(v geometry.Vector4) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f, %.6f)", v.X, v.Y, v.Z, v.W)
}
