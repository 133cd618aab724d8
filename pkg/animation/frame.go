package animation

import (
	"github.com/philipparndt/go4d/pkg/geometry"
	"github.com/philipparndt/go4d/pkg/rotor"
)

// Segment is an edge resolved to screen coordinates
type Segment struct {
	I, J     int
	From, To geometry.Vector2
}

// Frame is everything a presentation surface needs to draw one frame
type Frame struct {
	Name     string
	Points   []geometry.Vector2
	Segments []Segment
}

// Frame rotates, projects and maps the active polytope to screen space.
// Points at the projection singularity are passed through as non-finite values.
func (s *State) Frame() Frame {
	p := s.polytope

	rotated := rotor.Rotate(p.Vertices, s.angles)
	points := s.viewport.ToScreen(s.projector.Project(rotated), s.Scale())

	segments := make([]Segment, len(p.Edges))
	for i, e := range p.Edges {
		segments[i] = Segment{I: e.I, J: e.J, From: points[e.I], To: points[e.J]}
	}

	return Frame{
		Name:     p.Name,
		Points:   points,
		Segments: segments,
	}
}

// Advance runs Tick and returns the resulting frame
func (s *State) Advance() Frame {
	s.Tick()
	return s.Frame()
}
