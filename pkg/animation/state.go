// Package animation owns the mutable viewer state: the active polytope, the six
// rotation angles and rates, zoom, and the interaction flags. Hosts call Tick
// once per display frame, feed input through Dispatch (or the direct methods),
// and read back a Frame to draw.
//
// State is not safe for concurrent use. Hosts drive it from a single thread.
package animation

import (
	"math"

	"github.com/philipparndt/go4d/pkg/geometry"
	"github.com/philipparndt/go4d/pkg/polytope"
	"github.com/philipparndt/go4d/pkg/projection"
	"github.com/philipparndt/go4d/pkg/rotor"
)

const (
	MinRate  = -0.05 // per-frame angle increment limits
	MaxRate  = 0.05
	RateStep = 0.001 // knob wheel increment

	MinZoom     = 0.1
	MaxZoom     = 10.0
	DefaultZoom = 10.0
	zoomIn      = 1.1
	zoomOut     = 0.9

	// PointerSensitivity converts pointer pixels to radians
	PointerSensitivity = 0.01
)

// Rates holds the per-frame angle increment for each plane, indexed by rotor.Plane
type Rates [rotor.PlaneCount]float64

// Options configures a new State
type Options struct {
	Shape        polytope.Shape
	Zoom         float64
	Rates        Rates
	FreeRotation bool
	Viewport     projection.Viewport
}

// DefaultOptions returns the startup settings of the viewer. The original
// program advanced once at startup and opened on the 5-cell; go4d opens on the
// hypercube.
func DefaultOptions() Options {
	return Options{
		Shape:        polytope.Hypercube,
		Zoom:         DefaultZoom,
		FreeRotation: true,
		Viewport:     projection.Viewport{Width: 800, Height: 600},
	}
}

// State is the complete animation and interaction state
type State struct {
	shape     polytope.Shape
	polytope  *polytope.Polytope
	angles    rotor.Angles
	rates     Rates
	zoom      float64
	startZoom float64
	viewport  projection.Viewport
	projector projection.Projector

	freeRotation   bool
	manualRotating bool
	lastPointer    geometry.Vector2
}

// New creates a state from options. Zoom and rates are clamped; a zero zoom
// selects DefaultZoom.
func New(opts Options) *State {
	zoom := opts.Zoom
	if zoom == 0 {
		zoom = DefaultZoom
	}
	zoom = clampZoom(zoom)

	s := &State{
		zoom:         zoom,
		startZoom:    zoom,
		viewport:     opts.Viewport,
		projector:    projection.New(),
		freeRotation: opts.FreeRotation,
	}
	s.SetRates(opts.Rates)
	s.SetShape(opts.Shape)
	return s
}

// Tick advances every angle by its rate when free rotation is on
func (s *State) Tick() {
	if !s.freeRotation {
		return
	}
	for i := range s.angles {
		s.angles[i] += s.rates[i]
	}
}

// ChangeShape switches to the next catalog shape. Angles and rates are kept.
func (s *State) ChangeShape() {
	s.SetShape(s.shape.Next())
}

// SetShape switches to the given shape, wrapping out-of-range ids. The new
// polytope is fully built before it replaces the current one.
func (s *State) SetShape(shape polytope.Shape) {
	shape = polytope.Wrap(int(shape))
	p := polytope.Generate(shape)
	s.shape, s.polytope = shape, p
}

// Shape returns the active shape id
func (s *State) Shape() polytope.Shape {
	return s.shape
}

// ShapeName returns the display name of the active shape
func (s *State) ShapeName() string {
	return s.polytope.Name
}

// Polytope returns the active polytope. Callers must not modify it.
func (s *State) Polytope() *polytope.Polytope {
	return s.polytope
}

// Angles returns the current rotation angles
func (s *State) Angles() rotor.Angles {
	return s.angles
}

// Rates returns the current rotation rates
func (s *State) Rates() Rates {
	return s.rates
}

// FreeRotation reports whether angles advance on Tick
func (s *State) FreeRotation() bool {
	return s.freeRotation
}

// SetFreeRotation turns automatic rotation on or off
func (s *State) SetFreeRotation(on bool) {
	s.freeRotation = on
}

// ToggleFreeRotation flips automatic rotation
func (s *State) ToggleFreeRotation() {
	s.freeRotation = !s.freeRotation
}

// ManualRotating reports whether a rotate gesture is in progress
func (s *State) ManualRotating() bool {
	return s.manualRotating
}

// Viewport returns the current viewport
func (s *State) Viewport() projection.Viewport {
	return s.viewport
}

// Resize updates the viewport; non-positive sizes are ignored
func (s *State) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.viewport = projection.Viewport{Width: width, Height: height}
}

// Scale returns the current screen scale
func (s *State) Scale() float64 {
	return s.viewport.Scale(s.zoom)
}

// ResetView zeroes all angles and restores the startup zoom
func (s *State) ResetView() {
	s.angles = rotor.Angles{}
	s.zoom = s.startZoom
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
