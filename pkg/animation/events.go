package animation

import "github.com/philipparndt/go4d/pkg/rotor"

// Event is an input record delivered by a host adapter
type Event interface {
	isEvent()
}

// Button identifies a pointer button
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Key identifies a keyboard key the viewer reacts to
type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyF
	KeyBackspace
	KeyHome
)

// PointerDown is a button press. OverControl and Plane name the rate control
// under the pointer, if any.
type PointerDown struct {
	Button      Button
	X, Y        float64
	OverControl bool
	Plane       rotor.Plane
}

// PointerUp is a button release
type PointerUp struct {
	Button Button
}

// PointerMove is an absolute pointer position
type PointerMove struct {
	X, Y float64
}

// Wheel is a scroll. Positive Delta means up.
type Wheel struct {
	Delta       float64
	OverControl bool
	Plane       rotor.Plane
}

// KeyPress is a key press
type KeyPress struct {
	Key Key
}

// SliderSet writes a rate directly from a slider or knob
type SliderSet struct {
	Plane rotor.Plane
	Value float64
}

// Reset zeroes one rate
type Reset struct {
	Plane rotor.Plane
}

// ToggleFreeRotation flips automatic rotation
type ToggleFreeRotation struct{}

// NextShape advances to the next catalog shape
type NextShape struct{}

// Resize reports a new draw target size
type Resize struct {
	Width, Height float64
}

func (PointerDown) isEvent()        {}
func (PointerUp) isEvent()          {}
func (PointerMove) isEvent()        {}
func (Wheel) isEvent()              {}
func (KeyPress) isEvent()           {}
func (SliderSet) isEvent()          {}
func (Reset) isEvent()              {}
func (ToggleFreeRotation) isEvent() {}
func (NextShape) isEvent()          {}
func (Resize) isEvent()             {}

// Dispatch applies an event to the state
func (s *State) Dispatch(e Event) {
	switch ev := e.(type) {
	case PointerDown:
		switch {
		case ev.Button == ButtonSecondary:
			s.BeginRotate(ev.X, ev.Y)
		case ev.Button == ButtonMiddle && ev.OverControl:
			s.ResetRotationRate(ev.Plane)
		}
	case PointerUp:
		if ev.Button == ButtonSecondary {
			s.EndRotate()
		}
	case PointerMove:
		s.PointerMoved(ev.X, ev.Y)
	case Wheel:
		if ev.OverControl {
			s.NudgeRotationRate(ev.Plane, DirectionOf(ev.Delta))
		} else {
			s.AdjustZoom(DirectionOf(ev.Delta))
		}
	case KeyPress:
		s.handleKey(ev.Key)
	case SliderSet:
		s.SetRotationRate(ev.Plane, ev.Value)
	case Reset:
		s.ResetRotationRate(ev.Plane)
	case ToggleFreeRotation:
		s.ToggleFreeRotation()
	case NextShape:
		s.ChangeShape()
	case Resize:
		s.Resize(ev.Width, ev.Height)
	}
}

func (s *State) handleKey(k Key) {
	switch k {
	case KeySpace:
		s.ChangeShape()
	case KeyF:
		s.ToggleFreeRotation()
	case KeyBackspace:
		s.ResetAllRates()
	case KeyHome:
		s.ResetView()
	}
}
