package animation

import (
	"math"

	"github.com/philipparndt/go4d/pkg/rotor"
)

// WheelDirection is the only part of a scroll delta the viewer uses
type WheelDirection int

const (
	WheelDown WheelDirection = iota
	WheelUp
)

// DirectionOf maps a wheel delta to a direction. Positive deltas are "up";
// zero and negative deltas are "down".
func DirectionOf(delta float64) WheelDirection {
	if delta > 0 {
		return WheelUp
	}
	return WheelDown
}

// Zoom returns the current zoom factor
func (s *State) Zoom() float64 {
	return s.zoom
}

// AdjustZoom zooms in by 10% on wheel up and out by 10% on wheel down
func (s *State) AdjustZoom(dir WheelDirection) {
	if dir == WheelUp {
		s.zoom *= zoomIn
	} else {
		s.zoom *= zoomOut
	}
	s.zoom = clampZoom(s.zoom)
}

// clampZoom keeps zoom in range. NaN falls back to DefaultZoom.
func clampZoom(z float64) float64 {
	if math.IsNaN(z) {
		return DefaultZoom
	}
	return clamp(z, MinZoom, MaxZoom)
}

// SetRotationRate sets the rate for one plane, clamped to [MinRate, MaxRate].
// Invalid planes are ignored.
func (s *State) SetRotationRate(plane rotor.Plane, value float64) {
	if !plane.Valid() {
		return
	}
	s.rates[plane] = clampRate(value)
}

// ResetRotationRate sets the rate for one plane to zero
func (s *State) ResetRotationRate(plane rotor.Plane) {
	if !plane.Valid() {
		return
	}
	s.rates[plane] = 0
}

// ResetAllRates stops rotation in every plane
func (s *State) ResetAllRates() {
	s.rates = Rates{}
}

// SetRates replaces all six rates, clamping each
func (s *State) SetRates(rates Rates) {
	for i, r := range rates {
		s.rates[i] = clampRate(r)
	}
}

// NudgeRotationRate moves one rate by RateStep in the wheel direction
func (s *State) NudgeRotationRate(plane rotor.Plane, dir WheelDirection) {
	if !plane.Valid() {
		return
	}
	step := -RateStep
	if dir == WheelUp {
		step = RateStep
	}
	s.rates[plane] = clampRate(s.rates[plane] + step)
}

// clampRate keeps a rate in range. NaN stops the plane.
func clampRate(r float64) float64 {
	if math.IsNaN(r) {
		return 0
	}
	return clamp(r, MinRate, MaxRate)
}

// KnobAngle maps a rate to a knob indicator angle in degrees: MinRate points
// to -135°, zero straight up, MaxRate to +135°.
func KnobAngle(rate float64) float64 {
	normalized := (clampRate(rate) - MinRate) / (MaxRate - MinRate)
	return -135 + normalized*270
}

// BeginRotate starts a rotate gesture at the given pointer position
func (s *State) BeginRotate(x, y float64) {
	s.manualRotating = true
	s.lastPointer.X, s.lastPointer.Y = x, y
}

// EndRotate ends the rotate gesture
func (s *State) EndRotate() {
	s.manualRotating = false
}

// PointerMoved feeds an absolute pointer position; while rotating, the
// movement since the last position rotates the shape.
func (s *State) PointerMoved(x, y float64) {
	if !s.manualRotating {
		return
	}
	dx, dy := x-s.lastPointer.X, y-s.lastPointer.Y
	s.lastPointer.X, s.lastPointer.Y = x, y
	s.ApplyPointerDelta(dx, dy)
}

// ApplyPointerDelta turns a pointer drag into rotation. Horizontal movement
// drives the XY plane and vertical movement the XZ plane; a 2D pointer cannot
// reach the other four planes, which are left to the rate controls.
// It only has an effect while a rotate gesture is active.
func (s *State) ApplyPointerDelta(dx, dy float64) {
	if !s.manualRotating {
		return
	}
	s.angles[rotor.XY] += dx * PointerSensitivity
	s.angles[rotor.XZ] += dy * PointerSensitivity
}
