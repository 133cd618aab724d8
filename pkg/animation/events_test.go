package animation

import (
	"testing"

	"github.com/philipparndt/go4d/pkg/polytope"
	"github.com/philipparndt/go4d/pkg/projection"
	"github.com/philipparndt/go4d/pkg/rotor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch_RotateGesture(t *testing.T) {
	s := newTestState()

	s.Dispatch(PointerMove{X: 50, Y: 50})
	s.Dispatch(PointerDown{Button: ButtonPrimary, X: 0, Y: 0})
	s.Dispatch(PointerMove{X: 100, Y: 0})
	require.Equal(t, rotor.Angles{}, s.Angles())

	s.Dispatch(PointerDown{Button: ButtonSecondary, X: 0, Y: 0})
	require.True(t, s.ManualRotating())
	s.Dispatch(PointerMove{X: 20, Y: -10})
	s.Dispatch(PointerUp{Button: ButtonSecondary})
	require.False(t, s.ManualRotating())
	s.Dispatch(PointerMove{X: 500, Y: 500})

	angles := s.Angles()
	assert.InDelta(t, 0.2, angles[rotor.XY], 1e-12)
	assert.InDelta(t, -0.1, angles[rotor.XZ], 1e-12)
}

func TestDispatch_WheelZoomsOrNudges(t *testing.T) {
	s := New(DefaultOptions())

	s.Dispatch(Wheel{Delta: -1})
	assert.InDelta(t, 9.0, s.Zoom(), 1e-12)

	s.Dispatch(Wheel{Delta: 1, OverControl: true, Plane: rotor.XW})
	assert.InDelta(t, 9.0, s.Zoom(), 1e-12)
	assert.InDelta(t, RateStep, s.Rates()[rotor.XW], 1e-15)
	assert.Zero(t, s.Rates()[rotor.XY])

	s.Dispatch(Wheel{Delta: 0, OverControl: true, Plane: rotor.XW})
	assert.InDelta(t, 0, s.Rates()[rotor.XW], 1e-15)
}

func TestDispatch_MiddleClickResetsControl(t *testing.T) {
	s := newTestState()

	s.Dispatch(PointerDown{Button: ButtonMiddle})
	require.Equal(t, newTestState().Rates(), s.Rates())

	s.Dispatch(PointerDown{Button: ButtonMiddle, OverControl: true, Plane: rotor.XZ})
	assert.Equal(t, 0.0, s.Rates()[rotor.XZ])
	assert.Equal(t, 0.01, s.Rates()[rotor.XY])
}

func TestDispatch_Keys(t *testing.T) {
	s := newTestState()

	s.Dispatch(KeyPress{Key: KeySpace})
	assert.Equal(t, polytope.FiveCell, s.Shape())

	s.Dispatch(KeyPress{Key: KeyF})
	assert.False(t, s.FreeRotation())

	s.Dispatch(KeyPress{Key: KeyBackspace})
	assert.Equal(t, Rates{}, s.Rates())

	s.ToggleFreeRotation()
	s.SetRotationRate(rotor.ZW, 0.02)
	s.Tick()
	s.Dispatch(KeyPress{Key: KeyHome})
	assert.Equal(t, rotor.Angles{}, s.Angles())

	s.Dispatch(KeyPress{Key: KeyUnknown})
	assert.Equal(t, polytope.FiveCell, s.Shape())
}

func TestDispatch_Commands(t *testing.T) {
	s := newTestState()

	s.Dispatch(SliderSet{Plane: rotor.YZ, Value: 0.3})
	assert.Equal(t, MaxRate, s.Rates()[rotor.YZ])

	s.Dispatch(Reset{Plane: rotor.YZ})
	assert.Equal(t, 0.0, s.Rates()[rotor.YZ])

	s.Dispatch(ToggleFreeRotation{})
	assert.False(t, s.FreeRotation())

	s.Dispatch(NextShape{})
	s.Dispatch(NextShape{})
	assert.Equal(t, polytope.SixteenCell, s.Shape())

	s.Dispatch(Resize{Width: 300, Height: 200})
	assert.Equal(t, projection.Viewport{Width: 300, Height: 200}, s.Viewport())
}

func TestDirectionOf(t *testing.T) {
	assert.Equal(t, WheelUp, DirectionOf(0.5))
	assert.Equal(t, WheelDown, DirectionOf(-3))
	assert.Equal(t, WheelDown, DirectionOf(0))
}
