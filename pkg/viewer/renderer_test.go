package viewer

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/philipparndt/go4d/pkg/animation"
	"github.com/philipparndt/go4d/pkg/config"
	"github.com/philipparndt/go4d/pkg/polytope"
	"github.com/philipparndt/go4d/pkg/rotor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestView(t *testing.T) *PolytopeView {
	t.Helper()
	test.NewApp()

	pal, err := config.Default().Style.Palette()
	require.NoError(t, err)

	opts := animation.DefaultOptions()
	opts.FreeRotation = false
	return NewPolytopeView(animation.New(opts), pal)
}

func TestRenderer_Objects(t *testing.T) {
	v := newTestView(t)
	r := test.WidgetRenderer(v)
	r.Layout(fyne.NewSize(600, 600))

	// background + 32 edges + 16 vertices + label
	assert.Len(t, r.Objects(), 1+32+16+1)

	v.Dispatch(animation.NextShape{})
	r.Refresh()
	assert.Len(t, r.Objects(), 1+10+5+1)
}

func TestHandleKey(t *testing.T) {
	v := newTestView(t)
	changed := 0
	v.SetOnChanged(func() { changed++ })

	v.HandleKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	assert.Equal(t, polytope.FiveCell, v.State().Shape())

	v.HandleKey(&fyne.KeyEvent{Name: fyne.KeyF})
	assert.True(t, v.State().FreeRotation())

	v.HandleKey(&fyne.KeyEvent{Name: fyne.KeyA})
	assert.Equal(t, 2, changed)
}

func TestSecondaryButtonRotates(t *testing.T) {
	v := newTestView(t)

	v.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(10, 10)}})
	require.Equal(t, rotor.Angles{}, v.State().Angles())

	v.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(0, 0)},
		Button:     desktop.MouseButtonSecondary,
	})
	v.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(50, 20)}})
	v.MouseUp(&desktop.MouseEvent{Button: desktop.MouseButtonSecondary})

	angles := v.State().Angles()
	assert.InDelta(t, 0.5, angles[rotor.XY], 1e-6)
	assert.InDelta(t, 0.2, angles[rotor.XZ], 1e-6)
	assert.False(t, v.State().ManualRotating())
}

func TestDrag(t *testing.T) {
	v := newTestView(t)

	v.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: 10, DY: -20}})
	v.DragEnd()

	angles := v.State().Angles()
	assert.InDelta(t, 0.1, angles[rotor.XY], 1e-6)
	assert.InDelta(t, -0.2, angles[rotor.XZ], 1e-6)
	assert.False(t, v.State().ManualRotating())
}

func TestScrolledZooms(t *testing.T) {
	v := newTestView(t)
	v.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: -1}})
	assert.InDelta(t, 9.0, v.State().Zoom(), 1e-9)
}

func TestSetPalette(t *testing.T) {
	v := newTestView(t)
	r := test.WidgetRenderer(v)

	pal := config.Palette{Background: color.RGBA{R: 1, A: 255}, Edge: color.RGBA{G: 2, A: 255}, VertexRadius: 0}
	v.SetPalette(pal)
	r.Refresh()

	assert.Equal(t, pal.Background, r.(*polytopeRenderer).background.FillColor)
}
