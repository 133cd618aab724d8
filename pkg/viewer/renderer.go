package viewer

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/go4d/pkg/animation"
	"github.com/philipparndt/go4d/pkg/config"
)

// PolytopeView draws the animation state as a fyne wireframe widget and feeds
// pointer, wheel and key input back into the state
type PolytopeView struct {
	widget.BaseWidget
	state     *animation.State
	palette   config.Palette
	frame     animation.Frame
	anim      *fyne.Animation
	dragging  bool
	onChanged func()
}

// NewPolytopeView creates a view over state
func NewPolytopeView(state *animation.State, palette config.Palette) *PolytopeView {
	v := &PolytopeView{
		state:   state,
		palette: palette,
	}
	v.frame = state.Frame()
	v.ExtendBaseWidget(v)
	return v
}

// SetOnChanged sets a callback run after input changed discrete state such as
// the shape or the free rotation flag
func (v *PolytopeView) SetOnChanged(callback func()) {
	v.onChanged = callback
}

// SetPalette replaces the draw colours
func (v *PolytopeView) SetPalette(palette config.Palette) {
	v.palette = palette
	v.Refresh()
}

// State returns the animation state the view draws
func (v *PolytopeView) State() *animation.State {
	return v.state
}

// Start ticks the state once per display frame until Stop
func (v *PolytopeView) Start() {
	if v.anim != nil {
		return
	}
	v.anim = fyne.NewAnimation(time.Second, func(float32) {
		v.Step()
	})
	v.anim.Curve = fyne.AnimationLinear
	v.anim.RepeatCount = fyne.AnimationRepeatForever
	v.anim.Start()
}

// Stop halts the frame ticks
func (v *PolytopeView) Stop() {
	if v.anim != nil {
		v.anim.Stop()
		v.anim = nil
	}
}

// Step advances the state by one tick and redraws
func (v *PolytopeView) Step() {
	v.frame = v.state.Advance()
	v.Refresh()
}

// Dispatch applies an event and redraws
func (v *PolytopeView) Dispatch(e animation.Event) {
	v.state.Dispatch(e)
	v.frame = v.state.Frame()
	v.Refresh()

	switch e.(type) {
	case animation.KeyPress, animation.NextShape, animation.ToggleFreeRotation:
		if v.onChanged != nil {
			v.onChanged()
		}
	}
}

// HandleKey maps a typed key to the viewer's key commands
func (v *PolytopeView) HandleKey(event *fyne.KeyEvent) {
	if key := keyOf(event.Name); key != animation.KeyUnknown {
		v.Dispatch(animation.KeyPress{Key: key})
	}
}

func keyOf(name fyne.KeyName) animation.Key {
	switch name {
	case fyne.KeySpace:
		return animation.KeySpace
	case fyne.KeyF:
		return animation.KeyF
	case fyne.KeyBackspace:
		return animation.KeyBackspace
	case fyne.KeyHome:
		return animation.KeyHome
	default:
		return animation.KeyUnknown
	}
}

func buttonOf(b desktop.MouseButton) animation.Button {
	switch b {
	case desktop.MouseButtonSecondary:
		return animation.ButtonSecondary
	case desktop.MouseButtonTertiary:
		return animation.ButtonMiddle
	default:
		return animation.ButtonPrimary
	}
}

// MouseDown handles button presses; the secondary button starts a rotation
func (v *PolytopeView) MouseDown(event *desktop.MouseEvent) {
	v.Dispatch(animation.PointerDown{
		Button: buttonOf(event.Button),
		X:      float64(event.Position.X),
		Y:      float64(event.Position.Y),
	})
}

// MouseUp handles button releases
func (v *PolytopeView) MouseUp(event *desktop.MouseEvent) {
	v.Dispatch(animation.PointerUp{Button: buttonOf(event.Button)})
}

// MouseIn is part of desktop.Hoverable
func (v *PolytopeView) MouseIn(*desktop.MouseEvent) {}

// MouseMoved feeds pointer positions while a rotation is active
func (v *PolytopeView) MouseMoved(event *desktop.MouseEvent) {
	if !v.state.ManualRotating() {
		return
	}
	v.Dispatch(animation.PointerMove{X: float64(event.Position.X), Y: float64(event.Position.Y)})
}

// MouseOut ends a rotation when the pointer leaves the widget
func (v *PolytopeView) MouseOut() {
	if v.state.ManualRotating() {
		v.Dispatch(animation.PointerUp{Button: animation.ButtonSecondary})
	}
}

// Dragged rotates with the primary button too, for touch pads and screens
func (v *PolytopeView) Dragged(event *fyne.DragEvent) {
	if !v.dragging {
		v.dragging = true
		v.state.BeginRotate(float64(event.Position.X), float64(event.Position.Y))
	}
	v.state.ApplyPointerDelta(float64(event.Dragged.DX), float64(event.Dragged.DY))
	v.frame = v.state.Frame()
	v.Refresh()
}

// DragEnd handles the end of a drag event
func (v *PolytopeView) DragEnd() {
	v.dragging = false
	v.state.EndRotate()
}

// Scrolled handles scroll events for zooming
func (v *PolytopeView) Scrolled(event *fyne.ScrollEvent) {
	v.Dispatch(animation.Wheel{Delta: float64(event.Scrolled.DY)})
}

// CreateRenderer creates the renderer for the widget
func (v *PolytopeView) CreateRenderer() fyne.WidgetRenderer {
	r := &polytopeRenderer{
		view:       v,
		background: canvas.NewRectangle(v.palette.Background),
		label:      canvas.NewText("", v.palette.Edge),
	}
	r.label.TextStyle = fyne.TextStyle{Bold: true}
	r.Refresh()
	return r
}

// polytopeRenderer implements fyne.WidgetRenderer
type polytopeRenderer struct {
	view       *PolytopeView
	background *canvas.Rectangle
	label      *canvas.Text
	lines      []*canvas.Line
	dots       []*canvas.Circle
	objects    []fyne.CanvasObject
}

func (r *polytopeRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.view.state.Resize(float64(size.Width), float64(size.Height))
	r.view.frame = r.view.state.Frame()
	r.Refresh()
}

func (r *polytopeRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *polytopeRenderer) Refresh() {
	f := r.view.frame
	pal := r.view.palette

	r.background.FillColor = pal.Background
	r.background.Refresh()

	r.label.Text = f.Name
	r.label.Color = pal.Edge
	r.label.Move(fyne.NewPos(10, 10))
	r.label.Refresh()

	r.lines = resizeLines(r.lines, len(f.Segments), pal.Edge)
	for i, seg := range f.Segments {
		line := r.lines[i]
		line.StrokeColor = pal.Edge
		if !seg.From.IsFinite() || !seg.To.IsFinite() {
			line.Hide()
			continue
		}
		line.Position1 = fyne.NewPos(float32(seg.From.X), float32(seg.From.Y))
		line.Position2 = fyne.NewPos(float32(seg.To.X), float32(seg.To.Y))
		line.Show()
		line.Refresh()
	}

	r.dots = resizeDots(r.dots, len(f.Points), pal.Vertex)
	size := float32(2 * pal.VertexRadius)
	for i, p := range f.Points {
		dot := r.dots[i]
		dot.FillColor = pal.Vertex
		if !p.IsFinite() || size <= 0 {
			dot.Hide()
			continue
		}
		dot.Resize(fyne.NewSize(size, size))
		dot.Move(fyne.NewPos(float32(p.X)-size/2, float32(p.Y)-size/2))
		dot.Show()
		dot.Refresh()
	}

	r.objects = r.objects[:0]
	r.objects = append(r.objects, r.background)
	for _, line := range r.lines {
		r.objects = append(r.objects, line)
	}
	for _, dot := range r.dots {
		r.objects = append(r.objects, dot)
	}
	r.objects = append(r.objects, r.label)
}

func (r *polytopeRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *polytopeRenderer) Destroy() {}

// resizeLines reuses existing line objects and creates or drops the difference
func resizeLines(lines []*canvas.Line, n int, col color.Color) []*canvas.Line {
	for len(lines) < n {
		line := canvas.NewLine(col)
		line.StrokeWidth = 1
		lines = append(lines, line)
	}
	return lines[:n]
}

func resizeDots(dots []*canvas.Circle, n int, col color.Color) []*canvas.Circle {
	for len(dots) < n {
		dots = append(dots, canvas.NewCircle(col))
	}
	return dots[:n]
}
