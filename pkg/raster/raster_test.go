package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"math"
	"testing"

	"github.com/philipparndt/go4d/pkg/animation"
	"github.com/philipparndt/go4d/pkg/geometry"
	"github.com/philipparndt/go4d/pkg/polytope"
	"github.com/philipparndt/go4d/pkg/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

func testStyle() Style {
	return Style{
		Background:   color.RGBA{A: 255},
		Edge:         red,
		Vertex:       green,
		Label:        blue,
		VertexRadius: 2,
		Supersample:  1,
	}
}

func hypercubeFrame() animation.Frame {
	s := animation.New(animation.Options{
		Shape:    polytope.Hypercube,
		Zoom:     1,
		Viewport: projection.Viewport{Width: 200, Height: 200},
	})
	return s.Frame()
}

func countColor(img *image.RGBA, c color.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestDraw_PaintsEdgesAndVertices(t *testing.T) {
	f := hypercubeFrame()
	img := Draw(f, 200, 200, testStyle())

	require.Equal(t, image.Rect(0, 0, 200, 200), img.Bounds())
	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(0, 0))
	assert.Positive(t, countColor(img, red))
	assert.Positive(t, countColor(img, green))

	// vertex 15 projects to 100 + 200/3/11
	v := int(math.Round(100 + 200.0/33))
	assert.Equal(t, green, img.RGBAAt(v, v))
}

func TestDraw_SkipsNonFinitePoints(t *testing.T) {
	nan := geometry.NewVector2(math.NaN(), math.NaN())
	inf := geometry.NewVector2(math.Inf(1), 0)
	far := geometry.NewVector2(1e12, -1e12)
	ok := geometry.NewVector2(50, 50)

	f := animation.Frame{
		Points: []geometry.Vector2{nan, inf, far, ok},
		Segments: []animation.Segment{
			{I: 0, J: 3, From: nan, To: ok},
			{I: 1, J: 3, From: inf, To: ok},
			{I: 2, J: 3, From: far, To: ok},
		},
	}

	var img *image.RGBA
	require.NotPanics(t, func() { img = Draw(f, 100, 100, testStyle()) })
	assert.Zero(t, countColor(img, red))
	assert.Equal(t, green, img.RGBAAt(50, 50))
}

func TestDraw_Label(t *testing.T) {
	style := testStyle()
	style.ShowLabel = true

	inked := func(c color.RGBA) bool { return c.B > 128 }

	img := Draw(animation.Frame{Name: "Hypercube"}, 200, 100, style)
	assert.Positive(t, countColorNear(img, inked))

	style.ShowLabel = false
	img = Draw(animation.Frame{Name: "Hypercube"}, 200, 100, style)
	assert.Zero(t, countColorNear(img, inked))
}

func TestLabelWidth(t *testing.T) {
	assert.Zero(t, labelWidth(""))
	assert.Greater(t, labelWidth("24-cell"), labelWidth("8"))
}

func TestDraw_Supersample(t *testing.T) {
	style := testStyle()
	style.Supersample = 3

	img := Draw(hypercubeFrame(), 200, 200, style)
	require.Equal(t, image.Rect(0, 0, 200, 200), img.Bounds())
	corner := img.RGBAAt(0, 0)
	assert.Zero(t, corner.R)
	assert.Zero(t, corner.G)
	assert.Positive(t, countColorNear(img, func(c color.RGBA) bool { return c.R > 64 }))
}

func countColorNear(img *image.RGBA, match func(color.RGBA) bool) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if match(img.RGBAAt(x, y)) {
				n++
			}
		}
	}
	return n
}

func TestDrawLine(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))

	drawLine(img, 1, 1, 8, 1, red)
	for x := 1; x <= 8; x++ {
		assert.Equal(t, red, img.RGBAAt(x, 1))
	}

	drawLine(img, 0, 9, 9, 0, green)
	assert.Equal(t, green, img.RGBAAt(0, 9))
	assert.Equal(t, green, img.RGBAAt(9, 0))
	assert.Equal(t, green, img.RGBAAt(5, 4))

	assert.NotPanics(t, func() { drawLine(img, -5, -5, 20, 20, blue) })
	assert.Equal(t, blue, img.RGBAAt(3, 3))
}

func TestFillDisc(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	fillDisc(img, 10, 10, 3, red)

	assert.Equal(t, red, img.RGBAAt(10, 10))
	assert.Equal(t, red, img.RGBAAt(13, 10))
	assert.Equal(t, red, img.RGBAAt(10, 7))
	assert.NotEqual(t, red, img.RGBAAt(13, 13))

	assert.NotPanics(t, func() { fillDisc(img, 0, 0, 5, green) })
	assert.Equal(t, green, img.RGBAAt(0, 0))
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, Draw(hypercubeFrame(), 200, 200, testStyle())))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 200, 200), decoded.Bounds())
}

func TestWriteGIF(t *testing.T) {
	opts := animation.DefaultOptions()
	opts.Viewport = projection.Viewport{Width: 120, Height: 90}
	opts.Rates = animation.Rates{0.01, 0.02, 0.03}
	s := animation.New(opts)

	var buf bytes.Buffer
	require.NoError(t, WriteGIF(&buf, s, 4, 5, testStyle()))

	decoded, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, decoded.Image, 4)
	assert.Equal(t, []int{5, 5, 5, 5}, decoded.Delay)
	assert.Equal(t, image.Rect(0, 0, 120, 90), decoded.Image[0].Bounds())
	assert.InDelta(t, 0.04, s.Angles()[0], 1e-12)
}

func TestWriteGIF_RejectsZeroFrames(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteGIF(&buf, animation.New(animation.DefaultOptions()), 0, 5, testStyle()))
}
