// Package raster draws animation frames into images without a window. It backs
// the render command and produces PNG stills and animated GIFs.
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/philipparndt/go4d/pkg/animation"
	"github.com/philipparndt/go4d/pkg/geometry"
	"golang.org/x/image/draw"
)

// offscreenLimit bounds how far outside the image (in image sizes) an endpoint
// may lie before its segment is skipped
const offscreenLimit = 4

// Style controls colours and sizes of a rendered frame
type Style struct {
	Background   color.RGBA
	Edge         color.RGBA
	Vertex       color.RGBA
	Label        color.RGBA
	VertexRadius int
	ShowLabel    bool
	Supersample  int // render at this multiple and scale down; <= 1 draws directly
}

// DefaultStyle matches the interactive viewer: white wireframe on black
func DefaultStyle() Style {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	return Style{
		Background:   color.RGBA{A: 255},
		Edge:         white,
		Vertex:       white,
		Label:        white,
		VertexRadius: 3,
		ShowLabel:    true,
		Supersample:  1,
	}
}

// Draw renders a frame into a new width×height image. Points that are not
// finite, or far outside the image, are skipped along with their segments.
func Draw(f animation.Frame, width, height int, style Style) *image.RGBA {
	ss := max(1, style.Supersample)
	img := image.NewRGBA(image.Rect(0, 0, width*ss, height*ss))
	draw.Draw(img, img.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)

	limit := float64(offscreenLimit * max(width, height) * ss)

	for _, seg := range f.Segments {
		x1, y1, ok1 := toPixel(seg.From, ss, limit)
		x2, y2, ok2 := toPixel(seg.To, ss, limit)
		if !ok1 || !ok2 {
			continue
		}
		drawLine(img, x1, y1, x2, y2, style.Edge)
	}

	for _, p := range f.Points {
		x, y, ok := toPixel(p, ss, limit)
		if !ok {
			continue
		}
		fillDisc(img, x, y, style.VertexRadius*ss, style.Vertex)
	}

	out := img
	if ss > 1 {
		out = image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	}

	if style.ShowLabel && f.Name != "" {
		drawLabel(out, (width-labelWidth(f.Name))/2, 20, f.Name, style.Label)
	}
	return out
}

// toPixel converts a screen point to integer pixel coordinates
func toPixel(p geometry.Vector2, ss int, limit float64) (int, int, bool) {
	if !p.IsFinite() {
		return 0, 0, false
	}
	x, y := p.X*float64(ss), p.Y*float64(ss)
	if math.Abs(x) > limit || math.Abs(y) > limit {
		return 0, 0, false
	}
	return int(math.Round(x)), int(math.Round(y)), true
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := -1, -1
	if x1 < x2 {
		sx = 1
	}
	if y1 < y2 {
		sy = 1
	}

	err := dx - dy

	for {
		if (image.Point{X: x1, Y: y1}).In(bounds) {
			img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// fillDisc fills a circle scanline by scanline, clipped to the image
func fillDisc(img *image.RGBA, cx, cy, r int, col color.RGBA) {
	bounds := img.Bounds()
	if r <= 0 {
		if (image.Point{X: cx, Y: cy}).In(bounds) {
			img.SetRGBA(cx, cy, col)
		}
		return
	}

	for dy := -r; dy <= r; dy++ {
		y := cy + dy
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		half := int(math.Sqrt(float64(r*r - dy*dy)))
		xStart := max(bounds.Min.X, cx-half)
		xEnd := min(bounds.Max.X-1, cx+half)
		for x := xStart; x <= xEnd; x++ {
			img.SetRGBA(x, y, col)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
