package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"

	"github.com/philipparndt/go4d/pkg/animation"
	"golang.org/x/image/draw"
)

// WritePNG encodes an image as PNG
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// WriteGIF advances the state frames times and encodes the result as an
// animated GIF. delay is the per-frame delay in 100ths of a second.
func WriteGIF(w io.Writer, s *animation.State, frames, delay int, style Style) error {
	if frames <= 0 {
		return fmt.Errorf("frame count must be positive, got %d", frames)
	}

	// Paletted output has no room for scaled-down intermediate colours
	style.Supersample = 1
	pal := color.Palette{style.Background, style.Edge, style.Vertex, style.Label}

	vp := s.Viewport()
	width, height := int(vp.Width), int(vp.Height)

	anim := &gif.GIF{
		Image: make([]*image.Paletted, 0, frames),
		Delay: make([]int, 0, frames),
	}

	for i := 0; i < frames; i++ {
		img := Draw(s.Advance(), width, height, style)
		paletted := image.NewPaletted(img.Bounds(), pal)
		draw.Draw(paletted, paletted.Bounds(), img, image.Point{}, draw.Src)

		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, delay)
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("failed to encode gif: %w", err)
	}
	return nil
}
