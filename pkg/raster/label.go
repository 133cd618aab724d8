package raster

import (
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// labelSize is the label font size in points at 72 DPI
const labelSize = 14

var loadLabelFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
})

// labelFace returns the face used for measuring. It falls back to the
// built-in bitmap face if the TrueType font cannot be parsed.
func labelFace() font.Face {
	f, err := loadLabelFont()
	if err != nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    labelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// drawLabel writes text with its baseline at (x, y)
func drawLabel(img *image.RGBA, x, y int, text string, col color.RGBA) {
	src := image.NewUniform(col)

	f, err := loadLabelFont()
	if err == nil {
		c := freetype.NewContext()
		c.SetDPI(72)
		c.SetFont(f)
		c.SetFontSize(labelSize)
		c.SetClip(img.Bounds())
		c.SetDst(img)
		c.SetSrc(src)
		c.SetHinting(font.HintingFull)
		if _, err = c.DrawString(text, freetype.Pt(x, y)); err == nil {
			return
		}
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  src,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// labelWidth returns the advance width of text in pixels
func labelWidth(text string) int {
	return font.MeasureString(labelFace(), text).Ceil()
}
