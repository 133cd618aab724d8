package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Palette is a Style with colours resolved
type Palette struct {
	Background   color.RGBA
	Edge         color.RGBA
	Vertex       color.RGBA
	VertexRadius float64
}

// Palette resolves the style colours
func (s Style) Palette() (Palette, error) {
	bg, err := ParseColor(s.Background)
	if err != nil {
		return Palette{}, fmt.Errorf("background: %w", err)
	}
	edge, err := ParseColor(s.Edge)
	if err != nil {
		return Palette{}, fmt.Errorf("edge: %w", err)
	}
	vertex, err := ParseColor(s.Vertex)
	if err != nil {
		return Palette{}, fmt.Errorf("vertex: %w", err)
	}
	return Palette{Background: bg, Edge: edge, Vertex: vertex, VertexRadius: s.VertexRadius}, nil
}

// ParseColor accepts #rgb, #rrggbb, #rrggbbaa (the # is optional) or an SVG
// color name such as "white" or "steelblue"
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
