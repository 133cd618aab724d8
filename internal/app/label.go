package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Label is a boxed text with an optional highlight
type Label struct {
	Text       string
	ScreenPos  rl.Vector2 // Top center of the text
	BaseColor  rl.Color
	HoverColor rl.Color
	IsHovered  bool
}

// Draw renders the label and returns its bounding rectangle
func (l *Label) Draw(font rl.Font, fontSize float32, padding float32) rl.Rectangle {
	color := l.BaseColor
	borderWidth := float32(1)
	if l.IsHovered {
		color = l.HoverColor
		borderWidth = 2
	}

	textSize := rl.MeasureTextEx(font, l.Text, fontSize, 1)

	rect := rl.Rectangle{
		X:      l.ScreenPos.X - textSize.X/2 - padding,
		Y:      l.ScreenPos.Y - padding,
		Width:  textSize.X + 2*padding,
		Height: textSize.Y + 2*padding,
	}

	rl.DrawRectangleRec(rect, rl.NewColor(20, 20, 20, 220))
	rl.DrawRectangleLinesEx(rect, borderWidth, color)

	textPos := rl.Vector2{
		X: l.ScreenPos.X - textSize.X/2,
		Y: l.ScreenPos.Y,
	}
	rl.DrawTextEx(font, l.Text, textPos, fontSize, 1, color)

	return rect
}
