// internal/ui/button.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-merge-defense/internal/config"
)

// Button is a clickable labeled rectangle.
type Button struct {
	Rect     image.Rectangle
	Text     string
	fontFace font.Face
}

func NewButton(rect image.Rectangle, label string, fontFace font.Face) *Button {
	return &Button{Rect: rect, Text: label, fontFace: fontFace}
}

// Contains reports whether the pixel position is inside the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

func (b *Button) Draw(screen *ebiten.Image, mouseX, mouseY int) {
	bg := config.ButtonColor
	if b.Contains(mouseX, mouseY) {
		bg = config.ButtonHoverColor
	}
	vector.DrawFilledRect(screen,
		float32(b.Rect.Min.X), float32(b.Rect.Min.Y),
		float32(b.Rect.Dx()), float32(b.Rect.Dy()), bg, true)
	vector.StrokeRect(screen,
		float32(b.Rect.Min.X), float32(b.Rect.Min.Y),
		float32(b.Rect.Dx()), float32(b.Rect.Dy()),
		config.StrokeWidth, config.PanelStrokeColor, true)

	bounds := text.BoundString(b.fontFace, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2
	text.Draw(screen, b.Text, b.fontFace, tx, ty, config.TextLightColor)
}
