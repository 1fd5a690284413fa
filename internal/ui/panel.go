// internal/ui/panel.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-merge-defense/internal/config"
	"go-merge-defense/internal/defs"
)

// TowerPanel is the row of drag sources at the bottom of the screen, one
// slot per tower type in defs.TowerOrder.
type TowerPanel struct {
	slots    []panelSlot
	fontFace font.Face
}

type panelSlot struct {
	towerType defs.TowerType
	rect      image.Rectangle
}

func NewTowerPanel(fontFace font.Face) *TowerPanel {
	p := &TowerPanel{fontFace: fontFace}

	total := len(defs.TowerOrder)*int(config.PanelSlotSize) +
		(len(defs.TowerOrder)-1)*int(config.PanelSpacing)
	x := (config.ScreenWidth - total) / 2
	y := int(config.PanelY)
	for _, tt := range defs.TowerOrder {
		p.slots = append(p.slots, panelSlot{
			towerType: tt,
			rect:      image.Rect(x, y, x+int(config.PanelSlotSize), y+int(config.PanelSlotSize)),
		})
		x += int(config.PanelSlotSize + config.PanelSpacing)
	}
	return p
}

// SlotAt returns the tower type under the pixel position, if any.
func (p *TowerPanel) SlotAt(x, y int) (defs.TowerType, bool) {
	for _, slot := range p.slots {
		if image.Pt(x, y).In(slot.rect) {
			return slot.towerType, true
		}
	}
	return "", false
}

func (p *TowerPanel) Draw(screen *ebiten.Image, mouseX, mouseY int) {
	for _, slot := range p.slots {
		fill := config.PanelColor
		if image.Pt(mouseX, mouseY).In(slot.rect) {
			fill = config.ButtonHoverColor
		}
		vector.DrawFilledRect(screen,
			float32(slot.rect.Min.X), float32(slot.rect.Min.Y),
			float32(slot.rect.Dx()), float32(slot.rect.Dy()), fill, true)
		vector.StrokeRect(screen,
			float32(slot.rect.Min.X), float32(slot.rect.Min.Y),
			float32(slot.rect.Dx()), float32(slot.rect.Dy()),
			config.StrokeWidth, config.PanelStrokeColor, true)

		def, ok := defs.TowerLibrary[slot.towerType]
		if !ok {
			continue
		}
		cx := float32(slot.rect.Min.X + slot.rect.Dx()/2)
		cy := float32(slot.rect.Min.Y + slot.rect.Dy()/2)
		radius := float32(config.PanelSlotSize * def.Visuals.RadiusFactor)
		vector.DrawFilledCircle(screen, cx, cy-6, radius, def.Visuals.Color, true)

		bounds := text.BoundString(p.fontFace, def.Name)
		tx := slot.rect.Min.X + (slot.rect.Dx()-bounds.Dx())/2
		text.Draw(screen, def.Name, p.fontFace, tx, slot.rect.Max.Y-6, config.TextLightColor)
	}
}
