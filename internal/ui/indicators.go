// internal/ui/indicators.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-merge-defense/internal/config"
)

// HUD draws the run readouts: coins, remaining time, wave number, and the
// speed and pause controls in the top-right corner.
type HUD struct {
	fontFace font.Face
}

func NewHUD(fontFace font.Face) *HUD {
	return &HUD{fontFace: fontFace}
}

func (h *HUD) Draw(screen *ebiten.Image, coins int, timeLeft float64, wave int, speedIndex int, paused bool) {
	// Coin indicator, top-left.
	vector.DrawFilledCircle(screen,
		float32(config.IndicatorOffsetX), 30, config.IndicatorRadius,
		config.TextCoinColor, true)
	text.Draw(screen, fmt.Sprintf("%d", coins), h.fontFace,
		config.IndicatorOffsetX+18, 35, config.TextLightColor)

	// Timer and wave, centered.
	timer := fmt.Sprintf("%d:%02d", int(timeLeft)/60, int(timeLeft)%60)
	bounds := text.BoundString(h.fontFace, timer)
	text.Draw(screen, timer, h.fontFace,
		(config.ScreenWidth-bounds.Dx())/2, 28, config.TextTimerColor)

	waveLabel := fmt.Sprintf("wave %d", wave)
	bounds = text.BoundString(h.fontFace, waveLabel)
	text.Draw(screen, waveLabel, h.fontFace,
		(config.ScreenWidth-bounds.Dx())/2, 46, config.TextLightColor)

	h.drawSpeedButton(screen, speedIndex)
	h.drawPauseButton(screen, paused)
}

// SpeedButtonClicked reports whether the pixel position hits the speed toggle.
func (h *HUD) SpeedButtonClicked(x, y int) bool {
	dx := float64(x) - config.SpeedButtonX
	dy := float64(y) - config.SpeedButtonY
	return dx*dx+dy*dy <= config.SpeedButtonSize*config.SpeedButtonSize
}

// PauseButtonClicked reports whether the pixel position hits the pause toggle.
func (h *HUD) PauseButtonClicked(x, y int) bool {
	dx := float64(x) - config.PauseButtonX
	dy := float64(y) - config.PauseButtonY
	return dx*dx+dy*dy <= config.PauseButtonSize*config.PauseButtonSize
}

func (h *HUD) drawSpeedButton(screen *ebiten.Image, speedIndex int) {
	c := config.SpeedButtonColors[speedIndex%len(config.SpeedButtonColors)]
	vector.DrawFilledCircle(screen,
		float32(config.SpeedButtonX), float32(config.SpeedButtonY),
		float32(config.SpeedButtonSize), c, true)
	label := fmt.Sprintf("x%g", config.SpeedMultipliers[speedIndex%len(config.SpeedMultipliers)])
	bounds := text.BoundString(h.fontFace, label)
	text.Draw(screen, label, h.fontFace,
		int(config.SpeedButtonX)-bounds.Dx()/2, int(config.SpeedButtonY)+4,
		config.TextDarkColor)
}

func (h *HUD) drawPauseButton(screen *ebiten.Image, paused bool) {
	vector.DrawFilledCircle(screen,
		float32(config.PauseButtonX), float32(config.PauseButtonY),
		float32(config.PauseButtonSize), config.ButtonColor, true)
	if paused {
		label := ">"
		bounds := text.BoundString(h.fontFace, label)
		text.Draw(screen, label, h.fontFace,
			int(config.PauseButtonX)-bounds.Dx()/2, int(config.PauseButtonY)+4,
			config.TextLightColor)
		return
	}
	vector.DrawFilledRect(screen,
		float32(config.PauseButtonX)-5, float32(config.PauseButtonY)-5,
		3, 10, config.TextLightColor, true)
	vector.DrawFilledRect(screen,
		float32(config.PauseButtonX)+2, float32(config.PauseButtonY)-5,
		3, 10, config.TextLightColor, true)
}
