// internal/state/menu_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-merge-defense/internal/audio"
	"go-merge-defense/internal/config"
	"go-merge-defense/internal/progress"
)

var _ State = (*MenuState)(nil)

type MenuState struct {
	sm       *StateMachine
	progress *progress.Manager
	sound    *audio.SoundManager
	fontFace font.Face
}

func NewMenuState(sm *StateMachine, prog *progress.Manager, sound *audio.SoundManager, fontFace font.Face) *MenuState {
	return &MenuState{sm: sm, progress: prog, sound: sound, fontFace: fontFace}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewGameState(m.sm, m.progress, m.sound, m.fontFace))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	m.drawCentered(screen, "MERGE DEFENSE", config.ScreenHeight/2-40, config.TextLightColor)
	m.drawCentered(screen, "drag towers onto the grid, merge pairs, survive the clock", config.ScreenHeight/2, config.TextTimerColor)
	m.drawCentered(screen, "press space or click to start", config.ScreenHeight/2+40, config.TextCoinColor)
}

func (m *MenuState) drawCentered(screen *ebiten.Image, label string, y int, c color.Color) {
	bounds := text.BoundString(m.fontFace, label)
	text.Draw(screen, label, m.fontFace, (config.ScreenWidth-bounds.Dx())/2, y, c)
}

func (m *MenuState) Exit() {}
