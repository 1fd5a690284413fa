// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-merge-defense/internal/config"
)

var _ State = (*PauseState)(nil)

// PauseState freezes a run. The run is drawn underneath a dimming overlay
// and resumes untouched on unpause.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
}

func NewPauseState(sm *StateMachine, previous *GameState) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if s.previous.PauseButtonClicked(mx, my) {
			unpause = true
		}
	}

	if unpause {
		s.sm.SetState(s.previous)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.DrawPaused(screen)

	vector.DrawFilledRect(screen, 0, 0,
		config.ScreenWidth, config.ScreenHeight,
		color.RGBA{0, 0, 0, 128}, true)

	label := "PAUSED"
	face := s.previous.fontFace
	bounds := text.BoundString(face, label)
	text.Draw(screen, label, face,
		(config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2,
		config.TextLightColor)
}

func (s *PauseState) Exit() {}
