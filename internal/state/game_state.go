// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"go-merge-defense/internal/app"
	"go-merge-defense/internal/audio"
	"go-merge-defense/internal/config"
	"go-merge-defense/internal/progress"
	"go-merge-defense/internal/ui"
	"go-merge-defense/pkg/render"
)

var _ State = (*GameState)(nil)

// GameState runs a single timed run: input, simulation and drawing.
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	progress *progress.Manager
	sound    *audio.SoundManager
	fontFace font.Face

	renderer *render.GridRenderer
	panel    *ui.TowerPanel
	hud      *ui.HUD

	// Offscreen target so screen shake can displace the whole world
	// without touching the HUD.
	world *ebiten.Image

	paused bool
}

func NewGameState(sm *StateMachine, prog *progress.Manager, sound *audio.SoundManager, fontFace font.Face) *GameState {
	g := app.NewGame(prog, sound, fontFace, 0)
	return &GameState{
		sm:       sm,
		game:     g,
		progress: prog,
		sound:    sound,
		fontFace: fontFace,
		renderer: render.NewGridRenderer(g.Grid, fontFace),
		panel:    ui.NewTowerPanel(fontFace),
		hud:      ui.NewHUD(fontFace),
		world:    ebiten.NewImage(config.ScreenWidth, config.ScreenHeight),
	}
}

func (s *GameState) Enter() { s.paused = false }

func (s *GameState) Update(deltaTime float64) {
	if s.game.RunOver() {
		s.sm.SetState(NewUpgradeState(s.sm, s.progress, s.sound, s.fontFace))
		return
	}

	mx, my := ebiten.CursorPosition()
	fx, fy := float64(mx), float64(my)

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.game.CancelDrag()
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case s.hud.SpeedButtonClicked(mx, my):
			s.game.CycleSpeed()
		case s.hud.PauseButtonClicked(mx, my):
			s.game.CancelDrag()
			s.sm.SetState(NewPauseState(s.sm, s))
			return
		default:
			s.handlePress(mx, my, fx, fy)
		}
	}

	if tower, _, _ := s.game.DragTower(); tower != nil {
		s.game.UpdateDrag(fx, fy)
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			s.game.Drop(fx, fy)
		}
	}

	s.game.Update(deltaTime)
}

func (s *GameState) handlePress(mx, my int, fx, fy float64) {
	if towerType, ok := s.panel.SlotAt(mx, my); ok {
		s.game.StartDragFromPanel(towerType, fx, fy)
		return
	}
	if cell, ok := s.game.Grid.CellAt(fx, fy); ok {
		if s.game.Grid.TowerAt(cell.Col, cell.Row) != nil {
			s.game.StartDragFromGrid(cell.Col, cell.Row, fx, fy)
		}
	}
}

func (s *GameState) Draw(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	fx, fy := float64(mx), float64(my)

	s.world.Clear()
	s.renderer.DrawBoard(s.world, fx, fy)
	s.renderer.DrawTowers(s.world)
	s.game.RenderSystem.Draw(s.world)
	if tower, tx, ty := s.game.DragTower(); tower != nil {
		s.renderer.DrawGhost(s.world, tower, tx, ty)
	}

	screen.Fill(config.BackgroundColor)
	op := &ebiten.DrawImageOptions{}
	ox, oy := s.game.EffectSystem.ShakeOffset()
	op.GeoM.Translate(ox, oy)
	screen.DrawImage(s.world, op)

	s.panel.Draw(screen, mx, my)
	s.hud.Draw(screen, s.game.Coins, s.game.TimeLeft, s.game.Wave(), s.game.SpeedIndex(), s.paused)
}

func (s *GameState) Exit() { s.paused = false }

// DrawPaused redraws the run under a pause overlay.
func (s *GameState) DrawPaused(screen *ebiten.Image) {
	s.paused = true
	s.Draw(screen)
}

// PauseButtonClicked forwards hit testing so the pause state can unpause
// from the same button.
func (s *GameState) PauseButtonClicked(x, y int) bool {
	return s.hud.PauseButtonClicked(x, y)
}
