// internal/state/upgrade_state.go
package state

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-merge-defense/internal/audio"
	"go-merge-defense/internal/config"
	"go-merge-defense/internal/progress"
	"go-merge-defense/internal/ui"
)

var _ State = (*UpgradeState)(nil)

// UpgradeState is the between-run shop: banked coins buy permanent
// upgrades, then the next run starts.
type UpgradeState struct {
	sm       *StateMachine
	progress *progress.Manager
	sound    *audio.SoundManager
	fontFace font.Face

	rows     []upgradeRow
	startBtn *ui.Button
}

type upgradeRow struct {
	kind   progress.UpgradeKind
	title  string
	detail string
	button *ui.Button
}

func NewUpgradeState(sm *StateMachine, prog *progress.Manager, sound *audio.SoundManager, fontFace font.Face) *UpgradeState {
	s := &UpgradeState{
		sm:       sm,
		progress: prog,
		sound:    sound,
		fontFace: fontFace,
	}

	entries := []struct {
		kind   progress.UpgradeKind
		title  string
		detail string
	}{
		{progress.UpgradeStartingTier, "Starting tier", "panel towers start one tier higher"},
		{progress.UpgradeCoinBonus, "Coin bonus", "+10% coins from merges and kills"},
		{progress.UpgradeExtraTime, "Extra time", "+10s per run"},
	}

	const rowHeight, buttonWidth = 70, 120
	y := 180
	for _, entry := range entries {
		rect := image.Rect(config.ScreenWidth-320, y, config.ScreenWidth-320+buttonWidth, y+40)
		s.rows = append(s.rows, upgradeRow{
			kind:   entry.kind,
			title:  entry.title,
			detail: entry.detail,
			button: ui.NewButton(rect, "", fontFace),
		})
		y += rowHeight
	}

	s.startBtn = ui.NewButton(
		image.Rect(config.ScreenWidth/2-90, config.ScreenHeight-120, config.ScreenWidth/2+90, config.ScreenHeight-70),
		"NEXT RUN", fontFace)
	return s
}

func (s *UpgradeState) Enter() {}

func (s *UpgradeState) Update(deltaTime float64) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()

	if s.startBtn.Contains(mx, my) {
		s.sm.SetState(NewGameState(s.sm, s.progress, s.sound, s.fontFace))
		return
	}
	for _, row := range s.rows {
		if row.button.Contains(mx, my) {
			if s.progress.Buy(row.kind) {
				s.sound.PlayCoin()
			} else {
				s.sound.PlayError()
			}
			return
		}
	}
}

func (s *UpgradeState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	mx, my := ebiten.CursorPosition()

	s.drawCentered(screen, "RUN COMPLETE", 80, config.TextLightColor)
	s.drawCentered(screen, fmt.Sprintf("bank: %d", s.progress.BankedCoins()), 120, config.TextCoinColor)

	for _, row := range s.rows {
		level := s.progress.Level(row.kind)
		title := fmt.Sprintf("%s (lv %d)", row.title, level)
		text.Draw(screen, title, s.fontFace, 120, row.button.Rect.Min.Y+16, config.TextLightColor)
		text.Draw(screen, row.detail, s.fontFace, 120, row.button.Rect.Min.Y+34, config.TextTimerColor)

		cost := s.progress.Cost(row.kind)
		if cost == 0 {
			row.button.Text = "MAX"
		} else {
			row.button.Text = fmt.Sprintf("buy %d", cost)
		}
		row.button.Draw(screen, mx, my)
	}

	s.startBtn.Draw(screen, mx, my)
}

func (s *UpgradeState) drawCentered(screen *ebiten.Image, label string, y int, c color.Color) {
	bounds := text.BoundString(s.fontFace, label)
	text.Draw(screen, label, s.fontFace, (config.ScreenWidth-bounds.Dx())/2, y, c)
}

func (s *UpgradeState) Exit() {}
