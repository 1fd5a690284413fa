// internal/system/render.go
package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-merge-defense/internal/component"
	"go-merge-defense/internal/config"
	"go-merge-defense/internal/entity"
)

// RenderSystem draws the dynamic entities: enemies with health bars,
// projectiles, merge bursts and floating labels. The board itself is drawn
// by pkg/render.
type RenderSystem struct {
	ecs      *entity.ECS
	fontFace font.Face
}

func NewRenderSystem(ecs *entity.ECS, fontFace font.Face) *RenderSystem {
	return &RenderSystem{ecs: ecs, fontFace: fontFace}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for id, renderable := range s.ecs.Renderables {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		x := float32(pos.X)
		y := float32(pos.Y)
		vector.DrawFilledCircle(screen, x, y, renderable.Radius, renderable.Color, true)
		if renderable.HasStroke {
			vector.StrokeCircle(screen, x, y, renderable.Radius, config.StrokeWidth, config.TowerStrokeColor, true)
		}

		if health, isEnemy := s.ecs.Healths[id]; isEnemy && health.Max > 0 {
			s.drawHealthBar(screen, pos.X, pos.Y-float64(renderable.Radius)-7, float64(health.Value)/float64(health.Max))
		}
	}

	for id, burst := range s.ecs.Bursts {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		s.drawBurst(screen, pos.X, pos.Y, burst)
	}

	for id, ft := range s.ecs.FloatTexts {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		c := ft.Color
		// Fade out over the second half of the lifetime.
		progress := ft.Timer / ft.Duration
		if progress > 0.5 {
			c.A = uint8(255 * (1 - progress) * 2)
		}
		text.Draw(screen, ft.Text, s.fontFace, int(pos.X), int(pos.Y), c)
	}
}

func (s *RenderSystem) drawHealthBar(screen *ebiten.Image, cx, y, ratio float64) {
	const barWidth, barHeight = 26.0, 4.0
	left := float32(cx - barWidth/2)
	vector.DrawFilledRect(screen, left, float32(y), barWidth, barHeight, config.EnemyHealthBack, true)
	vector.DrawFilledRect(screen, left, float32(y), float32(barWidth*ratio), barHeight, config.EnemyHealthFront, true)
}

func (s *RenderSystem) drawBurst(screen *ebiten.Image, cx, cy float64, burst *component.Burst) {
	progress := burst.Timer / burst.Duration
	radius := 8 + 34*progress
	particle := float32(3 * (1 - progress))
	if particle <= 0 {
		return
	}
	c := burst.Color
	c.A = uint8(255 * (1 - progress))
	for i := 0; i < burst.Count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(burst.Count)
		px := cx + math.Cos(angle)*radius
		py := cy + math.Sin(angle)*radius
		vector.DrawFilledCircle(screen, float32(px), float32(py), particle, c, true)
	}
}
