// internal/app/game.go
package app

import (
	"fmt"
	"math"

	"golang.org/x/image/font"

	"go-merge-defense/internal/audio"
	"go-merge-defense/internal/component"
	"go-merge-defense/internal/config"
	"go-merge-defense/internal/core"
	"go-merge-defense/internal/entity"
	"go-merge-defense/internal/event"
	"go-merge-defense/internal/progress"
	"go-merge-defense/internal/system"
	"go-merge-defense/internal/utils"
)

// Game wires the grid, the entity systems and the run state together for a
// single timed run. It implements the grid's effect, coin and sound sinks
// and fans the notifications out to particles, the coin tally and audio.
type Game struct {
	Grid             *core.Grid
	ECS              *entity.ECS
	MovementSystem   *system.MovementSystem
	WaveSystem       *system.WaveSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	EffectSystem     *system.VisualEffectSystem
	RenderSystem     *system.RenderSystem
	EventDispatcher  *event.Dispatcher
	Progress         *progress.Manager
	Sound            *audio.SoundManager
	Rng              *utils.PRNGService

	Coins    int // coins earned this run, post-multiplier
	TimeLeft float64
	runOver  bool

	speedIndex int

	// Anchor of the most recent merge burst; the following coin
	// notification spawns its label there.
	lastBurstX, lastBurstY float64

	dragTower     *core.Tower
	dragFromGrid  bool
	dragOriginCol int
	dragOriginRow int
	dragX, dragY  float64
}

// NewGame builds a fresh run. Seed 0 draws a random seed.
func NewGame(prog *progress.Manager, sound *audio.SoundManager, fontFace font.Face, seed int64) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Progress:        prog,
		Sound:           sound,
		Rng:             rng,
		TimeLeft:        prog.RunDuration(),
	}
	g.Grid = core.NewGrid(
		config.GridCols, config.GridRows,
		config.CellSize, config.GridOffsetX, config.GridOffsetY,
		g, g, g,
	)
	g.MovementSystem = system.NewMovementSystem(ecs, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, eventDispatcher, rng)
	g.CombatSystem = system.NewCombatSystem(ecs, g.Grid)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher)
	g.EffectSystem = system.NewVisualEffectSystem(ecs, rng)
	g.RenderSystem = system.NewRenderSystem(ecs, fontFace)

	eventDispatcher.Subscribe(event.EnemyDestroyed, g)
	eventDispatcher.Subscribe(event.EnemyLeaked, g)
	return g
}

// Update advances one frame. The run clock and all systems honor the
// selected speed multiplier.
func (g *Game) Update(deltaTime float64) {
	if g.runOver {
		return
	}
	deltaTime *= g.SpeedMultiplier()
	g.ECS.GameTime += deltaTime

	g.TimeLeft -= deltaTime
	if g.TimeLeft <= 0 {
		g.TimeLeft = 0
		g.endRun()
		return
	}

	g.WaveSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.EffectSystem.Update(deltaTime)
}

func (g *Game) endRun() {
	g.runOver = true
	g.Progress.Bank(g.Coins)
	g.EventDispatcher.Dispatch(event.Event{Type: event.RunEnded, Data: g.Coins})
}

// RunOver reports whether the run clock has expired.
func (g *Game) RunOver() bool { return g.runOver }

func (g *Game) Wave() int { return g.WaveSystem.Wave() }

func (g *Game) SpeedMultiplier() float64 {
	return config.SpeedMultipliers[g.speedIndex]
}

// CycleSpeed steps through the configured speed multipliers.
func (g *Game) CycleSpeed() int {
	g.speedIndex = (g.speedIndex + 1) % len(config.SpeedMultipliers)
	return g.speedIndex
}

func (g *Game) SpeedIndex() int { return g.speedIndex }

// AddCoins applies the meta coin multiplier to a raw amount and adds the
// result to the run tally.
func (g *Game) AddCoins(raw int) int {
	earned := int(math.Round(float64(raw) * g.Progress.CoinMultiplier()))
	g.Coins += earned
	g.EventDispatcher.Dispatch(event.Event{Type: event.CoinsEarned, Data: earned})
	return earned
}

// MergeBurst implements core.EffectSink.
func (g *Game) MergeBurst(col, row int) {
	x, y := g.Grid.CellCenter(col, row)
	g.lastBurstX, g.lastBurstY = x, y

	tier := 0
	if t := g.Grid.TowerAt(col, row); t != nil {
		tier = t.Tier
	}
	g.EffectSystem.SpawnBurst(x, y, component.Burst{
		Duration: config.BurstLifetime,
		Color:    config.TextCoinColor,
		Count:    config.BurstParticles,
	})
	g.EffectSystem.Shake()
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowersMerged,
		Data: event.MergeInfo{Col: col, Row: row, Tier: tier},
	})
}

// CoinsEarned implements core.CoinSink; the grid passes the raw reward.
func (g *Game) CoinsEarned(amount int) {
	earned := g.AddCoins(amount)
	g.EffectSystem.SpawnFloatText(g.lastBurstX-10, g.lastBurstY-14, component.FloatText{
		Text:     fmt.Sprintf("+%d", earned),
		Duration: config.FloatTextLifetime,
		Color:    config.TextCoinColor,
	})
}

// MergeSound implements core.SoundSink.
func (g *Game) MergeSound(tier int) {
	g.Sound.PlayMerge(tier)
}

// OnEvent handles enemy kills and leaks.
func (g *Game) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		kill, ok := e.Data.(event.KillInfo)
		if !ok {
			return
		}
		earned := g.AddCoins(kill.Reward)
		g.Sound.PlayCoin()
		g.EffectSystem.SpawnFloatText(kill.X-10, kill.Y-16, component.FloatText{
			Text:     fmt.Sprintf("+%d", earned),
			Duration: config.FloatTextLifetime,
			Color:    config.TextCoinColor,
		})
	case event.EnemyLeaked:
		// Leaks cost nothing in a timed run; just flash a marker at the exit.
		g.EffectSystem.SpawnFloatText(config.ScreenWidth-60, config.LaneY-16, component.FloatText{
			Text:     "leak",
			Duration: config.FloatTextLifetime,
			Color:    config.EnemyColor,
		})
	}
}
