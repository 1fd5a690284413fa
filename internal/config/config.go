// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 640

	// Board geometry. The grid is a fixed cols x rows board centered
	// horizontally, with the enemy lane above it and the tower panel below.
	GridCols    = 6
	GridRows    = 5
	CellSize    = 72.0
	GridOffsetX = (ScreenWidth - GridCols*CellSize) / 2
	GridOffsetY = 120.0

	// Tier rules. Tier 5 towers are terminal: they attack but never merge.
	MaxTier            = 5
	MergeRewardPerTier = 10

	// Stat scaling per tier above 1. Damage grows geometrically, range and
	// fire rate linearly.
	TierDamageFactor   = 1.5
	TierRangeFactor    = 0.1
	TierFireRateFactor = 0.2

	// Run timing.
	RunDuration  = 90.0
	MaxDeltaTime = 0.06

	// Enemy lane: a fixed straight line across the top of the screen.
	LaneY       = 64.0
	LaneSpawnX  = -24.0
	LaneExitX   = ScreenWidth + 24.0
	EnemyRadius = 11.0

	InitialSpawnInterval = 1.6
	MinSpawnInterval     = 0.45
	SpawnIntervalDecay   = 0.035 // per second of run time
	WaveLength           = 15.0  // seconds per difficulty step

	ProjectileSpeed  = 340.0
	ProjectileRadius = 4.0
	HitRadius        = 12.0

	// Tower panel (drag sources) at the bottom of the screen.
	PanelY        = ScreenHeight - 96
	PanelSlotSize = 64.0
	PanelSpacing  = 24.0

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	SpeedButtonX     = ScreenWidth - 150
	SpeedButtonY     = 30
	SpeedButtonSize  = 14.0
	PauseButtonX     = ScreenWidth - 90
	PauseButtonY     = 30
	PauseButtonSize  = 12.0

	ShakeDuration  = 0.25
	ShakeMagnitude = 4.0

	BurstLifetime     = 0.45
	BurstParticles    = 12
	FloatTextLifetime = 0.9
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	CellFillColor   = color.RGBA{44, 48, 64, 255}
	CellStrokeColor = color.RGBA{70, 78, 100, 255}
	CellHoverColor  = color.RGBA{90, 110, 140, 120}
	LaneColor       = color.RGBA{34, 36, 48, 255}

	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	TextCoinColor    = color.RGBA{255, 215, 0, 255}
	TextTimerColor   = color.RGBA{180, 200, 220, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}

	EnemyColor       = color.RGBA{200, 60, 60, 255}
	EnemyHealthBack  = color.RGBA{40, 40, 40, 200}
	EnemyHealthFront = color.RGBA{80, 220, 80, 220}
	ProjectileColor  = color.RGBA{250, 250, 210, 255}

	PanelColor       = color.RGBA{30, 32, 44, 255}
	PanelStrokeColor = color.RGBA{90, 96, 120, 255}
	ButtonColor      = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor = color.RGBA{100, 160, 210, 220}
	StrokeWidth      = float32(2.0)

	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220},
		{220, 60, 60, 220},
		{194, 178, 128, 255},
	}
	SpeedMultipliers = []float64{1.0, 2.0, 4.0}
)
