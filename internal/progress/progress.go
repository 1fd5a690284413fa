// internal/progress/progress.go
package progress

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"go-merge-defense/internal/config"
	"go-merge-defense/pkg/utils"
)

// UpgradeKind names one permanent meta-upgrade.
type UpgradeKind string

const (
	UpgradeStartingTier UpgradeKind = "startingTier" // towers leave the panel at a higher tier
	UpgradeCoinBonus    UpgradeKind = "coinBonus"    // +10% coins per level
	UpgradeExtraTime    UpgradeKind = "extraTime"    // +10s run duration per level
)

// Starting tier stops at 3 so every run keeps at least two merge steps of
// headroom below the tier cap.
const MaxStartingTierLevel = 2

const MaxUpgradeLevel = 5

// SaveData is the persisted meta-progression state.
type SaveData struct {
	BankedCoins int            `yaml:"bankedCoins"`
	Levels      map[string]int `yaml:"levels"`
}

func defaultSaveData() *SaveData {
	return &SaveData{
		BankedCoins: 0,
		Levels:      make(map[string]int),
	}
}

const (
	progressObject   = "progress"
	progressProperty = "player"
)

// Manager owns the banked meta-currency and permanent upgrades, persisted
// through gdata. A nil gdata manager degrades to in-memory state.
type Manager struct {
	gdataManager *gdata.Manager
	data         *SaveData
}

func NewManager(gdataManager *gdata.Manager) *Manager {
	m := &Manager{
		gdataManager: gdataManager,
		data:         defaultSaveData(),
	}
	if err := m.Load(); err != nil {
		log.Printf("progress: failed to load save: %v (starting fresh)", err)
	}
	return m
}

// Load reads the save blob from gdata. Missing data is not an error.
func (m *Manager) Load() error {
	if m.gdataManager == nil {
		return nil
	}
	if !m.gdataManager.ObjectPropExists(progressObject, progressProperty) {
		return nil
	}
	data, err := m.gdataManager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}
	loaded := defaultSaveData()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	if loaded.Levels == nil {
		loaded.Levels = make(map[string]int)
	}
	m.data = loaded
	return nil
}

// Save writes the save blob through gdata. A nil manager is a no-op.
func (m *Manager) Save() error {
	if m.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(m.data)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}
	if err := m.gdataManager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

func (m *Manager) BankedCoins() int {
	return m.data.BankedCoins
}

// Bank moves a finished run's coins into the permanent bank and saves.
func (m *Manager) Bank(coins int) {
	if coins <= 0 {
		return
	}
	m.data.BankedCoins += coins
	if err := m.Save(); err != nil {
		log.Printf("progress: %v", err)
	}
}

func (m *Manager) Level(kind UpgradeKind) int {
	return m.data.Levels[string(kind)]
}

func (m *Manager) maxLevel(kind UpgradeKind) int {
	if kind == UpgradeStartingTier {
		return MaxStartingTierLevel
	}
	return MaxUpgradeLevel
}

// Cost returns the price of the next level, or 0 when maxed out.
func (m *Manager) Cost(kind UpgradeKind) int {
	level := m.Level(kind)
	if level >= m.maxLevel(kind) {
		return 0
	}
	base := 50
	if kind == UpgradeStartingTier {
		base = 200
	}
	// Doubles per owned level.
	return base << level
}

// Buy purchases the next level of an upgrade if affordable. Saves on success.
func (m *Manager) Buy(kind UpgradeKind) bool {
	cost := m.Cost(kind)
	if cost == 0 || m.data.BankedCoins < cost {
		return false
	}
	m.data.BankedCoins -= cost
	m.data.Levels[string(kind)]++
	if err := m.Save(); err != nil {
		log.Printf("progress: %v", err)
	}
	return true
}

// CoinMultiplier is applied by the game layer to every raw coin amount.
func (m *Manager) CoinMultiplier() float64 {
	return 1 + 0.1*float64(m.Level(UpgradeCoinBonus))
}

// RunDuration includes purchased extra time.
func (m *Manager) RunDuration() float64 {
	return config.RunDuration + 10*float64(m.Level(UpgradeExtraTime))
}

// StartingTier is the tier of towers dragged from the panel.
func (m *Manager) StartingTier() int {
	return utils.Clamp(1+m.Level(UpgradeStartingTier), 1, config.MaxTier)
}
