package progress

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager builds an isolated gdata manager and removes its
// directory when the test finishes.
func createTestGdataManager(t *testing.T, testName string) *gdata.Manager {
	t.Helper()
	appName := fmt.Sprintf("merge_defense_test_%s_%d", testName, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil
	}
	t.Cleanup(func() {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			os.RemoveAll(filepath.Join(homeDir, ".local", "share", appName))
		}
	})
	return manager
}

func TestNilManagerDegradesToMemory(t *testing.T) {
	m := NewManager(nil)
	m.Bank(120)
	if m.BankedCoins() != 120 {
		t.Errorf("banked coins: got %d, want 120", m.BankedCoins())
	}
	if err := m.Save(); err != nil {
		t.Errorf("Save with nil backend should be a no-op, got %v", err)
	}
}

func TestBankAndBuyRoundTrip(t *testing.T) {
	backend := createTestGdataManager(t, "roundtrip")
	if backend == nil {
		t.Skip("cannot create gdata manager in this environment")
	}

	m := NewManager(backend)
	m.Bank(500)
	if !m.Buy(UpgradeCoinBonus) {
		t.Fatal("purchase should succeed with 500 banked")
	}

	// A fresh manager over the same backend must see the saved state.
	reloaded := NewManager(backend)
	if reloaded.BankedCoins() != 450 {
		t.Errorf("reloaded banked coins: got %d, want 450", reloaded.BankedCoins())
	}
	if reloaded.Level(UpgradeCoinBonus) != 1 {
		t.Errorf("reloaded coin bonus level: got %d, want 1", reloaded.Level(UpgradeCoinBonus))
	}
}

func TestBuyRejectsUnaffordable(t *testing.T) {
	m := NewManager(nil)
	m.Bank(10)
	if m.Buy(UpgradeCoinBonus) {
		t.Error("purchase with insufficient coins should fail")
	}
	if m.BankedCoins() != 10 {
		t.Error("failed purchase must not spend coins")
	}
}

func TestCostDoublesPerLevel(t *testing.T) {
	m := NewManager(nil)
	m.Bank(1 << 20)

	want := []int{50, 100, 200, 400, 800}
	for i, w := range want {
		if got := m.Cost(UpgradeExtraTime); got != w {
			t.Fatalf("level %d cost: got %d, want %d", i, got, w)
		}
		if !m.Buy(UpgradeExtraTime) {
			t.Fatalf("purchase at level %d failed", i)
		}
	}
	if got := m.Cost(UpgradeExtraTime); got != 0 {
		t.Errorf("maxed upgrade should cost 0, got %d", got)
	}
	if m.Buy(UpgradeExtraTime) {
		t.Error("maxed upgrade should not be purchasable")
	}
}

func TestDerivedValues(t *testing.T) {
	m := NewManager(nil)
	if m.CoinMultiplier() != 1.0 {
		t.Errorf("base multiplier: got %v", m.CoinMultiplier())
	}
	if m.StartingTier() != 1 {
		t.Errorf("base starting tier: got %d", m.StartingTier())
	}

	m.Bank(1 << 20)
	m.Buy(UpgradeCoinBonus)
	m.Buy(UpgradeStartingTier)
	m.Buy(UpgradeStartingTier)

	if m.CoinMultiplier() != 1.1 {
		t.Errorf("multiplier after one level: got %v, want 1.1", m.CoinMultiplier())
	}
	if m.StartingTier() != 3 {
		t.Errorf("starting tier after two levels: got %d, want 3", m.StartingTier())
	}
	if m.Buy(UpgradeStartingTier) {
		t.Error("starting tier should cap at level 2")
	}
	if m.RunDuration() != 90 {
		t.Errorf("run duration without extra time: got %v", m.RunDuration())
	}
}
