package core

import (
	"testing"

	"go-merge-defense/internal/config"
	"go-merge-defense/internal/defs"
)

// recordingSinks captures every notification the grid emits.
type recordingSinks struct {
	bursts  []Cell
	rewards []int
	sounds  []int
}

func (r *recordingSinks) MergeBurst(col, row int) { r.bursts = append(r.bursts, Cell{col, row}) }
func (r *recordingSinks) CoinsEarned(amount int)  { r.rewards = append(r.rewards, amount) }
func (r *recordingSinks) MergeSound(tier int)     { r.sounds = append(r.sounds, tier) }

func newTestGrid(cols, rows int) (*Grid, *recordingSinks) {
	sinks := &recordingSinks{}
	return NewGrid(cols, rows, 64, 0, 0, sinks, sinks, sinks), sinks
}

func snapshot(g *Grid) map[Cell]*Tower {
	m := make(map[Cell]*Tower)
	for _, pt := range g.AllTowers() {
		m[Cell{pt.Col, pt.Row}] = pt.Tower
	}
	return m
}

func TestPlaceTowerOutOfBounds(t *testing.T) {
	g, _ := newTestGrid(4, 3)
	tower := mustTower(t, defs.TowerFire, 1)

	for _, c := range []Cell{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}} {
		if g.PlaceTower(c.Col, c.Row, tower) {
			t.Errorf("placement at %v should fail", c)
		}
	}
	if len(g.AllTowers()) != 0 {
		t.Error("failed placements must not mutate the grid")
	}
	if !tower.Unplaced() {
		t.Error("rejected tower must stay unplaced")
	}
}

func TestPlaceTowerOccupied(t *testing.T) {
	g, _ := newTestGrid(4, 3)
	first := mustTower(t, defs.TowerFire, 1)
	second := mustTower(t, defs.TowerIce, 1)

	if !g.PlaceTower(1, 1, first) {
		t.Fatal("initial placement failed")
	}
	if g.PlaceTower(1, 1, second) {
		t.Fatal("placement into an occupied cell should fail")
	}
	if g.TowerAt(1, 1) != first {
		t.Error("original occupant must be unchanged")
	}
}

func TestRemoveTower(t *testing.T) {
	g, _ := newTestGrid(4, 3)
	tower := mustTower(t, defs.TowerEarth, 2)
	g.PlaceTower(2, 1, tower)

	if got := g.RemoveTower(2, 1); got != tower {
		t.Fatalf("RemoveTower returned %v, want the placed tower", got)
	}
	if !tower.Unplaced() {
		t.Error("removed tower should be unplaced")
	}
	if g.TowerAt(2, 1) != nil {
		t.Error("cell should be empty after removal")
	}
	if got := g.RemoveTower(2, 1); got != nil {
		t.Errorf("removing an empty cell returned %v", got)
	}
	if got := g.RemoveTower(-1, 7); got != nil {
		t.Errorf("out-of-range removal returned %v", got)
	}
}

func TestAdjacentCellCounts(t *testing.T) {
	g, _ := newTestGrid(4, 4)
	cases := []struct {
		cell Cell
		want int
	}{
		{Cell{0, 0}, 2}, {Cell{3, 0}, 2}, {Cell{0, 3}, 2}, {Cell{3, 3}, 2}, // corners
		{Cell{1, 0}, 3}, {Cell{0, 2}, 3}, {Cell{3, 1}, 3}, {Cell{2, 3}, 3}, // edges
		{Cell{1, 1}, 4}, {Cell{2, 2}, 4}, // interior
	}
	for _, c := range cases {
		got := g.AdjacentCells(c.cell.Col, c.cell.Row)
		if len(got) != c.want {
			t.Errorf("AdjacentCells%v: got %d neighbors, want %d", c.cell, len(got), c.want)
		}
	}
}

func TestAdjacentCellOrder(t *testing.T) {
	g, _ := newTestGrid(4, 4)
	got := g.AdjacentCells(1, 1)
	want := []Cell{{0, 1}, {2, 1}, {1, 0}, {1, 2}} // left, right, up, down
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("scan order: got %v, want %v", got, want)
		}
	}
}

func TestPlacementTriggersMerge(t *testing.T) {
	g, sinks := newTestGrid(4, 3)
	g.PlaceTower(0, 0, mustTower(t, defs.TowerFire, 1))

	if !g.PlaceTower(1, 0, mustTower(t, defs.TowerFire, 1)) {
		t.Fatal("placement should succeed")
	}

	merged := g.TowerAt(1, 0)
	if merged == nil || merged.Tier != 2 || merged.Type != defs.TowerFire {
		t.Fatalf("anchor should hold a tier-2 fire tower, got %+v", merged)
	}
	if g.TowerAt(0, 0) != nil {
		t.Error("partner cell should be empty after the merge")
	}
	if len(sinks.bursts) != 1 || sinks.bursts[0] != (Cell{1, 0}) {
		t.Errorf("expected one burst at the anchor, got %v", sinks.bursts)
	}
	if len(sinks.rewards) != 1 || sinks.rewards[0] != 10 {
		t.Errorf("expected one reward of 10, got %v", sinks.rewards)
	}
	if len(sinks.sounds) != 1 || sinks.sounds[0] != 2 {
		t.Errorf("expected one sound at tier 2, got %v", sinks.sounds)
	}
}

func TestNoMergeConditions(t *testing.T) {
	cases := []struct {
		name             string
		existing, placed *Tower
	}{
		{"different type", mt(defs.TowerIce, 1), mt(defs.TowerFire, 1)},
		{"different tier", mt(defs.TowerFire, 2), mt(defs.TowerFire, 1)},
		{"both max tier", mt(defs.TowerFire, config.MaxTier), mt(defs.TowerFire, config.MaxTier)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, sinks := newTestGrid(4, 3)
			g.PlaceTower(0, 0, c.existing)
			if !g.PlaceTower(1, 0, c.placed) {
				t.Fatal("placement should succeed even when nothing merges")
			}
			if g.TowerAt(0, 0) != c.existing || g.TowerAt(1, 0) != c.placed {
				t.Error("both towers must remain unchanged")
			}
			if len(sinks.rewards) != 0 {
				t.Errorf("no rewards expected, got %v", sinks.rewards)
			}
		})
	}
}

func mt(towerType defs.TowerType, tier int) *Tower {
	tower, err := NewTower(towerType, tier)
	if err != nil {
		panic(err)
	}
	return tower
}

func TestChainMerge(t *testing.T) {
	// Tier 1 at (0,0) and tier 2 at (2,0); placing a tier 1 at (1,0) must
	// cascade into a single tier-3 tower at the anchor with two reward
	// events, 10 then 20.
	g, sinks := newTestGrid(4, 3)
	g.PlaceTower(0, 0, mustTower(t, defs.TowerFire, 1))
	g.PlaceTower(2, 0, mustTower(t, defs.TowerFire, 2))

	if !g.PlaceTower(1, 0, mustTower(t, defs.TowerFire, 1)) {
		t.Fatal("placement should succeed")
	}

	final := g.TowerAt(1, 0)
	if final == nil || final.Tier != 3 {
		t.Fatalf("anchor should hold a tier-3 tower, got %+v", final)
	}
	if g.TowerAt(0, 0) != nil || g.TowerAt(2, 0) != nil {
		t.Error("both source cells should be empty")
	}
	if len(sinks.rewards) != 2 || sinks.rewards[0] != 10 || sinks.rewards[1] != 20 {
		t.Fatalf("expected rewards [10 20], got %v", sinks.rewards)
	}
	if len(sinks.bursts) != 2 {
		t.Errorf("each cascade step must emit its own burst, got %d", len(sinks.bursts))
	}
}

func TestLongCascade(t *testing.T) {
	// Neighbors of ascending tier around the anchor: the cascade consumes
	// them in scan order (left, then right, then down) and stops at tier 4.
	g, sinks := newTestGrid(4, 3)
	g.PlaceTower(0, 0, mustTower(t, defs.TowerIce, 1))
	g.PlaceTower(2, 0, mustTower(t, defs.TowerIce, 2))
	g.PlaceTower(1, 1, mustTower(t, defs.TowerIce, 3))

	g.PlaceTower(1, 0, mustTower(t, defs.TowerIce, 1))

	final := g.TowerAt(1, 0)
	if final == nil || final.Tier != 4 {
		t.Fatalf("anchor should hold a tier-4 tower, got %+v", final)
	}
	if len(g.AllTowers()) != 1 {
		t.Errorf("only the merged tower should remain, got %d towers", len(g.AllTowers()))
	}
	want := []int{10, 20, 30}
	if len(sinks.rewards) != len(want) {
		t.Fatalf("expected rewards %v, got %v", want, sinks.rewards)
	}
	for i := range want {
		if sinks.rewards[i] != want[i] {
			t.Fatalf("expected rewards %v, got %v", want, sinks.rewards)
		}
	}
}

func TestScanOrderPrecedence(t *testing.T) {
	// Two simultaneous candidates: the left neighbor wins, the right one
	// stays on the board. Deterministic policy, not proximity or tier.
	g, _ := newTestGrid(4, 3)
	left := mustTower(t, defs.TowerFire, 1)
	right := mustTower(t, defs.TowerFire, 1)
	g.PlaceTower(0, 0, left)
	g.PlaceTower(2, 0, right)

	g.PlaceTower(1, 0, mustTower(t, defs.TowerFire, 1))

	if g.TowerAt(0, 0) != nil {
		t.Error("left partner should have been consumed")
	}
	if g.TowerAt(2, 0) != right || right.Tier != 1 {
		t.Error("right candidate must survive unchanged")
	}
	anchor := g.TowerAt(1, 0)
	if anchor == nil || anchor.Tier != 2 {
		t.Fatalf("anchor should hold a tier-2 tower, got %+v", anchor)
	}
}

func TestNonMergePlacementTouchesOnlyTarget(t *testing.T) {
	g, _ := newTestGrid(4, 3)
	g.PlaceTower(0, 0, mustTower(t, defs.TowerFire, 2))
	g.PlaceTower(2, 1, mustTower(t, defs.TowerIce, 1))
	before := snapshot(g)

	g.PlaceTower(1, 1, mustTower(t, defs.TowerEarth, 1))

	after := snapshot(g)
	delete(after, Cell{1, 1})
	if len(after) != len(before) {
		t.Fatalf("unexpected cell count: %d vs %d", len(after), len(before))
	}
	for c, tower := range before {
		if after[c] != tower {
			t.Errorf("cell %v changed on unrelated placement", c)
		}
	}
}

func TestMergeRewardFormula(t *testing.T) {
	for tier := 1; tier <= 4; tier++ {
		if got := MergeReward(tier); got != tier*10 {
			t.Errorf("MergeReward(%d) = %d, want %d", tier, got, tier*10)
		}
	}
}

func TestAllTowersOrder(t *testing.T) {
	g, _ := newTestGrid(3, 3)
	g.PlaceTower(2, 2, mt(defs.TowerFire, 1))
	g.PlaceTower(0, 0, mt(defs.TowerIce, 1))
	g.PlaceTower(1, 1, mt(defs.TowerEarth, 1))

	got := g.AllTowers()
	want := []Cell{{0, 0}, {1, 1}, {2, 2}}
	if len(got) != len(want) {
		t.Fatalf("got %d towers, want %d", len(got), len(want))
	}
	for i, pt := range got {
		if (Cell{pt.Col, pt.Row}) != want[i] {
			t.Errorf("position %d: got (%d,%d), want %v", i, pt.Col, pt.Row, want[i])
		}
		if pt.Tower != g.TowerAt(pt.Col, pt.Row) {
			t.Errorf("position %d: tower mismatch", i)
		}
	}
}

func TestCellCoordinateConversion(t *testing.T) {
	g, _ := newTestGrid(4, 3)

	x, y := g.CellCenter(2, 1)
	if x != 160 || y != 96 {
		t.Errorf("CellCenter(2,1) = (%v,%v), want (160,96)", x, y)
	}

	cell, ok := g.CellAt(x, y)
	if !ok || cell != (Cell{2, 1}) {
		t.Errorf("CellAt(center) = %v,%v", cell, ok)
	}

	outside := [][2]float64{
		{-1, 10}, {10, -1}, {4 * 64, 10}, {10, 3 * 64}, {1e6, 1e6},
	}
	for _, p := range outside {
		if _, ok := g.CellAt(p[0], p[1]); ok {
			t.Errorf("CellAt(%v,%v) should be outside the grid", p[0], p[1])
		}
	}
}

func TestCellAtEdgesBelongToCells(t *testing.T) {
	g, _ := newTestGrid(4, 3)
	cell, ok := g.CellAt(0, 0)
	if !ok || cell != (Cell{0, 0}) {
		t.Errorf("origin pixel should map to cell (0,0), got %v,%v", cell, ok)
	}
	cell, ok = g.CellAt(4*64-0.5, 3*64-0.5)
	if !ok || cell != (Cell{3, 2}) {
		t.Errorf("last interior pixel should map to (3,2), got %v,%v", cell, ok)
	}
}

// panickySinks verifies that a failing presentation hook cannot corrupt the
// merge cascade.
type panickySinks struct {
	rewards []int
}

func (p *panickySinks) MergeBurst(col, row int) { panic("render layer exploded") }
func (p *panickySinks) CoinsEarned(amount int)  { p.rewards = append(p.rewards, amount) }

func TestSinkPanicDoesNotAbortMerge(t *testing.T) {
	sinks := &panickySinks{}
	g := NewGrid(4, 3, 64, 0, 0, sinks, sinks, nil)

	g.PlaceTower(0, 0, mt(defs.TowerFire, 1))
	g.PlaceTower(2, 0, mt(defs.TowerFire, 2))
	g.PlaceTower(1, 0, mt(defs.TowerFire, 1))

	final := g.TowerAt(1, 0)
	if final == nil || final.Tier != 3 {
		t.Fatalf("cascade should complete despite panicking sink, got %+v", final)
	}
	if len(sinks.rewards) != 2 {
		t.Errorf("coin sink should still see both steps, got %v", sinks.rewards)
	}
}

func TestNilSoundSinkIsOptional(t *testing.T) {
	sinks := &recordingSinks{}
	g := NewGrid(3, 3, 64, 0, 0, sinks, sinks, nil)
	g.PlaceTower(0, 0, mt(defs.TowerFire, 1))
	if !g.PlaceTower(1, 0, mt(defs.TowerFire, 1)) {
		t.Fatal("placement should succeed with no sound sink")
	}
	if g.TowerAt(1, 0).Tier != 2 {
		t.Error("merge should resolve with no sound sink")
	}
}

func TestReset(t *testing.T) {
	g, _ := newTestGrid(3, 3)
	g.PlaceTower(0, 0, mt(defs.TowerFire, 3))
	g.PlaceTower(2, 2, mt(defs.TowerIce, 1))
	g.Reset()
	if len(g.AllTowers()) != 0 {
		t.Error("Reset should clear every cell")
	}
}
