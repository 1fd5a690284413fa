// internal/core/grid.go
package core

import (
	"log"

	"go-merge-defense/internal/config"
)

// EffectSink receives one notification per completed merge step.
type EffectSink interface {
	MergeBurst(col, row int)
}

// CoinSink receives the raw (unmultiplied) reward of each merge step.
type CoinSink interface {
	CoinsEarned(amount int)
}

// SoundSink is an optional best-effort hook; tier is the post-merge tier.
type SoundSink interface {
	MergeSound(tier int)
}

// Cell identifies one grid cell.
type Cell struct {
	Col, Row int
}

// PlacedTower pairs a tower with the cell it occupies.
type PlacedTower struct {
	Tower    *Tower
	Col, Row int
}

// Grid owns the placed towers and runs merge resolution. Cells live in a
// flat slice indexed row*cols+col. The grid is mutated only by the game-loop
// goroutine; PlaceTower and its merge cascade complete atomically within one
// call.
type Grid struct {
	cols, rows int
	cells      []*Tower

	cellSize         float64
	offsetX, offsetY float64

	effects EffectSink
	coins   CoinSink
	sound   SoundSink // may be nil
}

// NewGrid creates an empty cols x rows grid. The pixel geometry is used only
// for coordinate conversion. The sound sink may be nil; effect and coin
// sinks must not be.
func NewGrid(cols, rows int, cellSize, offsetX, offsetY float64, effects EffectSink, coins CoinSink, sound SoundSink) *Grid {
	if cols <= 0 || rows <= 0 {
		panic("grid dimensions must be positive")
	}
	return &Grid{
		cols:     cols,
		rows:     rows,
		cells:    make([]*Tower, cols*rows),
		cellSize: cellSize,
		offsetX:  offsetX,
		offsetY:  offsetY,
		effects:  effects,
		coins:    coins,
		sound:    sound,
	}
}

func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

func (g *Grid) inBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

func (g *Grid) index(col, row int) int {
	return row*g.cols + col
}

// TowerAt returns the tower occupying (col,row), or nil for an empty or
// out-of-range cell.
func (g *Grid) TowerAt(col, row int) *Tower {
	if !g.inBounds(col, row) {
		return nil
	}
	return g.cells[g.index(col, row)]
}

// PlaceTower stores t at (col,row) and resolves any merge cascade the
// placement triggers. Returns false without mutation when the cell is out of
// range or occupied. Placement success is independent of whether a merge
// occurred.
func (g *Grid) PlaceTower(col, row int, t *Tower) bool {
	if t == nil || !g.inBounds(col, row) {
		return false
	}
	idx := g.index(col, row)
	if g.cells[idx] != nil {
		return false
	}

	g.cells[idx] = t
	t.Col, t.Row = col, row
	t.X, t.Y = g.CellCenter(col, row)

	g.checkMerge(col, row)
	return true
}

// RemoveTower clears (col,row) and returns the removed tower, or nil. Never
// mutates out-of-range state.
func (g *Grid) RemoveTower(col, row int) *Tower {
	if !g.inBounds(col, row) {
		return nil
	}
	idx := g.index(col, row)
	t := g.cells[idx]
	g.cells[idx] = nil
	if t != nil {
		t.Col, t.Row = -1, -1
	}
	return t
}

// AdjacentCells returns the in-bounds orthogonal neighbors of (col,row) in
// the fixed scan order left, right, up, down. The order is load-bearing:
// when a placement has several valid merge partners, the first one in this
// order wins. Diagonals never count.
func (g *Grid) AdjacentCells(col, row int) []Cell {
	candidates := [4]Cell{
		{col - 1, row},
		{col + 1, row},
		{col, row - 1},
		{col, row + 1},
	}
	cells := make([]Cell, 0, 4)
	for _, c := range candidates {
		if g.inBounds(c.Col, c.Row) {
			cells = append(cells, c)
		}
	}
	return cells
}

// checkMerge resolves merges at the anchor (col,row). After a merge the new
// tower is re-checked at the same anchor, so a single placement can cascade.
// Termination: each step strictly raises the anchor tower's tier, and towers
// at MaxTier never merge.
func (g *Grid) checkMerge(col, row int) bool {
	t := g.TowerAt(col, row)
	if t == nil || t.Tier >= config.MaxTier {
		return false
	}
	for _, c := range g.AdjacentCells(col, row) {
		neighbor := g.TowerAt(c.Col, c.Row)
		if t.CanMergeWith(neighbor) {
			g.performMerge(col, row, c.Col, c.Row)
			g.checkMerge(col, row)
			return true
		}
	}
	return false
}

// performMerge collapses the towers at the anchor and partner cells into a
// single tower of tier+1 at the anchor, then notifies the sinks. The reward
// is sized by the pre-merge tier.
func (g *Grid) performMerge(col, row, partnerCol, partnerRow int) {
	t := g.cells[g.index(col, row)]
	rewardTier := t.Tier

	merged, err := NewTower(t.Type, t.Tier+1)
	if err != nil {
		// Unreachable: both inputs were already validated at construction.
		log.Printf("merge construction failed at (%d,%d): %v", col, row, err)
		return
	}

	g.cells[g.index(col, row)] = nil
	g.cells[g.index(partnerCol, partnerRow)] = nil

	merged.Col, merged.Row = col, row
	merged.X, merged.Y = g.CellCenter(col, row)
	g.cells[g.index(col, row)] = merged

	// Fire-and-forget notifications. A panicking presentation hook must not
	// corrupt grid state or abort the cascade.
	safeNotify(func() { g.effects.MergeBurst(col, row) })
	safeNotify(func() { g.coins.CoinsEarned(MergeReward(rewardTier)) })
	if g.sound != nil {
		safeNotify(func() { g.sound.MergeSound(merged.Tier) })
	}
}

func safeNotify(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("merge notification panicked: %v", r)
		}
	}()
	fn()
}

// AllTowers enumerates every occupied cell in ascending linear-index order.
func (g *Grid) AllTowers() []PlacedTower {
	towers := make([]PlacedTower, 0, len(g.cells))
	for i, t := range g.cells {
		if t != nil {
			towers = append(towers, PlacedTower{Tower: t, Col: i % g.cols, Row: i / g.cols})
		}
	}
	return towers
}

// CellCenter converts a cell to the pixel center of that cell.
func (g *Grid) CellCenter(col, row int) (x, y float64) {
	x = g.offsetX + (float64(col)+0.5)*g.cellSize
	y = g.offsetY + (float64(row)+0.5)*g.cellSize
	return
}

// CellAt converts a pixel coordinate to the cell containing it. The second
// return value is false for pixels outside the grid rectangle.
func (g *Grid) CellAt(x, y float64) (Cell, bool) {
	relX := x - g.offsetX
	relY := y - g.offsetY
	if relX < 0 || relY < 0 || relX >= float64(g.cols)*g.cellSize || relY >= float64(g.rows)*g.cellSize {
		return Cell{}, false
	}
	return Cell{Col: int(relX / g.cellSize), Row: int(relY / g.cellSize)}, true
}

// Reset clears every cell; used when a new run starts.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = nil
	}
}
