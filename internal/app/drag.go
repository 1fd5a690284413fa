// internal/app/drag.go
package app

import (
	"log"

	"go-merge-defense/internal/core"
	"go-merge-defense/internal/defs"
	"go-merge-defense/internal/event"
)

// Drag-and-drop state. A tower in transit is owned here, not by the grid;
// it re-enters the grid only when a drop succeeds, and returns to its origin
// cell otherwise. Panel drags have no origin cell: a rejected panel drop
// simply dissolves back into the panel.

// StartDragFromPanel lifts a fresh tower of the given type off the panel,
// at the meta-progression starting tier.
func (g *Game) StartDragFromPanel(towerType defs.TowerType, x, y float64) bool {
	if g.dragTower != nil || g.runOver {
		return false
	}
	tower, err := core.NewTower(towerType, g.Progress.StartingTier())
	if err != nil {
		log.Printf("drag: %v", err)
		return false
	}
	g.dragTower = tower
	g.dragFromGrid = false
	g.dragX, g.dragY = x, y
	return true
}

// StartDragFromGrid lifts an already placed tower off its cell.
func (g *Game) StartDragFromGrid(col, row int, x, y float64) bool {
	if g.dragTower != nil || g.runOver {
		return false
	}
	tower := g.Grid.RemoveTower(col, row)
	if tower == nil {
		return false
	}
	g.dragTower = tower
	g.dragFromGrid = true
	g.dragOriginCol, g.dragOriginRow = col, row
	g.dragX, g.dragY = x, y
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerRemoved, Data: core.Cell{Col: col, Row: row}})
	return true
}

// UpdateDrag tracks the cursor while a tower is in transit.
func (g *Game) UpdateDrag(x, y float64) {
	g.dragX, g.dragY = x, y
}

// Drop releases the dragged tower at a pixel position. Returns true when it
// was placed (merges may have fired); on rejection the tower goes back where
// it came from.
func (g *Game) Drop(x, y float64) bool {
	tower := g.dragTower
	if tower == nil {
		return false
	}
	g.dragTower = nil

	if cell, ok := g.Grid.CellAt(x, y); ok {
		if g.Grid.PlaceTower(cell.Col, cell.Row, tower) {
			g.Sound.PlayPlace()
			g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: cell})
			return true
		}
		g.Sound.PlayError()
	}

	g.returnToOrigin(tower)
	return false
}

// CancelDrag aborts the drag (run end, pause) and restores the origin.
func (g *Game) CancelDrag() {
	tower := g.dragTower
	if tower == nil {
		return
	}
	g.dragTower = nil
	g.returnToOrigin(tower)
}

func (g *Game) returnToOrigin(tower *core.Tower) {
	if !g.dragFromGrid {
		return
	}
	// The origin cell was cleared when the drag started. Re-placement can
	// legally cascade if the board changed underneath, e.g. via a chain
	// merge that finished next to the origin.
	if !g.Grid.PlaceTower(g.dragOriginCol, g.dragOriginRow, tower) {
		log.Printf("drag: origin cell (%d,%d) no longer free, tower lost",
			g.dragOriginCol, g.dragOriginRow)
	}
}

// DragTower exposes the tower in transit for ghost rendering; nil when idle.
func (g *Game) DragTower() (*core.Tower, float64, float64) {
	return g.dragTower, g.dragX, g.dragY
}
