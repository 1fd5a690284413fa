// pkg/render/grid_renderer.go
package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-merge-defense/internal/config"
	"go-merge-defense/internal/core"
	"go-merge-defense/internal/defs"
)

// GridRenderer draws the board and its towers. The static parts of the
// board (background, enemy lane, cell grid) are rendered once into an
// offscreen image and blitted every frame.
type GridRenderer struct {
	grid       *core.Grid
	fontFace   font.Face
	boardImage *ebiten.Image
}

func NewGridRenderer(grid *core.Grid, fontFace font.Face) *GridRenderer {
	r := &GridRenderer{
		grid:     grid,
		fontFace: fontFace,
	}
	r.boardImage = r.renderBoard()
	return r
}

func (r *GridRenderer) renderBoard() *ebiten.Image {
	img := ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	img.Fill(config.BackgroundColor)

	// Enemy lane across the top.
	vector.DrawFilledRect(img,
		0, float32(config.LaneY-config.EnemyRadius-6),
		config.ScreenWidth, float32(2*(config.EnemyRadius+6)),
		config.LaneColor, true)

	for row := 0; row < config.GridRows; row++ {
		for col := 0; col < config.GridCols; col++ {
			x := float32(config.GridOffsetX + float64(col)*config.CellSize)
			y := float32(config.GridOffsetY + float64(row)*config.CellSize)
			vector.DrawFilledRect(img, x+1, y+1,
				float32(config.CellSize)-2, float32(config.CellSize)-2,
				config.CellFillColor, true)
			vector.StrokeRect(img, x, y,
				float32(config.CellSize), float32(config.CellSize),
				1, config.CellStrokeColor, true)
		}
	}
	return img
}

// DrawBoard blits the static board and highlights the hovered cell.
func (r *GridRenderer) DrawBoard(screen *ebiten.Image, mouseX, mouseY float64) {
	screen.DrawImage(r.boardImage, nil)

	if cell, ok := r.grid.CellAt(mouseX, mouseY); ok {
		x := float32(config.GridOffsetX + float64(cell.Col)*config.CellSize)
		y := float32(config.GridOffsetY + float64(cell.Row)*config.CellSize)
		vector.DrawFilledRect(screen, x+1, y+1,
			float32(config.CellSize)-2, float32(config.CellSize)-2,
			config.CellHoverColor, true)
	}
}

// DrawTowers renders every placed tower as a colored disc with its tier.
func (r *GridRenderer) DrawTowers(screen *ebiten.Image) {
	for _, placed := range r.grid.AllTowers() {
		r.drawTower(screen, placed.Tower, placed.Tower.X, placed.Tower.Y, 1.0)
	}
}

// DrawGhost renders the tower in transit under the cursor, slightly faded.
func (r *GridRenderer) DrawGhost(screen *ebiten.Image, tower *core.Tower, x, y float64) {
	if tower == nil {
		return
	}
	r.drawTower(screen, tower, x, y, 0.6)
}

func (r *GridRenderer) drawTower(screen *ebiten.Image, tower *core.Tower, x, y float64, alpha float64) {
	def, ok := defs.TowerLibrary[tower.Type]
	if !ok {
		return
	}
	c := def.Visuals.Color
	c.A = uint8(float64(c.A) * alpha)
	radius := float32(config.CellSize * def.Visuals.RadiusFactor)

	vector.DrawFilledCircle(screen, float32(x), float32(y), radius, c, true)
	vector.StrokeCircle(screen, float32(x), float32(y), radius,
		config.StrokeWidth, config.TowerStrokeColor, true)

	label := fmt.Sprintf("%d", tower.Tier)
	bounds := text.BoundString(r.fontFace, label)
	text.Draw(screen, label, r.fontFace,
		int(x)-bounds.Dx()/2, int(y)+bounds.Dy()/2, config.TextLightColor)
}
