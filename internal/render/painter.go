//go:build ebiten

package render

import (
	"image/color"

	"conway/internal/settings"
	"conway/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter draws a grid onto an ebiten image as filled rectangles.
type GridPainter struct {
	set settings.Settings
}

// NewGridPainter returns a painter using the layout and colors in set.
func NewGridPainter(set settings.Settings) *GridPainter {
	return &GridPainter{set: set}
}

// Draw paints the background and every cell of g. It only reads the grid.
func (gp *GridPainter) Draw(dst *ebiten.Image, g *grid.Grid) {
	gp.rect(dst, Background(g.Rows(), g.Cols(), gp.set), gp.set.Background)
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			c := gp.set.Dead
			if g.At(row, col) {
				c = gp.set.Live
			}
			gp.rect(dst, CellRect(row, col, gp.set), c)
		}
	}
}

func (gp *GridPainter) rect(dst *ebiten.Image, r Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}
