package render

import (
	"image"
	"image/color"
	"image/draw"

	"conway/internal/settings"
	"conway/pkg/grid"
)

// Rasterize paints g into dst the same way the window renderer does: the
// background first, then one square per cell in the live or dead color.
func Rasterize(dst *image.RGBA, g *grid.Grid, s settings.Settings) {
	fill(dst, Background(g.Rows(), g.Cols(), s), s.Background)
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			c := s.Dead
			if g.At(row, col) {
				c = s.Live
			}
			fill(dst, CellRect(row, col, s), c)
		}
	}
}

// NewCanvas allocates an image large enough for a rows x cols grid.
func NewCanvas(rows, cols int, s settings.Settings) *image.RGBA {
	w, h := WindowSize(rows, cols, s)
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func fill(dst *image.RGBA, r Rect, c color.Color) {
	draw.Draw(dst, r.Bounds().Intersect(dst.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}
