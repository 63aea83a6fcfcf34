package render

import (
	"image"
	"math"

	"conway/internal/settings"
)

// Rect is an axis-aligned rectangle in window pixels.
type Rect struct {
	X, Y, W, H float64
}

// Bounds rounds the rectangle outward to integer pixels.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)),
	)
}

// Background returns the backdrop drawn behind a rows x cols grid. Its
// visible border is the gap between cells.
func Background(rows, cols int, s settings.Settings) Rect {
	pitch := s.Pitch()
	return Rect{
		X: s.Offset,
		Y: s.Offset,
		W: s.CellDistance + float64(cols)*pitch,
		H: s.CellDistance + float64(rows)*pitch,
	}
}

// CellRect returns the square occupied by the cell at (row, col).
func CellRect(row, col int, s settings.Settings) Rect {
	off := s.Offset + s.CellDistance
	pitch := s.Pitch()
	return Rect{
		X: off + float64(col)*pitch,
		Y: off + float64(row)*pitch,
		W: s.CellWidth,
		H: s.CellWidth,
	}
}

// WindowSize is the smallest window that shows a rows x cols grid with the
// margin on every side.
func WindowSize(rows, cols int, s settings.Settings) (int, int) {
	bg := Background(rows, cols, s)
	return int(math.Ceil(bg.W + 2*s.Offset)), int(math.Ceil(bg.H + 2*s.Offset))
}
