// Package control translates window and pointer events into grid
// operations.
package control

import (
	"math"

	"conway/internal/settings"
	"conway/pkg/core"
	"conway/pkg/grid"
)

// Cell addresses a grid position.
type Cell struct {
	Row, Col int
}

// Controller owns the grid and applies user input to it.
type Controller struct {
	grid *grid.Grid
	set  settings.Settings

	hover   Cell
	hovered bool

	// drawing is the state painted onto cells the pointer drags across
	// while the button is held.
	drawing    bool
	drawActive bool

	running    bool
	generation int
}

// New returns a Controller driving g.
func New(g *grid.Grid, set settings.Settings) *Controller {
	if g == nil {
		g = grid.New(0, 0)
	}
	return &Controller{grid: g, set: set}
}

// Grid exposes the controlled grid for read-only consumers such as the
// renderer.
func (c *Controller) Grid() *grid.Grid { return c.grid }

// Settings returns the active settings.
func (c *Controller) Settings() settings.Settings { return c.set }

// Generation returns the number of steps taken since the last clear.
func (c *Controller) Generation() int { return c.generation }

// Hover returns the cell under the pointer, if any.
func (c *Controller) Hover() (Cell, bool) { return c.hover, c.hovered }

// Running reports whether generations advance automatically.
func (c *Controller) Running() bool { return c.running }

// SetRunning starts or stops automatic stepping.
func (c *Controller) SetRunning(on bool) { c.running = on }

// ToggleWrap flips wraparound for subsequent steps.
func (c *Controller) ToggleWrap() bool {
	c.set.Wraparound = !c.set.Wraparound
	return c.set.Wraparound
}

// GridSize converts a window size in pixels into the number of rows and
// columns that fit. Each dimension is at least 1.
func GridSize(set settings.Settings, width, height float64) (rows, cols int) {
	fit := func(extent float64) int {
		n := (extent - set.Offset*2 - set.CellDistance) / set.Pitch()
		if !(n > 1) {
			return 1
		}
		return int(n)
	}
	return fit(height), fit(width)
}

// Resize fits the grid to a window of the given pixel size, keeping the
// top-left cell in place.
func (c *Controller) Resize(width, height float64) {
	rows, cols := GridSize(c.set, width, height)
	if rows == c.grid.Rows() && cols == c.grid.Cols() {
		return
	}
	c.grid.Resize(rows, cols)
	if c.hovered && (c.hover.Row >= rows || c.hover.Col >= cols) {
		c.hovered = false
	}
}

// CellAt maps a pixel position to the cell under it. Positions outside the
// grid report ok == false rather than a clamped or wrapped cell.
func (c *Controller) CellAt(x, y float64) (cell Cell, ok bool) {
	origin := c.set.Offset + c.set.CellDistance/2
	pitch := c.set.Pitch()
	if pitch <= 0 {
		return Cell{}, false
	}
	fx := math.Floor((x - origin) / pitch)
	fy := math.Floor((y - origin) / pitch)
	if fx < 0 || fy < 0 || fx >= float64(c.grid.Cols()) || fy >= float64(c.grid.Rows()) {
		return Cell{}, false
	}
	return Cell{Row: int(fy), Col: int(fx)}, true
}

// CursorMoved updates the hovered cell. Entering a new cell while the
// button is held paints it with the current drawing state.
func (c *Controller) CursorMoved(x, y float64) {
	cell, ok := c.CellAt(x, y)
	if !ok {
		c.hovered = false
		return
	}
	if c.hovered && cell == c.hover {
		return
	}
	c.hover, c.hovered = cell, true
	if c.drawActive {
		c.grid.Set(cell.Row, cell.Col, c.drawing)
	}
}

// Press toggles the hovered cell and starts drawing with its new state.
func (c *Controller) Press() {
	if !c.hovered {
		return
	}
	c.drawing = c.grid.Toggle(c.hover.Row, c.hover.Col)
	c.drawActive = true
}

// Release stops drawing.
func (c *Controller) Release() { c.drawActive = false }

// Drawing reports whether the button is held and which state is painted.
func (c *Controller) Drawing() (state, active bool) { return c.drawing, c.drawActive }

// Advance steps the grid one generation using the current wrap setting.
func (c *Controller) Advance() {
	c.grid.Step(c.set.Wraparound)
	c.generation++
}

// Clear kills every cell and resets the generation counter.
func (c *Controller) Clear() {
	c.grid.Clear()
	c.generation = 0
}

// Randomize reseeds the grid with the given live-cell density.
func (c *Controller) Randomize(seed int64, density float64) {
	c.grid.Randomize(core.NewRNG(seed).Source(), density)
	c.generation = 0
}
