package grid

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
	"strings"
)

// OutOfBoundsError reports an access outside [0, rows) x [0, cols).
type OutOfBoundsError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("grid: cell (%d,%d) out of bounds for %dx%d grid", e.Row, e.Col, e.Rows, e.Cols)
}

// Grid stores Game of Life cells in row-major order. The zero value is an
// empty 0x0 grid.
type Grid struct {
	cells [][]bool
}

// New returns a grid with all cells dead.
func New(rows, cols int) *Grid {
	return &Grid{cells: alloc(rows, cols)}
}

func alloc(rows, cols int) [][]bool {
	rows = max(rows, 0)
	cols = max(cols, 0)
	backing := make([]bool, rows*cols)
	cells := make([][]bool, rows)
	for r := range cells {
		cells[r] = backing[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return cells
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return len(g.cells) }

// Cols returns the length of a row, or 0 when there are no rows.
func (g *Grid) Cols() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.Rows() && col >= 0 && col < g.Cols()
}

func (g *Grid) mustInBounds(row, col int) {
	if !g.inBounds(row, col) {
		panic(&OutOfBoundsError{Row: row, Col: col, Rows: g.Rows(), Cols: g.Cols()})
	}
}

// Get returns the cell state, or false for any out-of-bounds position.
func (g *Grid) Get(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cells[row][col]
}

// At returns the cell state. It panics with *OutOfBoundsError when the
// position is outside the grid.
func (g *Grid) At(row, col int) bool {
	g.mustInBounds(row, col)
	return g.cells[row][col]
}

// Set assigns a cell. It panics with *OutOfBoundsError when the position is
// outside the grid.
func (g *Grid) Set(row, col int, alive bool) {
	g.mustInBounds(row, col)
	g.cells[row][col] = alive
}

// TrySet is Set for untrusted coordinates: it reports an *OutOfBoundsError
// instead of panicking and leaves the grid untouched on failure.
func (g *Grid) TrySet(row, col int, alive bool) error {
	if !g.inBounds(row, col) {
		return &OutOfBoundsError{Row: row, Col: col, Rows: g.Rows(), Cols: g.Cols()}
	}
	g.cells[row][col] = alive
	return nil
}

// Toggle flips a cell and returns its new state.
func (g *Grid) Toggle(row, col int) bool {
	g.mustInBounds(row, col)
	g.cells[row][col] = !g.cells[row][col]
	return g.cells[row][col]
}

// Clear sets every cell to dead without changing dimensions.
func (g *Grid) Clear() {
	for _, row := range g.cells {
		clear(row)
	}
}

// Resize changes the dimensions to rows x cols. Cells inside both the old
// and new bounds keep their state, new cells are dead and cells beyond the
// new bounds are discarded. The origin stays at (0,0).
func (g *Grid) Resize(rows, cols int) {
	next := alloc(rows, cols)
	for r := 0; r < min(len(next), g.Rows()); r++ {
		copy(next[r], g.cells[r])
	}
	g.cells = next
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := New(g.Rows(), g.Cols())
	for r, row := range g.cells {
		copy(c.cells[r], row)
	}
	return c
}

// Equal reports whether both grids have the same shape and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.Rows() != o.Rows() || g.Cols() != o.Cols() {
		return false
	}
	for r, row := range g.cells {
		for c, alive := range row {
			if o.cells[r][c] != alive {
				return false
			}
		}
	}
	return true
}

// Population returns the number of live cells.
func (g *Grid) Population() (count int) {
	for _, row := range g.cells {
		for _, alive := range row {
			if alive {
				count++
			}
		}
	}
	return
}

// Randomize makes each cell alive with the given probability.
func (g *Grid) Randomize(r *rand.Rand, density float64) {
	for _, row := range g.cells {
		for c := range row {
			row[c] = r.Float64() < density
		}
	}
}

// Hash returns an md5 digest of the dimensions and cell states.
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.Rows(), g.Cols())
	buf := make([]byte, g.Cols())
	for _, row := range g.cells {
		for c, alive := range row {
			buf[c] = 0
			if alive {
				buf[c] = 1
			}
		}
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders live cells as '#' and dead cells as '.', one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	for r, row := range g.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, alive := range row {
			if alive {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
