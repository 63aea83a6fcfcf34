package grid

// NextState applies Conway's rules (B3/S23) to a single cell.
func NextState(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// CountNeighbors returns how many of the eight cells around (row, col) are
// alive. With wrap set, the edges are joined to the opposite side; otherwise
// positions outside the grid count as dead.
func (g *Grid) CountNeighbors(row, col int, wrap bool) int {
	rows, cols := g.Rows(), g.Cols()
	if wrap && (rows == 0 || cols == 0) {
		return 0
	}
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := row+dr, col+dc
			if wrap {
				nr = ((nr % rows) + rows) % rows
				nc = ((nc % cols) + cols) % cols
				if g.cells[nr][nc] {
					count++
				}
				continue
			}
			if g.Get(nr, nc) {
				count++
			}
		}
	}
	return count
}

// Step advances the grid by one generation. The next generation is built in
// a fresh matrix so every neighbor count sees only the previous generation.
func (g *Grid) Step(wrap bool) {
	rows, cols := g.Rows(), g.Cols()
	next := alloc(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			next[r][c] = NextState(g.cells[r][c], g.CountNeighbors(r, c, wrap))
		}
	}
	g.cells = next
}
