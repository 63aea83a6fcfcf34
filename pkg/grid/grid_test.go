package grid

import (
	"errors"
	"math/rand/v2"
	"testing"
)

// parse builds a grid from rows of '#' (alive) and '.' (dead).
func parse(t *testing.T, rows ...string) *Grid {
	t.Helper()
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	g := New(len(rows), cols)
	for r, line := range rows {
		if len(line) != cols {
			t.Fatalf("row %d has %d columns, expected %d", r, len(line), cols)
		}
		for c, ch := range line {
			g.Set(r, c, ch == '#')
		}
	}
	return g
}

func TestNewIsDead(t *testing.T) {
	g := New(4, 7)
	if g.Rows() != 4 || g.Cols() != 7 {
		t.Fatalf("size %dx%d, expected 4x7", g.Rows(), g.Cols())
	}
	if n := g.Population(); n != 0 {
		t.Fatalf("new grid has %d live cells", n)
	}
}

func TestZeroValueIsEmpty(t *testing.T) {
	var g Grid
	if g.Rows() != 0 || g.Cols() != 0 {
		t.Fatalf("zero grid size %dx%d", g.Rows(), g.Cols())
	}
	if !g.Equal(New(0, 0)) {
		t.Fatal("zero value should equal New(0, 0)")
	}
	if g.Get(0, 0) {
		t.Fatal("Get on empty grid must be dead")
	}
}

func TestNegativeDimensionsClampToZero(t *testing.T) {
	g := New(-2, 5)
	if g.Rows() != 0 || g.Cols() != 0 {
		t.Fatalf("size %dx%d, expected 0x0", g.Rows(), g.Cols())
	}
}

func TestRowsWithoutColumns(t *testing.T) {
	g := New(3, 0)
	if g.Rows() != 3 || g.Cols() != 0 {
		t.Fatalf("size %dx%d, expected 3x0", g.Rows(), g.Cols())
	}
	g.Step(true)
	g.Step(false)
	if g.Rows() != 3 || g.Cols() != 0 {
		t.Fatalf("step changed size to %dx%d", g.Rows(), g.Cols())
	}
}

func TestGetOutOfBoundsIsDead(t *testing.T) {
	g := New(3, 3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			g.Set(r, c, true)
		}
	}
	probes := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {-1, -1}, {3, 3}, {100, 1}}
	for _, p := range probes {
		if g.Get(p[0], p[1]) {
			t.Fatalf("Get(%d,%d) = true outside a 3x3 grid", p[0], p[1])
		}
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	g := New(5, 6)
	g.Set(2, 3, true)
	g.Set(4, 5, true)
	g.Set(2, 3, false)
	if g.Get(2, 3) {
		t.Fatal("(2,3) should be dead after being reset")
	}
	if !g.Get(4, 5) || !g.At(4, 5) {
		t.Fatal("(4,5) should be alive")
	}
}

func TestSetOutOfBoundsPanics(t *testing.T) {
	g := New(2, 2)
	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatal("expected panic")
		}
		oob, ok := rec.(*OutOfBoundsError)
		if !ok {
			t.Fatalf("panic value %T, expected *OutOfBoundsError", rec)
		}
		if oob.Row != 2 || oob.Col != 0 || oob.Rows != 2 || oob.Cols != 2 {
			t.Fatalf("unexpected error contents %+v", oob)
		}
	}()
	g.Set(2, 0, true)
}

func TestAtAndToggleOutOfBoundsPanic(t *testing.T) {
	g := New(1, 1)
	for name, fn := range map[string]func(){
		"At":     func() { g.At(0, 1) },
		"Toggle": func() { g.Toggle(-1, 0) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s did not panic", name)
				}
			}()
			fn()
		}()
	}
}

func TestTrySet(t *testing.T) {
	g := New(2, 3)
	if err := g.TrySet(1, 2, true); err != nil {
		t.Fatalf("in-bounds TrySet failed: %v", err)
	}
	err := g.TrySet(1, 3, true)
	var oob *OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("expected *OutOfBoundsError, got %v", err)
	}
	if g.Population() != 1 {
		t.Fatalf("population %d after failed TrySet, expected 1", g.Population())
	}
}

func TestToggle(t *testing.T) {
	g := New(2, 2)
	if !g.Toggle(1, 1) {
		t.Fatal("first toggle should make the cell alive")
	}
	if g.Toggle(1, 1) {
		t.Fatal("second toggle should kill the cell")
	}
}

func TestClearKeepsDimensions(t *testing.T) {
	g := parse(t,
		"#.#",
		".#.",
	)
	g.Clear()
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Fatalf("size %dx%d after clear", g.Rows(), g.Cols())
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			if g.Get(r, c) {
				t.Fatalf("cell (%d,%d) alive after clear", r, c)
			}
		}
	}
	g.Clear()
	if g.Population() != 0 {
		t.Fatal("second clear revived cells")
	}
}

func TestResizePreservesOrigin(t *testing.T) {
	g := parse(t,
		"#..#",
		".#..",
		"..##",
	)
	before := g.Clone()

	g.Resize(5, 2)
	if g.Rows() != 5 || g.Cols() != 2 {
		t.Fatalf("size %dx%d, expected 5x2", g.Rows(), g.Cols())
	}
	for r := 0; r < 5; r++ {
		for c := 0; c < 2; c++ {
			want := false
			if r < 3 {
				want = before.Get(r, c)
			}
			if got := g.Get(r, c); got != want {
				t.Fatalf("cell (%d,%d) = %v, expected %v", r, c, got, want)
			}
		}
	}

	// Columns dropped by the shrink do not come back.
	g.Resize(3, 4)
	want := parse(t,
		"#...",
		".#..",
		"....",
	)
	if !g.Equal(want) {
		t.Fatalf("after regrow:\n%s\nexpected:\n%s", g, want)
	}
}

func TestResizeToAndFromEmpty(t *testing.T) {
	g := New(2, 2)
	g.Set(0, 0, true)
	g.Resize(0, 0)
	if g.Rows() != 0 || g.Cols() != 0 {
		t.Fatalf("size %dx%d, expected 0x0", g.Rows(), g.Cols())
	}
	g.Resize(3, 3)
	if g.Population() != 0 {
		t.Fatal("cells survived a resize through 0x0")
	}
}

func TestResizeMatchesProperty(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 0))
	for i := 0; i < 50; i++ {
		oldRows, oldCols := r.IntN(8), r.IntN(8)
		newRows, newCols := r.IntN(8), r.IntN(8)
		g := New(oldRows, oldCols)
		g.Randomize(r, 0.5)
		before := g.Clone()
		g.Resize(newRows, newCols)
		if g.Rows() != newRows || (newRows > 0 && g.Cols() != newCols) {
			t.Fatalf("resize %dx%d -> %dx%d gave %dx%d", oldRows, oldCols, newRows, newCols, g.Rows(), g.Cols())
		}
		for row := 0; row < newRows; row++ {
			for col := 0; col < newCols; col++ {
				want := row < oldRows && col < oldCols && before.Get(row, col)
				if g.Get(row, col) != want {
					t.Fatalf("resize %dx%d -> %dx%d: cell (%d,%d) = %v", oldRows, oldCols, newRows, newCols, row, col, !want)
				}
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := New(2, 2)
	c := g.Clone()
	c.Set(0, 0, true)
	if g.Get(0, 0) {
		t.Fatal("mutating the clone changed the original")
	}
}

func TestHashTracksContentAndShape(t *testing.T) {
	a := parse(t, "#.", "..")
	b := parse(t, "#.", "..")
	if a.Hash() != b.Hash() {
		t.Fatal("equal grids hash differently")
	}
	b.Set(1, 1, true)
	if a.Hash() == b.Hash() {
		t.Fatal("different grids share a hash")
	}
	if New(1, 4).Hash() == New(4, 1).Hash() {
		t.Fatal("shape must be part of the hash")
	}
}

func TestString(t *testing.T) {
	g := parse(t, "#.", ".#")
	if got := g.String(); got != "#.\n.#" {
		t.Fatalf("String() = %q", got)
	}
}
