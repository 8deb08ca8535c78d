package model

// NewGrid returns a rows x cols grid with every cell Free.
func NewGrid(rows, cols int) Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	matrix := make(Grid, 0, rows)
	for r := 0; r < rows; r++ {
		matrix = append(matrix, make([]Cell, cols))
	}
	return matrix
}

// Seed builds a rows x cols grid and copies every persisted cell that fits inside it.
// Cells outside the overlap stay Free; the requested dimensions always win.
func Seed(rows, cols int, persisted Grid) Grid {
	seeded := NewGrid(rows, cols)
	maxRow := min(len(seeded), len(persisted))
	for r := 0; r < maxRow; r++ {
		maxCol := min(len(seeded[r]), len(persisted[r]))
		copy(seeded[r][:maxCol], persisted[r][:maxCol])
	}
	return seeded
}

func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the length of the first row, or 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g Grid) Empty() bool {
	return len(g) == 0
}

// Rectangular reports whether all rows share the first row's length.
// When they do not, row is the index of the first row that differs.
func (g Grid) Rectangular() (row int, ok bool) {
	cols := g.Cols()
	for r, line := range g {
		if len(line) != cols {
			return r, false
		}
	}
	return -1, true
}

func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for r, line := range g {
		out[r] = append([]Cell(nil), line...)
	}
	return out
}

// Equal compares shape and values. Nil and zero-length grids are equal.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(other[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Count returns how many cells hold the given state.
func (g Grid) Count(cell Cell) int {
	n := 0
	for _, line := range g {
		for _, c := range line {
			if c == cell {
				n++
			}
		}
	}
	return n
}
