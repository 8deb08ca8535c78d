package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSymbol(t *testing.T) {
	for in, want := range map[string]Cell{"O": Free, "x": Obstacle, "X": Obstacle, "h": Home} {
		got, ok := ParseSymbol(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "Z", "OO", "0", " x"} {
		_, ok := ParseSymbol(bad)
		assert.False(t, ok, bad)
	}
}

func TestCellFromInt(t *testing.T) {
	c, ok := CellFromInt(2)
	assert.True(t, ok)
	assert.Equal(t, Home, c)

	for _, bad := range []int64{-1, 3, 1 << 40} {
		_, ok := CellFromInt(bad)
		assert.False(t, ok, bad)
	}
}

func TestCellSymbolAndString(t *testing.T) {
	assert.Equal(t, "O", Free.Symbol())
	assert.Equal(t, "X", Obstacle.Symbol())
	assert.Equal(t, "H", Home.Symbol())
	assert.Equal(t, "?", Cell(7).Symbol())
	assert.Equal(t, "OBSTACLE", Obstacle.String())
	assert.Equal(t, "N/A(7)", Cell(7).String())
}

func TestSeedKeepsRequestedShape(t *testing.T) {
	persisted := Grid{
		{Obstacle, Free, Home, Obstacle},
		{Free, Obstacle},
	}
	cases := []struct{ rows, cols int }{{3, 3}, {1, 2}, {2, 4}, {5, 1}, {0, 0}}
	for _, tc := range cases {
		seeded := Seed(tc.rows, tc.cols, persisted)
		require.Len(t, seeded, tc.rows)
		for r := 0; r < tc.rows; r++ {
			require.Len(t, seeded[r], tc.cols)
			for c := 0; c < tc.cols; c++ {
				want := Free
				if r < len(persisted) && c < len(persisted[r]) {
					want = persisted[r][c]
				}
				assert.Equal(t, want, seeded[r][c], "rows=%d cols=%d at (%d,%d)", tc.rows, tc.cols, r, c)
			}
		}
	}
}

func TestSeedFromEmptyAndDoesNotAlias(t *testing.T) {
	seeded := Seed(2, 3, nil)
	assert.True(t, seeded.Equal(NewGrid(2, 3)))

	persisted := Grid{{Free}}
	seeded = Seed(1, 1, persisted)
	seeded[0][0] = Obstacle
	assert.Equal(t, Free, persisted[0][0])
}

func TestSeedNegativeDimensions(t *testing.T) {
	assert.Empty(t, Seed(-1, 4, Grid{{Home}}))
}

func TestRectangular(t *testing.T) {
	_, ok := Grid{{Free, Free}, {Home, Obstacle}}.Rectangular()
	assert.True(t, ok)

	row, ok := Grid{{Free, Free}, {Home, Obstacle}, {Free}}.Rectangular()
	assert.False(t, ok)
	assert.Equal(t, 2, row)
}

func TestEqualCloneCount(t *testing.T) {
	g := Grid{{Free, Obstacle}, {Home, Obstacle}}
	c := g.Clone()
	assert.True(t, g.Equal(c))
	c[0][0] = Home
	assert.False(t, g.Equal(c))
	assert.Equal(t, 2, g.Count(Obstacle))
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 2, g.Cols())
	assert.True(t, Grid(nil).Equal(Grid{}))
	assert.True(t, Grid(nil).Empty())
}
