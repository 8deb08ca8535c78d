package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellSize(t *testing.T) {
	cw, ch := CellSize(640, 480, 12, 16)
	assert.Equal(t, 40.0, cw)
	assert.Equal(t, 40.0, ch)

	cw, ch = CellSize(100, 50, 3, 3)
	assert.InDelta(t, 33.333333, cw, 1e-6)
	assert.InDelta(t, 16.666666, ch, 1e-6)

	cw, ch = CellSize(100, 100, 0, 4)
	assert.Zero(t, cw)
	assert.Zero(t, ch)
}

func TestPixelToCell(t *testing.T) {
	row, col, in := PixelToCell(45, 85, 40, 40, 12, 16)
	require.True(t, in)
	assert.Equal(t, 2, row)
	assert.Equal(t, 1, col)

	_, _, in = PixelToCell(0, 0, 40, 40, 12, 16)
	assert.True(t, in)
	_, _, in = PixelToCell(639, 479, 40, 40, 12, 16)
	assert.True(t, in)
}

func TestPixelToCellRejectsOutside(t *testing.T) {
	const w, h, rows, cols = 640, 480, 12, 16
	cw, ch := CellSize(w, h, rows, cols)
	for _, p := range [][2]float64{{w + 1, h + 1}, {w, 0}, {0, h}, {-1, 10}, {10, -0.5}} {
		_, _, in := PixelToCell(p[0], p[1], cw, ch, rows, cols)
		assert.False(t, in, "%v", p)
	}
	_, _, in := PixelToCell(1, 1, 0, 0, rows, cols)
	assert.False(t, in)
}

// closed reports containment including the max edge: a pixel on a fractional
// boundary is hit-tested to the left cell but painted with the right one.
func closed(r image.Rectangle, x, y int) bool {
	return x >= r.Min.X && x <= r.Max.X && y >= r.Min.Y && y <= r.Max.Y
}

func TestInverseLaw(t *testing.T) {
	frames := [][2]int{{640, 480}, {100, 100}, {101, 37}, {1920, 1080}, {7, 5}}
	shapes := [][2]int{{12, 16}, {3, 3}, {7, 11}, {1, 1}, {5, 2}}
	for _, f := range frames {
		for _, s := range shapes {
			cw, ch := CellSize(f[0], f[1], s[0], s[1])
			for y := 0; y < f[1]; y += 1 + f[1]/23 {
				for x := 0; x < f[0]; x += 1 + f[0]/29 {
					row, col, in := PixelToCell(float64(x), float64(y), cw, ch, s[0], s[1])
					require.True(t, in, "frame %v shape %v pixel (%d,%d)", f, s, x, y)
					r := CellToPixelRect(row, col, cw, ch)
					require.True(t, closed(r, x, y), "frame %v shape %v pixel (%d,%d) cell (%d,%d) rect %v", f, s, x, y, row, col, r)
				}
			}
		}
	}
}

func TestRectsTileFrame(t *testing.T) {
	const w, h, rows, cols = 101, 37, 7, 11
	cw, ch := CellSize(w, h, rows, cols)
	covered := make([]int, w*h)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			rect := CellToPixelRect(r, c, cw, ch)
			for y := rect.Min.Y; y < rect.Max.Y; y++ {
				for x := rect.Min.X; x < rect.Max.X; x++ {
					covered[y*w+x]++
				}
			}
		}
	}
	for i, n := range covered {
		require.Equal(t, 1, n, "pixel (%d,%d)", i%w, i/w)
	}
}

func TestCellToPixelRect(t *testing.T) {
	assert.Equal(t, image.Rect(40, 80, 80, 120), CellToPixelRect(2, 1, 40, 40))
	assert.Equal(t, image.Rect(33, 0, 66, 16), CellToPixelRect(0, 1, 100.0/3, 50.0/3))
}
