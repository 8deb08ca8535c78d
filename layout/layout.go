// Package layout converts between frame pixels and grid cells.
package layout

import (
	"image"
	"math"
)

// eps absorbs float error when a coordinate lies exactly on a cell boundary,
// so that PixelToCell and CellToPixelRect agree on which side it belongs to.
const eps = 1e-9

func floor(v float64) int {
	return int(math.Floor(v + eps))
}

// CellSize returns the width and height of one cell for a frame of the given size.
func CellSize(frameWidth, frameHeight, rows, cols int) (cellWidth, cellHeight float64) {
	if rows <= 0 || cols <= 0 {
		return 0, 0
	}
	return float64(frameWidth) / float64(cols), float64(frameHeight) / float64(rows)
}

// PixelToCell maps a pixel to the cell under it. Pixels outside the grid are
// reported with in == false rather than clamped to the nearest edge.
func PixelToCell(x, y, cellWidth, cellHeight float64, rows, cols int) (row, col int, in bool) {
	if cellWidth <= 0 || cellHeight <= 0 {
		return 0, 0, false
	}
	col = floor(x / cellWidth)
	row = floor(y / cellHeight)
	in = row >= 0 && row < rows && col >= 0 && col < cols
	return row, col, in
}

// CellToPixelRect returns the half-open pixel rectangle covered by a cell.
// Both corners are floored so adjacent cells share edges without gaps or overlap.
func CellToPixelRect(row, col int, cellWidth, cellHeight float64) image.Rectangle {
	return image.Rect(
		floor(float64(col)*cellWidth),
		floor(float64(row)*cellHeight),
		floor(float64(col+1)*cellWidth),
		floor(float64(row+1)*cellHeight),
	)
}
