package model

import (
	"fmt"
	"strings"
)

// Cell is the occupancy state of one grid element.
type Cell int

const (
	Free Cell = iota
	Obstacle
	Home
)

var symbols = [...]string{Free: "O", Obstacle: "X", Home: "H"}

// Valid reports whether c is one of the defined states.
func (c Cell) Valid() bool {
	return c >= Free && c <= Home
}

// Symbol returns the single-character form used in grid files.
func (c Cell) Symbol() string {
	if !c.Valid() {
		return "?"
	}
	return symbols[c]
}

func (c Cell) String() string {
	switch c {
	case Free:
		return "FREE"
	case Obstacle:
		return "OBSTACLE"
	case Home:
		return "HOME"
	default:
		return fmt.Sprintf("N/A(%d)", int(c))
	}
}

// ParseSymbol maps "O", "X" or "H" (any case) to a Cell.
func ParseSymbol(s string) (Cell, bool) {
	switch strings.ToUpper(s) {
	case "O":
		return Free, true
	case "X":
		return Obstacle, true
	case "H":
		return Home, true
	}
	return Free, false
}

// CellFromInt accepts the integer encoding older files may still carry.
func CellFromInt(v int64) (Cell, bool) {
	c := Cell(v)
	if int64(c) != v || !c.Valid() {
		return Free, false
	}
	return c, true
}

// Grid is a row-major matrix of cells. A grid with no rows means no grid is present.
type Grid [][]Cell
