// Package mapview is the read-only side of the grid file: it renders the persisted
// grid with caller-chosen symbols and summarises its contents.
package mapview

import (
	"errors"
	"os"
	"strings"

	"github.com/zucenko/arena/model"
	"github.com/zucenko/arena/store"
)

// Symbols maps cell states to the strings used when rendering. Empty fields fall
// back to the file symbols O, X and H.
type Symbols struct {
	Free     string
	Obstacle string
	Home     string
}

var DefaultSymbols = Symbols{Free: "O", Obstacle: "X", Home: "H"}

func (s Symbols) of(c model.Cell) string {
	var v string
	switch c {
	case model.Free:
		v = s.Free
	case model.Obstacle:
		v = s.Obstacle
	case model.Home:
		v = s.Home
	default:
		return "?"
	}
	if v == "" {
		return c.Symbol()
	}
	return v
}

// Render converts a grid to rows of symbols.
func Render(g model.Grid, symbols Symbols) [][]string {
	out := make([][]string, 0, len(g))
	for _, line := range g {
		row := make([]string, 0, len(line))
		for _, c := range line {
			row = append(row, symbols.of(c))
		}
		out = append(out, row)
	}
	return out
}

// Map loads the grid at path and renders it. No grid yields an empty slice.
func Map(path string, symbols Symbols) ([][]string, error) {
	g, err := store.Get(path)
	if err != nil {
		return nil, err
	}
	return Render(g, symbols), nil
}

// String renders the grid at path one row per line, cells joined by sep.
func String(path string, symbols Symbols, sep string) (string, error) {
	rows, err := Map(path, symbols)
	if err != nil {
		return "", err
	}
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, sep)
	}
	return strings.Join(lines, "\n"), nil
}

// Info summarises a grid file.
type Info struct {
	Rows          int  `json:"rows"`
	Cols          int  `json:"cols"`
	TotalCells    int  `json:"total_cells"`
	FreeCount     int  `json:"free_count"`
	ObstacleCount int  `json:"obstacle_count"`
	HomeCount     int  `json:"home_count"`
	Exists        bool `json:"exists"`
}

func Describe(g model.Grid) Info {
	if g.Empty() {
		return Info{}
	}
	return Info{
		Rows:          g.Rows(),
		Cols:          g.Cols(),
		TotalCells:    g.Rows() * g.Cols(),
		FreeCount:     g.Count(model.Free),
		ObstacleCount: g.Count(model.Obstacle),
		HomeCount:     g.Count(model.Home),
		Exists:        true,
	}
}

func InfoOf(path string) (Info, error) {
	g, err := store.Get(path)
	if err != nil {
		return Info{}, err
	}
	return Describe(g), nil
}

// Raw returns the file content untouched, or nil when there is no file.
func Raw(path string) ([]byte, error) {
	if path == "" {
		path = store.DefaultPath
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return data, err
}
