package editor

import (
	"fmt"
	"image/color"

	"github.com/zucenko/arena/store"
)

// Config holds the settings of one editing session.
type Config struct {
	// Rows and Cols are the grid dimensions; a saved grid of another shape is cropped or padded.
	Rows int
	Cols int

	// Path is the grid file; empty means store.DefaultPath.
	Path string

	// AutoSave persists the grid after every toggle.
	AutoSave bool

	// Opacity is the weight of the tinted copy when blending obstacle cells over the feed.
	Opacity float64

	ObstacleFill color.RGBA
	LineColor    color.RGBA

	Title string
}

// DefaultConfig returns the settings used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Rows:         12,
		Cols:         16,
		Path:         store.DefaultPath,
		AutoSave:     true,
		Opacity:      0.4,
		ObstacleFill: color.RGBA{R: 30, G: 30, B: 30, A: 255},
		LineColor:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Title:        "Arena Grid Editor",
	}
}

func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.Rows, c.Cols)
	}
	if c.Opacity < 0 || c.Opacity > 1 {
		return fmt.Errorf("overlay opacity must be within [0, 1], got %v", c.Opacity)
	}
	return nil
}
