package editor

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/zucenko/arena/layout"
	"github.com/zucenko/arena/model"
)

// Style controls how the grid is drawn over a frame.
type Style struct {
	Opacity      float64
	ObstacleFill color.RGBA
	LineColor    color.RGBA
}

func (c Config) Style() Style {
	return Style{Opacity: c.Opacity, ObstacleFill: c.ObstacleFill, LineColor: c.LineColor}
}

// Render draws frame with the session's grid on top into dst and returns it.
// dst is reused when it already has the frame's size, otherwise a new image is allocated.
//
// Obstacle cells are painted on a tinted copy which is blended back over the frame at
// style.Opacity, keeping the feed visible underneath. Only obstacle cells differ between
// the tinted copy and the frame, so only those rectangles are blended. Separator lines
// are drawn last at every row and column boundary. The grid is only read.
func Render(dst *image.RGBA, frame image.Image, s *Session, style Style) *image.RGBA {
	b := frame.Bounds()
	size := image.Rect(0, 0, b.Dx(), b.Dy())
	if dst == nil || dst.Bounds() != size {
		dst = image.NewRGBA(size)
	}
	draw.Draw(dst, size, frame, b.Min, draw.Src)

	tint := image.NewUniform(style.ObstacleFill)
	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(style.Opacity * 255))})
	for r, line := range s.Grid {
		for c, cell := range line {
			if cell != model.Obstacle {
				continue
			}
			rect := layout.CellToPixelRect(r, c, s.CellWidth, s.CellHeight).Intersect(size)
			draw.DrawMask(dst, rect, tint, image.Point{}, mask, image.Point{}, draw.Over)
		}
	}

	lines := image.NewUniform(style.LineColor)
	for c := 0; c <= s.Cols; c++ {
		x := layout.CellToPixelRect(0, c, s.CellWidth, s.CellHeight).Min.X
		draw.Draw(dst, image.Rect(x, 0, x+1, size.Dy()).Intersect(size), lines, image.Point{}, draw.Src)
	}
	for r := 0; r <= s.Rows; r++ {
		y := layout.CellToPixelRect(r, 0, s.CellWidth, s.CellHeight).Min.Y
		draw.Draw(dst, image.Rect(0, y, size.Dx(), y+1).Intersect(size), lines, image.Point{}, draw.Src)
	}
	return dst
}
