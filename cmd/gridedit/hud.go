package main

import (
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	hudSize    = 14
	hudPadding = 6
)

func newFace(size float64) (font.Face, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	const dpi = 72
	return truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}), nil
}

// drawHUD writes the status lines in the top-left corner and the toast, if any,
// centred at the bottom.
func drawHUD(screen *ebiten.Image, face font.Face, lines []string, toast string, alpha float32) {
	lineHeight := face.Metrics().Height.Ceil()
	y := hudPadding
	for _, line := range lines {
		width := font.MeasureString(face, line).Ceil()
		ebitenutil.DrawRect(screen, 0, float64(y), float64(width+2*hudPadding), float64(lineHeight), color.RGBA{A: 140})
		y += lineHeight
		text.Draw(screen, line, face, hudPadding, y-face.Metrics().Descent.Ceil(), color.White)
	}

	if toast == "" || alpha <= 0 {
		return
	}
	sw, sh := screen.Size()
	width := font.MeasureString(face, toast).Ceil()
	x := (sw - width) / 2
	top := sh - 2*lineHeight
	ebitenutil.DrawRect(screen, float64(x-hudPadding), float64(top), float64(width+2*hudPadding), float64(lineHeight+hudPadding),
		color.NRGBA{A: uint8(180 * alpha)})
	text.Draw(screen, toast, face, x, top+lineHeight, color.NRGBA{R: 255, G: 255, B: 120, A: uint8(255 * alpha)})
}
