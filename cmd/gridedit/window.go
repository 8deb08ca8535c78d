package main

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"

	"github.com/zucenko/arena/editor"
)

// PointerSource is an input device that can place a click on the window.
type PointerSource interface {
	Position() (int, int)
}

// MouseSource is a PointerSource implementation of mouse.
type MouseSource struct{}

func (m MouseSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

// TouchSource is a PointerSource implementation of touch.
type TouchSource struct {
	ID int
}

func (t TouchSource) Position() (int, int) {
	return ebiten.TouchPosition(t.ID)
}

// window is the ebiten side of the editor. The screen is fixed at width x height;
// frames of another size are scaled into it and pointer positions are scaled back
// into frame pixels before they reach the editor.
type window struct {
	width, height int
	face          font.Face
	locate        func(x, y float64) (row, col int, in bool)

	screen         *ebiten.Image
	frame          *ebiten.Image
	frameW, frameH int
	events         []editor.Event
}

func newWindow(width, height int, face font.Face) *window {
	return &window{width: width, height: height, face: face}
}

// drive runs the ebiten loop, calling step once per tick.
func (w *window) drive(title string) func(step func() error) error {
	return func(step func() error) error {
		return ebiten.Run(func(screen *ebiten.Image) error {
			w.screen = screen
			w.collect()
			return step()
		}, w.width, w.height, 1, title)
	}
}

func (w *window) toFrame(x, y int) (float64, float64) {
	return float64(x) * float64(w.frameW) / float64(w.width),
		float64(y) * float64(w.frameH) / float64(w.height)
}

func (w *window) click(p PointerSource) {
	if w.frameW == 0 || w.frameH == 0 {
		return
	}
	fx, fy := w.toFrame(p.Position())
	w.events = append(w.events, editor.Event{Kind: editor.Click, X: fx, Y: fy})
}

// collect queues the edge-triggered input of this tick.
func (w *window) collect() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w.click(MouseSource{})
	}
	for _, id := range inpututil.JustPressedTouchIDs() {
		w.click(TouchSource{ID: id})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		w.events = append(w.events, editor.Event{Kind: editor.SaveKey})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		w.events = append(w.events, editor.Event{Kind: editor.QuitKey})
	}
}

func (w *window) Poll() (editor.Event, bool) {
	if len(w.events) == 0 {
		return editor.Event{}, false
	}
	ev := w.events[0]
	w.events = w.events[1:]
	return ev, true
}

func (w *window) Show(frame *image.RGBA, hud editor.HUD) error {
	b := frame.Bounds()
	if w.frame == nil || w.frameW != b.Dx() || w.frameH != b.Dy() {
		if w.frame != nil {
			if err := w.frame.Dispose(); err != nil {
				return err
			}
		}
		img, err := ebiten.NewImage(b.Dx(), b.Dy(), ebiten.FilterLinear)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{"width": b.Dx(), "height": b.Dy()}).Debug("frame size changed")
		w.frame, w.frameW, w.frameH = img, b.Dx(), b.Dy()
	}
	if ebiten.IsDrawingSkipped() || w.screen == nil {
		return nil
	}
	if err := w.frame.ReplacePixels(frame.Pix); err != nil {
		return err
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.width)/float64(w.frameW), float64(w.height)/float64(w.frameH))
	if err := w.screen.DrawImage(w.frame, op); err != nil {
		return err
	}

	lines := hud.Lines
	if w.locate != nil {
		if row, col, in := w.locate(w.toFrame(ebiten.CursorPosition())); in {
			lines = append(lines, fmt.Sprintf("cursor over cell (%d, %d)", row, col))
		}
	}
	drawHUD(w.screen, w.face, lines, hud.Toast, hud.ToastAlpha)
	return nil
}

func (w *window) Close() error {
	if w.frame == nil {
		return nil
	}
	err := w.frame.Dispose()
	w.frame = nil
	return err
}
