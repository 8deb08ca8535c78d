package editor

import (
	"errors"
	"image"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/zucenko/arena/capture"
)

// HUD is the text drawn over the frame next to the grid.
type HUD struct {
	Lines      []string
	Toast      string
	ToastAlpha float32
}

// Display is the window the editor shows frames in and reads input from.
// Poll must not block; it returns ok == false when no event is pending.
type Display interface {
	Show(frame *image.RGBA, hud HUD) error
	Poll() (ev Event, ok bool)
	Close() error
}

// Rig owns the capture source and the display of a session. Close releases both,
// once, whichever way the session ends.
type Rig struct {
	Source  capture.Source
	Display Display

	once sync.Once
	err  error
}

func NewRig(src capture.Source, disp Display) *Rig {
	return &Rig{Source: src, Display: disp}
}

func (r *Rig) Close() error {
	r.once.Do(func() {
		log.Info("releasing capture device and display")
		var srcErr, dispErr error
		if r.Source != nil {
			srcErr = r.Source.Close()
		}
		if r.Display != nil {
			dispErr = r.Display.Close()
		}
		r.err = errors.Join(srcErr, dispErr)
	})
	return r.err
}
