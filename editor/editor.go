// Package editor runs the interactive authoring loop: it shows the camera feed with the
// occupancy grid drawn on top, toggles cells on click and writes the grid back to disk.
package editor

import (
	"errors"
	"fmt"
	"image"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/zucenko/arena/capture"
	"github.com/zucenko/arena/layout"
)

// ErrQuit is returned by Step when the user asked to end the session.
var ErrQuit = errors.New("editor: quit requested")

type State int

const (
	INIT State = iota + 1
	RUNNING
	SHUTDOWN
)

func (s State) Name() string {
	switch s {
	case INIT:
		return "INIT"
	case RUNNING:
		return "RUNNING"
	case SHUTDOWN:
		return "SHUTDOWN"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// Editor drives one session from the first frame until quit or end of stream.
// It is not safe for concurrent use; one goroutine owns the rig, the grid and the file.
type Editor struct {
	State   State
	Session *Session

	rig      *Rig
	style    Style
	canvas   *image.RGBA
	toast    Toast
	lastEdit string
	last     time.Time
	now      func() time.Time
}

// New loads the grid for cfg and takes ownership of rig. The rig is released if
// the session cannot be set up.
func New(cfg Config, rig *Rig) (*Editor, error) {
	session, err := NewSession(cfg)
	if err != nil {
		if cerr := rig.Close(); cerr != nil {
			log.WithError(cerr).Warn("release after failed start")
		}
		return nil, err
	}
	return &Editor{
		State:   INIT,
		Session: session,
		rig:     rig,
		style:   cfg.Style(),
		now:     time.Now,
	}, nil
}

// Step runs one iteration of the loop: read a frame, draw the overlay, show it and
// handle at most one pending event. It returns ErrQuit when the user quits and a
// *capture.FrameReadError when the source stops producing frames.
func (e *Editor) Step() error {
	if e.State == SHUTDOWN {
		return ErrQuit
	}
	e.State = RUNNING

	frame, err := e.rig.Source.Read()
	if err != nil {
		log.WithError(err).Error("failed to read frame, exiting editor")
		var fre *capture.FrameReadError
		if !errors.As(err, &fre) {
			err = &capture.FrameReadError{Err: err}
		}
		return err
	}

	b := frame.Bounds()
	e.Session.Resize(b.Dx(), b.Dy())
	e.canvas = Render(e.canvas, frame, e.Session, e.style)

	now := e.now()
	var dt float32
	if !e.last.IsZero() {
		dt = float32(now.Sub(e.last).Seconds())
	}
	e.last = now
	alpha := e.toast.Update(dt)

	if err := e.rig.Display.Show(e.canvas, HUD{Lines: e.hudLines(), Toast: e.toast.Message, ToastAlpha: alpha}); err != nil {
		return fmt.Errorf("show frame: %w", err)
	}

	ev, ok := e.rig.Display.Poll()
	if !ok {
		return nil
	}
	return e.handle(ev)
}

func (e *Editor) handle(ev Event) error {
	res, err := e.Session.Handle(ev)
	if err != nil {
		// The grid stays as edited; pressing save again retries.
		log.WithError(err).Error("saving grid failed")
		e.toast.Show("save failed: " + err.Error())
		return nil
	}
	switch {
	case res.Quit:
		log.Info("quitting editor")
		return ErrQuit
	case res.Toggled:
		e.lastEdit = fmt.Sprintf("cell (%d, %d) -> %s", res.Row, res.Col, res.Cell.Symbol())
		if res.Saved {
			e.toast.Show("[auto-save] " + e.lastEdit)
		}
	case res.Saved:
		e.toast.Show("grid saved to " + e.Session.Path)
	}
	return nil
}

func (e *Editor) hudLines() []string {
	autosave := "off"
	if e.Session.AutoSave {
		autosave = "on"
	}
	lines := []string{
		"left click: toggle   s: save   q: quit",
		fmt.Sprintf("%dx%d grid, auto-save %s", e.Session.Rows, e.Session.Cols, autosave),
	}
	if e.lastEdit != "" {
		lines = append(lines, e.lastEdit)
	}
	return lines
}

// Run drives Step through drive until the session ends and then releases the rig.
// drive is the display's main loop; it calls step once per frame and returns the
// first error step returns. Quitting and end of stream are clean exits.
func (e *Editor) Run(drive func(step func() error) error) (err error) {
	log.WithFields(log.Fields{
		"rows": e.Session.Rows, "cols": e.Session.Cols, "path": e.Session.Path,
	}).Info("controls: left click to toggle, 's' to save, 'q' to quit")
	defer func() {
		e.State = SHUTDOWN
		if cerr := e.rig.Close(); cerr != nil {
			log.WithError(cerr).Warn("releasing resources")
			if err == nil {
				err = cerr
			}
		}
	}()

	err = drive(e.Step)
	var fre *capture.FrameReadError
	switch {
	case errors.Is(err, ErrQuit):
		return nil
	case errors.As(err, &fre):
		return nil
	}
	return err
}

// Loop is a drive function that calls step until it fails.
func Loop(step func() error) error {
	for {
		if err := step(); err != nil {
			return err
		}
	}
}

// CellAt reports the cell under a frame pixel for the current frame size.
func (e *Editor) CellAt(x, y float64) (row, col int, in bool) {
	s := e.Session
	return layout.PixelToCell(x, y, s.CellWidth, s.CellHeight, s.Rows, s.Cols)
}
