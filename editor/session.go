package editor

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/zucenko/arena/layout"
	"github.com/zucenko/arena/model"
	"github.com/zucenko/arena/store"
)

type EventKind int

const (
	Click EventKind = iota + 1
	SaveKey
	QuitKey
)

func (k EventKind) Name() string {
	switch k {
	case Click:
		return "CLICK"
	case SaveKey:
		return "SAVE"
	case QuitKey:
		return "QUIT"
	default:
		return fmt.Sprintf("N/A(%d)", k)
	}
}

// Event is one user input. X and Y are frame pixels and only set for Click.
type Event struct {
	Kind EventKind
	X, Y float64
}

// Result describes what handling an event did to the session.
type Result struct {
	Toggled  bool
	Row, Col int
	Cell     model.Cell
	Saved    bool
	Quit     bool
}

// Session is the state shared by rendering and input handling during one run of the editor.
// It is owned by the render loop; nothing else mutates the grid.
type Session struct {
	Grid       model.Grid
	Rows, Cols int
	CellWidth  float64
	CellHeight float64
	AutoSave   bool
	Path       string
}

// NewSession loads the persisted grid and fits it to the configured dimensions.
// A malformed grid file is returned as is; the caller has to fix or remove it.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	persisted, err := store.Load(cfg.Path)
	if err != nil {
		return nil, err
	}
	if !persisted.Empty() && (persisted.Rows() != cfg.Rows || persisted.Cols() != cfg.Cols) {
		log.WithFields(log.Fields{
			"saved":     fmt.Sprintf("%dx%d", persisted.Rows(), persisted.Cols()),
			"requested": fmt.Sprintf("%dx%d", cfg.Rows, cfg.Cols),
		}).Warn("saved grid has different dimensions, fitting it to the requested size")
	}
	path := cfg.Path
	if path == "" {
		path = store.DefaultPath
	}
	return &Session{
		Grid:       model.Seed(cfg.Rows, cfg.Cols, persisted),
		Rows:       cfg.Rows,
		Cols:       cfg.Cols,
		CellWidth:  1,
		CellHeight: 1,
		AutoSave:   cfg.AutoSave,
		Path:       path,
	}, nil
}

// Resize recomputes the cell size for a frame of the given dimensions.
func (s *Session) Resize(frameWidth, frameHeight int) {
	s.CellWidth, s.CellHeight = layout.CellSize(frameWidth, frameHeight, s.Rows, s.Cols)
}

// Toggle flips a cell between Free and Obstacle. Home cells are left alone.
func (s *Session) Toggle(row, col int) model.Cell {
	switch s.Grid[row][col] {
	case model.Free:
		s.Grid[row][col] = model.Obstacle
	case model.Obstacle:
		s.Grid[row][col] = model.Free
	}
	return s.Grid[row][col]
}

// Save writes the whole grid. On failure the in-memory grid is kept so saving can be retried.
func (s *Session) Save() error {
	return store.Save(s.Grid, s.Path)
}

// Handle applies one event. A failed save is returned together with the partial result.
func (s *Session) Handle(ev Event) (Result, error) {
	switch ev.Kind {
	case Click:
		row, col, in := layout.PixelToCell(ev.X, ev.Y, s.CellWidth, s.CellHeight, s.Rows, s.Cols)
		if !in {
			log.WithFields(log.Fields{"x": ev.X, "y": ev.Y}).Debug("click outside grid ignored")
			return Result{}, nil
		}
		res := Result{Toggled: true, Row: row, Col: col, Cell: s.Toggle(row, col)}
		if !s.AutoSave {
			return res, nil
		}
		if err := s.Save(); err != nil {
			return res, err
		}
		res.Saved = true
		log.WithFields(log.Fields{"row": row, "col": col, "cell": res.Cell.Symbol()}).Info("[auto-save] updated cell")
		return res, nil
	case SaveKey:
		if err := s.Save(); err != nil {
			return Result{}, err
		}
		log.WithField("path", s.Path).Info("grid saved")
		return Result{Saved: true}, nil
	case QuitKey:
		return Result{Quit: true}, nil
	}
	return Result{}, nil
}
