// Package store persists occupancy grids as indented JSON arrays of cell symbols.
//
// Files are meant to be read by people as well as programs, so every cell is written
// as "O", "X" or "H". Integers 0, 1 and 2 are still accepted on read.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/zucenko/arena/model"
)

// DefaultPath is used whenever a caller passes an empty path.
const DefaultPath = "grid.json"

func normalise(path string) string {
	if path == "" {
		return DefaultPath
	}
	return path
}

// Load reads the grid stored at path. A missing file yields an empty grid and no error.
func Load(path string) (model.Grid, error) {
	path = normalise(path)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.WithField("path", path).Debug("no grid file yet")
		return nil, nil
	}
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return read(path, data)
}

// Get returns the current grid. Callers go through Get rather than Load so that the
// backing store (an in-memory cache, a remote source) can change without touching them.
func Get(path string) (model.Grid, error) {
	return Load(path)
}

func read(path string, data []byte) (model.Grid, error) {
	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil || isNull(data) {
		reason := "expected an array of rows"
		if err != nil {
			reason += ": " + err.Error()
		}
		return nil, &FormatError{Path: path, Row: -1, Col: -1, Reason: reason}
	}

	grid := make(model.Grid, 0, len(rows))
	for r, raw := range rows {
		var cells []json.RawMessage
		if err := json.Unmarshal(raw, &cells); err != nil || isNull(raw) {
			return nil, &FormatError{Path: path, Row: r, Col: -1, Value: string(raw), Reason: "row must be an array"}
		}
		line := make([]model.Cell, 0, len(cells))
		for c, value := range cells {
			cell, err := parseCell(value)
			if err != nil {
				return nil, &FormatError{Path: path, Row: r, Col: c, Value: string(value), Reason: err.Error()}
			}
			line = append(line, cell)
		}
		grid = append(grid, line)
	}

	if r, ok := grid.Rectangular(); !ok {
		return nil, &FormatError{
			Path:   path,
			Row:    r,
			Col:    -1,
			Value:  strconv.Itoa(len(grid[r])),
			Reason: "row has " + strconv.Itoa(len(grid[r])) + " cells, expected " + strconv.Itoa(grid.Cols()),
		}
	}
	return grid, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// parseCell decodes one element, which is either a symbol string or an integer.
func parseCell(raw json.RawMessage) (model.Cell, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return model.Free, errors.New("empty value")
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return model.Free, err
		}
		cell, ok := model.ParseSymbol(s)
		if !ok {
			return model.Free, errors.New("unknown symbol, expected O, X or H")
		}
		return cell, nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		v, err := strconv.ParseInt(string(trimmed), 10, 64)
		if err != nil {
			return model.Free, errors.New("not an integer")
		}
		cell, ok := model.CellFromInt(v)
		if !ok {
			return model.Free, errors.New("integer out of range, expected 0, 1 or 2")
		}
		return cell, nil
	}
	return model.Free, errors.New("expected a symbol string or an integer")
}

// Save writes grid to path as symbols, creating parent directories as needed.
// The file is replaced through a rename so readers never see a partial write.
func Save(grid model.Grid, path string) error {
	path = normalise(path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &IOError{Op: "mkdir", Path: dir, Err: err}
	}

	symbolic := make([][]string, len(grid))
	for r, line := range grid {
		symbolic[r] = make([]string, len(line))
		for c, cell := range line {
			if !cell.Valid() {
				cell = model.Free
			}
			symbolic[r][c] = cell.Symbol()
		}
	}
	data, err := json.MarshalIndent(symbolic, "", "  ")
	if err != nil {
		return &IOError{Op: "encode", Path: path, Err: err}
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &IOError{Op: "write", Path: tmp.Name(), Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Op: "close", Path: tmp.Name(), Err: err}
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return &IOError{Op: "chmod", Path: tmp.Name(), Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	log.WithFields(log.Fields{"path": path, "rows": grid.Rows(), "cols": grid.Cols()}).Debug("grid saved")
	return nil
}
