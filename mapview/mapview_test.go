package mapview

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/arena/model"
	"github.com/zucenko/arena/store"
)

func savedGrid(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.json")
	require.NoError(t, store.Save(model.Grid{
		{model.Free, model.Free, model.Obstacle, model.Free},
		{model.Free, model.Home, model.Free, model.Free},
		{model.Obstacle, model.Obstacle, model.Free, model.Free},
	}, path))
	return path
}

func TestMapDefaultSymbols(t *testing.T) {
	rows, err := Map(savedGrid(t), DefaultSymbols)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"O", "O", "X", "O"},
		{"O", "H", "O", "O"},
		{"X", "X", "O", "O"},
	}, rows)
}

func TestStringCustomSymbols(t *testing.T) {
	path := savedGrid(t)

	s, err := String(path, Symbols{Free: ".", Obstacle: "#", Home: "1"}, "")
	require.NoError(t, err)
	assert.Equal(t, "..#.\n.1..\n##..", s)

	s, err = String(path, Symbols{Home: "1"}, " ")
	require.NoError(t, err)
	assert.Equal(t, "O O X O\nO 1 O O\nX X O O", s)
}

func TestInfo(t *testing.T) {
	info, err := InfoOf(savedGrid(t))
	require.NoError(t, err)
	assert.Equal(t, Info{
		Rows: 3, Cols: 4, TotalCells: 12,
		FreeCount: 8, ObstacleCount: 3, HomeCount: 1,
		Exists: true,
	}, info)
}

func TestMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.json")

	rows, err := Map(path, DefaultSymbols)
	require.NoError(t, err)
	assert.Empty(t, rows)

	info, err := InfoOf(path)
	require.NoError(t, err)
	assert.False(t, info.Exists)
	assert.Zero(t, info.TotalCells)

	raw, err := Raw(path)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestRaw(t *testing.T) {
	raw, err := Raw(savedGrid(t))
	require.NoError(t, err)
	var decoded [][]string
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Len(t, decoded, 3)
}

func TestMalformedFileSurfaces(t *testing.T) {
	_, err := InfoOf(filepath.Join("testdata", "bad.json"))
	var fe *store.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 1, fe.Row)
	assert.Equal(t, 0, fe.Col)
}
