package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridCells(g *Grid) [][]Cell {
	cells := make([][]Cell, g.Rows())
	for r := range cells {
		cells[r] = make([]Cell, g.Cols())
		for c := range cells[r] {
			cells[r][c] = g.At(r, c)
		}
	}
	return cells
}

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(15, 10)
	require.NoError(t, err)
	assert.Equal(t, 15, g.Rows())
	assert.Equal(t, 10, g.Cols())
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			assert.Equal(t, Empty, g.At(r, c))
		}
	}
}

func TestNewGridRejectsBadSize(t *testing.T) {
	tests := []struct {
		rows int
		cols int
	}{
		{0, 10},
		{10, 0},
		{0, 0},
		{-1, 5},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d", tt.rows, tt.cols), func(t *testing.T) {
			_, err := NewGrid(tt.rows, tt.cols)
			assert.Error(t, err)
		})
	}
}

func TestNewGridFrom(t *testing.T) {
	g, err := NewGridFrom([][]Cell{
		{1, 0},
		{0, 1},
		{1, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, Cell(1), g.At(0, 0))
	assert.Equal(t, Empty, g.At(0, 1))
}

func TestNewGridFromRejectsEmptyAndJagged(t *testing.T) {
	_, err := NewGridFrom(nil)
	assert.Error(t, err)

	_, err = NewGridFrom([][]Cell{{}})
	assert.Error(t, err)

	_, err = NewGridFrom([][]Cell{
		{1, 1},
		{1},
	})
	assert.Error(t, err)
}

func TestNewGridFromCopiesInput(t *testing.T) {
	cells := [][]Cell{{1, 0}}
	g, err := NewGridFrom(cells)
	require.NoError(t, err)
	cells[0][1] = 7
	assert.Equal(t, Empty, g.At(0, 1))
}

func TestRotateCW(t *testing.T) {
	g, err := NewGridFrom([][]Cell{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	rotated := g.RotateCW()
	assert.Equal(t, 3, rotated.Rows())
	assert.Equal(t, 2, rotated.Cols())
	assert.Equal(t, [][]Cell{
		{4, 1},
		{5, 2},
		{6, 3},
	}, gridCells(rotated))

	// the receiver is untouched
	assert.Equal(t, [][]Cell{
		{1, 2, 3},
		{4, 5, 6},
	}, gridCells(g))
}

func TestRotationsReturnToOriginal(t *testing.T) {
	for k := Kind(0); k < shapeCount; k++ {
		t.Run(k.String(), func(t *testing.T) {
			base := baseShape(k)
			full := base.RotateCW().RotateCW().RotateCW().RotateCW()
			assert.Equal(t, gridCells(base), gridCells(full))
		})
	}
}

func TestRotationsHasFourEntries(t *testing.T) {
	square := baseShape(KindO)
	rotations := square.Rotations()
	require.Len(t, rotations, 4)
	assert.Same(t, square, rotations[0])
	for _, r := range rotations[1:] {
		assert.Equal(t, gridCells(square), gridCells(r))
	}
}

func TestOverlaps(t *testing.T) {
	board, err := NewGrid(4, 4)
	require.NoError(t, err)
	board.cells[2][2] = 5

	dot, err := NewGridFrom([][]Cell{{1}})
	require.NoError(t, err)

	assert.True(t, board.Overlaps(2, 2, dot))
	assert.False(t, board.Overlaps(0, 0, dot))
	assert.False(t, board.Overlaps(2, 1, dot))
}

func TestOverlapsIgnoresOutOfBoundsCells(t *testing.T) {
	board, err := NewGrid(4, 4)
	require.NoError(t, err)
	board.cells[0][3] = 5

	bar, err := NewGridFrom([][]Cell{{1, 1, 1}})
	require.NoError(t, err)

	// only the first cell of the bar is on the board, over an empty cell
	assert.False(t, board.Overlaps(1, 3, bar))
	// the on-board cell lands on the occupied cell
	assert.True(t, board.Overlaps(0, 3, bar))
	// completely off the board
	assert.False(t, board.Overlaps(-5, 0, bar))
}

func TestContains(t *testing.T) {
	board, err := NewGrid(15, 10)
	require.NoError(t, err)
	square := baseShape(KindO)

	tests := []struct {
		name string
		row  int
		col  int
		want bool
	}{
		{"top left", 0, 0, true},
		{"bottom right corner", 13, 8, true},
		{"past right edge", 0, 9, false},
		{"past bottom", 14, 0, false},
		{"negative row", -1, 0, false},
		{"negative col", 0, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, board.Contains(tt.row, tt.col, square))
		})
	}
}

func TestMergeFrom(t *testing.T) {
	board, err := NewGrid(3, 3)
	require.NoError(t, err)
	board.cells[0][1] = 9
	board.cells[1][1] = 9

	shape, err := NewGridFrom([][]Cell{
		{2, 0},
		{0, 2},
	})
	require.NoError(t, err)

	board.MergeFrom(0, 0, shape)
	assert.Equal(t, Cell(2), board.At(0, 0))
	// the empty shape cell at (0,1) does not overwrite existing content
	assert.Equal(t, Cell(9), board.At(0, 1))
	// the non-empty shape cell at (1,1) does
	assert.Equal(t, Cell(2), board.At(1, 1))
	assert.Equal(t, Empty, board.At(1, 0))
}

func TestRowFilled(t *testing.T) {
	board, err := NewGrid(2, 3)
	require.NoError(t, err)
	for c := 0; c < 3; c++ {
		board.cells[1][c] = 1
	}
	assert.False(t, board.RowFilled(0))
	assert.True(t, board.RowFilled(1))
}

func TestRemoveFilledRowsSingleBottomRow(t *testing.T) {
	board, err := NewGrid(15, 10)
	require.NoError(t, err)
	for c := 0; c < 10; c++ {
		board.cells[14][c] = 3
	}
	board.cells[13][0] = 7

	removed := board.RemoveFilledRows()
	assert.Equal(t, 1, removed)

	// the marker shifted down one row, the top row is fresh
	assert.Equal(t, Cell(7), board.At(14, 0))
	for c := 0; c < 10; c++ {
		assert.Equal(t, Empty, board.At(0, c))
	}
	for c := 1; c < 10; c++ {
		assert.Equal(t, Empty, board.At(14, c))
	}
}

func TestRemoveFilledRowsAdjacent(t *testing.T) {
	board, err := NewGrid(6, 4)
	require.NoError(t, err)
	for c := 0; c < 4; c++ {
		board.cells[4][c] = 1
		board.cells[5][c] = 1
	}
	board.cells[3][1] = 2

	removed := board.RemoveFilledRows()
	assert.Equal(t, 2, removed)
	assert.Equal(t, Cell(2), board.At(5, 1))
	for r := 0; r < 5; r++ {
		for c := 0; c < 4; c++ {
			assert.Equal(t, Empty, board.At(r, c))
		}
	}
}

func TestRemoveFilledRowsNothingFilled(t *testing.T) {
	board, err := NewGrid(4, 4)
	require.NoError(t, err)
	board.cells[3][0] = 1
	assert.Equal(t, 0, board.RemoveFilledRows())
	assert.Equal(t, Cell(1), board.At(3, 0))
}

func TestClear(t *testing.T) {
	board, err := NewGrid(3, 3)
	require.NoError(t, err)
	board.cells[0][0] = 1
	board.cells[2][2] = 5
	board.Clear()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			assert.Equal(t, Empty, board.At(r, c))
		}
	}
}
