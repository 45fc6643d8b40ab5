package main

import "fmt"

// Cell is a single board or shape cell. Empty marks a free cell; any other
// value is an opaque color tag that survives merging into the board.
type Cell int

// Empty is the zero cell value.
const Empty Cell = 0

// Grid is a rectangular matrix of cells. Dimensions are fixed at creation;
// the cell contents mutate in place through MergeFrom, RemoveFilledRows and
// Clear.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewGrid returns an all-empty grid of the given size.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("grid size %dx%d: both dimensions must be at least 1", rows, cols)
	}
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// NewGridFrom builds a grid from literal cell data. The input must be
// non-empty and rectangular; the rows are copied, not aliased.
func NewGridFrom(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("grid literal: empty cell data")
	}
	cols := len(cells[0])
	copied := make([][]Cell, len(cells))
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("grid literal: row %d has %d cells, want %d", r, len(row), cols)
		}
		copied[r] = make([]Cell, cols)
		copy(copied[r], row)
	}
	return &Grid{rows: len(cells), cols: cols, cells: copied}, nil
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// At returns the cell at the given position.
func (g *Grid) At(row, col int) Cell { return g.cells[row][col] }

// RotateCW returns a new grid rotated 90 degrees clockwise. The receiver is
// not modified. A rows x cols grid becomes cols x rows.
func (g *Grid) RotateCW() *Grid {
	cells := make([][]Cell, g.cols)
	for c := range cells {
		cells[c] = make([]Cell, g.rows)
		for r := 0; r < g.rows; r++ {
			cells[c][r] = g.cells[g.rows-1-r][c]
		}
	}
	return &Grid{rows: g.cols, cols: g.rows, cells: cells}
}

// Rotations returns the four 90-degree orientations of the grid, starting
// with the grid itself. Shapes with fewer distinct orientations still get
// four entries.
func (g *Grid) Rotations() []*Grid {
	rotations := make([]*Grid, 4)
	rotations[0] = g
	for i := 1; i < 4; i++ {
		rotations[i] = rotations[i-1].RotateCW()
	}
	return rotations
}

// Overlaps reports whether any cell of other, placed at the given offset,
// is non-empty in both grids. Only the intersection rectangle is examined:
// cells of other that fall outside the receiver are ignored. Callers that
// need placement legality combine this with Contains.
func (g *Grid) Overlaps(rowOff, colOff int, other *Grid) bool {
	for r := 0; r < other.rows; r++ {
		br := rowOff + r
		if br < 0 || br >= g.rows {
			continue
		}
		for c := 0; c < other.cols; c++ {
			bc := colOff + c
			if bc < 0 || bc >= g.cols {
				continue
			}
			if other.cells[r][c] != Empty && g.cells[br][bc] != Empty {
				return true
			}
		}
	}
	return false
}

// Contains reports whether other placed at the given offset lies entirely
// inside the receiver.
func (g *Grid) Contains(rowOff, colOff int, other *Grid) bool {
	return rowOff >= 0 && colOff >= 0 &&
		rowOff+other.rows <= g.rows && colOff+other.cols <= g.cols
}

// MergeFrom copies every non-empty cell of other into the receiver at the
// given offset. Empty cells of other leave the receiver untouched, and
// cells outside the receiver are skipped.
func (g *Grid) MergeFrom(rowOff, colOff int, other *Grid) {
	for r := 0; r < other.rows; r++ {
		br := rowOff + r
		if br < 0 || br >= g.rows {
			continue
		}
		for c := 0; c < other.cols; c++ {
			bc := colOff + c
			if bc < 0 || bc >= g.cols {
				continue
			}
			if other.cells[r][c] != Empty {
				g.cells[br][bc] = other.cells[r][c]
			}
		}
	}
}

// RowFilled reports whether every cell in the row is non-empty.
func (g *Grid) RowFilled(row int) bool {
	for c := 0; c < g.cols; c++ {
		if g.cells[row][c] == Empty {
			return false
		}
	}
	return true
}

// RemoveFilledRows removes every fully occupied row, shifting the rows
// above it down by one and inserting a fresh empty row at the top. The scan
// runs bottom to top and re-tests the same index after a removal, since new
// content has shifted into it. Returns the number of rows removed.
func (g *Grid) RemoveFilledRows() int {
	removed := 0
	for r := g.rows - 1; r >= 0; r-- {
		if !g.RowFilled(r) {
			continue
		}
		removed++
		for pull := r; pull > 0; pull-- {
			copy(g.cells[pull], g.cells[pull-1])
		}
		for c := 0; c < g.cols; c++ {
			g.cells[0][c] = Empty
		}
		r++
	}
	return removed
}

// Clear resets every cell to Empty.
func (g *Grid) Clear() {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c] = Empty
		}
	}
}
