package main

// Piece is a falling game object: the four precomputed 90-degree rotations
// of a base shape plus a board position. Movement and rotation test a
// candidate position first and mutate only on success, so a blocked command
// leaves the piece exactly where it was.
type Piece struct {
	kind      Kind
	rotations *Ring[*Grid]
	row       int
	col       int
}

// NewPiece builds a piece for the given shape kind with its rotations
// precomputed once.
func NewPiece(kind Kind) *Piece {
	rotations, err := NewRing(baseShape(kind).Rotations()...)
	if err != nil {
		panic(err)
	}
	return &Piece{kind: kind, rotations: rotations}
}

// Kind returns the piece's shape kind.
func (p *Piece) Kind() Kind { return p.kind }

// Footprint returns the current rotation grid and board offsets for
// collision queries and rendering. The grid must not be modified.
func (p *Piece) Footprint() (grid *Grid, row, col int) {
	return p.rotations.Current(), p.row, p.col
}

// fits reports whether the grid placed at the offset is fully inside the
// board and free of collisions.
func fits(board, grid *Grid, row, col int) bool {
	return board.Contains(row, col, grid) && !board.Overlaps(row, col, grid)
}

// ResetPosition moves the piece to the top of the board, horizontally
// centered. It reports false when the piece overlaps existing board
// content there, which the caller treats as game over.
func (p *Piece) ResetPosition(board *Grid) bool {
	grid := p.rotations.Current()
	p.row = 0
	p.col = (board.Cols() - grid.Cols()) / 2
	return !board.Overlaps(p.row, p.col, grid)
}

// MoveLeft shifts the piece one column left if the new position is legal.
func (p *Piece) MoveLeft(board *Grid) bool {
	return p.moveTo(board, p.row, p.col-1)
}

// MoveRight shifts the piece one column right if the new position is legal.
func (p *Piece) MoveRight(board *Grid) bool {
	return p.moveTo(board, p.row, p.col+1)
}

// MoveDown shifts the piece one row down if the new position is legal. A
// false return means the piece has landed.
func (p *Piece) MoveDown(board *Grid) bool {
	return p.moveTo(board, p.row+1, p.col)
}

func (p *Piece) moveTo(board *Grid, row, col int) bool {
	if !fits(board, p.rotations.Current(), row, col) {
		return false
	}
	p.row = row
	p.col = col
	return true
}

// Rotate advances to the next rotation, clamping the position back into
// the board when the new orientation sticks out past a wall or the floor.
// The row offset is only clamped from above, never raised to zero. If the
// clamped position still collides, the piece is left unchanged.
func (p *Piece) Rotate(board *Grid) bool {
	next := p.rotations.Next()
	row, col := p.row, p.col
	if col > board.Cols()-next.Cols() {
		col = board.Cols() - next.Cols()
	}
	if col < 0 {
		col = 0
	}
	if row+next.Rows() > board.Rows() {
		row = board.Rows() - next.Rows()
	}
	if board.Overlaps(row, col, next) {
		p.rotations.Prev()
		return false
	}
	p.row = row
	p.col = col
	return true
}

// CommitTo merges the current rotation into the board at the piece's
// position.
func (p *Piece) CommitTo(board *Grid) {
	board.MergeFrom(p.row, p.col, p.rotations.Current())
}
