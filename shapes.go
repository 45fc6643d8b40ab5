package main

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

const shapeCount = 7

func (k Kind) String() string {
	names := [shapeCount]string{"I", "O", "T", "S", "Z", "J", "L"}
	if k < 0 || int(k) >= len(names) {
		return "?"
	}
	return names[k]
}

// Tag returns the non-empty cell value merged into the board for this
// shape. Tags double as theme color indices (tag-1).
func (k Kind) Tag() Cell { return Cell(k + 1) }

// baseShape returns the base orientation of a shape as a minimal
// bounding-box grid. The table is static configuration; a bad literal is a
// programming defect and panics at first use.
func baseShape(k Kind) *Grid {
	x := k.Tag()
	var cells [][]Cell
	switch k {
	case KindI:
		cells = [][]Cell{
			{x, x, x, x},
		}
	case KindO:
		cells = [][]Cell{
			{x, x},
			{x, x},
		}
	case KindT:
		cells = [][]Cell{
			{0, x, 0},
			{x, x, x},
		}
	case KindS:
		cells = [][]Cell{
			{0, x, x},
			{x, x, 0},
		}
	case KindZ:
		cells = [][]Cell{
			{x, x, 0},
			{0, x, x},
		}
	case KindJ:
		cells = [][]Cell{
			{x, 0, 0},
			{x, x, x},
		}
	case KindL:
		cells = [][]Cell{
			{0, 0, x},
			{x, x, x},
		}
	default:
		panic("unknown shape kind")
	}
	grid, err := NewGridFrom(cells)
	if err != nil {
		panic(err)
	}
	return grid
}

// allPieces builds one piece per shape kind.
func allPieces() []*Piece {
	pieces := make([]*Piece, 0, shapeCount)
	for k := Kind(0); k < shapeCount; k++ {
		pieces = append(pieces, NewPiece(k))
	}
	return pieces
}
