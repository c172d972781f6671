package gomoku

type Cell int8

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
)

func (c Cell) String() string {
	switch c {
	case CellBlack:
		return "Black"
	case CellWhite:
		return "White"
	default:
		return "Empty"
	}
}

func CellFromPlayer(player Player) Cell {
	if player == Black {
		return CellBlack
	}
	return CellWhite
}

// Board is the fixed 15x15 grid, stored dense with CellEmpty as the
// unoccupied sentinel.
type Board struct {
	cells  []Cell
	stones int
}

func NewBoard() Board {
	b := Board{}
	b.Reset()
	return b
}

func (b *Board) Reset() {
	b.cells = make([]Cell, BoardSize*BoardSize)
	b.stones = 0
}

func (b Board) At(p Point) Cell {
	return b.cells[index(p)]
}

func (b *Board) Set(p Point, value Cell) {
	idx := index(p)
	if b.cells[idx] == CellEmpty && value != CellEmpty {
		b.stones++
	}
	b.cells[idx] = value
}

func (b *Board) Remove(p Point) {
	idx := index(p)
	if b.cells[idx] != CellEmpty {
		b.stones--
	}
	b.cells[idx] = CellEmpty
}

func (b Board) IsEmpty(p Point) bool {
	return p.OnGrid() && b.At(p) == CellEmpty
}

func (b Board) StoneCount() int {
	return b.stones
}

func (b Board) Full() bool {
	return b.stones == BoardSize*BoardSize
}

func (b Board) Clone() Board {
	clone := Board{stones: b.stones}
	clone.cells = make([]Cell, len(b.cells))
	copy(clone.cells, b.cells)
	return clone
}

func index(p Point) int {
	return (p.Row-1)*BoardSize + (p.Col - 1)
}
