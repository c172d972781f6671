package gomoku

import "fmt"

// BoardSize is the fixed grid edge length. WinLength is the run length that
// wins the game.
const (
	BoardSize = 15
	WinLength = 5
)

type Player int8

const (
	Black Player = iota + 1
	White
)

func (p Player) Other() Player {
	if p == Black {
		return White
	}
	return Black
}

func (p Player) String() string {
	switch p {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "None"
	}
}

// Point addresses a board intersection. Row and Col are 1-indexed; row 1 is
// the bottom edge, column 1 the left edge.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Column labels A-O for the coordinate notation ("H8").
const colLabels = "ABCDEFGHIJKLMNO"

func (p Point) OnGrid() bool {
	return p.Row >= 1 && p.Row <= BoardSize && p.Col >= 1 && p.Col <= BoardSize
}

func (p Point) String() string {
	if !p.OnGrid() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", colLabels[p.Col-1], p.Row)
}

// ParsePoint parses a coordinate string like "E5" or "H12": a column letter
// A-O followed by a 1-based row number.
func ParsePoint(text string) (Point, error) {
	if len(text) < 2 || len(text) > 3 {
		return Point{}, fmt.Errorf("invalid coordinate %q", text)
	}
	col := -1
	c := text[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	for i := 0; i < len(colLabels); i++ {
		if colLabels[i] == c {
			col = i + 1
			break
		}
	}
	if col == -1 {
		return Point{}, fmt.Errorf("invalid coordinate %q: bad column", text)
	}
	row := 0
	for i := 1; i < len(text); i++ {
		d := text[i]
		if d < '0' || d > '9' {
			return Point{}, fmt.Errorf("invalid coordinate %q: bad row", text)
		}
		row = row*10 + int(d-'0')
	}
	p := Point{Row: row, Col: col}
	if !p.OnGrid() {
		return Point{}, fmt.Errorf("coordinate %q is off the grid", text)
	}
	return p, nil
}

// Move is one history entry: who placed a stone where.
type Move struct {
	Point  Point  `json:"point"`
	Player Player `json:"player"`
}

func (m Move) String() string {
	return fmt.Sprintf("%s: %s", m.Player, m.Point)
}
