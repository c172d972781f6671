package gomoku

// Status is the lifecycle of one game.
type Status int8

const (
	Playing Status = iota
	BlackWon
	WhiteWon
	Draw
)

func (s Status) String() string {
	switch s {
	case BlackWon:
		return "black_won"
	case WhiteWon:
		return "white_won"
	case Draw:
		return "draw"
	default:
		return "playing"
	}
}

var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// GameState owns one board, the player to move, and the ordered move history.
// It is not safe for concurrent use; callers hold one GameState per game.
type GameState struct {
	Board  Board
	ToMove Player
	Status Status

	// OverlineWins controls whether a run of six or more counts as a win
	// (freestyle rule) or only exactly five does. Defaults to true.
	OverlineWins bool

	moves []Move
	hash  uint64
}

func NewGameState() *GameState {
	s := &GameState{}
	s.Reset()
	return s
}

func (s *GameState) Reset() {
	s.Board = NewBoard()
	s.ToMove = Black
	s.Status = Playing
	s.OverlineWins = true
	s.moves = s.moves[:0]
	s.hash = 0
}

// Moves returns a copy of the move history in play order.
func (s *GameState) Moves() []Move {
	return append([]Move(nil), s.moves...)
}

func (s *GameState) MoveCount() int {
	return len(s.moves)
}

func (s *GameState) IsOver() bool {
	return s.Status != Playing
}

// Winner returns the winning player, if any.
func (s *GameState) Winner() (Player, bool) {
	switch s.Status {
	case BlackWon:
		return Black, true
	case WhiteWon:
		return White, true
	default:
		return 0, false
	}
}

// Hash is the zobrist key for the occupied-cell set plus the side to move.
func (s *GameState) Hash() uint64 {
	return s.hash
}

func (s *GameState) Clone() *GameState {
	clone := &GameState{
		Board:        s.Board.Clone(),
		ToMove:       s.ToMove,
		Status:       s.Status,
		OverlineWins: s.OverlineWins,
		moves:        append([]Move(nil), s.moves...),
		hash:         s.hash,
	}
	return clone
}

// Place puts a stone for player at p, records the move, flips the turn, and
// re-evaluates terminal status. It fails with *IllegalMoveError when p is off
// the grid or occupied, when it is not player's turn, or when the game is
// already over.
func (s *GameState) Place(p Point, player Player) error {
	if s.Status != Playing {
		return &IllegalMoveError{Point: p, Player: player, Reason: "game is over"}
	}
	if !p.OnGrid() {
		return &IllegalMoveError{Point: p, Player: player, Reason: "out of bounds"}
	}
	if s.Board.At(p) != CellEmpty {
		return &IllegalMoveError{Point: p, Player: player, Reason: "occupied"}
	}
	if player != s.ToMove {
		return &IllegalMoveError{Point: p, Player: player, Reason: "not this player's turn"}
	}

	s.Board.Set(p, CellFromPlayer(player))
	s.moves = append(s.moves, Move{Point: p, Player: player})
	s.hash ^= zob.stone(p, player) ^ zob.side

	if s.winAt(p, player) {
		if player == Black {
			s.Status = BlackWon
		} else {
			s.Status = WhiteWon
		}
	} else if s.Board.Full() {
		s.Status = Draw
	}
	s.ToMove = player.Other()
	return nil
}

// UndoPair removes the two most recent moves, restoring the board, turn, and
// history to their prior state. It is the human-vs-AI convenience (take back
// the AI reply together with the human move), not a general single-ply undo.
// Fails with *EmptyHistoryError if fewer than two moves exist.
func (s *GameState) UndoPair() error {
	if len(s.moves) < 2 {
		return &EmptyHistoryError{Have: len(s.moves), Need: 2}
	}
	s.undoLast()
	s.undoLast()
	return nil
}

// undoLast removes the most recent move. Used by the search (place/undo
// scratch mutation) and by UndoPair; panics if the history is empty, which
// indicates a defect in the caller.
func (s *GameState) undoLast() Move {
	last := len(s.moves) - 1
	move := s.moves[last]
	s.moves = s.moves[:last]
	s.Board.Remove(move.Point)
	s.hash ^= zob.stone(move.Point, move.Player) ^ zob.side
	s.ToMove = move.Player
	s.Status = Playing
	return move
}

// LegalMoves returns every empty position. It is the fallback universe when
// candidate generation yields nothing; the game being over means no move is
// legal.
func (s *GameState) LegalMoves() []Point {
	if s.Status != Playing {
		return nil
	}
	out := make([]Point, 0, BoardSize*BoardSize-s.Board.StoneCount())
	for row := 1; row <= BoardSize; row++ {
		for col := 1; col <= BoardSize; col++ {
			p := Point{Row: row, Col: col}
			if s.Board.At(p) == CellEmpty {
				out = append(out, p)
			}
		}
	}
	return out
}

// winAt reports whether the stone just placed at p completes a winning run
// for player, scanning the four axis directions through p.
func (s *GameState) winAt(p Point, player Player) bool {
	cell := CellFromPlayer(player)
	for _, d := range directions {
		count := 1
		count += s.countRun(p, d[0], d[1], cell)
		count += s.countRun(p, -d[0], -d[1], cell)
		if s.OverlineWins {
			if count >= WinLength {
				return true
			}
		} else if count == WinLength {
			return true
		}
	}
	return false
}

func (s *GameState) countRun(start Point, dr, dc int, cell Cell) int {
	count := 0
	p := Point{Row: start.Row + dr, Col: start.Col + dc}
	for p.OnGrid() && s.Board.At(p) == cell {
		count++
		p.Row += dr
		p.Col += dc
	}
	return count
}
