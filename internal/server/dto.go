package server

import "github.com/LoocasGoose/BetaGomoku/gomoku"

// SessionDTO is the wire form of a session: board rows bottom-up, cells as
// 0/1/2, moves in coordinate notation.
type SessionDTO struct {
	ID           string        `json:"id"`
	Board        [][]int       `json:"board"`
	ToMove       int           `json:"to_move"`
	Winner       int           `json:"winner"`
	Status       string        `json:"status"`
	MoveCount    int           `json:"move_count"`
	Moves        []string      `json:"moves"`
	LastMove     string        `json:"last_move,omitempty"`
	OverlineWins bool          `json:"overline_wins"`
	Mode         string        `json:"mode"`
	HumanPlayer  int           `json:"human_player"`
	Search       gomoku.Config `json:"search"`
}

type moveResponse struct {
	Move  moveDTO  `json:"move"`
	Reply *moveDTO `json:"reply,omitempty"`
}

type moveDTO struct {
	Point    string `json:"point"`
	Player   int    `json:"player"`
	Status   string `json:"status"`
	ByEngine bool   `json:"by_engine"`
	Score    int    `json:"score,omitempty"`
	Nodes    int    `json:"nodes,omitempty"`
	Depth    int    `json:"depth,omitempty"`
}

type errorDTO struct {
	Error string `json:"error"`
}

func sessionToDTO(id string, state *gomoku.GameState, cfg gomoku.Config, mode Mode, human gomoku.Player) SessionDTO {
	moves := state.Moves()
	dto := SessionDTO{
		ID:           id,
		Board:        boardToRows(&state.Board),
		ToMove:       playerToInt(state.ToMove),
		Winner:       winnerToInt(state),
		Status:       state.Status.String(),
		MoveCount:    len(moves),
		Moves:        make([]string, len(moves)),
		OverlineWins: state.OverlineWins,
		Mode:         string(mode),
		HumanPlayer:  playerToInt(human),
		Search:       cfg,
	}
	for i, m := range moves {
		dto.Moves[i] = m.Point.String()
	}
	if len(moves) > 0 {
		dto.LastMove = moves[len(moves)-1].Point.String()
	}
	return dto
}

func outcomeToDTO(out MoveOutcome) moveDTO {
	return moveDTO{
		Point:    out.Move.Point.String(),
		Player:   playerToInt(out.Move.Player),
		Status:   out.Status.String(),
		ByEngine: out.ByEngine,
		Score:    out.Score,
		Nodes:    out.Stats.Nodes,
		Depth:    out.Stats.Depth,
	}
}

func boardToRows(b *gomoku.Board) [][]int {
	rows := make([][]int, gomoku.BoardSize)
	for row := 1; row <= gomoku.BoardSize; row++ {
		cells := make([]int, gomoku.BoardSize)
		for col := 1; col <= gomoku.BoardSize; col++ {
			cells[col-1] = cellToInt(b.At(gomoku.Point{Row: row, Col: col}))
		}
		rows[row-1] = cells
	}
	return rows
}

func cellToInt(c gomoku.Cell) int {
	switch c {
	case gomoku.CellBlack:
		return 1
	case gomoku.CellWhite:
		return 2
	default:
		return 0
	}
}

func playerToInt(p gomoku.Player) int {
	switch p {
	case gomoku.Black:
		return 1
	case gomoku.White:
		return 2
	default:
		return 0
	}
}

func winnerToInt(state *gomoku.GameState) int {
	if w, ok := state.Winner(); ok {
		return playerToInt(w)
	}
	return 0
}
