package gomoku

import (
	"encoding/json"
	"fmt"
	"time"
)

// Record is the portable form of one finished or in-progress game. Moves are
// coordinate strings ("H8") in play order; colors alternate starting with
// black.
type Record struct {
	Date   string   `json:"date"`
	Black  string   `json:"black"`
	White  string   `json:"white"`
	Result string   `json:"result"`
	Moves  []string `json:"moves"`
}

// NewRecord exports state as a Record. Player names are labels only; they
// carry no game semantics.
func NewRecord(state *GameState, black, white string) Record {
	moves := state.Moves()
	out := Record{
		Date:   time.Now().Format("2006-01-02"),
		Black:  black,
		White:  white,
		Result: state.Status.String(),
		Moves:  make([]string, len(moves)),
	}
	for i, m := range moves {
		out.Moves[i] = m.Point.String()
	}
	return out
}

func (r Record) MarshalText() ([]byte, error) {
	// A plain alias drops the MarshalText method so MarshalIndent encodes the
	// struct fields instead of recursing back into this method.
	type plainRecord Record
	return json.MarshalIndent(plainRecord(r), "", "  ")
}

func ParseRecord(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("parse record: %w", err)
	}
	return r, nil
}

// Replay rebuilds the game state as of the move at moveIndex, inclusive:
// -1 yields the empty board, 0 the position after the first move, and any
// index at or past the last move the full game. Replay validates every move,
// so a corrupt record fails with the underlying placement error.
func (r Record) Replay(moveIndex int) (*GameState, error) {
	s := NewGameState()
	last := moveIndex
	if last >= len(r.Moves) {
		last = len(r.Moves) - 1
	}
	for i := 0; i <= last; i++ {
		p, err := ParsePoint(r.Moves[i])
		if err != nil {
			return nil, fmt.Errorf("replay move %d: %w", i+1, err)
		}
		if err := s.Place(p, s.ToMove); err != nil {
			return nil, fmt.Errorf("replay move %d: %w", i+1, err)
		}
	}
	return s, nil
}
