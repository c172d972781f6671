package gomoku

import (
	"errors"
	"math/rand"
	"testing"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

// plainBest searches with a full window at every node: no pruning, no table.
// It is the reference the pruned search must agree with.
func plainBest(s *GameState, cfg Config) (Point, int) {
	moves := candidateMoves(s, cfg.Weights, cfg.MaxCandidates)
	best := moves[0]
	bestScore := -inf
	for _, p := range moves {
		if s.Place(p, s.ToMove) != nil {
			continue
		}
		score := -plainNegamax(s, cfg, cfg.Depth-1)
		s.undoLast()
		if score > bestScore {
			bestScore = score
			best = p
		}
	}
	return best, bestScore
}

func plainNegamax(s *GameState, cfg Config, depth int) int {
	if s.IsOver() || depth <= 0 {
		v := Evaluate(s, cfg.Weights)
		if s.ToMove == White {
			return -v
		}
		return v
	}
	moves := candidateMoves(s, cfg.Weights, cfg.MaxCandidates)
	bestScore := -inf
	for _, p := range moves {
		if s.Place(p, s.ToMove) != nil {
			continue
		}
		var score int
		if s.IsOver() && s.Status != Draw {
			score = WinScore
		} else {
			score = -plainNegamax(s, cfg, depth-1)
		}
		s.undoLast()
		if score > bestScore {
			bestScore = score
		}
	}
	return bestScore
}

// midgame builds a small non-forcing position with both colors active.
func midgame(t *testing.T) *GameState {
	t.Helper()
	s := NewGameState()
	playMoves(t, s,
		Point{Row: 8, Col: 8}, Point{Row: 9, Col: 9},
		Point{Row: 7, Col: 8}, Point{Row: 9, Col: 8},
		Point{Row: 8, Col: 7}, Point{Row: 9, Col: 7},
	)
	return s
}

func TestSelectMoveTakesImmediateWin(t *testing.T) {
	s := NewGameState()
	// White caps the left end, so H8 is the only five-completing cell.
	playMoves(t, s,
		Point{Row: 8, Col: 4}, Point{Row: 8, Col: 3},
		Point{Row: 8, Col: 5}, Point{Row: 1, Col: 1},
		Point{Row: 8, Col: 6}, Point{Row: 1, Col: 3},
		Point{Row: 8, Col: 7}, Point{Row: 1, Col: 5},
	)
	cfg := DefaultConfig()
	cfg.Depth = 1
	agent := NewSearchAgent(cfg)
	p, err := agent.SelectMove(s)
	if err != nil {
		t.Fatalf("SelectMove: %v", err)
	}
	if p != (Point{Row: 8, Col: 8}) {
		t.Fatalf("chose %s, want H8", p)
	}
	if agent.LastScore() != WinScore {
		t.Fatalf("score = %d, want %d", agent.LastScore(), WinScore)
	}
	if err := s.Place(p, Black); err != nil {
		t.Fatalf("Place(%s): %v", p, err)
	}
	if s.Status != BlackWon {
		t.Fatalf("winning move left status %v", s.Status)
	}
}

func TestSelectMoveBlocksOpenFour(t *testing.T) {
	s := NewGameState()
	// Black open four, White to move. Every White reply loses at depth 2,
	// but the blocking cells must rank first and be kept.
	playMoves(t, s,
		Point{Row: 8, Col: 4}, Point{Row: 1, Col: 1},
		Point{Row: 8, Col: 5}, Point{Row: 1, Col: 3},
		Point{Row: 8, Col: 6}, Point{Row: 1, Col: 5},
		Point{Row: 8, Col: 7},
	)
	agent := NewSearchAgent(DefaultConfig())
	p, err := agent.SelectMove(s)
	if err != nil {
		t.Fatalf("SelectMove: %v", err)
	}
	if p != (Point{Row: 8, Col: 3}) && p != (Point{Row: 8, Col: 8}) {
		t.Fatalf("chose %s, want a blocking cell", p)
	}
}

func TestSelectMoveBlocksSimpleFour(t *testing.T) {
	s := NewGameState()
	// Black four with a single open end; blocking it saves the game.
	playMoves(t, s,
		Point{Row: 8, Col: 1}, Point{Row: 1, Col: 1},
		Point{Row: 8, Col: 2}, Point{Row: 1, Col: 3},
		Point{Row: 8, Col: 3}, Point{Row: 1, Col: 5},
		Point{Row: 8, Col: 4},
	)
	agent := NewSearchAgent(DefaultConfig())
	p, err := agent.SelectMove(s)
	if err != nil {
		t.Fatalf("SelectMove: %v", err)
	}
	if p != (Point{Row: 8, Col: 5}) {
		t.Fatalf("chose %s, want E8", p)
	}
}

func TestSelectMoveOpeningIsCenter(t *testing.T) {
	agent := NewSearchAgent(DefaultConfig())
	p, err := agent.SelectMove(NewGameState())
	if err != nil {
		t.Fatalf("SelectMove: %v", err)
	}
	if p != (Point{Row: 8, Col: 8}) {
		t.Fatalf("opening move = %s, want H8", p)
	}
}

func TestSelectMoveIsDeterministic(t *testing.T) {
	s := midgame(t)
	agent := NewSearchAgent(DefaultConfig())
	first, err := agent.SelectMove(s)
	if err != nil {
		t.Fatalf("SelectMove: %v", err)
	}
	score := agent.LastScore()
	for i := 0; i < 3; i++ {
		p, err := agent.SelectMove(s)
		if err != nil {
			t.Fatalf("repeat %d: %v", i, err)
		}
		if p != first || agent.LastScore() != score {
			t.Fatalf("repeat %d: got %s/%d, want %s/%d", i, p, agent.LastScore(), first, score)
		}
	}
}

func TestSelectMoveDoesNotMutateCaller(t *testing.T) {
	s := midgame(t)
	hash := s.Hash()
	moveCount := s.MoveCount()
	toMove := s.ToMove
	board := s.Board.Clone()

	agent := NewSearchAgent(DefaultConfig())
	if _, err := agent.SelectMove(s); err != nil {
		t.Fatalf("SelectMove: %v", err)
	}

	if s.Hash() != hash || s.MoveCount() != moveCount || s.ToMove != toMove || s.Status != Playing {
		t.Fatalf("search mutated caller state")
	}
	for row := 1; row <= BoardSize; row++ {
		for col := 1; col <= BoardSize; col++ {
			p := Point{Row: row, Col: col}
			if s.Board.At(p) != board.At(p) {
				t.Fatalf("search mutated board at %s", p)
			}
		}
	}
}

func TestSelectMoveOnFinishedGameFails(t *testing.T) {
	s := NewGameState()
	playMoves(t, s,
		Point{Row: 8, Col: 4}, Point{Row: 1, Col: 1},
		Point{Row: 8, Col: 5}, Point{Row: 1, Col: 3},
		Point{Row: 8, Col: 6}, Point{Row: 1, Col: 5},
		Point{Row: 8, Col: 7}, Point{Row: 1, Col: 7},
		Point{Row: 8, Col: 8},
	)
	agent := NewSearchAgent(DefaultConfig())
	var inv *SearchInvariantError
	if _, err := agent.SelectMove(s); !errors.As(err, &inv) {
		t.Fatalf("got %v, want SearchInvariantError", err)
	}
}

func TestPrunedSearchMatchesPlainNegamax(t *testing.T) {
	for _, depth := range []int{1, 2, 3} {
		cfg := DefaultConfig()
		cfg.Depth = depth
		cfg.UseTable = false

		s := midgame(t)
		wantMove, wantScore := plainBest(s.Clone(), cfg)

		agent := NewSearchAgent(cfg)
		got, err := agent.SelectMove(s)
		if err != nil {
			t.Fatalf("depth %d: %v", depth, err)
		}
		if got != wantMove || agent.LastScore() != wantScore {
			t.Fatalf("depth %d: pruned %s/%d, plain %s/%d",
				depth, got, agent.LastScore(), wantMove, wantScore)
		}
	}
}

func TestTableDoesNotChangeResult(t *testing.T) {
	for _, depth := range []int{2, 3} {
		s := midgame(t)

		with := DefaultConfig()
		with.Depth = depth
		with.UseTable = true
		without := with
		without.UseTable = false

		a := NewSearchAgent(with)
		pa, err := a.SelectMove(s)
		if err != nil {
			t.Fatalf("depth %d with table: %v", depth, err)
		}
		b := NewSearchAgent(without)
		pb, err := b.SelectMove(s)
		if err != nil {
			t.Fatalf("depth %d without table: %v", depth, err)
		}
		if pa != pb || a.LastScore() != b.LastScore() {
			t.Fatalf("depth %d: table changed result: %s/%d vs %s/%d",
				depth, pa, a.LastScore(), pb, b.LastScore())
		}
	}
}

func TestSearchStatsPopulated(t *testing.T) {
	s := midgame(t)
	agent := NewSearchAgent(DefaultConfig())
	p, err := agent.SelectMove(s)
	if err != nil {
		t.Fatalf("SelectMove: %v", err)
	}
	stats := agent.LastStats()
	if stats.Depth != DefaultDepth {
		t.Errorf("stats depth = %d, want %d", stats.Depth, DefaultDepth)
	}
	if stats.Nodes == 0 {
		t.Errorf("stats recorded zero nodes")
	}
	if stats.BestMove != p {
		t.Errorf("stats best move %s, chosen %s", stats.BestMove, p)
	}
}

func TestRandomAgentPlaysLegalMoves(t *testing.T) {
	agent := NewRandomAgent(newTestRand())
	s := NewGameState()
	for i := 0; i < 30; i++ {
		p, err := agent.SelectMove(s)
		if err != nil {
			t.Fatalf("move %d: %v", i, err)
		}
		if err := s.Place(p, s.ToMove); err != nil {
			t.Fatalf("move %d: Place(%s): %v", i, p, err)
		}
		if s.IsOver() {
			break
		}
	}
}

func TestConfigNormalizeClampsDepth(t *testing.T) {
	agent := NewSearchAgent(Config{Depth: 99})
	if got := agent.Config().Depth; got != MaxDepth {
		t.Errorf("depth 99 clamped to %d, want %d", got, MaxDepth)
	}
	agent = NewSearchAgent(Config{Depth: -1})
	if got := agent.Config().Depth; got != MinDepth {
		t.Errorf("depth -1 clamped to %d, want %d", got, MinDepth)
	}
	if agent.Config().MaxCandidates != DefaultMaxCandidates {
		t.Errorf("zero candidate cap not defaulted")
	}
	if agent.Config().Weights == (PatternWeights{}) {
		t.Errorf("zero weights not defaulted")
	}
}
