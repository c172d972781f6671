package gomoku

import "time"

// SearchStats summarizes what one SelectMove call did.
type SearchStats struct {
	Depth    int
	Nodes    int
	TTProbes int
	TTHits   int
	Cutoffs  int
	Elapsed  time.Duration
	BestMove Point
}

type searcher struct {
	cfg   Config
	tt    *transTable
	stats SearchStats
	err   error
}

// selectMove runs a fixed-depth negamax from a private clone of state and
// returns the chosen move with its score from the mover's perspective. The
// caller's state is never mutated. A terminal position is a caller error and
// yields *SearchInvariantError.
func (sr *searcher) selectMove(state *GameState) (Point, int, error) {
	if state.IsOver() {
		return Point{}, 0, &SearchInvariantError{Reason: "search started on a finished game"}
	}
	start := time.Now()
	s := state.Clone()
	if sr.cfg.UseTable {
		sr.tt = newTransTable()
	}
	sr.stats = SearchStats{Depth: sr.cfg.Depth}

	moves := candidateMoves(s, sr.cfg.Weights, sr.cfg.MaxCandidates)
	if len(moves) == 0 {
		return Point{}, 0, &SearchInvariantError{Reason: "no candidate moves in a live position"}
	}

	// A move that wins on the spot needs no lookahead.
	for _, p := range moves {
		if s.Place(p, s.ToMove) != nil {
			continue
		}
		won := s.IsOver() && s.Status != Draw
		s.undoLast()
		if won {
			sr.stats.Elapsed = time.Since(start)
			sr.stats.BestMove = p
			return p, WinScore, nil
		}
	}

	best := moves[0]
	bestScore := -inf
	alpha, beta := -inf, inf
	for _, p := range moves {
		if err := s.Place(p, s.ToMove); err != nil {
			sr.err = &SearchInvariantError{Reason: "candidate move rejected: " + err.Error()}
			break
		}
		score := -sr.negamax(s, sr.cfg.Depth-1, -beta, -alpha)
		s.undoLast()
		if sr.err != nil {
			break
		}
		if score > bestScore {
			bestScore = score
			best = p
		}
		if score > alpha {
			alpha = score
		}
	}
	if sr.err != nil {
		return Point{}, 0, sr.err
	}
	sr.stats.Elapsed = time.Since(start)
	sr.stats.BestMove = best
	return best, bestScore, nil
}

// negamax scores s from the perspective of s.ToMove with a fail-soft
// alpha-beta window.
func (sr *searcher) negamax(s *GameState, depth, alpha, beta int) int {
	sr.stats.Nodes++
	if s.IsOver() || depth <= 0 {
		return sr.leaf(s)
	}

	hash := s.Hash()
	if sr.tt != nil {
		sr.stats.TTProbes++
		if e, ok := sr.tt.probe(hash); ok {
			sr.stats.TTHits++
			if score, done := useEntry(e, depth, &alpha, &beta); done {
				return score
			}
		}
	}
	alphaOrig, betaOrig := alpha, beta

	moves := candidateMoves(s, sr.cfg.Weights, sr.cfg.MaxCandidates)
	if len(moves) == 0 {
		// Live position with no expandable move; score it as a leaf.
		return sr.leaf(s)
	}

	best := moves[0]
	bestScore := -inf
	for _, p := range moves {
		if err := s.Place(p, s.ToMove); err != nil {
			sr.err = &SearchInvariantError{Reason: "candidate move rejected: " + err.Error()}
			return 0
		}
		var score int
		if s.IsOver() && s.Status != Draw {
			// The mover just completed five; nothing deeper can beat it.
			score = WinScore
		} else {
			score = -sr.negamax(s, depth-1, -beta, -alpha)
		}
		s.undoLast()
		if sr.err != nil {
			return 0
		}
		if score > bestScore {
			bestScore = score
			best = p
		}
		if bestScore >= WinScore {
			// A forced win cannot be improved on.
			break
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			sr.stats.Cutoffs++
			break
		}
	}

	if sr.tt != nil {
		flag := ttExact
		if bestScore <= alphaOrig {
			flag = ttUpper
		} else if bestScore >= betaOrig {
			flag = ttLower
		}
		sr.tt.store(hash, ttEntry{Depth: depth, Score: bestScore, Flag: flag, Best: best})
	}
	return bestScore
}

// leaf converts the Black-positive evaluation to the mover's perspective.
func (sr *searcher) leaf(s *GameState) int {
	v := Evaluate(s, sr.cfg.Weights)
	if s.ToMove == White {
		return -v
	}
	return v
}
