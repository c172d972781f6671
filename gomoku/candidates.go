package gomoku

// candidateRadius bounds how far (Chebyshev distance) from an existing stone
// a cell may be and still count as a candidate move.
const candidateRadius = 2

var center = Point{Row: (BoardSize + 1) / 2, Col: (BoardSize + 1) / 2}

// generateCandidates returns the empty cells within candidateRadius of any
// stone, each at most once, in row-major order. On an empty board the single
// candidate is the center.
func generateCandidates(s *GameState) []Point {
	if s.Board.StoneCount() == 0 {
		return []Point{center}
	}

	var seen [BoardSize * BoardSize]bool
	for _, m := range s.moves {
		for dr := -candidateRadius; dr <= candidateRadius; dr++ {
			for dc := -candidateRadius; dc <= candidateRadius; dc++ {
				p := Point{Row: m.Point.Row + dr, Col: m.Point.Col + dc}
				if p.OnGrid() && s.Board.At(p) == CellEmpty {
					seen[(p.Row-1)*BoardSize+(p.Col-1)] = true
				}
			}
		}
	}

	out := make([]Point, 0, 64)
	for row := 1; row <= BoardSize; row++ {
		for col := 1; col <= BoardSize; col++ {
			if seen[(row-1)*BoardSize+(col-1)] {
				out = append(out, Point{Row: row, Col: col})
			}
		}
	}
	return out
}

// candidateMoves produces the ordered, capped candidate list the search
// expands. If proximity yields nothing (possible only on oddly sparse
// positions) it falls back to every legal move.
func candidateMoves(s *GameState, w PatternWeights, max int) []Point {
	moves := generateCandidates(s)
	if len(moves) == 0 {
		moves = s.LegalMoves()
	}
	orderMoves(s, moves, w)
	if max > 0 && len(moves) > max {
		moves = moves[:max]
	}
	return moves
}
