package gomoku

import "sort"

// moveHeuristic is the ordering key for a candidate p with player to move:
// the pattern gain of playing there ourselves plus half the gain the
// opponent would get from the same cell. Offense counts full, defense half.
func moveHeuristic(s *GameState, p Point, w PatternWeights) int {
	own := placementGain(s, p, s.ToMove, w)
	theirs := placementGain(s, p, s.ToMove.Other(), w)
	return own + theirs/2
}

// placementGain scores the runs through p as if player had a stone there,
// summing the four axis directions.
func placementGain(s *GameState, p Point, player Player, w PatternWeights) int {
	cell := CellFromPlayer(player)
	total := 0
	for _, d := range directions {
		fwd := s.countRun(p, d[0], d[1], cell)
		bwd := s.countRun(p, -d[0], -d[1], cell)
		length := 1 + fwd + bwd
		openEnds := 0
		if s.Board.IsEmpty(Point{Row: p.Row + (fwd+1)*d[0], Col: p.Col + (fwd+1)*d[1]}) {
			openEnds++
		}
		if s.Board.IsEmpty(Point{Row: p.Row - (bwd+1)*d[0], Col: p.Col - (bwd+1)*d[1]}) {
			openEnds++
		}
		total += w.runScore(length, openEnds)
	}
	return total
}

// orderMoves sorts moves in place, best heuristic first, breaking ties by
// (row, col) so the ordering is fully deterministic.
func orderMoves(s *GameState, moves []Point, w PatternWeights) {
	scores := make(map[Point]int, len(moves))
	for _, p := range moves {
		scores[p] = moveHeuristic(s, p, w)
	}
	sort.SliceStable(moves, func(i, j int) bool {
		si, sj := scores[moves[i]], scores[moves[j]]
		if si != sj {
			return si > sj
		}
		if moves[i].Row != moves[j].Row {
			return moves[i].Row < moves[j].Row
		}
		return moves[i].Col < moves[j].Col
	})
}
