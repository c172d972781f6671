package gomoku

// Evaluation scale. WinScore caps any pattern sum; inf bounds the search
// window above any reachable score.
const (
	WinScore = 1_000_000
	inf      = 10_000_000
)

// PatternWeights scores a maximal run by its length and how many of its two
// ends are open. Runs of five or more always score Five regardless of ends.
type PatternWeights struct {
	Five        int `json:"five" mapstructure:"five"`
	OpenFour    int `json:"open_four" mapstructure:"open_four"`
	ClosedFour  int `json:"closed_four" mapstructure:"closed_four"`
	OpenThree   int `json:"open_three" mapstructure:"open_three"`
	ClosedThree int `json:"closed_three" mapstructure:"closed_three"`
	OpenTwo     int `json:"open_two" mapstructure:"open_two"`
	ClosedTwo   int `json:"closed_two" mapstructure:"closed_two"`
}

func DefaultWeights() PatternWeights {
	return PatternWeights{
		Five:        100_000,
		OpenFour:    10_000,
		ClosedFour:  1_000,
		OpenThree:   1_000,
		ClosedThree: 100,
		OpenTwo:     100,
		ClosedTwo:   10,
	}
}

func (w PatternWeights) runScore(length, openEnds int) int {
	if length >= WinLength {
		return w.Five
	}
	if openEnds == 0 {
		return 0
	}
	open := openEnds == 2
	switch length {
	case 4:
		if open {
			return w.OpenFour
		}
		return w.ClosedFour
	case 3:
		if open {
			return w.OpenThree
		}
		return w.ClosedThree
	case 2:
		if open {
			return w.OpenTwo
		}
		return w.ClosedTwo
	default:
		return 0
	}
}

// Evaluate scores the position from Black's perspective. Terminal states map
// to +-WinScore (or 0 for a draw); otherwise the score is the sum over every
// maximal same-color run of its pattern weight, Black positive, White
// negative.
func Evaluate(s *GameState, w PatternWeights) int {
	switch s.Status {
	case BlackWon:
		return WinScore
	case WhiteWon:
		return -WinScore
	case Draw:
		return 0
	}

	score := 0
	var visited [4][BoardSize * BoardSize]bool
	for _, m := range s.moves {
		for di, d := range directions {
			idx := (m.Point.Row-1)*BoardSize + (m.Point.Col - 1)
			if visited[di][idx] {
				continue
			}
			run, ends := s.scanRun(m.Point, d[0], d[1], &visited[di])
			v := w.runScore(run, ends)
			if m.Player == Black {
				score += v
			} else {
				score -= v
			}
		}
	}
	if score > WinScore {
		score = WinScore
	} else if score < -WinScore {
		score = -WinScore
	}
	return score
}

// scanRun walks to the start of the maximal run through p along (dr, dc),
// measures its length and open ends, and marks every cell of the run as
// visited for this direction.
func (s *GameState) scanRun(p Point, dr, dc int, visited *[BoardSize * BoardSize]bool) (length, openEnds int) {
	cell := s.Board.At(p)
	start := p
	for {
		prev := Point{Row: start.Row - dr, Col: start.Col - dc}
		if !prev.OnGrid() || s.Board.At(prev) != cell {
			break
		}
		start = prev
	}

	end := start
	for {
		visited[(end.Row-1)*BoardSize+(end.Col-1)] = true
		length++
		next := Point{Row: end.Row + dr, Col: end.Col + dc}
		if !next.OnGrid() || s.Board.At(next) != cell {
			break
		}
		end = next
	}

	before := Point{Row: start.Row - dr, Col: start.Col - dc}
	after := Point{Row: end.Row + dr, Col: end.Col + dc}
	if s.Board.IsEmpty(before) {
		openEnds++
	}
	if s.Board.IsEmpty(after) {
		openEnds++
	}
	return length, openEnds
}
