package gomoku

import "math/rand"

// Agent picks moves for one side.
type Agent interface {
	// SelectMove chooses a move for state.ToMove without mutating state.
	SelectMove(state *GameState) (Point, error)
	Name() string
}

// SearchAgent is the negamax player. Zero value is not usable; construct it
// with NewSearchAgent.
type SearchAgent struct {
	cfg   Config
	stats SearchStats
	score int
}

func NewSearchAgent(cfg Config) *SearchAgent {
	cfg.normalize()
	return &SearchAgent{cfg: cfg}
}

func (a *SearchAgent) Name() string { return "search" }

func (a *SearchAgent) Config() Config { return a.cfg }

// LastStats reports the statistics of the most recent SelectMove call.
func (a *SearchAgent) LastStats() SearchStats { return a.stats }

// LastScore is the score of the most recent chosen move, from the mover's
// perspective.
func (a *SearchAgent) LastScore() int { return a.score }

func (a *SearchAgent) SelectMove(state *GameState) (Point, error) {
	sr := &searcher{cfg: a.cfg}
	p, score, err := sr.selectMove(state)
	if err != nil {
		return Point{}, err
	}
	a.stats = sr.stats
	a.score = score
	return p, nil
}

// RandomAgent plays a uniformly random legal move. It exists as a baseline
// opponent; pass a seeded rand.Rand for reproducible games.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(rng *rand.Rand) *RandomAgent {
	return &RandomAgent{rng: rng}
}

func (a *RandomAgent) Name() string { return "random" }

func (a *RandomAgent) SelectMove(state *GameState) (Point, error) {
	if state.IsOver() {
		return Point{}, &SearchInvariantError{Reason: "move requested on a finished game"}
	}
	legal := state.LegalMoves()
	if len(legal) == 0 {
		return Point{}, &SearchInvariantError{Reason: "no legal moves in a live position"}
	}
	return legal[a.rng.Intn(len(legal))], nil
}
