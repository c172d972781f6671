package gomoku

// zobristTable carries one random key per (cell, player) plus a side-to-move
// key. Keys are generated deterministically from a fixed seed so hashes are
// stable across runs.
type zobristTable struct {
	keys [BoardSize * BoardSize][2]uint64
	side uint64
}

var zob = newZobristTable(0x9e3779b97f4a7c15)

func newZobristTable(seed uint64) *zobristTable {
	t := &zobristTable{}
	state := seed
	for i := range t.keys {
		t.keys[i][0] = splitmix64(&state)
		t.keys[i][1] = splitmix64(&state)
	}
	t.side = splitmix64(&state)
	return t
}

func (t *zobristTable) stone(p Point, player Player) uint64 {
	return t.keys[(p.Row-1)*BoardSize+(p.Col-1)][player-1]
}

// splitmix64 advances state and returns the next value of the generator.
func splitmix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d649fb133111eb
	return z ^ (z >> 31)
}

// computeHash rebuilds the zobrist key from scratch. Place and undoLast keep
// the incremental hash in sync; this exists to cross-check them.
func computeHash(s *GameState) uint64 {
	var h uint64
	for _, m := range s.moves {
		h ^= zob.stone(m.Point, m.Player)
	}
	if s.ToMove == White {
		h ^= zob.side
	}
	return h
}
