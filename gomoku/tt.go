package gomoku

// ttFlag classifies a stored score relative to the window it was searched
// with.
type ttFlag uint8

const (
	ttExact ttFlag = iota
	ttLower
	ttUpper
)

type ttEntry struct {
	Depth int
	Score int
	Flag  ttFlag
	Best  Point
}

// transTable is a per-search transposition table keyed by zobrist hash. Each
// SelectMove call builds its own table, so entries never leak between
// searches or across configuration changes.
type transTable struct {
	entries map[uint64]ttEntry
}

func newTransTable() *transTable {
	return &transTable{entries: make(map[uint64]ttEntry, 1<<12)}
}

func (t *transTable) probe(hash uint64) (ttEntry, bool) {
	e, ok := t.entries[hash]
	return e, ok
}

// store keeps the deeper entry when the slot is already taken.
func (t *transTable) store(hash uint64, e ttEntry) {
	if old, ok := t.entries[hash]; ok && old.Depth > e.Depth {
		return
	}
	t.entries[hash] = e
}

// useEntry applies a probed entry to the current window. An entry searched
// to at least the remaining depth either resolves the node outright (exact
// score, or a bound that closes the window) or tightens alpha/beta.
func useEntry(e ttEntry, depth int, alpha, beta *int) (int, bool) {
	if e.Depth < depth {
		return 0, false
	}
	switch e.Flag {
	case ttExact:
		return e.Score, true
	case ttLower:
		if e.Score > *alpha {
			*alpha = e.Score
		}
	case ttUpper:
		if e.Score < *beta {
			*beta = e.Score
		}
	}
	if *alpha >= *beta {
		return e.Score, true
	}
	return 0, false
}
