package gomoku

import "testing"

func TestIncrementalHashMatchesRecompute(t *testing.T) {
	s := NewGameState()
	if s.Hash() != 0 {
		t.Fatalf("empty state hash = %#x, want 0", s.Hash())
	}
	moves := []Point{
		{Row: 8, Col: 8}, {Row: 9, Col: 9}, {Row: 7, Col: 8},
		{Row: 9, Col: 8}, {Row: 6, Col: 8}, {Row: 9, Col: 10},
	}
	for _, p := range moves {
		playMoves(t, s, p)
		if got, want := s.Hash(), computeHash(s); got != want {
			t.Fatalf("after %s: incremental %#x, recomputed %#x", p, got, want)
		}
	}
	for s.MoveCount() >= 2 {
		if err := s.UndoPair(); err != nil {
			t.Fatalf("UndoPair: %v", err)
		}
		if got, want := s.Hash(), computeHash(s); got != want {
			t.Fatalf("after undo to %d moves: incremental %#x, recomputed %#x",
				s.MoveCount(), got, want)
		}
	}
}

func TestHashConvergesOnTranspositions(t *testing.T) {
	// Two move orders reaching the same position must share a hash.
	a := NewGameState()
	playMoves(t, a,
		Point{Row: 8, Col: 8}, Point{Row: 9, Col: 9}, Point{Row: 7, Col: 7})
	b := NewGameState()
	playMoves(t, b,
		Point{Row: 7, Col: 7}, Point{Row: 9, Col: 9}, Point{Row: 8, Col: 8})
	if a.Hash() != b.Hash() {
		t.Fatalf("transposed positions hash differently: %#x vs %#x", a.Hash(), b.Hash())
	}

	c := NewGameState()
	playMoves(t, c, Point{Row: 8, Col: 8})
	if a.Hash() == c.Hash() {
		t.Fatalf("positions with different stones share a hash")
	}
	if zob.side == 0 {
		t.Fatalf("side-to-move key is zero")
	}
}

func TestHashDistinguishesColor(t *testing.T) {
	p := Point{Row: 8, Col: 8}
	if zob.stone(p, Black) == zob.stone(p, White) {
		t.Fatalf("black and white keys collide at %s", p)
	}
}
