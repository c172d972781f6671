package gomoku

import "fmt"

// IllegalMoveError reports caller-supplied input the rules reject. It is
// always surfaced, never auto-corrected.
type IllegalMoveError struct {
	Point  Point
	Player Player
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s for %s: %s", e.Point, e.Player, e.Reason)
}

// EmptyHistoryError reports an undo request with too few moves played. No
// partial undo is performed.
type EmptyHistoryError struct {
	Have int
	Need int
}

func (e *EmptyHistoryError) Error() string {
	return fmt.Sprintf("cannot undo: need %d moves in history, have %d", e.Need, e.Have)
}

// SearchInvariantError reports a logic defect inside the search, such as an
// empty candidate set on a non-terminal state. It is not a transient
// condition: retrying reproduces the same result.
type SearchInvariantError struct {
	Reason string
}

func (e *SearchInvariantError) Error() string {
	return "search invariant violated: " + e.Reason
}
