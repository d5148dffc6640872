package coach

import (
	"errors"

	. "github.com/cricklet/chesscoach/internal/helpers"
)

// ErrNoLegalMoves is returned when a caller asks for advice on a
// terminal position. The caller's own terminal check should have
// prevented the call.
var ErrNoLegalMoves = errors.New("no legal moves in position")

// ErrInvalidMove is returned when a proposed move does not correspond to
// any legal move in the position, so callers can tell bad input apart
// from a terminal position.
var ErrInvalidMove = errors.New("proposed move is not legal in position")

func IsNoLegalMovesError(err Error) bool {
	return ErrorIs(err, ErrNoLegalMoves)
}

func IsInvalidMoveError(err Error) bool {
	return ErrorIs(err, ErrInvalidMove)
}
