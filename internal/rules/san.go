package rules

import (
	. "github.com/cricklet/chesscoach/internal/helpers"
	"github.com/notnil/chess"
)

// DecodeSan resolves standard algebraic notation ("Qd8#", "exd5") against
// the current position. Only boards backed by the rules library support
// this; fakes used in unit tests do not.
func DecodeSan(b Board, san string) (Move, Error) {
	backed, ok := b.(*notnilBoard)
	if !ok {
		return Move{}, Errorf("board does not support algebraic notation")
	}
	m, err := chess.AlgebraicNotation{}.Decode(backed.position(), san)
	if err != nil {
		return Move{}, Wrap(err)
	}
	return moveFromChess(m), NilError
}
