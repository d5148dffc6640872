package rules

import (
	. "github.com/cricklet/chesscoach/internal/helpers"
)

// Move is an immutable description of a single transition: from-square,
// to-square, and a promotion piece when the move promotes a pawn.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
}

// String renders the move in compact coordinate notation, eg "e2e4" or
// "e7e8q" for a promotion.
func (m Move) String() string {
	return m.From.String() + m.To.String() + m.Promotion.String()
}

// MoveFromString parses compact coordinate notation. It only checks that
// the string is well formed; legality is the board's concern.
func MoveFromString(s string) (Move, Error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, Errorf("invalid move '%v'", s)
	}
	from, err := SquareFromString(s[0:2])
	if !IsNil(err) {
		return Move{}, err
	}
	to, err := SquareFromString(s[2:4])
	if !IsNil(err) {
		return Move{}, err
	}
	promotion := NoPieceType
	if len(s) == 5 {
		promotion = PieceTypeFromRune(rune(s[4]))
		if promotion == NoPieceType || promotion == Pawn || promotion == King {
			return Move{}, Errorf("invalid promotion in '%v'", s)
		}
	}
	return Move{From: from, To: to, Promotion: promotion}, NilError
}
