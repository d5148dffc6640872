package rules

import (
	. "github.com/cricklet/chesscoach/internal/helpers"
)

// Board is the narrow slice of the rules library the engine depends on.
// The engine borrows a Board for the duration of a call: every Apply it
// performs must be balanced by an Undo before control returns, leaving the
// position exactly as it found it (side to move, castling and en-passant
// rights included).
type Board interface {
	// Player is the side to move.
	Player() Player

	// LegalMoves enumerates the legal moves for the side to move. The
	// order is unspecified; the engine imposes its own.
	LegalMoves() []Move

	// Apply performs a legal move. Errors if the move is not legal.
	Apply(m Move) Error

	// Undo reverts the most recent Apply. Errors if there is nothing to
	// undo.
	Undo() Error

	// Status reports whether the position is terminal.
	Status() Status

	// IsCapture reports whether the move takes a piece (en passant
	// included). The move must be legal.
	IsCapture(m Move) bool

	// GivesCheck reports whether the move checks the opponent. The move
	// must be legal.
	GivesCheck(m Move) bool

	// PieceAt returns the piece on a square, if any.
	PieceAt(sq Square) (Piece, bool)

	// Pieces lists every piece on the board.
	Pieces() []PlacedPiece

	// FenString renders the current position.
	FenString() string
}

// LegalMoveFromString parses coordinate notation and checks the result
// against the board's legal moves. The returned bool distinguishes
// "well-formed but illegal" from a parse failure.
func LegalMoveFromString(b Board, s string) (Move, bool, Error) {
	m, err := MoveFromString(s)
	if !IsNil(err) {
		return Move{}, false, err
	}
	if !Contains(b.LegalMoves(), m) {
		return m, false, NilError
	}
	return m, true, NilError
}
