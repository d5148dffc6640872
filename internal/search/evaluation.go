package search

import (
	. "github.com/cricklet/chesscoach/internal/helpers"
	"github.com/cricklet/chesscoach/internal/rules"
)

// Piece values in centipawns, indexed by rules.PieceType.
var _pieceValues = [6]int{100, 300, 350, 500, 900, 0}

func PieceValue(t rules.PieceType) int {
	if t >= rules.NoPieceType {
		return 0
	}
	return _pieceValues[t]
}

// Development tables are white-oriented: row 0 is rank 8. Black uses the
// vertically flipped table, which keeps Evaluate symmetric under color
// flip.
var _pawnDevelopment = [8][8]int{
	{4, 4, 4, 4, 4, 4, 4, 4},
	{3, 3, 3, 4, 4, 3, 3, 3},
	{2, 2, 2, 3, 3, 2, 2, 2},
	{2, 2, 2, 3, 3, 2, 2, 2},
	{1, 1, 1, 3, 3, 1, 1, 1},
	{0, 0, 0, 2, 2, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var _knightDevelopment = [8][8]int{
	{-2, -2, -2, -2, -2, -2, -2, -2},
	{-2, -1, 0, 0, 0, 0, -1, -2},
	{-2, 0, 1, 2, 2, 1, 0, -2},
	{-2, 1, 2, 2, 2, 2, 1, -2},
	{-2, 0, 2, 2, 2, 2, 0, -2},
	{-2, 1, 1, 2, 2, 1, 1, -2},
	{-2, -1, 0, 0, 0, 0, -1, -2},
	{-2, -2, -2, -2, -2, -2, -2, -2},
}

var _bishopDevelopment = [8][8]int{
	{-1, -1, -1, -1, -1, -1, -1, -1},
	{-1, 0, 0, 0, 0, 0, 0, -1},
	{-1, 0, 1, 2, 2, 1, 0, -1},
	{-1, 1, 1, 2, 2, 1, 1, -1},
	{-1, 0, 2, 2, 2, 2, 0, -1},
	{-1, 2, 2, 2, 2, 2, 2, -1},
	{-1, 1, 0, 0, 0, 0, 1, -1},
	{-1, -1, -1, -1, -1, -1, -1, -1},
}

var _rookDevelopment = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{1, 2, 2, 2, 2, 2, 2, 1},
	{-1, 0, 0, 0, 0, 0, 0, -1},
	{-1, 0, 0, 0, 0, 0, 0, -1},
	{-1, 0, 0, 0, 0, 0, 0, -1},
	{-1, 0, 0, 0, 0, 0, 0, -1},
	{-1, 0, 0, 0, 0, 0, 0, -1},
	{0, 0, 0, 2, 2, 0, 0, 0},
}

var _queenDevelopment = [8][8]int{
	{-2, -2, -2, -1, -1, -2, -2, -2},
	{-2, 0, 0, 0, 0, 0, 0, -2},
	{-2, 0, 1, 1, 1, 1, 0, -2},
	{-1, 0, 1, 1, 1, 1, 0, -1},
	{0, 0, 1, 1, 1, 1, 0, 0},
	{-2, 0, 1, 1, 1, 1, 0, -2},
	{-2, 0, 1, 0, 0, 1, 0, -2},
	{-2, -2, -2, -1, -1, -2, -2, -2},
}

var _developmentScales = [6]int{20, 10, 10, 10, 5, 0}

var _developmentTables = func() [6][2][8][8]int {
	white := [6][8][8]int{
		_pawnDevelopment,
		_knightDevelopment,
		_bishopDevelopment,
		_rookDevelopment,
		_queenDevelopment,
		{},
	}
	result := [6][2][8][8]int{}
	for t := range white {
		result[t][rules.White] = white[t]
		result[t][rules.Black] = FlipArray(white[t])
	}
	return result
}()

func developmentBonus(piece rules.Piece, sq rules.Square) int {
	table := _developmentTables[piece.Type][piece.Player]
	return table[7-sq.Rank()][sq.File()] * _developmentScales[piece.Type]
}

// Evaluate statically scores the position in centipawns from the
// perspective of the side to move. Material plus development, no search.
func Evaluate(b rules.Board) int {
	player := b.Player()
	score := 0
	for _, placed := range b.Pieces() {
		value := PieceValue(placed.Piece.Type) + developmentBonus(placed.Piece, placed.Square)
		if placed.Piece.Player == player {
			score += value
		} else {
			score -= value
		}
	}
	return score
}
