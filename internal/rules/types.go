package rules

import (
	"fmt"

	. "github.com/cricklet/chesscoach/internal/helpers"
)

type Player uint8

const (
	White Player = iota
	Black
)

var _playerStrings = [2]string{
	"white", "black",
}

func (p Player) String() string {
	return _playerStrings[p]
}

func (p Player) Other() Player {
	return 1 - p
}

type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType
)

var _pieceTypeStrings = [7]string{
	"p", "n", "b", "r", "q", "k", "",
}

func (p PieceType) String() string {
	return _pieceTypeStrings[p]
}

func PieceTypeFromRune(c rune) PieceType {
	switch c {
	case 'p':
		return Pawn
	case 'n':
		return Knight
	case 'b':
		return Bishop
	case 'r':
		return Rook
	case 'q':
		return Queen
	case 'k':
		return King
	}
	return NoPieceType
}

type Piece struct {
	Type   PieceType
	Player Player
}

type PlacedPiece struct {
	Piece  Piece
	Square Square
}

// Square indexes the board a1=0 .. h8=63, file-major within each rank.
type Square uint8

func SquareAt(file int, rank int) Square {
	return Square(rank*8 + file)
}

func (s Square) File() int {
	return int(s) % 8
}

func (s Square) Rank() int {
	return int(s) / 8
}

func (s Square) String() string {
	return fmt.Sprintf("%c%c", 'a'+s.File(), '1'+s.Rank())
}

func SquareFromString(str string) (Square, Error) {
	if len(str) != 2 {
		return 0, Errorf("invalid square '%v'", str)
	}
	file := int(str[0] - 'a')
	rank := int(str[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return 0, Errorf("invalid square '%v'", str)
	}
	return SquareAt(file, rank), NilError
}

type Status int

const (
	InPlay Status = iota
	Checkmate
	Stalemate
	Draw
)

var _statusStrings = [4]string{
	"in play", "checkmate", "stalemate", "draw",
}

func (s Status) String() string {
	return _statusStrings[s]
}
