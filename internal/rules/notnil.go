package rules

import (
	"strconv"
	"strings"

	. "github.com/cricklet/chesscoach/internal/helpers"
	"github.com/notnil/chess"
)

var StartingFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// notnilBoard adapts github.com/notnil/chess to the Board interface.
// notnil positions are immutable, so apply/undo is a position stack.
type notnilBoard struct {
	stack []*chess.Position
}

var _ Board = (*notnilBoard)(nil)

func BoardFromFen(fen string) (Board, Error) {
	fenOption, err := chess.FEN(fen)
	if err != nil {
		return nil, Wrap(err)
	}
	game := chess.NewGame(fenOption)
	return &notnilBoard{stack: []*chess.Position{game.Position()}}, NilError
}

func (b *notnilBoard) position() *chess.Position {
	return b.stack[len(b.stack)-1]
}

func playerFromColor(c chess.Color) Player {
	if c == chess.White {
		return White
	}
	return Black
}

func pieceTypeFromChess(t chess.PieceType) PieceType {
	switch t {
	case chess.King:
		return King
	case chess.Queen:
		return Queen
	case chess.Rook:
		return Rook
	case chess.Bishop:
		return Bishop
	case chess.Knight:
		return Knight
	case chess.Pawn:
		return Pawn
	}
	return NoPieceType
}

func moveFromChess(m *chess.Move) Move {
	return Move{
		From:      Square(m.S1()),
		To:        Square(m.S2()),
		Promotion: pieceTypeFromChess(m.Promo()),
	}
}

func (b *notnilBoard) findValidMove(m Move) (*chess.Move, bool) {
	for _, valid := range b.position().ValidMoves() {
		if moveFromChess(valid) == m {
			return valid, true
		}
	}
	return nil, false
}

func (b *notnilBoard) Player() Player {
	return playerFromColor(b.position().Turn())
}

func (b *notnilBoard) LegalMoves() []Move {
	return MapSlice(b.position().ValidMoves(), moveFromChess)
}

func (b *notnilBoard) Apply(m Move) Error {
	valid, ok := b.findValidMove(m)
	if !ok {
		return Errorf("move %v is not legal in %v", m, b.FenString())
	}
	b.stack = append(b.stack, b.position().Update(valid))
	return NilError
}

func (b *notnilBoard) Undo() Error {
	if len(b.stack) <= 1 {
		return Errorf("nothing to undo")
	}
	b.stack = b.stack[:len(b.stack)-1]
	return NilError
}

func (b *notnilBoard) halfMoveClock() int {
	fields := strings.Fields(b.FenString())
	if len(fields) < 5 {
		return 0
	}
	clock, err := strconv.Atoi(fields[4])
	if err != nil {
		return 0
	}
	return clock
}

// insufficientMaterial approximates the draw rule: no pawns, rooks or
// queens, and at most one minor piece on the board.
func (b *notnilBoard) insufficientMaterial() bool {
	minors := 0
	for _, placed := range b.Pieces() {
		switch placed.Piece.Type {
		case Pawn, Rook, Queen:
			return false
		case Knight, Bishop:
			minors++
		}
	}
	return minors <= 1
}

func (b *notnilBoard) Status() Status {
	switch b.position().Status() {
	case chess.Checkmate:
		return Checkmate
	case chess.Stalemate:
		return Stalemate
	}
	if b.insufficientMaterial() || b.halfMoveClock() >= 100 {
		return Draw
	}
	return InPlay
}

func (b *notnilBoard) IsCapture(m Move) bool {
	valid, ok := b.findValidMove(m)
	if !ok {
		return false
	}
	return valid.HasTag(chess.Capture) || valid.HasTag(chess.EnPassant)
}

func (b *notnilBoard) GivesCheck(m Move) bool {
	valid, ok := b.findValidMove(m)
	if !ok {
		return false
	}
	return valid.HasTag(chess.Check)
}

func (b *notnilBoard) PieceAt(sq Square) (Piece, bool) {
	piece := b.position().Board().Piece(chess.Square(sq))
	if piece == chess.NoPiece {
		return Piece{}, false
	}
	return Piece{
		Type:   pieceTypeFromChess(piece.Type()),
		Player: playerFromColor(piece.Color()),
	}, true
}

func (b *notnilBoard) Pieces() []PlacedPiece {
	placed := []PlacedPiece{}
	for sq, piece := range b.position().Board().SquareMap() {
		placed = append(placed, PlacedPiece{
			Piece: Piece{
				Type:   pieceTypeFromChess(piece.Type()),
				Player: playerFromColor(piece.Color()),
			},
			Square: Square(sq),
		})
	}
	return placed
}

func (b *notnilBoard) FenString() string {
	return b.position().String()
}
