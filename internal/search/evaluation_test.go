package search

import (
	"strings"
	"testing"
	"unicode"

	. "github.com/cricklet/chesscoach/internal/helpers"
	"github.com/cricklet/chesscoach/internal/rules"
	"github.com/stretchr/testify/assert"
)

func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsUpper(r) {
			return unicode.ToLower(r)
		}
		return unicode.ToUpper(r)
	}, s)
}

// mirrorFen flips the board vertically and swaps the piece colors while
// keeping the side-to-move field. The mover now owns what the opponent
// owned, so the score must be the exact negation of the original.
func mirrorFen(fen string) string {
	fields := strings.Fields(fen)

	ranks := strings.Split(fields[0], "/")
	mirrored := []string{}
	for i := len(ranks) - 1; i >= 0; i-- {
		mirrored = append(mirrored, swapCase(ranks[i]))
	}

	turn := fields[1]

	castling := fields[2]
	if castling != "-" {
		swapped := swapCase(castling)
		ordered := ""
		for _, c := range []string{"K", "Q", "k", "q"} {
			if strings.Contains(swapped, c) {
				ordered += c
			}
		}
		castling = ordered
	}

	enPassant := fields[3]
	if enPassant != "-" {
		file := enPassant[0:1]
		if enPassant[1] == '3' {
			enPassant = file + "6"
		} else {
			enPassant = file + "3"
		}
	}

	return strings.Join([]string{
		strings.Join(mirrored, "/"), turn, castling, enPassant, fields[4], fields[5],
	}, " ")
}

func evaluateFen(t *testing.T, fen string) int {
	board, err := rules.BoardFromFen(fen)
	assert.True(t, IsNil(err), err)
	return Evaluate(board)
}

func TestEvaluateStartingPositionIsZero(t *testing.T) {
	assert.Equal(t, 0, evaluateFen(t, rules.StartingFen))
}

func TestEvaluateDeterminism(t *testing.T) {
	fen := "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3"
	assert.Equal(t, evaluateFen(t, fen), evaluateFen(t, fen))
}

func TestEvaluateSymmetry(t *testing.T) {
	fens := []string{
		rules.StartingFen,
		"rnbqkbnr/pppppppp/8/8/8/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1",
		"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3",
		"4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1",
	}

	for _, fen := range fens {
		score := evaluateFen(t, fen)
		mirroredScore := evaluateFen(t, mirrorFen(fen))
		assert.Equal(t, -score, mirroredScore, fen)
	}
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	// white has an extra queen
	whiteToMove := "4k3/8/8/8/8/8/3Q4/4K3 w - - 0 1"
	blackToMove := "4k3/8/8/8/8/8/3Q4/4K3 b - - 0 1"

	assert.Greater(t, evaluateFen(t, whiteToMove), 800)
	assert.Less(t, evaluateFen(t, blackToMove), -800)
}

func TestMateScoreHelpers(t *testing.T) {
	assert.True(t, IsMate(MateInPlies(1)))
	assert.True(t, IsMate(-MateInPlies(3)))
	assert.False(t, IsMate(250))

	assert.Greater(t, MateInPlies(1), MateInPlies(3))

	assert.Equal(t, "mate+2", ScoreString(MateInPlies(2)))
	assert.Equal(t, "mate-2", ScoreString(-MateInPlies(2)))
	assert.Equal(t, "42", ScoreString(42))
}
