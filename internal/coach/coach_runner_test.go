package coach

import (
	"testing"
	"time"

	. "github.com/cricklet/chesscoach/internal/helpers"
	"github.com/cricklet/chesscoach/internal/rules"
	"github.com/cricklet/chesscoach/internal/search"
	"github.com/stretchr/testify/assert"
)

var _testBudget = 300 * time.Millisecond

func boardFromFen(t *testing.T, fen string) rules.Board {
	board, err := rules.BoardFromFen(fen)
	assert.True(t, IsNil(err), err)
	return board
}

func TestChooseMoveExplains(t *testing.T) {
	runner := NewCoachRunner()
	board := boardFromFen(t, rules.StartingFen)

	move, explanation, err := runner.ChooseMove(board, _testBudget)
	assert.True(t, IsNil(err), err)

	assert.False(t, explanation.IsEmpty())
	assert.Contains(t, explanation.String(), move.String())
	assert.Contains(t, explanation.String(), "searched to depth")
}

func TestChooseMoveMateInOne(t *testing.T) {
	runner := NewCoachRunner()
	board := boardFromFen(t, "6k1/5ppp/8/8/8/8/5PPP/2Q3K1 w - - 0 1")

	move, explanation, err := runner.ChooseMove(board, _testBudget)
	assert.True(t, IsNil(err), err)

	assert.Equal(t, "c1c8", move.String())
	assert.Contains(t, explanation.String(), "mate+1")
}

func TestChooseMoveForced(t *testing.T) {
	runner := NewCoachRunner()
	board := boardFromFen(t, "R6k/6p1/8/8/8/8/8/6K1 b - - 0 1")

	move, explanation, err := runner.ChooseMove(board, _testBudget)
	assert.True(t, IsNil(err), err)

	assert.Equal(t, "h8h7", move.String())
	assert.Contains(t, explanation.String(), "forced")
}

func TestChooseMoveTerminalPosition(t *testing.T) {
	runner := NewCoachRunner()

	for _, fen := range []string{
		"R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 0 1",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
	} {
		board := boardFromFen(t, fen)
		_, _, err := runner.ChooseMove(board, _testBudget)
		assert.True(t, IsNoLegalMovesError(err), err)
	}
}

func TestChooseMoveZeroBudget(t *testing.T) {
	runner := NewCoachRunner()
	board := boardFromFen(t, rules.StartingFen)

	move, explanation, err := runner.ChooseMove(board, 0)
	assert.True(t, IsNil(err), err)

	assert.Equal(t, "a2a3", move.String())
	assert.Contains(t, explanation.String(), "falling back to move ordering")
}

func TestChooseMoveDeterminism(t *testing.T) {
	runner := NewCoachRunner()
	fen := "6k1/5ppp/8/8/8/8/5PPP/2Q3K1 w - - 0 1"

	first, _, err := runner.ChooseMove(boardFromFen(t, fen), _testBudget)
	assert.True(t, IsNil(err), err)

	second, _, err := runner.ChooseMove(boardFromFen(t, fen), _testBudget)
	assert.True(t, IsNil(err), err)

	assert.Equal(t, first, second)
}

func TestChooseMoveDoesNotMutateBoard(t *testing.T) {
	runner := NewCoachRunner()
	fen := "r3k2r/pppq1ppp/2n2n2/3pp3/3PP3/2N2N2/PPPQ1PPP/R3K2R w KQkq - 4 8"
	board := boardFromFen(t, fen)

	_, _, err := runner.ChooseMove(board, _testBudget)
	assert.True(t, IsNil(err), err)

	assert.Equal(t, fen, board.FenString())
}

func TestEvaluateMovePassiveChoice(t *testing.T) {
	runner := NewCoachRunner()
	board := boardFromFen(t, rules.StartingFen)

	report, err := runner.EvaluateMove(board, "a2a3", _testBudget)
	assert.True(t, IsNil(err), err)

	assert.Equal(t, "a2a3", report.ProposedMove.String())
	assert.False(t, report.ProposedExplanation.IsEmpty())
	assert.False(t, report.BestExplanation.IsEmpty())
	assert.GreaterOrEqual(t, report.BestScore, report.ProposedScore)
	assert.Contains(t, report.ProposedExplanation.String(), "engine best")
	assert.Equal(t, rules.StartingFen, board.FenString())
}

func TestEvaluateMoveMatchingBest(t *testing.T) {
	runner := NewCoachRunner()
	board := boardFromFen(t, "6k1/5ppp/8/8/8/8/5PPP/2Q3K1 w - - 0 1")

	report, err := runner.EvaluateMove(board, "c1c8", _testBudget)
	assert.True(t, IsNil(err), err)

	assert.Equal(t, "c1c8", report.BestMove.String())
	assert.Equal(t, search.MateInPlies(1), report.ProposedScore)
	assert.Contains(t, report.ProposedExplanation.String(), "equally strong")
}

func TestEvaluateMoveIllegal(t *testing.T) {
	runner := NewCoachRunner()
	board := boardFromFen(t, rules.StartingFen)

	// well-formed but illegal
	_, err := runner.EvaluateMove(board, "e2e5", _testBudget)
	assert.True(t, IsInvalidMoveError(err), err)

	// malformed
	_, err = runner.EvaluateMove(board, "zz9", _testBudget)
	assert.True(t, IsInvalidMoveError(err), err)

	assert.Equal(t, rules.StartingFen, board.FenString())
}

func TestEvaluateMoveTerminalPosition(t *testing.T) {
	runner := NewCoachRunner()
	board := boardFromFen(t, "R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 0 1")

	_, err := runner.EvaluateMove(board, "g8h8", _testBudget)
	assert.True(t, IsNoLegalMovesError(err), err)
	assert.False(t, IsInvalidMoveError(err), err)
}

func TestRandomStrategyDeterminism(t *testing.T) {
	runner := NewCoachRunner(WithStrategy(StrategyRandom), WithRandomSeed(42))

	first, explanation, err := runner.ChooseMove(boardFromFen(t, rules.StartingFen), _testBudget)
	assert.True(t, IsNil(err), err)
	assert.Contains(t, explanation.String(), "at random from 20 legal moves")

	second, _, err := runner.ChooseMove(boardFromFen(t, rules.StartingFen), _testBudget)
	assert.True(t, IsNil(err), err)

	assert.Equal(t, first, second)
}

func TestRandomStrategyForced(t *testing.T) {
	runner := NewCoachRunner(WithStrategy(StrategyRandom))
	board := boardFromFen(t, "R6k/6p1/8/8/8/8/8/6K1 b - - 0 1")

	move, explanation, err := runner.ChooseMove(board, _testBudget)
	assert.True(t, IsNil(err), err)

	assert.Equal(t, "h8h7", move.String())
	assert.Contains(t, explanation.String(), "forced")
}

func TestMaxSearchTimeClampsBudget(t *testing.T) {
	runner := NewCoachRunner(WithMaxSearchTime(100 * time.Millisecond))
	board := boardFromFen(t, rules.StartingFen)

	start := time.Now()
	_, _, err := runner.ChooseMove(board, time.Hour)
	assert.True(t, IsNil(err), err)

	assert.Less(t, time.Since(start), 2*time.Second)
}
