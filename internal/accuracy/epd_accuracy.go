package accuracy

import (
	"strings"
	"time"

	"github.com/cricklet/chesscoach/internal/coach"
	. "github.com/cricklet/chesscoach/internal/helpers"
	"github.com/cricklet/chesscoach/internal/rules"
)

// Epd is a parsed test position: a FEN plus the moves the engine should
// find ("bm") or steer clear of ("am"), held in coordinate notation.
type Epd struct {
	Epd string
	Fen string

	BestMoves  []string
	AvoidMoves []string
}

// EpdToFen keeps the four position fields and resets the clocks, which
// EPD lines omit.
func EpdToFen(epd string) string {
	parts := strings.Split(epd, " ")
	parts = parts[0:4]
	return strings.Join(parts, " ") + " 0 1"
}

// movesFromOpcode extracts the SAN move list for an opcode ("bm", "am")
// and resolves each against the position.
func movesFromOpcode(opcode string, epd string, board rules.Board) ([]string, Error) {
	if !strings.Contains(epd, opcode+" ") {
		return []string{}, NilError
	}
	end := strings.Split(epd, opcode+" ")[1]
	movesStr := strings.Split(end, ";")[0]

	moves := []string{}
	for _, san := range strings.Split(movesStr, ", ") {
		move, err := rules.DecodeSan(board, strings.TrimSpace(san))
		if !IsNil(err) {
			return []string{}, err
		}
		moves = append(moves, move.String())
	}

	return moves, NilError
}

func ParseEpd(epd string) (*Epd, Error) {
	fen := EpdToFen(epd)
	board, err := rules.BoardFromFen(fen)
	if !IsNil(err) {
		return nil, err
	}

	bestMoves, err := movesFromOpcode("bm", epd, board)
	if !IsNil(err) {
		return nil, err
	}

	avoidMoves, err := movesFromOpcode("am", epd, board)
	if !IsNil(err) {
		return nil, err
	}

	if len(bestMoves) == 0 && len(avoidMoves) == 0 {
		return nil, Errorf("no bm or am in epd: %v", epd)
	}

	return &Epd{
		Epd:        epd,
		Fen:        fen,
		BestMoves:  bestMoves,
		AvoidMoves: avoidMoves,
	}, NilError
}

func CalculateSuccess(move string, bestMoves []string, avoidMoves []string) bool {
	if len(bestMoves) > 0 && !Contains(bestMoves, move) {
		return false
	}
	if len(avoidMoves) > 0 && Contains(avoidMoves, move) {
		return false
	}
	return true
}

// SearchEpd replays one test position through the runner and reports the
// move it picked and whether the EPD counts it as a success.
func SearchEpd(runner *coach.CoachRunner, epd string, budget time.Duration) (string, bool, Error) {
	parsed, err := ParseEpd(epd)
	if !IsNil(err) {
		return "", false, err
	}

	board, err := rules.BoardFromFen(parsed.Fen)
	if !IsNil(err) {
		return "", false, err
	}

	move, explanation, err := runner.ChooseMove(board, budget)
	if !IsNil(err) {
		return "", false, err
	}
	if explanation.IsEmpty() {
		return "", false, Errorf("no explanation for %v", epd)
	}

	success := CalculateSuccess(move.String(), parsed.BestMoves, parsed.AvoidMoves)
	return move.String(), success, NilError
}

// MateInOneSuite is the built-in replay suite: every position has a
// single mating move the engine must find within a sub-second budget.
var MateInOneSuite = []string{
	"6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - bm Ra8#;",
	"6k1/5ppp/8/8/8/8/5PPP/2Q3K1 w - - bm Qc8#;",
	"7k/8/5K2/8/8/8/8/6Q1 w - - bm Qg7#;",
	"r5k1/5ppp/8/8/8/8/5PPP/6K1 b - - bm Ra1#;",
}
