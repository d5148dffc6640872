package coach

import (
	"time"

	"github.com/cricklet/chesscoach/internal/explain"
	. "github.com/cricklet/chesscoach/internal/helpers"
	"github.com/cricklet/chesscoach/internal/rules"
	"github.com/cricklet/chesscoach/internal/search"
)

type Strategy int

const (
	// StrategyEvaluation is the default: iterative deepening driven by
	// the static evaluation.
	StrategyEvaluation Strategy = iota
	// StrategyRandom picks uniformly from the legal moves with a seeded
	// generator. A documented baseline, not a weaker default.
	StrategyRandom
)

// CoachRunner is the public face of the engine: choose a move with a
// justification, or score a proposed move against the engine's own best.
// A runner holds no per-call state and may be reused across positions;
// every call borrows the board and returns it untouched.
type CoachRunner struct {
	Logger Logger

	strategy Strategy

	// hard per-call ceiling, independent of the budget argument
	maxSearchTime time.Duration

	randomSeed int64
}

type CoachOption func(*CoachRunner)

func WithLogger(logger Logger) CoachOption {
	return func(r *CoachRunner) {
		r.Logger = logger
	}
}

func WithStrategy(strategy Strategy) CoachOption {
	return func(r *CoachRunner) {
		r.strategy = strategy
	}
}

func WithMaxSearchTime(d time.Duration) CoachOption {
	return func(r *CoachRunner) {
		r.maxSearchTime = d
	}
}

func WithRandomSeed(seed int64) CoachOption {
	return func(r *CoachRunner) {
		r.randomSeed = seed
	}
}

func NewCoachRunner(opts ...CoachOption) CoachRunner {
	r := CoachRunner{
		Logger:        &SilentLogger,
		strategy:      StrategyEvaluation,
		maxSearchTime: 10 * time.Second,
		randomSeed:    1,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// deadline clamps the caller's budget to the runner's ceiling. A zero or
// negative budget produces a deadline already in the past, which the
// searcher resolves through its degraded fallback.
func (r *CoachRunner) deadline(budget time.Duration) time.Time {
	if budget > r.maxSearchTime {
		budget = r.maxSearchTime
	}
	return time.Now().Add(budget)
}

// MoveReport is the outcome of EvaluateMove: the proposed move scored
// from the original mover's perspective, alongside the engine's own
// preference.
type MoveReport struct {
	ProposedMove        rules.Move
	ProposedScore       int
	ProposedExplanation explain.Explanation

	BestMove        rules.Move
	BestScore       int
	BestExplanation explain.Explanation
}

// ChooseMove selects a move for the side to move within the budget and
// explains the choice. Errors with ErrNoLegalMoves on terminal positions.
func (r *CoachRunner) ChooseMove(board rules.Board, budget time.Duration) (rules.Move, explain.Explanation, Error) {
	if len(board.LegalMoves()) == 0 {
		return rules.Move{}, explain.Explanation{},
			Errorf("%w: %v", ErrNoLegalMoves, board.FenString())
	}

	if r.strategy == StrategyRandom {
		return r.chooseRandom(board)
	}

	searcher := search.NewSearcher(r.Logger, board, r.deadline(budget))
	best, trace, err := searcher.Search()
	if !IsNil(err) {
		return rules.Move{}, explain.Explanation{}, err
	}

	explanation := explain.Render(trace, best)
	r.Logger.Println("chose", best.Move.String(),
		"- depth", trace.DepthReached(),
		"-", search.ScoreString(best.Score))

	return best.Move, explanation, NilError
}

// EvaluateMove scores a proposed move by searching the reply position and
// negating, then sets it against the engine's own best move. Errors with
// ErrInvalidMove when the notation does not name a legal move.
func (r *CoachRunner) EvaluateMove(board rules.Board, moveStr string, budget time.Duration) (MoveReport, Error) {
	report := MoveReport{}

	if len(board.LegalMoves()) == 0 {
		return report, Errorf("%w: %v", ErrNoLegalMoves, board.FenString())
	}

	proposed, legal, err := rules.LegalMoveFromString(board, moveStr)
	if !IsNil(err) {
		return report, Join(Errorf("%w: %v", ErrInvalidMove, moveStr), err)
	}
	if !legal {
		return report, Errorf("%w: %v in %v", ErrInvalidMove, moveStr, board.FenString())
	}

	searcher := search.NewSearcher(r.Logger, board, r.deadline(budget))
	best, bestTrace, err := searcher.Search()
	if !IsNil(err) {
		return report, err
	}

	proposedScored, reply, err := r.scoreProposed(board, proposed, budget)
	if !IsNil(err) {
		return report, err
	}

	proposedExplanation := explain.RenderProposed(proposedScored, reply)
	comparison := explain.RenderComparison(proposedScored, best)
	proposedExplanation.Lines = append(proposedExplanation.Lines, comparison.Lines...)

	report.ProposedMove = proposed
	report.ProposedScore = proposedScored.Score
	report.ProposedExplanation = proposedExplanation
	report.BestMove = best.Move
	report.BestScore = best.Score
	report.BestExplanation = explain.Render(bestTrace, best)

	return report, NilError
}

// scoreProposed applies the move, searches the opponent's reply to the
// same deadline standard, negates, and undoes the move. The board is
// restored before returning on every path.
func (r *CoachRunner) scoreProposed(board rules.Board, proposed rules.Move, budget time.Duration) (search.ScoredMove, *search.ScoredMove, Error) {
	err := board.Apply(proposed)
	if !IsNil(err) {
		return search.ScoredMove{}, nil, err
	}

	score := 0
	depth := 0
	var reply *search.ScoredMove

	switch board.Status() {
	case rules.Checkmate:
		score = search.MateInPlies(1)
	case rules.Stalemate, rules.Draw:
		score = 0
	default:
		searcher := search.NewSearcher(r.Logger, board, r.deadline(budget))
		replyBest, replyTrace, searchErr := searcher.Search()
		if !IsNil(searchErr) {
			return search.ScoredMove{}, nil, Join(searchErr, board.Undo())
		}
		score = -replyBest.Score
		depth = replyTrace.DepthReached()
		reply = &replyBest
	}

	err = board.Undo()
	if !IsNil(err) {
		return search.ScoredMove{}, nil, err
	}

	return search.ScoredMove{Move: proposed, Score: score, Depth: depth}, reply, NilError
}
