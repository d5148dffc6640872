package search

import (
	"time"

	. "github.com/cricklet/chesscoach/internal/helpers"
	"github.com/cricklet/chesscoach/internal/rules"
)

// Iteration cap. The deadline is the real bound; this only guards tiny
// positions where every depth completes instantly.
var _maxDepth = 100

// Searcher runs iterative deepening over a borrowed board until its
// deadline. It never keeps the result of an interrupted depth: the best
// move always comes from the last iteration that ran to completion.
type Searcher struct {
	Logger Logger

	board    rules.Board
	deadline time.Time

	outOfTime bool

	DebugTotalEvaluations int
}

func NewSearcher(logger Logger, board rules.Board, deadline time.Time) Searcher {
	return Searcher{
		Logger:   logger,
		board:    board,
		deadline: deadline,
	}
}

// checkDeadline is the cooperative preemption point, consulted before
// every node expansion. Overrun past the deadline is bounded by the cost
// of a single node.
func (s *Searcher) checkDeadline() bool {
	if !s.outOfTime && time.Now().After(s.deadline) {
		s.outOfTime = true
	}
	return s.outOfTime
}

func (s *Searcher) negamax(depth int, alpha int, beta int, ply int) (int, Error) {
	if s.checkDeadline() {
		return 0, NilError
	}

	switch s.board.Status() {
	case rules.Checkmate:
		return -MateInPlies(ply), NilError
	case rules.Stalemate, rules.Draw:
		return 0, NilError
	}

	if depth <= 0 {
		s.DebugTotalEvaluations++
		return Evaluate(s.board), NilError
	}

	moves := SortMoves(s.board, s.board.LegalMoves())

	best := -InitialBounds()
	for _, m := range moves {
		err := s.board.Apply(m)
		if !IsNil(err) {
			return best, err
		}

		score, err := s.negamax(depth-1, -beta, -alpha, ply+1)
		err = Join(err, s.board.Undo())
		if !IsNil(err) {
			return best, err
		}
		if s.outOfTime {
			return 0, NilError
		}

		score = -score
		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	return best, NilError
}

// searchRootDepth scores every root move with a full window so the trace
// carries exact scores for all candidates, not just the winner.
func (s *Searcher) searchRootDepth(moves []rules.Move, depth int) ([]ScoredMove, bool, Error) {
	candidates := []ScoredMove{}

	for _, m := range moves {
		if s.checkDeadline() {
			return candidates, false, NilError
		}

		err := s.board.Apply(m)
		if !IsNil(err) {
			return candidates, false, err
		}

		score, err := s.negamax(depth-1, -InitialBounds(), InitialBounds(), 1)
		err = Join(err, s.board.Undo())
		if !IsNil(err) {
			return candidates, false, err
		}
		if s.outOfTime {
			return candidates, false, NilError
		}

		candidates = append(candidates, ScoredMove{Move: m, Score: -score, Depth: depth})
	}

	return candidates, true, NilError
}

// forcedResult scores the only legal move without iterating depths.
func (s *Searcher) forcedResult(m rules.Move) (ScoredMove, Error) {
	err := s.board.Apply(m)
	if !IsNil(err) {
		return ScoredMove{}, err
	}

	score := 0
	switch s.board.Status() {
	case rules.Checkmate:
		score = MateInPlies(1)
	case rules.Stalemate, rules.Draw:
		score = 0
	default:
		score = -Evaluate(s.board)
	}

	err = s.board.Undo()
	if !IsNil(err) {
		return ScoredMove{}, err
	}

	return ScoredMove{Move: m, Score: score, Depth: 0}, NilError
}

// Search runs iterative deepening and returns the best move with the
// trace of every completed depth. Callers must not invoke it on a
// terminal position.
func (s *Searcher) Search() (ScoredMove, *Trace, Error) {
	trace := &Trace{}

	legal := s.board.LegalMoves()
	if len(legal) == 0 {
		return ScoredMove{}, trace, Errorf("no legal moves to search in %v", s.board.FenString())
	}

	ordered := SortMoves(s.board, legal)

	if len(ordered) == 1 {
		trace.Forced = true
		best, err := s.forcedResult(ordered[0])
		if !IsNil(err) {
			return ScoredMove{}, trace, err
		}
		trace.Depths = append(trace.Depths, TraceDepth{Depth: 0, Candidates: []ScoredMove{best}})
		return best, trace, NilError
	}

	best := ScoredMove{}
	haveResult := false

	for depth := 1; depth <= _maxDepth; depth++ {
		candidates, completed, err := s.searchRootDepth(ordered, depth)
		if !IsNil(err) {
			return ScoredMove{}, trace, err
		}
		if !completed {
			break
		}

		sortCandidates(candidates)
		trace.Depths = append(trace.Depths, TraceDepth{Depth: depth, Candidates: candidates})
		best = candidates[0]
		haveResult = true

		s.Logger.Println("evaluated to depth", depth,
			"- total evals", s.DebugTotalEvaluations,
			"- best move", best.Move.String(),
			"- score", ScoreString(best.Score))

		// feed this depth's verdict back as next depth's visit order
		ordered = MapSlice(candidates, func(c ScoredMove) rules.Move {
			return c.Move
		})

		if IsMate(best.Score) {
			break
		}
		if s.outOfTime {
			break
		}
	}

	if !haveResult {
		// Not even depth 1 finished. Returning the orderer's first pick
		// keeps the caller supplied with a legal move under any budget.
		trace.Degraded = true
		best = ScoredMove{Move: ordered[0], Score: 0, Depth: 0}
	}

	return best, trace, NilError
}
