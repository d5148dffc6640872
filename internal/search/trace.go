package search

import (
	"sort"

	"github.com/cricklet/chesscoach/internal/rules"
)

// ScoredMove pairs a move with its score from the root mover's point of
// view and the depth that established the score.
type ScoredMove struct {
	Move  rules.Move
	Score int
	Depth int
}

// TraceDepth records one completed iteration: every root candidate and
// its score, best first.
type TraceDepth struct {
	Depth      int
	Candidates []ScoredMove
}

// Trace is the record the explanation synthesizer narrates from. Only
// completed depths appear; an interrupted iteration leaves no entry.
type Trace struct {
	Depths   []TraceDepth
	Forced   bool
	Degraded bool
}

func (t *Trace) DepthReached() int {
	if len(t.Depths) == 0 {
		return 0
	}
	return t.Depths[len(t.Depths)-1].Depth
}

func (t *Trace) LastCandidates() []ScoredMove {
	if len(t.Depths) == 0 {
		return nil
	}
	return t.Depths[len(t.Depths)-1].Candidates
}

func sortCandidates(candidates []ScoredMove) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Move.String() < candidates[j].Move.String()
	})
}
