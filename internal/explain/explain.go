package explain

import (
	"fmt"
	"strings"

	"github.com/bluele/psort"
	"github.com/cricklet/chesscoach/internal/search"
)

// How many root candidates a narrative names besides the chosen move.
var _narratedCandidates = 3

// Explanation is the ordered, human-readable record of a decision. It is
// never empty when a legal move exists.
type Explanation struct {
	Lines []string
}

func (e Explanation) String() string {
	return strings.Join(e.Lines, "\n")
}

func (e Explanation) IsEmpty() bool {
	return len(e.Lines) == 0
}

func scorePhrase(score int) string {
	if search.IsMate(score) {
		return search.ScoreString(score)
	}
	return fmt.Sprintf("%v centipawns", score)
}

// Render narrates a completed search: depth reached, the strongest
// candidates with their scores, and the final rationale for the chosen
// move. Output is deterministic for a given trace.
func Render(trace *search.Trace, chosen search.ScoredMove) Explanation {
	lines := []string{}

	if trace.Forced {
		lines = append(lines,
			fmt.Sprintf("%v is forced: it is the only legal move", chosen.Move))
		return Explanation{Lines: lines}
	}

	if trace.Degraded {
		lines = append(lines,
			"the time budget expired before a depth-1 search could finish",
			fmt.Sprintf("falling back to move ordering: %v is first in capture/check/promotion order", chosen.Move))
		return Explanation{Lines: lines}
	}

	candidates := trace.LastCandidates()
	lines = append(lines,
		fmt.Sprintf("searched to depth %v, comparing %v candidate moves", trace.DepthReached(), len(candidates)))

	narrated := make([]search.ScoredMove, len(candidates))
	copy(narrated, candidates)
	psort.Slice(narrated, func(i, j int) bool {
		if narrated[i].Score != narrated[j].Score {
			return narrated[i].Score > narrated[j].Score
		}
		return narrated[i].Move.String() < narrated[j].Move.String()
	}, _narratedCandidates)

	for i := 0; i < len(narrated) && i < _narratedCandidates; i++ {
		lines = append(lines,
			fmt.Sprintf("candidate %v scores %v", narrated[i].Move, scorePhrase(narrated[i].Score)))
	}

	lines = append(lines,
		fmt.Sprintf("chose %v scoring %v at depth %v", chosen.Move, scorePhrase(chosen.Score), chosen.Depth))

	return Explanation{Lines: lines}
}

// RenderProposed narrates the score assigned to a caller-proposed move,
// including the strongest reply found for the opponent.
func RenderProposed(proposed search.ScoredMove, reply *search.ScoredMove) Explanation {
	lines := []string{
		fmt.Sprintf("proposed move %v scores %v", proposed.Move, scorePhrase(proposed.Score)),
	}
	if reply != nil {
		lines = append(lines,
			fmt.Sprintf("the strongest reply is %v, searched to depth %v", reply.Move, reply.Depth))
	}
	return Explanation{Lines: lines}
}

// RenderComparison states which of the proposed and engine-best moves is
// stronger and by how much.
func RenderComparison(proposed search.ScoredMove, best search.ScoredMove) Explanation {
	delta := best.Score - proposed.Score

	var verdict string
	switch {
	case delta > 0:
		verdict = fmt.Sprintf("%v is stronger than %v by %v centipawns",
			best.Move, proposed.Move, delta)
	case delta < 0:
		verdict = fmt.Sprintf("%v is stronger than %v by %v centipawns",
			proposed.Move, best.Move, -delta)
	default:
		verdict = fmt.Sprintf("%v and %v are equally strong", proposed.Move, best.Move)
	}

	return Explanation{Lines: []string{
		fmt.Sprintf("proposed %v scores %v; engine best %v scores %v",
			proposed.Move, scorePhrase(proposed.Score), best.Move, scorePhrase(best.Score)),
		verdict,
	}}
}
