package explain

import (
	"strings"
	"testing"

	. "github.com/cricklet/chesscoach/internal/helpers"
	"github.com/cricklet/chesscoach/internal/rules"
	"github.com/cricklet/chesscoach/internal/search"
	"github.com/stretchr/testify/assert"
)

func scoredMove(t *testing.T, uci string, score int, depth int) search.ScoredMove {
	move, err := rules.MoveFromString(uci)
	assert.True(t, IsNil(err), err)
	return search.ScoredMove{Move: move, Score: score, Depth: depth}
}

func TestRenderForced(t *testing.T) {
	trace := &search.Trace{Forced: true}
	chosen := scoredMove(t, "h8h7", 0, 0)

	explanation := Render(trace, chosen)

	assert.Equal(t, 1, len(explanation.Lines))
	assert.Equal(t, "h8h7 is forced: it is the only legal move", explanation.Lines[0])
}

func TestRenderDegraded(t *testing.T) {
	trace := &search.Trace{Degraded: true}
	chosen := scoredMove(t, "a2a3", 0, 0)

	explanation := Render(trace, chosen)

	assert.False(t, explanation.IsEmpty())
	assert.Contains(t, explanation.String(), "time budget expired")
	assert.Contains(t, explanation.String(), "a2a3 is first")
}

func TestRenderNarratesTopCandidates(t *testing.T) {
	trace := &search.Trace{
		Depths: []search.TraceDepth{
			{
				Depth: 3,
				Candidates: []search.ScoredMove{
					scoredMove(t, "e2e4", 40, 3),
					scoredMove(t, "d2d4", 35, 3),
					scoredMove(t, "g1f3", 30, 3),
					scoredMove(t, "a2a3", -10, 3),
					scoredMove(t, "h2h4", -25, 3),
				},
			},
		},
	}
	chosen := scoredMove(t, "e2e4", 40, 3)

	explanation := Render(trace, chosen)

	rendered := explanation.String()
	assert.Contains(t, rendered, "searched to depth 3, comparing 5 candidate moves")
	assert.Contains(t, rendered, "candidate e2e4 scores 40 centipawns")
	assert.Contains(t, rendered, "candidate d2d4 scores 35 centipawns")
	assert.Contains(t, rendered, "candidate g1f3 scores 30 centipawns")
	assert.NotContains(t, rendered, "a2a3")
	assert.Contains(t, rendered, "chose e2e4 scoring 40 centipawns at depth 3")
}

func TestRenderDeterminism(t *testing.T) {
	trace := &search.Trace{
		Depths: []search.TraceDepth{
			{
				Depth: 2,
				Candidates: []search.ScoredMove{
					scoredMove(t, "e2e4", 10, 2),
					scoredMove(t, "d2d4", 10, 2),
					scoredMove(t, "c2c4", 10, 2),
					scoredMove(t, "b2b4", 10, 2),
				},
			},
		},
	}
	chosen := scoredMove(t, "b2b4", 10, 2)

	first := Render(trace, chosen).String()
	second := Render(trace, chosen).String()
	assert.Equal(t, first, second)

	// equal scores narrate in uci order
	bIndex := strings.Index(first, "candidate b2b4")
	cIndex := strings.Index(first, "candidate c2c4")
	dIndex := strings.Index(first, "candidate d2d4")
	assert.True(t, bIndex >= 0 && cIndex >= 0 && dIndex >= 0)
	assert.Less(t, bIndex, cIndex)
	assert.Less(t, cIndex, dIndex)
}

func TestRenderMateScores(t *testing.T) {
	trace := &search.Trace{
		Depths: []search.TraceDepth{
			{
				Depth: 1,
				Candidates: []search.ScoredMove{
					scoredMove(t, "c1c8", search.MateInPlies(1), 1),
				},
			},
		},
	}
	chosen := scoredMove(t, "c1c8", search.MateInPlies(1), 1)

	explanation := Render(trace, chosen)
	assert.Contains(t, explanation.String(), "mate+1")
	assert.NotContains(t, explanation.String(), "centipawns at depth")
}

func TestRenderProposed(t *testing.T) {
	proposed := scoredMove(t, "a2a3", -30, 2)
	reply := scoredMove(t, "e7e5", 30, 2)

	explanation := RenderProposed(proposed, &reply)
	assert.Contains(t, explanation.String(), "proposed move a2a3 scores -30 centipawns")
	assert.Contains(t, explanation.String(), "the strongest reply is e7e5")

	withoutReply := RenderProposed(proposed, nil)
	assert.Equal(t, 1, len(withoutReply.Lines))
}

func TestRenderComparison(t *testing.T) {
	proposed := scoredMove(t, "a2a3", -30, 2)
	best := scoredMove(t, "e2e4", 40, 2)

	explanation := RenderComparison(proposed, best)
	assert.Contains(t, explanation.String(), "e2e4 is stronger than a2a3 by 70 centipawns")

	reversed := RenderComparison(best, proposed)
	assert.Contains(t, reversed.String(), "e2e4 is stronger than a2a3 by 70 centipawns")

	equal := RenderComparison(proposed, scoredMove(t, "b2b3", -30, 2))
	assert.Contains(t, equal.String(), "equally strong")
}
