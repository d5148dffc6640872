package coach

import (
	"fmt"
	"math/rand"

	"github.com/cricklet/chesscoach/internal/explain"
	. "github.com/cricklet/chesscoach/internal/helpers"
	"github.com/cricklet/chesscoach/internal/rules"
	"github.com/cricklet/chesscoach/internal/search"
)

// chooseRandom implements StrategyRandom: a uniform pick over the ordered
// legal moves. The generator is re-seeded per call, so the same seed and
// position always produce the same choice.
func (r *CoachRunner) chooseRandom(board rules.Board) (rules.Move, explain.Explanation, Error) {
	moves := search.SortMoves(board, board.LegalMoves())

	if len(moves) == 1 {
		return moves[0], explain.Explanation{Lines: []string{
			fmt.Sprintf("%v is forced: it is the only legal move", moves[0]),
		}}, NilError
	}

	rng := rand.New(rand.NewSource(r.randomSeed))
	chosen := moves[rng.Intn(len(moves))]

	explanation := explain.Explanation{Lines: []string{
		fmt.Sprintf("selected uniformly at random from %v legal moves (seed %v)", len(moves), r.randomSeed),
		fmt.Sprintf("chose %v", chosen),
	}}

	r.Logger.Println("chose", chosen.String(), "at random from", len(moves), "moves")

	return chosen, explanation, NilError
}
