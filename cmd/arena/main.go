package main

import (
	"fmt"
	"os"
	"time"

	"github.com/cricklet/chesscoach/internal/coach"
	. "github.com/cricklet/chesscoach/internal/helpers"
	"github.com/cricklet/chesscoach/internal/rules"
	elogo "github.com/kortemy/elo-go"
	combinations "github.com/mxschmitt/golang-combinations"
)

var _gamesPerPairing = 10
var _movesPerGame = 200
var _moveBudget = 50 * time.Millisecond

type contender struct {
	name   string
	runner coach.CoachRunner
	rating int
}

func newContenders() map[string]*contender {
	return map[string]*contender{
		"evaluation": {
			name:   "evaluation",
			runner: coach.NewCoachRunner(),
			rating: 1500,
		},
		"random": {
			name: "random",
			runner: coach.NewCoachRunner(
				coach.WithStrategy(coach.StrategyRandom),
			),
			rating: 1500,
		},
	}
}

// playGame runs one game from the starting position and returns white's
// score: 1 for a win, 0 for a loss, 0.5 for any draw or the move cap.
func playGame(white *contender, black *contender) (float64, Error) {
	board, err := rules.BoardFromFen(rules.StartingFen)
	if !IsNil(err) {
		return 0, err
	}

	for ply := 0; ply < _movesPerGame; ply++ {
		if board.Status() != rules.InPlay {
			break
		}

		mover := white
		if board.Player() == rules.Black {
			mover = black
		}

		move, _, err := mover.runner.ChooseMove(board, _moveBudget)
		if !IsNil(err) {
			return 0, err
		}

		err = board.Apply(move)
		if !IsNil(err) {
			return 0, err
		}
	}

	if board.Status() == rules.Checkmate {
		// the side to move is the side that got mated
		if board.Player() == rules.White {
			return 0, NilError
		}
		return 1, NilError
	}

	return 0.5, NilError
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "recover()", r)
		}
	}()

	contenders := newContenders()
	names := []string{}
	for name := range contenders {
		names = append(names, name)
	}

	elo := elogo.NewElo()

	for _, pairing := range combinations.Combinations(names, 2) {
		a := contenders[pairing[0]]
		b := contenders[pairing[1]]

		bar := CreateProgressBar(_gamesPerPairing, fmt.Sprintf("%v vs %v", a.name, b.name))

		for i := 0; i < _gamesPerPairing; i++ {
			white, black := a, b
			if i%2 == 1 {
				white, black = b, a
			}

			whiteScore, err := playGame(white, black)
			if !IsNil(err) {
				panic(err)
			}

			outcomeWhite, outcomeBlack := elo.Outcome(white.rating, black.rating, whiteScore)
			white.rating = outcomeWhite.Rating
			black.rating = outcomeBlack.Rating

			bar.Add(1)
		}
		bar.Close()
	}

	for _, name := range names {
		fmt.Printf("%v: %v\n", name, contenders[name].rating)
	}
}
